package core

import (
	"context"
)

// Connection is an authenticated session with a content engine.
type Connection interface {
	// URL returns the engine endpoint this connection is bound to.
	URL() string
	// Close releases the connection.
	Close() error
}

// ObjectStore is a handle to a named logical partition of the content
// engine's repository.
type ObjectStore interface {
	// Name returns the symbolic name of the store.
	Name() string
}

// ObjectFactory produces connections and object-store handles for one
// engine implementation. Implementations register themselves by name in
// the registry package; configuration selects one at load time and the
// resulting instance is reused for the process lifetime.
type ObjectFactory interface {
	// GetConnection opens an authenticated connection to the engine.
	GetConnection(ctx context.Context, engineURL, username, password string) (Connection, error)
	// GetObjectStore opens a handle to the named store over conn.
	GetObjectStore(ctx context.Context, conn Connection, name string) (ObjectStore, error)
}

// SensitiveValueDecoder decodes sensitive configuration values stored
// in an encoded form. The decoded plaintext is never retained by
// configuration; it is produced on demand for each connection attempt.
type SensitiveValueDecoder interface {
	DecodeValue(encoded string) (string, error)
}
