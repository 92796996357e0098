// Package connector provides the pluggable object factory framework that
// DocBridge uses to talk to a content engine. The configuration layer
// names a factory; the framework supplies its construction, discovery,
// and the capability surface a factory must implement.
//
// # Architecture Overview
//
// The connector package is organized into several sub-packages:
//
//   - core: Defines the fundamental interfaces (ObjectFactory, Connection,
//     ObjectStore) that all factories implement, plus the
//     SensitiveValueDecoder collaborators used to decode stored
//     credentials at connection time.
//
//   - registry: Implements a factory pattern for dynamic discovery and
//     instantiation by configured name. Factories self-register during
//     initialization, and a catalog carries their descriptive metadata
//     for tooling.
//
//   - factories: Contains factory implementations. The repo ships the
//     inert "offline" factory, which lets a configuration validate fully
//     without engine credentials or network access; production factories
//     register themselves the same way.
//
// # Core Concepts
//
// One factory per process: configuration validation instantiates the
// named factory exactly once and reuses the instance for every
// connection. Credentials stay encoded at rest; a decoder turns them
// into plaintext only inside GetConnection calls.
//
// Factories report unsupported operations with structured capability
// errors rather than panics, so callers can distinguish "this factory
// cannot do that" from transport failures.
//
// # Example Usage
//
// Opening a connection through a registered factory:
//
//	factory, err := registry.Create("offline")
//	if err != nil {
//		return err
//	}
//	conn, err := factory.GetConnection(ctx, engineURL, username, password)
//	if err != nil {
//		return err
//	}
//	defer conn.Close()
//	store, err := factory.GetObjectStore(ctx, conn, "ObjStore")
//
// New factories register themselves from an init function:
//
//	func init() {
//		_ = registry.Register("acme", NewFactory)
//	}
package connector
