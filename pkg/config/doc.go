// Package config loads, validates, and resolves DocBridge connector
// configuration.
//
// Configuration flows through three stages: Load gathers raw string
// values from a file, environment variables, and declared defaults;
// NewOptions validates every field eagerly and resolves derived state;
// the returned Options exposes only validated, immutable accessors.
//
// # Key Features
//
// - Values: flat string map keyed by dotted configuration names
// - Eager validation: the first bad field fails the whole load
// - Display-URL templates resolved against the engine URL at load time
// - Host reachability probes that warn but never fail the load
// - Environment variable substitution with ${VAR_NAME} syntax
// - Sensitive values decoded per use, never retained in plaintext
//
// # Usage
//
// ## Loading and Validating
//
//	values, err := config.Load("docbridge.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	opts, err := config.NewOptions(ctx, values, core.PlainTextDecoder{})
//	if err != nil {
//		log.Fatal(err)
//	}
//
// ## Opening a Connection
//
//	conn, err := opts.GetConnection(ctx)
//	if err != nil {
//		return err
//	}
//	defer conn.Close()
//	store, err := opts.GetObjectStore(ctx, conn)
//
// ## Building Display URLs
//
//	u := opts.DisplayURL(docID.String(), vsID.String())
//	// u is absolute and already percent-escaped
//
// # Configuration Keys
//
// Keys follow a dotted naming scheme. The engine.* keys describe the
// content engine endpoint and credentials, bridge.* keys control feed
// semantics, and feed.* keys bound batch sizes:
//
//	engine.url                    required, absolute URL
//	engine.objectStore            required
//	engine.username               account for engine sessions
//	engine.password               encoded; decoded per connection
//	engine.objectFactory          required, registry name
//	engine.displayUrlPattern      template with {0} {1} {2} slots
//	engine.additionalWhereClause  extra traversal predicate
//	engine.excludedMetadata       comma-separated field list
//	engine.includedMetadata       comma-separated field list
//	engine.metadataDateFormat     date pattern, default yyyy-MM-dd
//	bridge.authenticatedUsersGroup group granted read access
//	bridge.markAllDocsAsPublic    boolean, default false
//	bridge.namespace              principal namespace, default Default
//	feed.maxUrls                  integer greater than 2, default 5000
//
// Environment variables override file values using the DOCBRIDGE_
// prefix with dots mapped to underscores, so engine.objectStore is
// overridden by DOCBRIDGE_ENGINE_OBJECTSTORE.
package config
