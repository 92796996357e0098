// Package docbridge provides a connector configuration toolkit for
// indexing enterprise content from a content engine into a search feed.
//
// The core of the module validates connector configuration eagerly and
// resolves the per-document display URL template against the engine
// endpoint, so that a misconfigured deployment fails at startup with an
// error naming the exact setting, instead of failing document by
// document at feed time.
//
// # Architecture
//
// DocBridge is built around a few deliberate rules:
//
// 1. Fail-fast validation: every configuration field is checked in a
// fixed order during construction. No partially validated configuration
// object ever escapes.
//
// 2. Resolve once, use forever: the display URL template is made
// absolute and syntax-checked at load time with sentinel identifiers,
// which makes per-document URL construction infallible afterwards.
//
// 3. Non-fatal reachability: host probes against the engine and display
// URLs warn and continue. Network state must never block a valid
// configuration from loading.
//
// 4. Pluggable factories: the object factory that opens engine sessions
// is selected by name from a registry. Credentials stay encoded until a
// connection is actually requested.
//
// # Quick Start
//
// Validate configuration and build a display URL:
//
//	import (
//	    "context"
//
//	    "github.com/docbridge/docbridge/pkg/config"
//	    "github.com/docbridge/docbridge/pkg/connector/core"
//
//	    _ "github.com/docbridge/docbridge/pkg/connector/factories/offline"
//	)
//
//	values, err := config.Load("docbridge.yaml")
//	if err != nil {
//	    return err
//	}
//
//	opts, err := config.NewOptions(context.Background(), values, core.PlainTextDecoder{})
//	if err != nil {
//	    return err
//	}
//
//	u := opts.DisplayURL(docID.String(), vsID.String())
//
// # Key Packages
//
//	pkg/config       - Loading, eager validation, resolved options
//	pkg/connector    - Object factory framework and registry
//	pkg/uri          - URL validation, templating, reachability probes
//	pkg/id           - Normalized document and version-series identifiers
//	pkg/datefmt      - Date format patterns translated to Go layouts
//	pkg/errors       - Structured error handling
//	pkg/logger       - Structured logging
//	pkg/metrics      - Prometheus metrics collection
//
// # CLI
//
// The docbridge binary drives the same code paths from the command line:
//
//	docbridge validate --config docbridge.yaml
//	docbridge resolve --config docbridge.yaml --output json
//	docbridge display-url -c docbridge.yaml --doc-id "{...}" --vs-id "{...}"
//	docbridge factories
//
// Configuration values come from the file, DOCBRIDGE_* environment
// variables, and built-in defaults, in that order of precedence.
package docbridge
