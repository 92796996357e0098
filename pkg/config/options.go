package config

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/docbridge/docbridge/pkg/connector/core"
	"github.com/docbridge/docbridge/pkg/connector/registry"
	"github.com/docbridge/docbridge/pkg/datefmt"
	"github.com/docbridge/docbridge/pkg/errors"
	"github.com/docbridge/docbridge/pkg/id"
	"github.com/docbridge/docbridge/pkg/logger"
	"github.com/docbridge/docbridge/pkg/metrics"
	"github.com/docbridge/docbridge/pkg/uri"
)

// Options is the validated, resolved configuration. It is constructed
// once at startup, never mutated afterwards, and safe for
// unsynchronized concurrent reads.
type Options struct {
	contentEngineURL        string
	objectStore             string
	username                string
	password                string // encoded; decoded per connection attempt
	factoryName             string
	factory                 core.ObjectFactory
	decoder                 core.SensitiveValueDecoder
	displayTemplate         uri.Template
	markAllDocsAsPublic     bool
	additionalWhereClause   string
	excludedMetadata        []string
	includedMetadata        []string
	dateFormat              datefmt.Format
	authenticatedUsersGroup string
	globalNamespace         string
	maxFeedURLs             int
}

// NewOptions validates values field by field and resolves the derived
// state: the display-URL template is made absolute against the engine
// URL, and the configured object factory is instantiated from the
// registry. Validation is eager and fail-fast; the first violation
// aborts with a config error and no Options value escapes partially
// built. Host reachability problems during the two probes are logged,
// never fatal. The context bounds only the probes.
func NewOptions(ctx context.Context, values Values, decoder core.SensitiveValueDecoder) (*Options, error) {
	o, err := newOptions(ctx, values, decoder)
	if err != nil {
		metrics.OptionsLoads.WithLabelValues("failure").Inc()
		return nil, err
	}
	metrics.OptionsLoads.WithLabelValues("success").Inc()
	return o, nil
}

func newOptions(ctx context.Context, values Values, decoder core.SensitiveValueDecoder) (*Options, error) {
	if decoder == nil {
		return nil, errors.New(errors.ErrorTypeConfig, "a sensitive value decoder is required")
	}

	log := logger.With(zap.String("component", "config"))
	o := &Options{decoder: decoder}

	o.contentEngineURL = values.Get(KeyContentEngineURL)
	engineURL, err := uri.Validate(o.contentEngineURL)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeConfig, fmt.Sprintf("invalid %s", KeyContentEngineURL))
	}
	engineURL.LogUnreachableHost(ctx)
	log.Debug("configuration accepted", zap.String("key", KeyContentEngineURL), zap.String("value", o.contentEngineURL))

	o.objectStore = values.Get(KeyObjectStore)
	if o.objectStore == "" {
		return nil, errors.New(errors.ErrorTypeConfig, fmt.Sprintf("%s may not be empty", KeyObjectStore))
	}
	log.Debug("configuration accepted", zap.String("key", KeyObjectStore), zap.String("value", o.objectStore))

	o.username = values.Get(KeyUsername)
	log.Debug("configuration accepted", zap.String("key", KeyUsername), zap.String("value", o.username))
	o.password = values.Get(KeyPassword)

	o.factoryName = values.Get(KeyObjectFactory)
	if o.factoryName == "" {
		return nil, errors.New(errors.ErrorTypeConfig, fmt.Sprintf("%s may not be empty", KeyObjectFactory))
	}
	o.factory, err = registry.Create(o.factoryName)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeConfig,
			fmt.Sprintf("unable to instantiate object factory: %s", o.factoryName))
	}
	log.Debug("configuration accepted", zap.String("key", KeyObjectFactory), zap.String("value", o.factoryName))

	pattern := values.Get(KeyDisplayURLPattern)
	o.displayTemplate, err = resolveDisplayTemplate(ctx, pattern, engineURL, o.objectStore)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeConfig, fmt.Sprintf("invalid %s", KeyDisplayURLPattern))
	}
	log.Debug("configuration accepted", zap.String("key", KeyDisplayURLPattern), zap.String("value", o.displayTemplate.String()))

	// Unrecognized values fall back to false
	o.markAllDocsAsPublic, _ = strconv.ParseBool(values.Get(KeyMarkAllDocsAsPublic))
	log.Debug("configuration accepted", zap.String("key", KeyMarkAllDocsAsPublic), zap.Bool("value", o.markAllDocsAsPublic))

	o.authenticatedUsersGroup = values.Get(KeyAuthenticatedUsersGroup)
	log.Debug("configuration accepted", zap.String("key", KeyAuthenticatedUsersGroup), zap.String("value", o.authenticatedUsersGroup))

	o.globalNamespace = values.Get(KeyGlobalNamespace)
	log.Debug("configuration accepted", zap.String("key", KeyGlobalNamespace), zap.String("value", o.globalNamespace))

	o.additionalWhereClause = values.Get(KeyAdditionalWhereClause)
	log.Debug("configuration accepted", zap.String("key", KeyAdditionalWhereClause), zap.String("value", o.additionalWhereClause))

	o.excludedMetadata = splitList(values.Get(KeyExcludedMetadata))
	log.Debug("configuration accepted", zap.String("key", KeyExcludedMetadata), zap.Strings("value", o.excludedMetadata))

	o.includedMetadata = splitList(values.Get(KeyIncludedMetadata))
	log.Debug("configuration accepted", zap.String("key", KeyIncludedMetadata), zap.Strings("value", o.includedMetadata))

	datePattern := values.Get(KeyMetadataDateFormat)
	o.dateFormat, err = datefmt.New(datePattern)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeConfig, fmt.Sprintf("invalid %s", KeyMetadataDateFormat))
	}
	log.Debug("configuration accepted", zap.String("key", KeyMetadataDateFormat), zap.String("value", datePattern))

	rawMax := values.Get(KeyMaxFeedURLs)
	o.maxFeedURLs, err = strconv.Atoi(rawMax)
	if err != nil {
		return nil, errors.New(errors.ErrorTypeConfig, fmt.Sprintf("invalid %s value: %s", KeyMaxFeedURLs, rawMax))
	}
	if o.maxFeedURLs < 3 {
		return nil, errors.New(errors.ErrorTypeConfig,
			fmt.Sprintf("%s must be greater than 2: %d", KeyMaxFeedURLs, o.maxFeedURLs))
	}
	log.Debug("configuration accepted", zap.String("key", KeyMaxFeedURLs), zap.Int("value", o.maxFeedURLs))

	return o, nil
}

// resolveDisplayTemplate turns a possibly-relative template into an
// absolute one. A probe URL is materialized with the zero identifier in
// both id slots; if it parses relative, the engine URL's scheme and
// authority are prepended to the template, inserting a path separator
// only when the template lacks a leading one. The re-materialized probe
// URL must then validate as absolute, and its host is probed the same
// non-fatal way as the engine host.
func resolveDisplayTemplate(ctx context.Context, pattern string, engineURL *uri.Validated, objectStore string) (uri.Template, error) {
	tmpl, err := uri.ParseTemplate(pattern)
	if err != nil {
		return uri.Template{}, err
	}

	probe, err := url.Parse(tmpl.Expand(id.Zero.String(), id.Zero.String(), objectStore))
	if err != nil {
		return uri.Template{}, errors.Wrap(err, errors.ErrorTypeValidation,
			"template does not materialize to a parseable url")
	}

	if !probe.IsAbs() {
		sep := ""
		if !strings.HasPrefix(pattern, "/") {
			sep = "/"
		}
		tmpl, err = uri.ParseTemplate(engineURL.Scheme() + "://" + engineURL.Authority() + sep + pattern)
		if err != nil {
			return uri.Template{}, err
		}
	}

	resolved, err := uri.Validate(tmpl.Expand(id.Zero.String(), id.Zero.String(), objectStore))
	if err != nil {
		return uri.Template{}, err
	}
	resolved.LogUnreachableHost(ctx)

	return tmpl, nil
}

// splitList parses a comma-separated list: entries are trimmed, empty
// entries dropped, duplicates collapsed, order not significant.
func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	seen := make(map[string]struct{}, len(parts))
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if _, dup := seen[part]; dup {
			continue
		}
		seen[part] = struct{}{}
		out = append(out, part)
	}
	sort.Strings(out)
	return out
}

// ContentEngineURL returns the validated engine endpoint URL.
func (o *Options) ContentEngineURL() string {
	return o.contentEngineURL
}

// ObjectStoreName returns the configured object store name.
func (o *Options) ObjectStoreName() string {
	return o.objectStore
}

// Username returns the engine account name.
func (o *Options) Username() string {
	return o.username
}

// Password returns the engine password in its encoded form.
func (o *Options) Password() string {
	return o.password
}

// ObjectFactory returns the factory instance built at load time. The
// same instance is reused for the process lifetime.
func (o *Options) ObjectFactory() core.ObjectFactory {
	return o.factory
}

// GetConnection decodes the stored password through the decoder
// collaborator and asks the factory for a connection. Decoding happens
// once per call; the plaintext is never retained. Factory failures
// propagate as-is rather than as config errors.
func (o *Options) GetConnection(ctx context.Context) (core.Connection, error) {
	password, err := o.decoder.DecodeValue(o.password)
	if err != nil {
		metrics.ConnectionsOpened.WithLabelValues(o.factoryName, "failure").Inc()
		return nil, errors.Wrap(err, errors.ErrorTypeValidation, "failed to decode engine password")
	}

	conn, err := o.factory.GetConnection(ctx, o.contentEngineURL, o.username, password)
	if err != nil {
		metrics.ConnectionsOpened.WithLabelValues(o.factoryName, "failure").Inc()
		return nil, err
	}
	metrics.ConnectionsOpened.WithLabelValues(o.factoryName, "success").Inc()
	return conn, nil
}

// GetObjectStore opens a handle to the configured store over conn.
func (o *Options) GetObjectStore(ctx context.Context, conn core.Connection) (core.ObjectStore, error) {
	return o.factory.GetObjectStore(ctx, conn, o.objectStore)
}

// DisplayURL fills the resolved template with the document and
// version-series identifiers, percent-escaping each value. Resolution
// validated the template with identically escaped probe values, so the
// expansion always parses.
func (o *Options) DisplayURL(docID, vsID string) *url.URL {
	u, _ := url.Parse(o.displayTemplate.Expand(docID, vsID, o.objectStore))
	return u
}

// DisplayURLTemplate returns the resolved absolute template.
func (o *Options) DisplayURLTemplate() string {
	return o.displayTemplate.String()
}

// MarkAllDocsAsPublic reports whether every fed document is marked
// world readable.
func (o *Options) MarkAllDocsAsPublic() bool {
	return o.markAllDocsAsPublic
}

// AdditionalWhereClause returns the extra traversal query predicate.
func (o *Options) AdditionalWhereClause() string {
	return o.additionalWhereClause
}

// ExcludedMetadata returns the metadata fields to drop, sorted.
func (o *Options) ExcludedMetadata() []string {
	return append([]string(nil), o.excludedMetadata...)
}

// IncludedMetadata returns the metadata fields to keep, sorted.
func (o *Options) IncludedMetadata() []string {
	return append([]string(nil), o.includedMetadata...)
}

// MetadataDateFormat returns the date format for metadata values. The
// returned Format is stateless and safe for concurrent use.
func (o *Options) MetadataDateFormat() datefmt.Format {
	return o.dateFormat
}

// AuthenticatedUsersGroup returns the group granted read access.
func (o *Options) AuthenticatedUsersGroup() string {
	return o.authenticatedUsersGroup
}

// GlobalNamespace returns the namespace for principal names.
func (o *Options) GlobalNamespace() string {
	return o.globalNamespace
}

// MaxFeedURLs returns the per-batch document cap.
func (o *Options) MaxFeedURLs() int {
	return o.maxFeedURLs
}

// Snapshot is a serializable view of the resolved configuration. The
// password is redacted.
type Snapshot struct {
	ContentEngineURL        string   `json:"engine_url" yaml:"engine_url"`
	ObjectStore             string   `json:"object_store" yaml:"object_store"`
	Username                string   `json:"username" yaml:"username"`
	ObjectFactory           string   `json:"object_factory" yaml:"object_factory"`
	DisplayURLTemplate      string   `json:"display_url_template" yaml:"display_url_template"`
	MarkAllDocsAsPublic     bool     `json:"mark_all_docs_as_public" yaml:"mark_all_docs_as_public"`
	AdditionalWhereClause   string   `json:"additional_where_clause,omitempty" yaml:"additional_where_clause,omitempty"`
	ExcludedMetadata        []string `json:"excluded_metadata,omitempty" yaml:"excluded_metadata,omitempty"`
	IncludedMetadata        []string `json:"included_metadata,omitempty" yaml:"included_metadata,omitempty"`
	MetadataDateFormat      string   `json:"metadata_date_format" yaml:"metadata_date_format"`
	AuthenticatedUsersGroup string   `json:"authenticated_users_group,omitempty" yaml:"authenticated_users_group,omitempty"`
	GlobalNamespace         string   `json:"global_namespace" yaml:"global_namespace"`
	MaxFeedURLs             int      `json:"max_feed_urls" yaml:"max_feed_urls"`
}

// Snapshot returns a redacted view of o for diagnostics and tooling.
func (o *Options) Snapshot() Snapshot {
	return Snapshot{
		ContentEngineURL:        o.contentEngineURL,
		ObjectStore:             o.objectStore,
		Username:                o.username,
		ObjectFactory:           o.factoryName,
		DisplayURLTemplate:      o.displayTemplate.String(),
		MarkAllDocsAsPublic:     o.markAllDocsAsPublic,
		AdditionalWhereClause:   o.additionalWhereClause,
		ExcludedMetadata:        o.ExcludedMetadata(),
		IncludedMetadata:        o.IncludedMetadata(),
		MetadataDateFormat:      o.dateFormat.Pattern(),
		AuthenticatedUsersGroup: o.authenticatedUsersGroup,
		GlobalNamespace:         o.globalNamespace,
		MaxFeedURLs:             o.maxFeedURLs,
	}
}
