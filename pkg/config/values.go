package config

import (
	"sort"
	"strings"
)

// Configuration keys understood by DocBridge.
const (
	// KeyContentEngineURL is the content engine endpoint URL.
	KeyContentEngineURL = "engine.url"
	// KeyObjectStore is the object store to index.
	KeyObjectStore = "engine.objectStore"
	// KeyUsername is the engine account used for traversal.
	KeyUsername = "engine.username"
	// KeyPassword is the engine password in its encoded form.
	KeyPassword = "engine.password"
	// KeyObjectFactory selects the registered object factory.
	KeyObjectFactory = "engine.objectFactory"
	// KeyDisplayURLPattern is the per-document display URL template.
	KeyDisplayURLPattern = "engine.displayUrlPattern"
	// KeyAdditionalWhereClause is appended to the traversal query.
	KeyAdditionalWhereClause = "engine.additionalWhereClause"
	// KeyExcludedMetadata lists metadata fields to drop, comma separated.
	KeyExcludedMetadata = "engine.excludedMetadata"
	// KeyIncludedMetadata lists metadata fields to keep, comma separated.
	KeyIncludedMetadata = "engine.includedMetadata"
	// KeyMetadataDateFormat is the pattern used to render date metadata.
	KeyMetadataDateFormat = "engine.metadataDateFormat"
	// KeyAuthenticatedUsersGroup names the group granted read access.
	KeyAuthenticatedUsersGroup = "engine.authenticatedUsersGroup"
	// KeyMarkAllDocsAsPublic marks every fed document world readable.
	KeyMarkAllDocsAsPublic = "bridge.markAllDocsAsPublic"
	// KeyGlobalNamespace is the namespace for principal names.
	KeyGlobalNamespace = "bridge.namespace"
	// KeyMaxFeedURLs caps the number of documents per feed batch.
	KeyMaxFeedURLs = "feed.maxUrls"
)

// Built-in defaults. The display URL template is relative and gets
// resolved against the engine URL at load time.
const (
	DefaultDisplayURLPattern  = "/viewer/getContent?objectStoreName={2}&objectType=document&versionStatus=1&vsId={1}"
	DefaultMetadataDateFormat = "yyyy-MM-dd"
	DefaultGlobalNamespace    = "Default"
	DefaultMaxFeedURLs        = "5000"
)

// Values is the raw key/value configuration consumed by NewOptions.
// It is read-only to this package; loaders produce a fresh map.
type Values map[string]string

// Get returns the value for key with surrounding whitespace trimmed.
func (v Values) Get(key string) string {
	return strings.TrimSpace(v[key])
}

// Clone returns a copy of v.
func (v Values) Clone() Values {
	out := make(Values, len(v))
	for key, value := range v {
		out[key] = value
	}
	return out
}

// Defaults returns a Values map holding every declared key with its
// built-in default. Keys without a listed default are required and
// start empty.
func Defaults() Values {
	return Values{
		KeyContentEngineURL:        "",
		KeyObjectStore:             "",
		KeyUsername:                "",
		KeyPassword:                "",
		KeyObjectFactory:           "",
		KeyDisplayURLPattern:       DefaultDisplayURLPattern,
		KeyAdditionalWhereClause:   "",
		KeyExcludedMetadata:        "",
		KeyIncludedMetadata:        "",
		KeyMetadataDateFormat:      DefaultMetadataDateFormat,
		KeyAuthenticatedUsersGroup: "",
		KeyMarkAllDocsAsPublic:     "false",
		KeyGlobalNamespace:         DefaultGlobalNamespace,
		KeyMaxFeedURLs:             DefaultMaxFeedURLs,
	}
}

// DeclaredKeys returns every configuration key in sorted order.
func DeclaredKeys() []string {
	defaults := Defaults()
	keys := make([]string, 0, len(defaults))
	for key := range defaults {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
