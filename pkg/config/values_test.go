package config

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValuesGetTrimsWhitespace(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{name: "plain", value: "ObjStore", want: "ObjStore"},
		{name: "leading and trailing spaces", value: "  ObjStore  ", want: "ObjStore"},
		{name: "tabs and newlines", value: "\tObjStore\n", want: "ObjStore"},
		{name: "whitespace only", value: "   ", want: ""},
		{name: "missing key", value: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := Values{}
			if tt.name != "missing key" {
				values[KeyObjectStore] = tt.value
			}
			assert.Equal(t, tt.want, values.Get(KeyObjectStore))
		})
	}
}

func TestValuesClone(t *testing.T) {
	original := Values{KeyObjectStore: "ObjStore", KeyUsername: "indexer"}
	clone := original.Clone()

	assert.Equal(t, original, clone)

	clone[KeyObjectStore] = "Other"
	assert.Equal(t, "ObjStore", original.Get(KeyObjectStore))
}

func TestDefaultsCoverEveryDeclaredKey(t *testing.T) {
	defaults := Defaults()
	assert.Len(t, defaults, 14)

	assert.Equal(t, DefaultDisplayURLPattern, defaults[KeyDisplayURLPattern])
	assert.Equal(t, DefaultMetadataDateFormat, defaults[KeyMetadataDateFormat])
	assert.Equal(t, DefaultGlobalNamespace, defaults[KeyGlobalNamespace])
	assert.Equal(t, DefaultMaxFeedURLs, defaults[KeyMaxFeedURLs])
	assert.Equal(t, "false", defaults[KeyMarkAllDocsAsPublic])

	// Required keys default to empty so validation can fail them.
	for _, key := range []string{KeyContentEngineURL, KeyObjectStore, KeyObjectFactory} {
		assert.Empty(t, defaults[key])
	}
}

func TestDeclaredKeysSorted(t *testing.T) {
	keys := DeclaredKeys()
	assert.Len(t, keys, 14)
	assert.True(t, sort.StringsAreSorted(keys))
	assert.Contains(t, keys, KeyContentEngineURL)
	assert.Contains(t, keys, KeyMaxFeedURLs)
}
