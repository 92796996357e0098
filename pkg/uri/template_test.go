package uri

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTemplate(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr bool
	}{
		{
			name: "all placeholders",
			text: "/getContent?objectStoreName={2}&vsId={1}&id={0}",
		},
		{
			name: "no placeholders",
			text: "/viewer/static",
		},
		{
			name: "empty",
			text: "",
		},
		{
			name: "lone closing brace is literal",
			text: "/a}b?vsId={1}",
		},
		{
			name:    "index out of range",
			text:    "/viewer?id={3}",
			wantErr: true,
		},
		{
			name:    "non numeric index",
			text:    "/viewer?id={x}",
			wantErr: true,
		},
		{
			name:    "unterminated placeholder",
			text:    "/viewer?id={0",
			wantErr: true,
		},
		{
			name:    "trailing open brace",
			text:    "/viewer?id={",
			wantErr: true,
		},
		{
			name:    "two digit index",
			text:    "/viewer?id={00}",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl, err := ParseTemplate(tt.text)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.text, tmpl.String())
		})
	}
}

func TestTemplateExpand(t *testing.T) {
	tmpl, err := ParseTemplate("http://ce.example.com/d?id={0}&vs={1}&os={2}")
	require.NoError(t, err)

	got := tmpl.Expand("a b", "c#d", "Store 1")
	assert.Equal(t, "http://ce.example.com/d?id=a%20b&vs=c%23d&os=Store%201", got)

	// Escaped values keep the expansion parseable
	u, err := url.Parse(got)
	require.NoError(t, err)
	assert.Equal(t, "a b", u.Query().Get("id"))
	assert.Equal(t, "c#d", u.Query().Get("vs"))
	assert.Equal(t, "Store 1", u.Query().Get("os"))
}

func TestTemplateExpandRepeatedPlaceholder(t *testing.T) {
	tmpl, err := ParseTemplate("/d/{0}/versions/{0}")
	require.NoError(t, err)

	assert.Equal(t, "/d/x%20y/versions/x%20y", tmpl.Expand("x y", "", ""))
}
