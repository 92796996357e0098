package uri

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docbridge/docbridge/pkg/errors"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr string
	}{
		{
			name: "plain http url",
			url:  "http://ce.example.com/wsi/FNCEWS40MTOM",
		},
		{
			name: "with userinfo port and query",
			url:  "https://user:pw@ce.example.com:8080/path?q=1",
		},
		{
			name:    "empty",
			url:     "",
			wantErr: "may not be null or empty",
		},
		{
			name:    "blank",
			url:     "   ",
			wantErr: "may not be null or empty",
		},
		{
			name:    "embedded space",
			url:     "http://ce.example.com/a b",
			wantErr: "invalid character",
		},
		{
			name:    "control character",
			url:     "http://ce.example.com/a\x01b",
			wantErr: "invalid character",
		},
		{
			name:    "relative",
			url:     "/wsi/FNCEWS40MTOM",
			wantErr: "not absolute",
		},
		{
			name:    "opaque without host",
			url:     "mailto:admin@example.com",
			wantErr: "no host",
		},
		{
			name:    "bad escape in host",
			url:     "http://%zz/",
			wantErr: "invalid url",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Validate(tt.url)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.True(t, errors.IsType(err, errors.ErrorTypeValidation))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.url, v.String())
			assert.NotEmpty(t, v.Scheme())
		})
	}
}

func TestAuthority(t *testing.T) {
	v, err := Validate("https://user:pw@ce.example.com:8080/path")
	require.NoError(t, err)
	assert.Equal(t, "user:pw@ce.example.com:8080", v.Authority())
	assert.Equal(t, "https", v.Scheme())

	v, err = Validate("http://ce.example.com:1234/path")
	require.NoError(t, err)
	assert.Equal(t, "ce.example.com:1234", v.Authority())
}

func TestURLReturnsCopy(t *testing.T) {
	v, err := Validate("http://ce.example.com/path")
	require.NoError(t, err)

	u := v.URL()
	u.Host = "tampered.example.com"

	assert.Equal(t, "ce.example.com", v.URL().Host)
}

func TestPercentEscape(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain", input: "abc", want: "abc"},
		{name: "space", input: "a b", want: "a%20b"},
		{name: "fragment delimiter", input: "a#b", want: "a%23b"},
		{name: "percent", input: "100%", want: "100%25"},
		{name: "slash", input: "a/b", want: "a%2Fb"},
		{name: "braced guid", input: "{AAAAAAAA-0000-0000-0000-000000000001}", want: "%7BAAAAAAAA-0000-0000-0000-000000000001%7D"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PercentEscape(tt.input))
		})
	}
}
