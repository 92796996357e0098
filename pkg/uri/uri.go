// Package uri provides URI validation, display-URL templating, and
// best-effort host reachability probes for DocBridge configuration.
package uri

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/docbridge/docbridge/pkg/errors"
)

// Validated wraps a URL string that passed syntactic validation: it
// parses, is absolute, names a host, and contains no raw whitespace or
// control characters.
type Validated struct {
	raw string
	url *url.URL
}

// Validate checks raw and returns a Validated wrapper for it.
func Validate(raw string) (*Validated, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, errors.New(errors.ErrorTypeValidation, "url may not be null or empty")
	}

	for _, r := range raw {
		if r <= ' ' || r == 0x7f {
			return nil, errors.New(errors.ErrorTypeValidation,
				fmt.Sprintf("invalid character %q in url %q", r, raw))
		}
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeValidation, fmt.Sprintf("invalid url %q", raw))
	}
	if !u.IsAbs() {
		return nil, errors.New(errors.ErrorTypeValidation, fmt.Sprintf("url is not absolute: %q", raw))
	}
	if u.Host == "" {
		return nil, errors.New(errors.ErrorTypeValidation, fmt.Sprintf("no host in url %q", raw))
	}

	return &Validated{raw: raw, url: u}, nil
}

// String returns the original URL string.
func (v *Validated) String() string {
	return v.raw
}

// URL returns a copy of the parsed URL.
func (v *Validated) URL() *url.URL {
	u := *v.url
	return &u
}

// Authority returns the raw authority component (userinfo@host:port).
func (v *Validated) Authority() string {
	if v.url.User != nil {
		return v.url.User.String() + "@" + v.url.Host
	}
	return v.url.Host
}

// Scheme returns the URL scheme.
func (v *Validated) Scheme() string {
	return v.url.Scheme
}

// PercentEscape escapes s for safe inclusion in a URL path or query
// component. Space becomes %20 rather than '+'.
func PercentEscape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
