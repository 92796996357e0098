// Package id provides content-engine object identifiers.
//
// Identifiers are GUIDs in the braced uppercase form
// {XXXXXXXX-XXXX-XXXX-XXXX-XXXXXXXXXXXX}. The zero value of ID is the
// reserved all-zero identifier used as a placeholder when materializing
// probe URLs from display-URL templates.
package id

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/docbridge/docbridge/pkg/errors"
)

const zeroString = "{00000000-0000-0000-0000-000000000000}"

var guidPattern = regexp.MustCompile(`^\{[0-9A-F]{8}-[0-9A-F]{4}-[0-9A-F]{4}-[0-9A-F]{4}-[0-9A-F]{12}\}$`)

// ID identifies a document or version series in the content engine.
// The zero value is the reserved placeholder identifier.
type ID struct {
	value string
}

// Zero is the reserved all-zero identifier.
var Zero ID

// Parse normalizes s into an ID. Braces are optional and hex digits may
// be given in either case. The all-zero GUID parses to Zero.
func Parse(s string) (ID, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	if normalized != "" && !strings.HasPrefix(normalized, "{") {
		normalized = "{" + normalized + "}"
	}
	if !guidPattern.MatchString(normalized) {
		return ID{}, errors.New(errors.ErrorTypeValidation, fmt.Sprintf("malformed object id: %q", s))
	}
	if normalized == zeroString {
		return ID{}, nil
	}
	return ID{value: normalized}, nil
}

// MustParse is like Parse but panics on malformed input. Intended for
// literals in tests and fixtures.
func MustParse(s string) ID {
	parsed, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return parsed
}

// String returns the braced uppercase GUID form.
func (id ID) String() string {
	if id.value == "" {
		return zeroString
	}
	return id.value
}

// IsZero reports whether id is the reserved placeholder identifier.
func (id ID) IsZero() bool {
	return id.value == ""
}
