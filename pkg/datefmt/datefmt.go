// Package datefmt translates date patterns written in the
// java.text.SimpleDateFormat style used by enterprise content engines
// into Go reference layouts.
//
// Patterns are validated eagerly: New rejects unsupported or unknown
// pattern letters at configuration-load time rather than at first use.
// The resulting Format value is immutable and safe for unsynchronized
// concurrent use.
//
// Supported pattern letters:
//
//	yyyy, yy, y   year
//	MMMM, MMM     month name (January, Jan)
//	MM, M         month number
//	dd, d         day of month
//	HH, H         hour 0-23
//	hh, h         hour 1-12
//	mm, m         minute
//	ss, s         second
//	.S .. .SSSSSS fractional seconds (only directly after a dot)
//	EEEE, EEE..E  day of week (Monday, Mon)
//	a             AM/PM marker
//	z             abbreviated zone name
//	Z             RFC 822 zone offset
//	X, XX, XXX    ISO 8601 zone offset
//
// Text may be quoted with single quotes as in SimpleDateFormat, with ''
// denoting a literal quote. Literal ASCII digits cannot be represented
// in a Go layout and are rejected.
package datefmt

import (
	"fmt"
	"strings"
	"time"

	"github.com/docbridge/docbridge/pkg/errors"
)

// Format is a validated, immutable date format.
type Format struct {
	pattern string
	layout  string
}

// New validates pattern and returns a Format for it.
func New(pattern string) (Format, error) {
	layout, err := Translate(pattern)
	if err != nil {
		return Format{}, err
	}
	return Format{pattern: pattern, layout: layout}, nil
}

// Pattern returns the original SimpleDateFormat-style pattern.
func (f Format) Pattern() string {
	return f.pattern
}

// Layout returns the Go reference layout the pattern translates to.
func (f Format) Layout() string {
	return f.layout
}

// Format renders t according to the pattern.
func (f Format) Format(t time.Time) string {
	return t.Format(f.layout)
}

// Parse parses s according to the pattern. Fields absent from the
// pattern default as in time.Parse.
func (f Format) Parse(s string) (time.Time, error) {
	t, err := time.Parse(f.layout, s)
	if err != nil {
		return time.Time{}, errors.Wrap(err, errors.ErrorTypeValidation,
			fmt.Sprintf("value does not match date format %q", f.pattern))
	}
	return t, nil
}

// Translate converts a SimpleDateFormat-style pattern into a Go
// reference layout. Unknown pattern letters, unterminated quotes, and
// literals that a Go layout cannot express are reported as validation
// errors naming the offending construct.
func Translate(pattern string) (string, error) {
	var out strings.Builder
	runes := []rune(pattern)

	for i := 0; i < len(runes); {
		r := runes[i]

		switch {
		case r == '\'':
			consumed, literal, err := readQuoted(runes[i:])
			if err != nil {
				return "", err
			}
			if strings.ContainsAny(literal, "0123456789") {
				return "", errors.New(errors.ErrorTypeValidation,
					fmt.Sprintf("date pattern %q: quoted digits cannot be represented", pattern))
			}
			out.WriteString(literal)
			i += consumed

		case isPatternLetter(r):
			n := runLength(runes[i:], r)
			frag, err := translateRun(r, n, lastByte(out.String()))
			if err != nil {
				return "", errors.New(errors.ErrorTypeValidation,
					fmt.Sprintf("date pattern %q: %v", pattern, err))
			}
			out.WriteString(frag)
			i += n

		case r >= '0' && r <= '9':
			return "", errors.New(errors.ErrorTypeValidation,
				fmt.Sprintf("date pattern %q: literal digits cannot be represented", pattern))

		default:
			out.WriteRune(r)
			i++
		}
	}

	return out.String(), nil
}

func isPatternLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func runLength(runes []rune, r rune) int {
	n := 0
	for n < len(runes) && runes[n] == r {
		n++
	}
	return n
}

func lastByte(s string) byte {
	if s == "" {
		return 0
	}
	return s[len(s)-1]
}

// readQuoted consumes a quoted section starting at a quote rune and
// returns the number of runes consumed and the literal text. A doubled
// quote inside the section, or the two-rune sequence '' outside one,
// yields a literal quote.
func readQuoted(runes []rune) (int, string, error) {
	// runes[0] is the opening quote
	if len(runes) >= 2 && runes[1] == '\'' {
		return 2, "'", nil
	}

	var literal strings.Builder
	i := 1
	for i < len(runes) {
		if runes[i] == '\'' {
			if i+1 < len(runes) && runes[i+1] == '\'' {
				literal.WriteRune('\'')
				i += 2
				continue
			}
			return i + 1, literal.String(), nil
		}
		literal.WriteRune(runes[i])
		i++
	}
	return 0, "", errors.New(errors.ErrorTypeValidation, "unterminated quote in date pattern")
}

func translateRun(letter rune, count int, prev byte) (string, error) {
	switch letter {
	case 'y':
		if count == 2 {
			return "06", nil
		}
		return "2006", nil
	case 'M':
		switch {
		case count >= 4:
			return "January", nil
		case count == 3:
			return "Jan", nil
		case count == 2:
			return "01", nil
		default:
			return "1", nil
		}
	case 'd':
		if count >= 2 {
			return "02", nil
		}
		return "2", nil
	case 'H':
		return "15", nil
	case 'h':
		if count >= 2 {
			return "03", nil
		}
		return "3", nil
	case 'm':
		if count >= 2 {
			return "04", nil
		}
		return "4", nil
	case 's':
		if count >= 2 {
			return "05", nil
		}
		return "5", nil
	case 'S':
		// Go expresses fractional seconds only after a decimal point.
		if prev != '.' {
			return "", fmt.Errorf("fractional seconds 'S' must follow '.'")
		}
		if count > 9 {
			return "", fmt.Errorf("fractional seconds wider than 9 digits")
		}
		return strings.Repeat("0", count), nil
	case 'E':
		if count >= 4 {
			return "Monday", nil
		}
		return "Mon", nil
	case 'a':
		return "PM", nil
	case 'z':
		return "MST", nil
	case 'Z':
		return "-0700", nil
	case 'X':
		switch count {
		case 1:
			return "Z07", nil
		case 2:
			return "Z0700", nil
		case 3:
			return "Z07:00", nil
		default:
			return "", fmt.Errorf("zone offset 'X' wider than 3")
		}
	default:
		return "", fmt.Errorf("unsupported pattern letter %q", string(letter))
	}
}
