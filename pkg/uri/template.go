package uri

import (
	"fmt"
	"strings"

	"github.com/docbridge/docbridge/pkg/errors"
)

// Template is a display-URL template with positional placeholders:
// {0} document id, {1} version-series id, {2} object-store name.
// Placeholder values are percent-escaped at expansion time, and the
// same expansion is used to materialize probe URLs during resolution,
// so a template validated once stays valid for every document.
type Template struct {
	text string
}

// ParseTemplate validates the placeholder syntax of text. Every '{'
// must open a placeholder {0}, {1}, or {2}; a lone '}' is a literal.
func ParseTemplate(text string) (Template, error) {
	for i := 0; i < len(text); i++ {
		if text[i] != '{' {
			continue
		}
		if i+2 >= len(text) || text[i+1] < '0' || text[i+1] > '2' || text[i+2] != '}' {
			return Template{}, errors.New(errors.ErrorTypeValidation,
				fmt.Sprintf("invalid placeholder at offset %d in template %q", i, text))
		}
		i += 2
	}
	return Template{text: text}, nil
}

// String returns the template text.
func (t Template) String() string {
	return t.text
}

// Expand fills the placeholders with percent-escaped values.
func (t Template) Expand(docID, vsID, objectStore string) string {
	r := strings.NewReplacer(
		"{0}", PercentEscape(docID),
		"{1}", PercentEscape(vsID),
		"{2}", PercentEscape(objectStore),
	)
	return r.Replace(t.text)
}
