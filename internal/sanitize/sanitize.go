package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var policy = bluemonday.StrictPolicy()

// Strip removes any embedded markup from a user-supplied string and trims
// surrounding whitespace. The strict policy escapes entities in the text it
// keeps, so the result is unescaped back to plain text.
func Strip(s string) string {
	return strings.TrimSpace(html.UnescapeString(policy.Sanitize(s)))
}
