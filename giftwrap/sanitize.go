package giftwrap

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy = bluemonday.StrictPolicy()
	octets       = regexp.MustCompile(`%[a-fA-F0-9]{2}`)
)

// SanitizeText cleans a single-line text field from an untrusted request:
// tags are stripped, percent-encoded octets dropped and all whitespace runs
// (line breaks and tabs included) collapsed to one space.
func SanitizeText(s string) string {
	if !utf8.ValidString(s) {
		return ""
	}
	s = strictPolicy.Sanitize(s)
	for octets.MatchString(s) {
		s = octets.ReplaceAllString(s, "")
	}
	return strings.Join(strings.Fields(s), " ")
}
