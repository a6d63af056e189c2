package strutil

import (
	"regexp"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// combiningDiacritics covers the Combining Diacritical Marks block.
var combiningDiacritics = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x0300, Hi: 0x036f, Stride: 1}},
}

// RemoveAccents decomposes s (NFD) and drops combining diacritical marks
// in the U+0300..U+036F range. Other code points are kept in decomposed form.
func RemoveAccents(s string) string {
	if s == "" {
		return s
	}
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(combiningDiacritics)))
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// EscapeRegExp escapes every regular expression metacharacter
// (.*+?^$()|[]{}\) so s can be embedded literally in a pattern.
func EscapeRegExp(s string) string {
	return regexp.QuoteMeta(s)
}

// Matcher tests labels against a search query ignoring case and accents.
type Matcher struct {
	re *regexp.Regexp
}

// NewMatcher builds a Matcher for query. An empty query matches everything.
func NewMatcher(query string) *Matcher {
	if query == "" {
		return &Matcher{}
	}
	// The escaped pattern is always a valid expression.
	re := regexp.MustCompile("(?i)" + EscapeRegExp(RemoveAccents(query)))
	return &Matcher{re: re}
}

// Match reports whether s contains the query.
func (m *Matcher) Match(s string) bool {
	if m == nil || m.re == nil {
		return true
	}
	return m.re.MatchString(RemoveAccents(s))
}
