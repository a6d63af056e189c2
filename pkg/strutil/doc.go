// Package strutil provides small string helpers used for option search.
//
// RemoveAccents folds decomposable diacritics away so that "Café" and
// "Cafe" compare equal, EscapeRegExp makes arbitrary user input safe to
// embed in a regular expression, and Matcher combines both into a
// case-insensitive, accent-insensitive substring test:
//
//	m := strutil.NewMatcher("cafe")
//	m.Match("Café au lait") // true
package strutil
