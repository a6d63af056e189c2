// Package classnames merges heterogeneous class-name inputs into a single
// canonical class attribute value.
//
// An input is one of three shapes:
//   - Class: a single class or a whitespace-separated list ("btn btn-primary")
//   - List: an ordered, arbitrarily nested sequence of inputs
//   - Flags: a map from class name to an inclusion flag
//
// Merge flattens its inputs depth-first, records a flag for every class it
// meets (later flags overwrite earlier ones, whatever their shape) and
// returns the classes whose final flag is true, sorted and space-joined:
//
//	classnames.Merge(
//		classnames.Class("btn btn-primary"),
//		classnames.Flags{"btn-primary": false, "active": true},
//	)
//	// Output: "active btn"
//
// Nil entries are skipped. From converts loosely typed values (string,
// []string, []any, map[string]bool) for callers that do not build the
// variants directly.
package classnames
