package classnames

import (
	"slices"
	"strings"
)

// ClassNames is a class-name input: Class, List or Flags.
type ClassNames interface {
	collect(flags map[string]bool)
}

// Class is a single class name or several names separated by whitespace.
type Class string

// List is an ordered sequence of inputs, merged depth-first.
type List []ClassNames

// Flags maps class names to inclusion flags.
type Flags map[string]bool

func (c Class) collect(flags map[string]bool) {
	for _, name := range strings.Fields(string(c)) {
		flags[name] = true
	}
}

func (l List) collect(flags map[string]bool) {
	for _, item := range l {
		if item == nil {
			continue
		}
		item.collect(flags)
	}
}

func (f Flags) collect(flags map[string]bool) {
	for name, on := range f {
		flags[name] = on
	}
}

// Resolve flattens items into the last recorded flag of every class,
// keeping false flags. Merging the result after other inputs gives the same
// outcome as merging items themselves.
func Resolve(items ...ClassNames) Flags {
	flags := make(Flags)
	List(items).collect(flags)
	return flags
}

// Merge returns the classes whose last recorded flag is true, sorted
// lexicographically and joined with single spaces.
func Merge(items ...ClassNames) string {
	flags := Resolve(items...)

	names := make([]string, 0, len(flags))
	for name, on := range flags {
		if on {
			names = append(names, name)
		}
	}
	slices.Sort(names)

	return strings.Join(names, " ")
}

// Strings builds a List of Class values.
func Strings(classes ...string) List {
	l := make(List, 0, len(classes))
	for _, c := range classes {
		l = append(l, Class(c))
	}
	return l
}

// If returns Flags including name only when cond is true.
// A false cond records an explicit false flag, removing name from
// anything merged before it.
func If(cond bool, name string) Flags {
	return Flags{name: cond}
}

// From converts v into ClassNames. Supported values are string, []string,
// map[string]bool, []any (converted element-wise), ClassNames and nil.
// Any other value yields nil and is skipped by Merge.
func From(v any) ClassNames {
	switch x := v.(type) {
	case nil:
		return nil
	case ClassNames:
		return x
	case string:
		return Class(x)
	case []string:
		return Strings(x...)
	case map[string]bool:
		return Flags(x)
	case []any:
		l := make(List, 0, len(x))
		for _, item := range x {
			l = append(l, From(item))
		}
		return l
	default:
		return nil
	}
}
