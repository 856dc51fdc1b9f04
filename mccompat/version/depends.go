package version

import (
	"strings"
)

// ListMode says how a multi-entry dependency list combines its entries.
type ListMode int

const (
	// ListAny treats entries as discrete versions: any entry may match.
	ListAny ListMode = iota
	// ListAll treats entries as a split range: every entry must match.
	ListAll
)

// rangeSyntaxChars are the characters whose presence marks an entry as
// range syntax rather than a discrete version.
const rangeSyntaxChars = "><=~^ "

// ClassifyDependencyList decides whether a list of raw constraint strings
// declared for the same target is a conjunction or a disjunction: if ANY
// entry carries comparator/range/wildcard syntax the whole list is a split
// range (AND), otherwise it is a list of discrete versions (OR).
//
// Descriptor files in the wild are authored against exactly this
// convention; do not "improve" it.
func ClassifyDependencyList(entries []string) ListMode {
	for _, entry := range entries {
		if entry == "*" || strings.ContainsAny(entry, rangeSyntaxChars) {
			return ListAll
		}
	}
	return ListAny
}

// EvaluateDependencyList applies the list-mode classification and evaluates
// the entries against the target. In relaxed mode a discrete entry also
// matches when only the patch component differs. Indeterminate entries in a
// conjunction make the whole list indeterminate; an empty list is
// indeterminate.
func EvaluateDependencyList(entries []string, target *Version, relaxed bool) (bool, error) {
	if len(entries) == 0 {
		return false, ErrIndeterminate
	}

	if ClassifyDependencyList(entries) == ListAll {
		for _, entry := range entries {
			satisfied, err := evaluate(entry, target)
			if err != nil {
				return false, err
			}
			if !satisfied {
				return false, nil
			}
		}
		return true, nil
	}

	for _, entry := range entries {
		satisfied, err := evaluate(entry, target)
		if err == nil && satisfied {
			return true, nil
		}
		if relaxed && CompatibleWith(target, []string{entry}, true) {
			return true, nil
		}
	}
	return false, nil
}

// CompatibleWith reports whether the target appears in a list of supported
// version strings. Relaxed mode also accepts an entry on the same
// major.minor series (e.g. target 1.20.4 against entries "1.20" or
// "1.20.1").
func CompatibleWith(target *Version, supported []string, relaxed bool) bool {
	for _, s := range supported {
		if s == target.Raw {
			return true
		}
	}
	if relaxed {
		for _, s := range supported {
			v := NewVersion(s)
			if v.Major == target.Major && v.Minor == target.Minor {
				return true
			}
		}
	}
	return false
}
