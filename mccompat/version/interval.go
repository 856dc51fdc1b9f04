package version

import (
	"strings"
)

// evaluateInterval handles maven-style bracket intervals: "[1.20,1.21)" and
// friends. Each side is independently inclusive or exclusive, a missing
// bound is unbounded, and a single value with no comma denotes exact
// equality. Anything structurally off is indeterminate.
func evaluateInterval(expr string, version *Version) (bool, error) {
	s := strings.TrimSpace(expr)
	if len(s) < 3 {
		return false, ErrIndeterminate
	}

	if s[0] != '[' && s[0] != '(' {
		return false, ErrIndeterminate
	}
	last := s[len(s)-1]
	if last != ']' && last != ')' {
		return false, ErrIndeterminate
	}

	lowerInclusive := s[0] == '['
	upperInclusive := last == ']'

	inner := strings.TrimSpace(s[1 : len(s)-1])
	if inner == "" {
		return false, ErrIndeterminate
	}

	if !strings.Contains(inner, ",") {
		return version.Equal(NewVersion(inner)), nil
	}

	bounds := strings.SplitN(inner, ",", 2)
	lower := strings.TrimSpace(bounds[0])
	upper := strings.TrimSpace(bounds[1])

	if lower != "" {
		comparison := version.Compare(NewVersion(lower))
		if lowerInclusive {
			if comparison < 0 {
				return false, nil
			}
		} else if comparison <= 0 {
			return false, nil
		}
	}

	if upper != "" {
		comparison := version.Compare(NewVersion(upper))
		if upperInclusive {
			if comparison > 0 {
				return false, nil
			}
		} else if comparison >= 0 {
			return false, nil
		}
	}

	return true, nil
}
