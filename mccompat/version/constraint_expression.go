package version

import (
	"strings"
)

// constraintExpression evaluates the mod-ecosystem constraint grammar.
// Alternatives are split on "||"; each alternative is decided in a fixed
// order: comparator prefix, bracket interval, space-joined conjunction,
// ".x" wildcard, "^"/"~" shorthand, then the bare-token fallback.
//
// The interval check deliberately runs before the conjunction check so that
// "[1.16.5, 1.17)" (interior space) parses as an interval rather than being
// shredded into tokens.
type constraintExpression struct {
	raw string
}

func newConstraintExpression(raw string) constraintExpression {
	return constraintExpression{raw: strings.TrimSpace(raw)}
}

func (c constraintExpression) String() string {
	return c.raw
}

func (c constraintExpression) Satisfied(version *Version) (bool, error) {
	if version == nil {
		return false, ErrIndeterminate
	}
	return evaluate(c.raw, version)
}

func evaluate(phrase string, version *Version) (bool, error) {
	expr := strings.TrimSpace(phrase)
	if expr == "" {
		return false, ErrIndeterminate
	}

	if expr == "*" {
		return true, nil
	}

	// union: indeterminate alternatives are ignored unless every
	// alternative is indeterminate
	if strings.Contains(expr, "||") {
		anyKnown := false
		for _, alternative := range strings.Split(expr, "||") {
			alternative = strings.TrimSpace(alternative)
			if alternative == "" {
				continue
			}
			satisfied, err := evaluate(alternative, version)
			if err != nil {
				continue
			}
			anyKnown = true
			if satisfied {
				return true, nil
			}
		}
		if !anyKnown {
			return false, ErrIndeterminate
		}
		return false, nil
	}

	if match := comparatorPattern.FindStringSubmatch(expr); match != nil {
		// a comparator only claims a single operand; ">=1.19 <1.21" is a
		// conjunction of comparators, handled below
		if operand := strings.TrimSpace(match[2]); !strings.ContainsAny(operand, " \t") {
			return evaluateComparator(match[1], operand, version)
		}
	}

	if strings.HasPrefix(expr, "[") || strings.HasPrefix(expr, "(") {
		return evaluateInterval(expr, version)
	}

	// conjunction: every token must hold, and an indeterminate token makes
	// the whole conjunction indeterminate
	if strings.ContainsAny(expr, " \t") {
		for _, token := range strings.Fields(expr) {
			satisfied, err := evaluate(token, version)
			if err != nil {
				return false, err
			}
			if !satisfied {
				return false, nil
			}
		}
		return true, nil
	}

	if strings.HasSuffix(expr, ".x") {
		return matchesWildcard(version, expr), nil
	}

	if strings.HasPrefix(expr, "^") || strings.HasPrefix(expr, "~") {
		base := strings.TrimSpace(expr[1:])
		if base == "" {
			return false, ErrIndeterminate
		}
		return version.Compare(NewVersion(base)) >= 0, nil
	}

	return matchesExactOrPrefix(version, expr), nil
}
