package version

import (
	"errors"
	"fmt"
)

// ErrIndeterminate is returned when a constraint cannot decide containment
// for a version: empty or malformed expressions, or wildcard operands under
// an ordering operator. Callers must treat it as "produce no evidence",
// never as a negative result.
var ErrIndeterminate = errors.New("version constraint is indeterminate")

// Constraint is a predicate over game versions.
type Constraint interface {
	fmt.Stringer
	Satisfied(*Version) (bool, error)
}

// GetConstraint builds a constraint from a raw expression. Construction is
// total and never fails; malformed expressions surface as ErrIndeterminate
// at satisfaction time instead.
func GetConstraint(raw string) Constraint {
	return newConstraintExpression(raw)
}
