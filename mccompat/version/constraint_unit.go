package version

import (
	"regexp"
	"strings"
)

// operator group only matches range operators; the operand is everything
// after it, which may itself be a wildcard token
var comparatorPattern = regexp.MustCompile(`^(>=|<=|>|<|=)\s*(.+)$`)

func evaluateComparator(rawOperator, operand string, version *Version) (bool, error) {
	operator, err := ParseOperator(rawOperator)
	if err != nil {
		return false, ErrIndeterminate
	}

	operand = strings.TrimSpace(operand)
	if operand == "" {
		return false, ErrIndeterminate
	}

	if strings.HasSuffix(operand, ".x") {
		// an ordering over a wildcard has no defined answer
		if operator != EQ {
			return false, ErrIndeterminate
		}
		return matchesWildcard(version, operand), nil
	}

	return operator.satisfied(version.Compare(NewVersion(operand))), nil
}

// matchesWildcard implements the ".x" suffix rule: the candidate matches
// when its raw text equals the prefix or extends it by another segment.
func matchesWildcard(version *Version, pattern string) bool {
	prefix := strings.TrimSuffix(pattern, ".x")
	if prefix == "" {
		return false
	}
	return version.Raw == prefix || strings.HasPrefix(version.Raw, prefix+".")
}

// matchesExactOrPrefix is the bare-token fallback: exact raw match, exact
// triple match, or the token acting as a version prefix ("1.20" accepts
// "1.20.1").
func matchesExactOrPrefix(version *Version, token string) bool {
	if version.Raw == token {
		return true
	}
	if version.Equal(NewVersion(token)) {
		return true
	}
	return strings.HasPrefix(version.Raw, token+".")
}
