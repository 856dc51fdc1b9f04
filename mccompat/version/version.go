package version

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	segmentPattern      = regexp.MustCompile(`[.\-_+]`)
	leadingDigitPattern = regexp.MustCompile(`^\d+`)
)

// Version is a Minecraft game version reduced to a comparable
// (major, minor, patch) triple. Parsing is total: any text yields a
// version, with non-numeric segment suffixes dropped rather than rejected
// (e.g. "1.20.1-rc1" parses the same as "1.20.1").
type Version struct {
	Raw   string
	Major int
	Minor int
	Patch int
}

func NewVersion(raw string) *Version {
	trimmed := strings.TrimSpace(raw)

	normalized := trimmed
	if len(normalized) > 0 && (normalized[0] == 'v' || normalized[0] == 'V') {
		normalized = normalized[1:]
	}

	var triple [3]int
	for i, segment := range segmentPattern.Split(normalized, -1) {
		if i >= len(triple) {
			break
		}
		if digits := leadingDigitPattern.FindString(segment); digits != "" {
			// the digit run is bounded, but guard against absurd input anyway
			if value, err := strconv.Atoi(digits); err == nil {
				triple[i] = value
			}
		}
	}

	return &Version{
		Raw:   trimmed,
		Major: triple[0],
		Minor: triple[1],
		Patch: triple[2],
	}
}

// Compare returns -1, 0, or 1 if this version is smaller, equal, or larger
// than the other version. Comparison is lexicographic on the triple and is
// total: every pair of versions is comparable.
func (v *Version) Compare(other *Version) int {
	pairs := [][2]int{
		{v.Major, other.Major},
		{v.Minor, other.Minor},
		{v.Patch, other.Patch},
	}
	for _, pair := range pairs {
		if pair[0] < pair[1] {
			return -1
		}
		if pair[0] > pair[1] {
			return 1
		}
	}
	return 0
}

func (v *Version) Equal(other *Version) bool {
	return v.Compare(other) == 0
}

// MajorMinor returns the "1.20"-style prefix used by relaxed matching.
func (v *Version) MajorMinor() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

func (v *Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}
