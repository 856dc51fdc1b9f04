package mod

import (
	"path/filepath"
	"regexp"
	"strings"
)

var (
	loaderNamePattern = regexp.MustCompile(`(?i)(?:^|[-_.+ ])(fabric|forge|neoforge|quilt)(?:$|[-_.+ ])`)

	// versions adjacent to a marker word ("mymod-mc1.19.2.jar",
	// "shaders for 1.20.jar") are trusted over bare numbers
	markedVersionPattern = regexp.MustCompile(`(?:mc|minecraft|for)[-_ ]?([0-9]+\.[0-9]+(?:\.[0-9]+)?)`)
	bareVersionPattern   = regexp.MustCompile(`([0-9]+\.[0-9]+(?:\.[0-9]+)?)`)
)

// DetectLoader extracts a loader keyword from a filename, bounded by
// separator characters so that e.g. "reforged" never reads as "forge".
func DetectLoader(name string) string {
	if m := loaderNamePattern.FindStringSubmatch(name); m != nil {
		return strings.ToLower(m[1])
	}
	return ""
}

// DetectGameVersions extracts candidate game versions from a filename.
// Marker-adjacent tokens win; otherwise a bare dotted-number token is
// accepted only when it is the unique such token in the base name, since a
// filename like "mod-2.3.1-1.19.2.jar" is ambiguous.
func DetectGameVersions(name string) []string {
	lowered := strings.ToLower(name)

	var marked []string
	for _, m := range markedVersionPattern.FindAllStringSubmatch(lowered, -1) {
		marked = append(marked, m[1])
	}
	if len(marked) > 0 {
		return dedupe(marked)
	}

	base := strings.TrimSuffix(name, filepath.Ext(name))
	var bare []string
	for _, m := range bareVersionPattern.FindAllStringSubmatch(base, -1) {
		bare = append(bare, m[1])
	}
	if len(bare) == 1 {
		return bare
	}
	return nil
}

func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	var out []string
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
