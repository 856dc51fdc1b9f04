package mod

import (
	"regexp"
	"strings"
)

var (
	tomlMinecraftDepPattern = regexp.MustCompile(`(?i)modId\s*=\s*["']minecraft["']`)
	tomlVersionRangePattern = regexp.MustCompile(`(?i)versionRange\s*=\s*["']([^"']+)["']`)
	tomlDisplayNamePattern  = regexp.MustCompile(`displayName\s*=\s*"(.*?)"`)
	tomlVersionPattern      = regexp.MustCompile(`(?m)^\s*version\s*=\s*"(.*?)"`)
)

// dependencyScanWindow bounds how far below a dependency's modId line the
// versionRange key may appear before it is assumed to belong to an
// unrelated neighboring section.
const dependencyScanWindow = 30

// parseForgeDescriptor handles mods.toml and neoforge.mods.toml. These
// files are frequently not valid TOML in the wild, so they are scanned
// line-wise rather than parsed: find the minecraft dependency section and
// take the first versionRange within a bounded window of it.
func parseForgeDescriptor(kind DescriptorKind) func(text string) (*Descriptor, bool) {
	return func(text string) (*Descriptor, bool) {
		d := &Descriptor{Kind: kind}

		if m := tomlDisplayNamePattern.FindStringSubmatch(text); m != nil {
			d.Name = m[1]
		}
		if m := tomlVersionPattern.FindStringSubmatch(text); m != nil {
			d.Version = m[1]
		}

		if versionRange := extractMinecraftVersionRange(text); versionRange != "" {
			d.GameConstraints = []string{versionRange}
		}
		return d, true
	}
}

func extractMinecraftVersionRange(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if !tomlMinecraftDepPattern.MatchString(line) {
			continue
		}
		end := i + dependencyScanWindow
		if end > len(lines) {
			end = len(lines)
		}
		for _, candidate := range lines[i:end] {
			if m := tomlVersionRangePattern.FindStringSubmatch(candidate); m != nil {
				return strings.TrimSpace(m[1])
			}
		}
	}
	return ""
}
