// Package curseforge turns CurseForge fingerprint matches into
// compatibility evidence. The catalog mixes game versions and loader
// names in one list and its fingerprint occasionally collides, so its
// evidence is weighted below a cryptographic hash match.
package curseforge

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/EricDasha/mc-mod-compat-check/mccompat/curseforge"
	"github.com/EricDasha/mc-mod-compat-check/mccompat/evidence"
	"github.com/EricDasha/mc-mod-compat-check/mccompat/mod"
	"github.com/EricDasha/mc-mod-compat-check/mccompat/target"
	"github.com/EricDasha/mc-mod-compat-check/mccompat/version"
)

const matchConfidence = 0.85

var gameVersionPattern = regexp.MustCompile(`^\d+\.\d+(\.\d+)?$`)

// FingerprintLookup resolves fingerprints to exact file matches.
type FingerprintLookup interface {
	MatchesByFingerprints(ctx context.Context, fingerprints []uint32) (map[uint32]curseforge.FileMatch, error)
}

type Checker struct {
	lookup FingerprintLookup
}

func NewChecker(lookup FingerprintLookup) *Checker {
	return &Checker{lookup: lookup}
}

func (c *Checker) Type() evidence.Source {
	return evidence.CurseForgeSource
}

func (c *Checker) Collect(ctx context.Context, t target.Target, mods []mod.Mod) (map[string][]evidence.Evidence, error) {
	byFingerprint := make(map[uint32]string)
	var fingerprints []uint32
	for _, m := range mods {
		if m.Digests.CurseForge == 0 {
			continue
		}
		if _, ok := byFingerprint[m.Digests.CurseForge]; !ok {
			fingerprints = append(fingerprints, m.Digests.CurseForge)
		}
		byFingerprint[m.Digests.CurseForge] = m.Path
	}
	if len(fingerprints) == 0 {
		return nil, nil
	}

	matches, err := c.lookup.MatchesByFingerprints(ctx, fingerprints)
	if err != nil {
		return nil, fmt.Errorf("curseforge lookup failed: %w", err)
	}

	targetVersion := version.NewVersion(t.GameVersion)
	results := make(map[string][]evidence.Evidence)
	for fingerprint, match := range matches {
		path, ok := byFingerprint[fingerprint]
		if !ok {
			continue
		}
		results[path] = []evidence.Evidence{buildEvidence(match, t, targetVersion)}
	}
	return results, nil
}

// classifyGameVersions splits the mixed gameVersions list into game
// version strings and loader names, dropping entries that are neither.
func classifyGameVersions(entries []string) (versions, loaders []string) {
	for _, entry := range entries {
		if gameVersionPattern.MatchString(entry) {
			versions = append(versions, entry)
			continue
		}
		if lowered := strings.ToLower(entry); evidence.KnownLoaders.Has(lowered) {
			loaders = append(loaders, lowered)
		}
	}
	return versions, loaders
}

func buildEvidence(match curseforge.FileMatch, t target.Target, targetVersion *version.Version) evidence.Evidence {
	name := match.DisplayName
	if name == "" {
		name = match.FileName
	}

	e := evidence.Evidence{
		Source:     evidence.CurseForgeSource,
		Confidence: matchConfidence,
		ModName:    name,
		ModVersion: match.FileName,
		URL:        fileURL(match),
	}

	versions, loaders := classifyGameVersions(match.GameVersions)
	mcOK := version.CompatibleWith(targetVersion, versions, t.Relaxed)

	loaderOK := true
	if t.Loader != "" && len(loaders) > 0 {
		loaderOK = false
		for _, l := range loaders {
			if evidence.LoaderCompatible(t.Loader, l) {
				loaderOK = true
				break
			}
		}
	}

	switch {
	case mcOK && loaderOK:
		e.Level = evidence.Confirmed
		e.Reason = "match"
	case !mcOK:
		e.Level = evidence.Unsupported
		e.VersionMismatch = true
		e.Reason = fmt.Sprintf("support: %v", versions)
	default:
		e.Level = evidence.Unsupported
		e.LoaderMismatch = true
		e.Reason = fmt.Sprintf("loaders: %v", loaders)
	}
	return e
}

func fileURL(match curseforge.FileMatch) string {
	if match.ID == 0 {
		return ""
	}
	return fmt.Sprintf("https://www.curseforge.com/minecraft/mc-mods/unknown/files/%d", match.ID)
}
