// Package modrinth turns Modrinth hash lookups into compatibility
// evidence. A hash match identifies the exact published file, so this is
// the most trusted source in the pipeline.
package modrinth

import (
	"context"
	"fmt"

	"github.com/EricDasha/mc-mod-compat-check/mccompat/evidence"
	"github.com/EricDasha/mc-mod-compat-check/mccompat/mod"
	"github.com/EricDasha/mc-mod-compat-check/mccompat/modrinth"
	"github.com/EricDasha/mc-mod-compat-check/mccompat/target"
	"github.com/EricDasha/mc-mod-compat-check/mccompat/version"
)

const matchConfidence = 0.95

// VersionLookup resolves SHA-1 digests to published versions.
type VersionLookup interface {
	VersionsByHashes(ctx context.Context, hashes []string) (map[string]modrinth.Version, error)
}

type Checker struct {
	lookup VersionLookup
}

func NewChecker(lookup VersionLookup) *Checker {
	return &Checker{lookup: lookup}
}

func (c *Checker) Type() evidence.Source {
	return evidence.ModrinthSource
}

func (c *Checker) Collect(ctx context.Context, t target.Target, mods []mod.Mod) (map[string][]evidence.Evidence, error) {
	byHash := make(map[string]string)
	var hashes []string
	for _, m := range mods {
		if m.Digests.SHA1 == "" {
			continue
		}
		if _, ok := byHash[m.Digests.SHA1]; !ok {
			hashes = append(hashes, m.Digests.SHA1)
		}
		byHash[m.Digests.SHA1] = m.Path
	}
	if len(hashes) == 0 {
		return nil, nil
	}

	matches, err := c.lookup.VersionsByHashes(ctx, hashes)
	if err != nil {
		return nil, fmt.Errorf("modrinth lookup failed: %w", err)
	}

	targetVersion := version.NewVersion(t.GameVersion)
	results := make(map[string][]evidence.Evidence)
	for hash, v := range matches {
		path, ok := byHash[hash]
		if !ok {
			continue
		}
		results[path] = []evidence.Evidence{buildEvidence(v, t, targetVersion)}
	}
	return results, nil
}

func buildEvidence(v modrinth.Version, t target.Target, targetVersion *version.Version) evidence.Evidence {
	e := evidence.Evidence{
		Source:     evidence.ModrinthSource,
		Confidence: matchConfidence,
		ModName:    v.Name,
		ModVersion: v.VersionNumber,
		URL:        modrinth.VersionURL(v),
	}

	mcOK := version.CompatibleWith(targetVersion, v.GameVersions, t.Relaxed)

	loaderOK := true
	if t.Loader != "" && len(v.Loaders) > 0 {
		loaderOK = false
		for _, l := range v.Loaders {
			if evidence.LoaderCompatible(t.Loader, l) {
				loaderOK = true
				break
			}
		}
	}

	switch {
	case mcOK && loaderOK:
		e.Level = evidence.Confirmed
		e.Reason = fmt.Sprintf("modrinth_ok: %v", v.GameVersions)
	case !mcOK:
		// version mismatch outranks loader mismatch when both fail
		e.Level = evidence.Unsupported
		e.VersionMismatch = true
		e.Reason = fmt.Sprintf("modrinth_ver: %v", v.GameVersions)
	default:
		e.Level = evidence.Unsupported
		e.LoaderMismatch = true
		e.Reason = fmt.Sprintf("modrinth_loader: %v", v.Loaders)
	}
	return e
}
