// Package local derives compatibility evidence from the artifact itself:
// descriptor files embedded in the archive, and filename hints when those
// are absent or silent.
package local

import (
	"context"
	"fmt"

	"github.com/spf13/afero"

	"github.com/EricDasha/mc-mod-compat-check/internal/log"
	"github.com/EricDasha/mc-mod-compat-check/mccompat/evidence"
	"github.com/EricDasha/mc-mod-compat-check/mccompat/mod"
	"github.com/EricDasha/mc-mod-compat-check/mccompat/target"
	"github.com/EricDasha/mc-mod-compat-check/mccompat/version"
)

const (
	// descriptor claims are authored by the mod itself: trustworthy about
	// intent, but not about what actually works
	descriptorConfidence = 0.70

	// a fabric mod with no declared minecraft dependency usually works
	// anywhere, but that is a guess, not a claim
	noGameDependencyConfidence = 0.50

	heuristicVersionConfidence = 0.40
	heuristicLoaderConfidence  = 0.35
)

// Checker inspects mod files on disk without any network access.
type Checker struct {
	fs afero.Fs
}

func NewChecker(fs afero.Fs) *Checker {
	return &Checker{fs: fs}
}

func (c *Checker) Type() evidence.Source {
	return evidence.LocalSource
}

// Collect gathers evidence for each mod independently. Every descriptor
// family found in an archive contributes its own evidence, and the
// filename heuristic always runs as a supplementary signal, so one mod can
// carry corroborating or conflicting claims at different confidences.
func (c *Checker) Collect(ctx context.Context, t target.Target, mods []mod.Mod) (map[string][]evidence.Evidence, error) {
	results := make(map[string][]evidence.Evidence)
	targetVersion := version.NewVersion(t.GameVersion)

	for _, m := range mods {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var evs []evidence.Evidence
		for _, d := range c.descriptors(m) {
			if e := descriptorEvidence(d, t, targetVersion); e != nil {
				evs = append(evs, *e)
			}
		}
		evs = append(evs, heuristicEvidence(m.FileName, t, targetVersion)...)

		if len(evs) > 0 {
			results[m.Path] = evs
		}
	}
	return results, nil
}

func (c *Checker) descriptors(m mod.Mod) []mod.Descriptor {
	a, err := mod.OpenArchive(c.fs, m.Path)
	if err != nil {
		log.Debugf("unable to inspect %q: %+v", m.Path, err)
		return nil
	}
	defer a.Close()
	return mod.ExtractDescriptors(a)
}

func descriptorEvidence(d mod.Descriptor, t target.Target, targetVersion *version.Version) *evidence.Evidence {
	e := evidence.Evidence{
		Source:     evidence.LocalSource,
		Confidence: descriptorConfidence,
		ModName:    d.Name,
		ModVersion: d.Version,
	}

	if t.Loader != "" && !evidence.LoaderCompatible(t.Loader, d.Kind.Loader()) {
		e.Level = evidence.Unsupported
		e.Reason = fmt.Sprintf("is_%s", d.Kind)
		e.LoaderMismatch = true
		return &e
	}

	if len(d.GameConstraints) == 0 {
		// only fabric descriptors conventionally omit the game
		// dependency on purpose; for the other families silence says
		// nothing at all
		if d.Kind == mod.FabricDescriptor {
			e.Level = evidence.Possible
			e.Confidence = noGameDependencyConfidence
			e.Reason = "no_mc_dep"
			return &e
		}
		return nil
	}

	satisfied, err := version.EvaluateDependencyList(d.GameConstraints, targetVersion, t.Relaxed)
	if err != nil {
		log.Debugf("indeterminate constraints for %q (%s): %v", d.Name, d.Kind, d.GameConstraints)
		return nil
	}

	e.Reason = fmt.Sprintf("%s: %v", d.Kind, d.GameConstraints)
	if satisfied {
		e.Level = evidence.Likely
	} else {
		e.Level = evidence.Unsupported
		e.VersionMismatch = true
	}
	return &e
}

func heuristicEvidence(fileName string, t target.Target, targetVersion *version.Version) []evidence.Evidence {
	var evs []evidence.Evidence

	if detected := mod.DetectLoader(fileName); detected != "" && t.Loader != "" {
		if !evidence.LoaderCompatible(t.Loader, detected) {
			evs = append(evs, evidence.Evidence{
				Source:         evidence.LocalSource,
				Confidence:     heuristicLoaderConfidence,
				Level:          evidence.Unsupported,
				Reason:         fmt.Sprintf("heuristic_loader: %s", detected),
				LoaderMismatch: true,
			})
		}
	}

	if versions := mod.DetectGameVersions(fileName); len(versions) > 0 {
		e := evidence.Evidence{
			Source:     evidence.LocalSource,
			Confidence: heuristicVersionConfidence,
			Reason:     fmt.Sprintf("heuristic: %v", versions),
		}
		if version.CompatibleWith(targetVersion, versions, t.Relaxed) {
			e.Level = evidence.Possible
		} else {
			e.Level = evidence.Unsupported
			e.VersionMismatch = true
		}
		evs = append(evs, e)
	}

	return evs
}
