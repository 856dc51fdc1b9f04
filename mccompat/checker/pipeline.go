package checker

import (
	"context"
	"fmt"

	"github.com/spf13/afero"
	"github.com/wagoodman/go-partybus"
	"github.com/wagoodman/go-progress"

	"github.com/EricDasha/mc-mod-compat-check/internal/bus"
	"github.com/EricDasha/mc-mod-compat-check/internal/log"
	"github.com/EricDasha/mc-mod-compat-check/mccompat/event"
	"github.com/EricDasha/mc-mod-compat-check/mccompat/evidence"
	"github.com/EricDasha/mc-mod-compat-check/mccompat/fingerprint"
	"github.com/EricDasha/mc-mod-compat-check/mccompat/mod"
	"github.com/EricDasha/mc-mod-compat-check/mccompat/store"
	"github.com/EricDasha/mc-mod-compat-check/mccompat/target"
)

const defaultWorkers = 4

// Monitor exposes live progress of a running check to UI subscribers.
type Monitor struct {
	ModsProcessed      progress.Monitorable
	EvidenceDiscovered progress.Monitorable
}

// Pipeline runs the full batch check: fingerprint, cache lookup, evidence
// collection across all strategies, evaluation, cache write-back.
type Pipeline struct {
	fs       afero.Fs
	checkers []Checker
	store    *store.Store
	workers  int
}

// NewPipeline assembles a pipeline. The checker order is meaningful: the
// fingerprint-keyed catalog is only consulted for mods the hash-keyed
// catalog did not recognize. A nil store disables caching.
func NewPipeline(fs afero.Fs, checkers []Checker, resultStore *store.Store, workers int) *Pipeline {
	if workers < 1 {
		workers = defaultWorkers
	}
	return &Pipeline{
		fs:       fs,
		checkers: checkers,
		store:    resultStore,
		workers:  workers,
	}
}

func trackPipeline() (*progress.Manual, *progress.Manual) {
	modsProcessed := progress.Manual{}
	evidenceDiscovered := progress.Manual{}

	bus.Publish(partybus.Event{
		Type: event.ModCheckStarted,
		Value: Monitor{
			ModsProcessed:      progress.Monitorable(&modsProcessed),
			EvidenceDiscovered: progress.Monitorable(&evidenceDiscovered),
		},
	})
	return &modsProcessed, &evidenceDiscovered
}

// Check evaluates every path against the target. The result slice always
// has exactly one entry per input path, in input order, no matter what
// fails along the way.
func (p *Pipeline) Check(ctx context.Context, t target.Target, paths []string) []evidence.ModCheckResult {
	if t.Loader != "" && !evidence.KnownLoaders.Has(t.Loader) {
		results := make([]evidence.ModCheckResult, len(paths))
		for i, path := range paths {
			m := mod.New(path)
			results[i] = evidence.ModCheckResult{
				Path:     m.Path,
				FileName: m.FileName,
				Status:   evidence.StatusUnknownLoader,
				Level:    evidence.Unknown,
				Reason:   fmt.Sprintf("unknown_loader: %s", t.Loader),
			}
		}
		return results
	}

	modsProcessed, evidenceDiscovered := trackPipeline()
	defer modsProcessed.SetCompleted()
	defer evidenceDiscovered.SetCompleted()

	mods := make([]mod.Mod, len(paths))
	digests := fingerprint.Catalog(ctx, p.fs, paths, p.workers)
	for i, path := range paths {
		mods[i] = mod.New(path)
		mods[i].Digests = digests[path]
	}

	cached := make(map[string]evidence.ModCheckResult)
	var pending []mod.Mod
	for _, m := range mods {
		if result, ok := p.cachedResult(m, t); ok {
			cached[m.Path] = result
			modsProcessed.N++
			continue
		}
		pending = append(pending, m)
	}

	collected := make(map[string][]evidence.Evidence)
	var remoteFailed bool
	for _, c := range p.checkers {
		if ctx.Err() != nil {
			break
		}

		subjects := pending
		if c.Type() == evidence.CurseForgeSource {
			// fall-through catalog: only consulted for mods the
			// hash-keyed catalog had no answer for
			subjects = withoutSource(pending, collected, evidence.ModrinthSource)
		}
		if len(subjects) == 0 {
			continue
		}

		results, err := p.collect(ctx, c, t, subjects)
		if err != nil {
			log.Errorf("checker %s failed: %+v", c.Type(), err)
			if c.Type() != evidence.LocalSource {
				remoteFailed = true
			}
			continue
		}

		for path, evs := range results {
			collected[path] = append(collected[path], evs...)
			evidenceDiscovered.N += int64(len(evs))
		}
	}

	results := make([]evidence.ModCheckResult, len(mods))
	for i, m := range mods {
		if result, ok := cached[m.Path]; ok {
			results[i] = result
			continue
		}

		result := evidence.Evaluate(m.Path, m.FileName, collected[m.Path])
		if result.Status == evidence.StatusUnknown && remoteFailed {
			result.Status = evidence.StatusNetworkError
			if result.Reason == "" {
				result.Reason = "network_error"
			}
		}
		results[i] = result
		modsProcessed.N++

		p.storeResult(m, t, result)
	}

	if p.store != nil {
		p.store.Save()
	}

	bus.Publish(partybus.Event{Type: event.ModCheckFinished})
	return results
}

// collect invokes one checker behind a panic boundary: a misbehaving
// strategy costs its own evidence, never the run.
func (p *Pipeline) collect(ctx context.Context, c Checker, t target.Target, mods []mod.Mod) (results map[string][]evidence.Evidence, err error) {
	defer func() {
		if r := recover(); r != nil {
			results = nil
			err = fmt.Errorf("checker %s panicked: %v", c.Type(), r)
		}
	}()
	return c.Collect(ctx, t, mods)
}

func (p *Pipeline) cachedResult(m mod.Mod, t target.Target) (evidence.ModCheckResult, bool) {
	if p.store == nil || m.Digests.SHA1 == "" {
		return evidence.ModCheckResult{}, false
	}
	entry, ok := p.store.Get(store.NewKey(m.Digests.SHA1, t))
	if !ok {
		return evidence.ModCheckResult{}, false
	}
	log.Debugf("cache hit for %q", m.FileName)
	return entry.ToResult(m.Path, m.FileName), true
}

func (p *Pipeline) storeResult(m mod.Mod, t target.Target, result evidence.ModCheckResult) {
	if p.store == nil || m.Digests.SHA1 == "" {
		return
	}
	p.store.Set(store.NewKey(m.Digests.SHA1, t), store.NewEntry(result))
}

func withoutSource(mods []mod.Mod, collected map[string][]evidence.Evidence, source evidence.Source) []mod.Mod {
	var out []mod.Mod
	for _, m := range mods {
		if hasSource(collected[m.Path], source) {
			continue
		}
		out = append(out, m)
	}
	return out
}

func hasSource(evs []evidence.Evidence, source evidence.Source) bool {
	for _, e := range evs {
		if e.Source == source {
			return true
		}
	}
	return false
}
