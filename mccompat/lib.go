package mccompat

import (
	"context"

	"github.com/spf13/afero"
	"github.com/wagoodman/go-partybus"

	"github.com/EricDasha/mc-mod-compat-check/internal/bus"
	"github.com/EricDasha/mc-mod-compat-check/internal/log"
	"github.com/EricDasha/mc-mod-compat-check/mccompat/checker"
	"github.com/EricDasha/mc-mod-compat-check/mccompat/evidence"
	"github.com/EricDasha/mc-mod-compat-check/mccompat/store"
	"github.com/EricDasha/mc-mod-compat-check/mccompat/target"
)

// CheckMods runs the given checkers over the mod files at the given paths and
// returns one result per path, in input order. A nil store disables result
// caching.
func CheckMods(ctx context.Context, fs afero.Fs, checkers []checker.Checker, resultStore *store.Store, t target.Target, paths []string, workers int) []evidence.ModCheckResult {
	return checker.NewPipeline(fs, checkers, resultStore, workers).Check(ctx, t, paths)
}

// SetLogger sets the logger object used for all logging calls.
func SetLogger(logger log.Logger) {
	log.Log = logger
}

// SetBus sets the event bus for all library bus publish events onto (in this
// case all workers behave as publishers).
func SetBus(b *partybus.Bus) {
	bus.Set(b)
}
