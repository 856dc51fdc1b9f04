// Package checker orchestrates evidence collection: each strategy
// contributes what it can, and the evaluator reconciles the claims into
// one verdict per mod.
package checker

import (
	"context"

	"github.com/EricDasha/mc-mod-compat-check/mccompat/evidence"
	"github.com/EricDasha/mc-mod-compat-check/mccompat/mod"
	"github.com/EricDasha/mc-mod-compat-check/mccompat/target"
)

// Checker is one evidence collection strategy. Collect returns evidence
// keyed by mod path; a mod absent from the map simply has nothing to say
// from this source.
type Checker interface {
	Type() evidence.Source
	Collect(ctx context.Context, t target.Target, mods []mod.Mod) (map[string][]evidence.Evidence, error)
}
