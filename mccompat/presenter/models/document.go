// Package models defines the report document shared by all output
// formats.
package models

import (
	"github.com/EricDasha/mc-mod-compat-check/mccompat/evidence"
	"github.com/EricDasha/mc-mod-compat-check/mccompat/target"
)

// Document is the complete output of one check run.
type Document struct {
	GameVersion string                       `json:"game_version"`
	Loader      string                       `json:"loader,omitempty"`
	Relaxed     bool                         `json:"relaxed"`
	Results     []evidence.ModCheckResult    `json:"results"`
	Summary     map[evidence.CheckStatus]int `json:"summary"`
}

func NewDocument(t target.Target, results []evidence.ModCheckResult) Document {
	summary := make(map[evidence.CheckStatus]int)
	for _, r := range results {
		summary[r.Status]++
	}
	return Document{
		GameVersion: t.GameVersion,
		Loader:      t.Loader,
		Relaxed:     t.Relaxed,
		Results:     results,
		Summary:     summary,
	}
}

// Compatible counts results whose status is a positive outcome.
func (d Document) Compatible() int {
	return d.Summary[evidence.StatusOK]
}

// Incompatible counts results with a definitive negative outcome.
func (d Document) Incompatible() int {
	return d.Summary[evidence.StatusWrongMC] + d.Summary[evidence.StatusWrongLoader]
}

// Undetermined counts results with no definitive answer.
func (d Document) Undetermined() int {
	return len(d.Results) - d.Compatible() - d.Incompatible()
}
