// Package evidence defines the signal model shared by all check
// strategies and the evaluator that folds per-mod signals into a single
// verdict.
package evidence

// Source identifies which strategy produced a piece of evidence.
type Source string

const (
	LocalSource      Source = "local"
	ModrinthSource   Source = "modrinth"
	CurseForgeSource Source = "curseforge"
	CacheSource      Source = "cache"
)

// SupportLevel is the graded claim a single piece of evidence makes about
// the artifact under the requested target.
type SupportLevel string

const (
	Confirmed   SupportLevel = "confirmed"
	Likely      SupportLevel = "likely"
	Possible    SupportLevel = "possible"
	Unsupported SupportLevel = "unsupported"
	Unknown     SupportLevel = "unknown"
)

// Evidence is one strategy's claim about one mod. Confidence orders
// competing claims; Reason is a short human-readable trace of how the
// claim was derived. The mismatch flags let the evaluator distinguish a
// wrong game version from a wrong loader without parsing the reason text.
type Evidence struct {
	Source          Source       `json:"source"`
	Confidence      float64      `json:"confidence"`
	Level           SupportLevel `json:"level"`
	Reason          string       `json:"reason"`
	VersionMismatch bool         `json:"version_mismatch,omitempty"`
	LoaderMismatch  bool         `json:"loader_mismatch,omitempty"`
	ModName         string       `json:"mod_name,omitempty"`
	ModVersion      string       `json:"mod_version,omitempty"`
	URL             string       `json:"url,omitempty"`
}
