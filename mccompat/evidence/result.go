package evidence

// CheckStatus is the final, user-facing outcome of checking one mod.
type CheckStatus string

const (
	StatusOK            CheckStatus = "ok"
	StatusWrongMC       CheckStatus = "wrong_mc"
	StatusWrongLoader   CheckStatus = "wrong_loader"
	StatusUnknownLoader CheckStatus = "unknown_loader"
	StatusNotFound      CheckStatus = "not_found"
	StatusNetworkError  CheckStatus = "network_error"
	StatusUnknown       CheckStatus = "unknown"
	StatusSkipped       CheckStatus = "skipped"
)

// ModCheckResult is the evaluated verdict for one mod file, together with
// the full evidence trail it was derived from.
type ModCheckResult struct {
	Path       string       `json:"path"`
	FileName   string       `json:"file_name"`
	Status     CheckStatus  `json:"status"`
	Level      SupportLevel `json:"level"`
	Confidence float64      `json:"confidence"`
	Reason     string       `json:"reason"`
	ModName    string       `json:"mod_name,omitempty"`
	ModVersion string       `json:"mod_version,omitempty"`
	URL        string       `json:"url,omitempty"`
	Evidence   []Evidence   `json:"evidence"`
}
