package evidence

import (
	"sort"
	"strings"
)

// Evaluate folds all evidence collected for one mod into a single
// verdict. Evidence is ranked by confidence; the strongest claim that
// actually says something (any level other than unknown) decides the
// outcome, so a high-confidence catalog miss cannot be overruled by a
// low-confidence filename guess presented later.
func Evaluate(path, fileName string, evidences []Evidence) ModCheckResult {
	result := ModCheckResult{
		Path:     path,
		FileName: fileName,
		Status:   StatusUnknown,
		Level:    Unknown,
		Evidence: evidences,
	}

	if len(evidences) == 0 {
		return result
	}

	ranked := make([]Evidence, len(evidences))
	copy(ranked, evidences)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Confidence > ranked[j].Confidence
	})

	var primary *Evidence
	for i := range ranked {
		if ranked[i].Level != Unknown {
			primary = &ranked[i]
			break
		}
	}
	if primary == nil {
		return result
	}

	result.Level = primary.Level
	result.Confidence = primary.Confidence
	result.Reason = primary.Reason

	switch primary.Level {
	case Unsupported:
		if primary.LoaderMismatch || strings.Contains(primary.Reason, "loader") {
			result.Status = StatusWrongLoader
		} else {
			result.Status = StatusWrongMC
		}
	default:
		result.Status = StatusOK
	}

	// identity fields come from the best evidence that carries them,
	// which is not necessarily the deciding one
	for _, e := range ranked {
		if result.ModName == "" && e.ModName != "" {
			result.ModName = e.ModName
		}
		if result.ModVersion == "" && e.ModVersion != "" {
			result.ModVersion = e.ModVersion
		}
		if result.URL == "" && e.URL != "" {
			result.URL = e.URL
		}
	}

	return result
}
