// Package mod models the artifact under evaluation (a packaged mod file)
// and extracts the compatibility signals embedded in it: descriptor files
// inside the archive and hints encoded in the filename.
package mod

import (
	"path/filepath"

	"github.com/EricDasha/mc-mod-compat-check/mccompat/fingerprint"
)

// Mod is one artifact in a check batch. Digests are populated by the
// pipeline before strategies run; zero digests mean the file could not be
// fingerprinted and the artifact has no catalog lookup keys.
type Mod struct {
	Path     string
	FileName string
	Digests  fingerprint.Digests
}

func New(path string) Mod {
	return Mod{
		Path:     path,
		FileName: filepath.Base(path),
	}
}
