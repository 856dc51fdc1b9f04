// Package target describes the environment mods are checked against.
package target

import "strings"

// Target is the game environment a batch of mods is evaluated for. An
// empty Loader means "any loader". Relaxed widens version matching to the
// major.minor series, accepting e.g. a 1.20.1 build for a 1.20.4 target.
type Target struct {
	GameVersion string
	Loader      string
	Relaxed     bool
}

func New(gameVersion, loader string, relaxed bool) Target {
	return Target{
		GameVersion: strings.TrimSpace(gameVersion),
		Loader:      strings.ToLower(strings.TrimSpace(loader)),
		Relaxed:     relaxed,
	}
}
