package curseforge

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EricDasha/mc-mod-compat-check/mccompat/curseforge"
	"github.com/EricDasha/mc-mod-compat-check/mccompat/evidence"
	"github.com/EricDasha/mc-mod-compat-check/mccompat/fingerprint"
	"github.com/EricDasha/mc-mod-compat-check/mccompat/mod"
	"github.com/EricDasha/mc-mod-compat-check/mccompat/target"
)

type mockLookup struct {
	matches      map[uint32]curseforge.FileMatch
	fingerprints []uint32
}

func (m *mockLookup) MatchesByFingerprints(_ context.Context, fingerprints []uint32) (map[uint32]curseforge.FileMatch, error) {
	m.fingerprints = fingerprints
	return m.matches, nil
}

func modWithFingerprint(path string, f uint32) mod.Mod {
	m := mod.New(path)
	m.Digests = fingerprint.Digests{CurseForge: f}
	return m
}

func TestClassifyGameVersions(t *testing.T) {
	versions, loaders := classifyGameVersions([]string{"1.19.2", "Forge", "1.20", "Fabric", "Client", "NeoForge"})
	assert.Equal(t, []string{"1.19.2", "1.20"}, versions)
	assert.Equal(t, []string{"forge", "fabric", "neoforge"}, loaders)
}

func TestCollect(t *testing.T) {
	jei := curseforge.FileMatch{
		ID:              9001,
		ModID:           5001,
		DisplayName:     "Just Enough Items",
		FileName:        "jei-1.19.2.jar",
		GameVersions:    []string{"1.19.2", "Forge", "Client"},
		FileFingerprint: 111,
	}

	tests := []struct {
		name     string
		target   target.Target
		expected evidence.Evidence
	}{
		{
			name:   "confirmed",
			target: target.New("1.19.2", "forge", false),
			expected: evidence.Evidence{
				Source:     evidence.CurseForgeSource,
				Confidence: 0.85,
				Level:      evidence.Confirmed,
				Reason:     "match",
				ModName:    "Just Enough Items",
				ModVersion: "jei-1.19.2.jar",
				URL:        "https://www.curseforge.com/minecraft/mc-mods/unknown/files/9001",
			},
		},
		{
			name:   "wrong game version",
			target: target.New("1.20.1", "forge", false),
			expected: evidence.Evidence{
				Source:          evidence.CurseForgeSource,
				Confidence:      0.85,
				Level:           evidence.Unsupported,
				Reason:          "support: [1.19.2]",
				VersionMismatch: true,
				ModName:         "Just Enough Items",
				ModVersion:      "jei-1.19.2.jar",
				URL:             "https://www.curseforge.com/minecraft/mc-mods/unknown/files/9001",
			},
		},
		{
			name:   "wrong loader",
			target: target.New("1.19.2", "fabric", false),
			expected: evidence.Evidence{
				Source:         evidence.CurseForgeSource,
				Confidence:     0.85,
				Level:          evidence.Unsupported,
				Reason:         "loaders: [forge]",
				LoaderMismatch: true,
				ModName:        "Just Enough Items",
				ModVersion:     "jei-1.19.2.jar",
				URL:            "https://www.curseforge.com/minecraft/mc-mods/unknown/files/9001",
			},
		},
		{
			name:   "neoforge target accepts forge build",
			target: target.New("1.19.2", "neoforge", false),
			expected: evidence.Evidence{
				Source:     evidence.CurseForgeSource,
				Confidence: 0.85,
				Level:      evidence.Confirmed,
				Reason:     "match",
				ModName:    "Just Enough Items",
				ModVersion: "jei-1.19.2.jar",
				URL:        "https://www.curseforge.com/minecraft/mc-mods/unknown/files/9001",
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			lookup := &mockLookup{matches: map[uint32]curseforge.FileMatch{111: jei}}
			checker := NewChecker(lookup)

			results, err := checker.Collect(context.Background(), test.target, []mod.Mod{
				modWithFingerprint("/mods/jei.jar", 111),
			})
			require.NoError(t, err)
			require.Len(t, results["/mods/jei.jar"], 1)
			assert.Equal(t, test.expected, results["/mods/jei.jar"][0])
		})
	}
}

// When the catalog exposes no loader entries at all, loader compatibility
// cannot be judged and is not held against the mod.
func TestCollectNoLoaderInfo(t *testing.T) {
	lookup := &mockLookup{matches: map[uint32]curseforge.FileMatch{
		222: {
			ID:              9002,
			DisplayName:     "Mystery Mod",
			GameVersions:    []string{"1.19.2"},
			FileFingerprint: 222,
		},
	}}
	checker := NewChecker(lookup)

	results, err := checker.Collect(context.Background(), target.New("1.19.2", "fabric", false), []mod.Mod{
		modWithFingerprint("/mods/mystery.jar", 222),
	})
	require.NoError(t, err)
	require.Len(t, results["/mods/mystery.jar"], 1)
	assert.Equal(t, evidence.Confirmed, results["/mods/mystery.jar"][0].Level)
}

func TestCollectSkipsModsWithoutFingerprint(t *testing.T) {
	lookup := &mockLookup{}
	checker := NewChecker(lookup)

	results, err := checker.Collect(context.Background(), target.New("1.19.2", "", false), []mod.Mod{
		mod.New("/mods/unhashed.jar"),
	})
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Empty(t, lookup.fingerprints)
}
