//go:build integration
// +build integration

package integration

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EricDasha/mc-mod-compat-check/mccompat"
	"github.com/EricDasha/mc-mod-compat-check/mccompat/checker"
	localChecker "github.com/EricDasha/mc-mod-compat-check/mccompat/checker/local"
	modrinthChecker "github.com/EricDasha/mc-mod-compat-check/mccompat/checker/modrinth"
	"github.com/EricDasha/mc-mod-compat-check/mccompat/evidence"
	"github.com/EricDasha/mc-mod-compat-check/mccompat/fingerprint"
	"github.com/EricDasha/mc-mod-compat-check/mccompat/modrinth"
	"github.com/EricDasha/mc-mod-compat-check/mccompat/presenter"
	"github.com/EricDasha/mc-mod-compat-check/mccompat/presenter/models"
	"github.com/EricDasha/mc-mod-compat-check/mccompat/store"
	"github.com/EricDasha/mc-mod-compat-check/mccompat/target"
)

func writeJar(t *testing.T, fs afero.Fs, path string, entries map[string]string) {
	t.Helper()

	buf := &bytes.Buffer{}
	w := zip.NewWriter(buf)
	for name, content := range entries {
		f, err := w.Create(name)
		require.NoError(t, err)
		_, err = f.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	require.NoError(t, afero.WriteFile(fs, path, buf.Bytes(), 0644))
}

// newModrinthServer resolves exactly the given hashes, everything else is a miss.
func newModrinthServer(t *testing.T, known map[string]modrinth.Version, calls *int64) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(calls, 1)

		var req struct {
			Hashes    []string `json:"hashes"`
			Algorithm string   `json:"algorithm"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "sha1", req.Algorithm)

		resp := make(map[string]modrinth.Version)
		for _, h := range req.Hashes {
			if v, ok := known[h]; ok {
				resp[h] = v
			}
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
}

func TestCheckMods(t *testing.T) {
	fs := afero.NewMemMapFs()

	writeJar(t, fs, "/mods/compatible.jar", map[string]string{
		"fabric.mod.json": `{
			"schemaVersion": 1,
			"id": "sodium",
			"version": "0.5.3",
			"depends": {"minecraft": ">=1.20 <1.21"}
		}`,
	})
	writeJar(t, fs, "/mods/incompatible.jar", map[string]string{
		"fabric.mod.json": `{
			"schemaVersion": 1,
			"id": "oldmod",
			"version": "1.0.0",
			"depends": {"minecraft": "1.19.x"}
		}`,
	})
	// no descriptor and an uninformative name: only a remote lookup can place it
	writeJar(t, fs, "/mods/mystery.jar", map[string]string{
		"assets/readme.txt": "nothing to see here",
	})

	mysteryHash := fingerprint.SHA1(fs, "/mods/mystery.jar")
	require.NotEmpty(t, mysteryHash)

	var apiCalls int64
	srv := newModrinthServer(t, map[string]modrinth.Version{
		mysteryHash: {
			ID:            "vers1",
			ProjectID:     "proj1",
			Name:          "Mystery Mod",
			VersionNumber: "2.1.0",
			GameVersions:  []string{"1.20.1"},
			Loaders:       []string{"fabric"},
		},
	}, &apiCalls)
	defer srv.Close()

	checkers := []checker.Checker{
		localChecker.NewChecker(fs),
		modrinthChecker.NewChecker(modrinth.NewClient("integration-test", srv.URL, 5*time.Second)),
	}
	resultStore := store.NewStore(fs, "/cache/results.json")

	t.Run("full check against a fabric 1.20.1 target", func(t *testing.T) {
		paths := []string{"/mods/compatible.jar", "/mods/incompatible.jar", "/mods/mystery.jar"}
		results := mccompat.CheckMods(context.Background(), fs, checkers, resultStore, target.New("1.20.1", "fabric", false), paths, 2)
		require.Len(t, results, len(paths))

		byName := make(map[string]evidence.ModCheckResult)
		for _, r := range results {
			byName[r.FileName] = r
		}

		assert.Equal(t, evidence.StatusOK, byName["compatible.jar"].Status)
		assert.Equal(t, evidence.StatusWrongMC, byName["incompatible.jar"].Status)

		mystery := byName["mystery.jar"]
		assert.Equal(t, evidence.StatusOK, mystery.Status)
		assert.Equal(t, evidence.Confirmed, mystery.Level)
		assert.Equal(t, "Mystery Mod", mystery.ModName)
		assert.Equal(t, "2.1.0", mystery.ModVersion)
		assert.Equal(t, "https://modrinth.com/mod/proj1/version/vers1", mystery.URL)

		assert.NotZero(t, atomic.LoadInt64(&apiCalls))
	})

	t.Run("second run is served from the result cache", func(t *testing.T) {
		callsBefore := atomic.LoadInt64(&apiCalls)

		freshStore := store.NewStore(fs, "/cache/results.json")
		results := mccompat.CheckMods(context.Background(), fs, checkers, freshStore, target.New("1.20.1", "fabric", false), []string{"/mods/mystery.jar"}, 2)
		require.Len(t, results, 1)

		assert.Equal(t, evidence.StatusOK, results[0].Status)
		assert.Equal(t, "Mystery Mod", results[0].ModName)
		assert.Equal(t, callsBefore, atomic.LoadInt64(&apiCalls), "expected no further API traffic on a cache hit")
	})

	t.Run("a different target misses the cache", func(t *testing.T) {
		callsBefore := atomic.LoadInt64(&apiCalls)

		freshStore := store.NewStore(fs, "/cache/results.json")
		results := mccompat.CheckMods(context.Background(), fs, checkers, freshStore, target.New("1.19.4", "fabric", false), []string{"/mods/mystery.jar"}, 2)
		require.Len(t, results, 1)

		assert.Equal(t, evidence.StatusWrongMC, results[0].Status)
		assert.NotEqual(t, callsBefore, atomic.LoadInt64(&apiCalls))
	})

	t.Run("unknown target loader short-circuits", func(t *testing.T) {
		callsBefore := atomic.LoadInt64(&apiCalls)

		results := mccompat.CheckMods(context.Background(), fs, checkers, nil, target.New("1.20.1", "bukkit", false), []string{"/mods/compatible.jar"}, 2)
		require.Len(t, results, 1)

		assert.Equal(t, evidence.StatusUnknownLoader, results[0].Status)
		assert.Equal(t, callsBefore, atomic.LoadInt64(&apiCalls))
	})
}

func TestCheckModsPresenterOutput(t *testing.T) {
	fs := afero.NewMemMapFs()

	writeJar(t, fs, "/mods/compatible.jar", map[string]string{
		"fabric.mod.json": `{
			"schemaVersion": 1,
			"id": "sodium",
			"version": "0.5.3",
			"depends": {"minecraft": ">=1.20 <1.21"}
		}`,
	})

	checkers := []checker.Checker{localChecker.NewChecker(fs)}
	tgt := target.New("1.20.1", "fabric", false)
	results := mccompat.CheckMods(context.Background(), fs, checkers, nil, tgt, []string{"/mods/compatible.jar"}, 2)

	doc := models.NewDocument(tgt, results)

	buf := &bytes.Buffer{}
	require.NoError(t, presenter.GetPresenter(presenter.JSONPresenter, doc).Present(buf))

	var decoded models.Document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "1.20.1", decoded.GameVersion)
	assert.Equal(t, "fabric", decoded.Loader)
	require.Len(t, decoded.Results, 1)
	assert.Equal(t, evidence.StatusOK, decoded.Results[0].Status)

	buf.Reset()
	require.NoError(t, presenter.GetPresenter(presenter.TablePresenter, doc).Present(buf))
	assert.Contains(t, buf.String(), "compatible.jar")
	assert.Contains(t, buf.String(), "1 compatible")
}
