// Package store persists check results between runs, keyed by content
// hash and the full check target so a cached verdict is never replayed
// against a different question.
package store

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	"github.com/spf13/afero"

	"github.com/EricDasha/mc-mod-compat-check/internal/log"
	"github.com/EricDasha/mc-mod-compat-check/mccompat/evidence"
	"github.com/EricDasha/mc-mod-compat-check/mccompat/target"
)

const resultsFileName = "results.json"

// Key identifies one cached verdict. Every dimension that can change the
// answer is part of the key.
type Key struct {
	SHA1        string
	GameVersion string
	Loader      string
	Relaxed     bool
}

func NewKey(sha1 string, t target.Target) Key {
	return Key{
		SHA1:        sha1,
		GameVersion: t.GameVersion,
		Loader:      t.Loader,
		Relaxed:     t.Relaxed,
	}
}

func (k Key) String() string {
	loader := k.Loader
	if loader == "" {
		loader = "none"
	}
	return fmt.Sprintf("%s|%s|%s|%t", k.SHA1, k.GameVersion, loader, k.Relaxed)
}

// Entry is the persisted subset of a verdict. The evidence trail is
// deliberately not stored; a cached answer replays the conclusion, not
// the reasoning.
type Entry struct {
	Status     evidence.CheckStatus  `json:"status"`
	Level      evidence.SupportLevel `json:"level"`
	Confidence float64               `json:"confidence"`
	Reason     string                `json:"reason"`
	ModName    string                `json:"mod_name,omitempty"`
	ModVersion string                `json:"mod_version,omitempty"`
	URL        string                `json:"url,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

func NewEntry(result evidence.ModCheckResult) Entry {
	return Entry{
		Status:     result.Status,
		Level:      result.Level,
		Confidence: result.Confidence,
		Reason:     result.Reason,
		ModName:    result.ModName,
		ModVersion: result.ModVersion,
		URL:        result.URL,
		Timestamp:  time.Now().UTC(),
	}
}

// ToResult rebuilds a verdict for the given artifact from a cached entry.
func (e Entry) ToResult(path, fileName string) evidence.ModCheckResult {
	return evidence.ModCheckResult{
		Path:       path,
		FileName:   fileName,
		Status:     e.Status,
		Level:      e.Level,
		Confidence: e.Confidence,
		Reason:     e.Reason,
		ModName:    e.ModName,
		ModVersion: e.ModVersion,
		URL:        e.URL,
	}
}

// Store is a single-file JSON result cache. All reads happen against the
// in-memory copy loaded at construction; Save writes back best-effort.
type Store struct {
	fs   afero.Fs
	path string

	mu      sync.Mutex
	entries map[string]Entry
	dirty   bool
}

// DefaultPath places the cache under the user cache directory.
func DefaultPath() string {
	return filepath.Join(xdg.CacheHome, "mc-mod-compat-check", resultsFileName)
}

// NewStore opens the cache at the given path. A missing or corrupt file
// yields an empty store rather than an error.
func NewStore(fs afero.Fs, path string) *Store {
	s := &Store{
		fs:      fs,
		path:    path,
		entries: make(map[string]Entry),
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return s
	}
	if err := json.Unmarshal(data, &s.entries); err != nil {
		log.Debugf("ignoring corrupt result cache at %q: %v", path, err)
		s.entries = make(map[string]Entry)
	}
	return s
}

func (s *Store) Get(k Key) (Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[k.String()]
	return e, ok
}

// Set records a verdict. Transient outcomes are never persisted: a
// network failure today says nothing about compatibility tomorrow.
func (s *Store) Set(k Key, e Entry) {
	if e.Status == evidence.StatusNetworkError {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[k.String()] = e
	s.dirty = true
}

// Save writes the cache back to disk. Failures are logged, not returned:
// a broken cache must never fail a check run.
func (s *Store) Save() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.dirty {
		return
	}

	data, err := json.Marshal(s.entries)
	if err != nil {
		log.Warnf("unable to encode result cache: %v", err)
		return
	}

	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		log.Warnf("unable to create cache directory: %v", err)
		return
	}
	if err := afero.WriteFile(s.fs, s.path, data, 0644); err != nil {
		log.Warnf("unable to write result cache: %v", err)
		return
	}
	s.dirty = false
}
