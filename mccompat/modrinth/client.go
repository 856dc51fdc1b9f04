// Package modrinth is a minimal client for the Modrinth v2 API, limited
// to the reverse lookup this tool needs: file hash to published version.
package modrinth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/EricDasha/mc-mod-compat-check/internal/httpclient"
	"github.com/EricDasha/mc-mod-compat-check/internal/log"
)

const (
	DefaultBaseURL = "https://api.modrinth.com/v2"

	// documented request limit for the version_files endpoint
	lookupChunkSize = 50
)

// Version is a published mod version as returned by the version_files
// lookup, reduced to the fields compatibility checking needs.
type Version struct {
	ID            string   `json:"id"`
	ProjectID     string   `json:"project_id"`
	Name          string   `json:"name"`
	VersionNumber string   `json:"version_number"`
	GameVersions  []string `json:"game_versions"`
	Loaders       []string `json:"loaders"`
}

type Client struct {
	http    *httpclient.Client
	baseURL string
}

func NewClient(userAgent, baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		http:    httpclient.New(userAgent, timeout),
		baseURL: baseURL,
	}
}

type versionFilesRequest struct {
	Hashes    []string `json:"hashes"`
	Algorithm string   `json:"algorithm"`
}

// VersionsByHashes resolves SHA-1 digests to published versions. Lookups
// are chunked; a failed chunk degrades to "no answer" for its hashes
// rather than failing the batch, with a single definitive exception: a
// whole-batch 404 means none of the hashes are known.
func (c *Client) VersionsByHashes(ctx context.Context, hashes []string) (map[string]Version, error) {
	results := make(map[string]Version)
	var failures int

	for start := 0; start < len(hashes); start += lookupChunkSize {
		end := start + lookupChunkSize
		if end > len(hashes) {
			end = len(hashes)
		}
		chunk := hashes[start:end]

		var chunkResults map[string]Version
		err := c.http.PostJSON(ctx, c.baseURL+"/version_files", nil, versionFilesRequest{
			Hashes:    chunk,
			Algorithm: "sha1",
		}, &chunkResults)
		switch {
		case errors.Is(err, httpclient.ErrNotFound):
			continue
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return nil, err
		case err != nil:
			log.Warnf("modrinth lookup failed for %d hashes: %v", len(chunk), err)
			failures++
			continue
		}

		for hash, v := range chunkResults {
			results[hash] = v
		}
	}

	if failures > 0 && len(results) == 0 {
		return nil, fmt.Errorf("all modrinth lookups failed (%d chunks)", failures)
	}
	return results, nil
}

// VersionURL is the canonical page for a version lookup result.
func VersionURL(v Version) string {
	if v.ProjectID == "" || v.ID == "" {
		return ""
	}
	return fmt.Sprintf("https://modrinth.com/mod/%s/version/%s", v.ProjectID, v.ID)
}
