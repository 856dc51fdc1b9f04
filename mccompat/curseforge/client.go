// Package curseforge is a minimal client for the CurseForge core API,
// limited to the fingerprint match lookup. All calls require an API key.
package curseforge

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/EricDasha/mc-mod-compat-check/internal/httpclient"
	"github.com/EricDasha/mc-mod-compat-check/internal/log"
)

const (
	DefaultBaseURL = "https://api.curseforge.com/v1"

	lookupChunkSize = 50
)

// FileMatch is one exact fingerprint match. GameVersions mixes game
// version strings and loader names in a single list; callers must
// classify the entries themselves.
type FileMatch struct {
	ID              int      `json:"id"`
	ModID           int      `json:"modId"`
	DisplayName     string   `json:"displayName"`
	FileName        string   `json:"fileName"`
	GameVersions    []string `json:"gameVersions"`
	FileFingerprint uint32   `json:"fileFingerprint"`
}

type Client struct {
	http    *httpclient.Client
	baseURL string
	apiKey  string
}

func NewClient(userAgent, baseURL, apiKey string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		http:    httpclient.New(userAgent, timeout),
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

// Enabled reports whether the client can make calls at all.
func (c *Client) Enabled() bool {
	return c != nil && c.apiKey != ""
}

type fingerprintsRequest struct {
	Fingerprints []uint32 `json:"fingerprints"`
}

type fingerprintsResponse struct {
	Data struct {
		ExactMatches []struct {
			File FileMatch `json:"file"`
		} `json:"exactMatches"`
	} `json:"data"`
}

// MatchesByFingerprints resolves fingerprints to exact file matches,
// keyed by the fingerprint value. Chunks degrade independently, same as
// the other catalog.
func (c *Client) MatchesByFingerprints(ctx context.Context, fingerprints []uint32) (map[uint32]FileMatch, error) {
	if !c.Enabled() {
		return nil, nil
	}

	headers := map[string]string{"x-api-key": c.apiKey}
	results := make(map[uint32]FileMatch)
	var failures int

	for start := 0; start < len(fingerprints); start += lookupChunkSize {
		end := start + lookupChunkSize
		if end > len(fingerprints) {
			end = len(fingerprints)
		}
		chunk := fingerprints[start:end]

		var resp fingerprintsResponse
		err := c.http.PostJSON(ctx, c.baseURL+"/fingerprints", headers, fingerprintsRequest{
			Fingerprints: chunk,
		}, &resp)
		switch {
		case errors.Is(err, httpclient.ErrNotFound):
			continue
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return nil, err
		case err != nil:
			log.Warnf("curseforge lookup failed for %d fingerprints: %v", len(chunk), err)
			failures++
			continue
		}

		for _, match := range resp.Data.ExactMatches {
			if match.File.FileFingerprint != 0 {
				results[match.File.FileFingerprint] = match.File
			}
		}
	}

	if failures > 0 && len(results) == 0 {
		return nil, fmt.Errorf("all curseforge lookups failed (%d chunks)", failures)
	}
	return results, nil
}
