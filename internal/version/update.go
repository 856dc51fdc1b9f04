package version

import (
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"

	"github.com/hashicorp/go-cleanhttp"

	mcVersion "github.com/EricDasha/mc-mod-compat-check/mccompat/version"
)

var latestAppVersionURL = struct {
	host string
	path string
}{
	host: "https://github.com",
	path: "/EricDasha/mc-mod-compat-check/releases/latest/download/VERSION",
}

var releaseVersionPattern = regexp.MustCompile(`^v?\d+(\.\d+)*$`)

// IsUpdateAvailable indicates if there is a newer application version available, and if so, what the new version is.
func IsUpdateAvailable() (bool, string, error) {
	currentVersionStr := FromBuild().Version
	if currentVersionStr == valueNotProvided {
		// this is the default build arg and should be ignored (this is not an error case)
		return false, "", nil
	}
	if !releaseVersionPattern.MatchString(currentVersionStr) {
		return false, "", fmt.Errorf("failed to parse current application version: %q", currentVersionStr)
	}

	latestVersion, err := fetchLatestApplicationVersion()
	if err != nil {
		return false, "", err
	}

	if mcVersion.NewVersion(latestVersion).Compare(mcVersion.NewVersion(currentVersionStr)) > 0 {
		return true, latestVersion, nil
	}

	return false, "", nil
}

func fetchLatestApplicationVersion() (string, error) {
	req, err := http.NewRequest(http.MethodGet, latestAppVersionURL.host+latestAppVersionURL.path, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request for latest version: %w", err)
	}

	client := cleanhttp.DefaultClient()
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch latest version: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d on fetching latest version: %s", resp.StatusCode, resp.Status)
	}

	versionBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read latest version: %w", err)
	}

	versionStr := strings.TrimSpace(string(versionBytes))
	if !releaseVersionPattern.MatchString(versionStr) {
		return "", fmt.Errorf("latest version is malformed: %q", versionStr)
	}
	return versionStr, nil
}
