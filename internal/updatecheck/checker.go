package updatecheck

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Thunder-Compute/ghupdate/updater"
)

// ReleaseFetcher retrieves the latest release of a repository.
type ReleaseFetcher interface {
	GetLatestRelease(ctx context.Context, owner, repo string) (*updater.ReleaseInfo, error)
}

// Result describes the outcome of an update check.
type Result struct {
	Owner          string            `json:"owner"`
	Repo           string            `json:"repo"`
	CurrentVersion string            `json:"current_version"`
	LatestVersion  string            `json:"latest_version,omitempty"`
	LatestTag      string            `json:"latest_tag,omitempty"`
	ReleaseURL     string            `json:"release_url,omitempty"`
	CheckedAt      time.Time         `json:"checked_at"`
	Outdated       bool              `json:"outdated"`
	Skipped        bool              `json:"skipped"`
	Reason         string            `json:"reason,omitempty"`
	Assets         map[string]string `json:"assets,omitempty"`
	HostPlatform   string            `json:"host_platform"`
	HostAsset      string            `json:"host_asset,omitempty"`
}

// Check fetches the latest release of owner/repo and compares it against current.
// Development builds and empty versions are skipped without touching the network.
func Check(ctx context.Context, fetcher ReleaseFetcher, owner, repo, current string) (Result, error) {
	res := Result{
		Owner:          owner,
		Repo:           repo,
		CurrentVersion: strings.TrimSpace(current),
		CheckedAt:      time.Now(),
		HostPlatform:   updater.HostPlatform().String(),
	}

	if res.CurrentVersion == "" || strings.EqualFold(res.CurrentVersion, "dev") {
		res.Skipped = true
		res.Reason = "development-build"
		return res, nil
	}

	release, err := fetcher.GetLatestRelease(ctx, owner, repo)
	if err != nil {
		return res, fmt.Errorf("fetch latest release: %w", err)
	}

	res.LatestTag = release.TagName
	res.ReleaseURL = release.HTMLURL

	releases := updater.GetReleaseURLs(release)
	res.Assets = releases.ByName()
	if u, err := updater.GetRelease(releases); err == nil {
		res.HostAsset = u
	}

	latest, err := updater.LatestVersion(release)
	if err != nil {
		return res, err
	}
	res.LatestVersion = latest.String()

	outdated, err := updater.CheckForUpdate(release, res.CurrentVersion)
	if err != nil {
		return res, err
	}
	res.Outdated = outdated
	if outdated {
		res.Reason = "new-version"
	}
	return res, nil
}
