package updater

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// ReleaseInfo is the subset of the "latest release" payload this package reads.
type ReleaseInfo struct {
	TagName     string    `json:"tag_name"`
	Name        string    `json:"name"`
	HTMLURL     string    `json:"html_url"`
	Draft       bool      `json:"draft"`
	Prerelease  bool      `json:"prerelease"`
	PublishedAt time.Time `json:"published_at"`
	Assets      []Asset   `json:"assets"`
}

// Asset is a downloadable file attached to a release.
type Asset struct {
	Name               string `json:"name"`
	ContentType        string `json:"content_type"`
	Size               int64  `json:"size"`
	BrowserDownloadURL string `json:"browser_download_url"`
}

// DownloadURLs returns the asset download URLs in payload order.
func (r *ReleaseInfo) DownloadURLs() []string {
	if r == nil {
		return nil
	}
	urls := make([]string, 0, len(r.Assets))
	for _, a := range r.Assets {
		urls = append(urls, a.BrowserDownloadURL)
	}
	return urls
}

// ParseRelease decodes a release payload and rejects it unless it carries a tag name
// and every asset has a download URL.
func ParseRelease(data []byte) (*ReleaseInfo, error) {
	var release ReleaseInfo
	if err := json.Unmarshal(data, &release); err != nil {
		return nil, fmt.Errorf("%w: decode release: %w", ErrParse, err)
	}
	if err := release.validate(); err != nil {
		return nil, err
	}
	return &release, nil
}

func (r *ReleaseInfo) validate() error {
	if strings.TrimSpace(r.TagName) == "" {
		return fmt.Errorf("%w: release payload missing tag_name", ErrParse)
	}
	for i, a := range r.Assets {
		if strings.TrimSpace(a.BrowserDownloadURL) == "" {
			return fmt.Errorf("%w: asset %d (%q) missing browser_download_url", ErrParse, i, a.Name)
		}
	}
	return nil
}
