package updater

import "strings"

// PlatformAssetMap holds at most one download URL per platform.
type PlatformAssetMap map[Platform]string

var macMarkers = []string{".dmg", ".intel", "macos", "osx"}

// ClassifyAsset picks the platform for a single download URL. Anything that is not
// recognizably Windows or macOS is treated as Linux.
func ClassifyAsset(url string) Platform {
	l := strings.ToLower(url)
	if strings.Contains(l, ".exe") {
		return PlatformWindows
	}
	for _, m := range macMarkers {
		if strings.Contains(l, m) {
			return PlatformMac
		}
	}
	return PlatformLinux
}

// GetReleaseURLs classifies every asset of the release. When several assets land in
// the same platform, the last one in payload order wins.
func GetReleaseURLs(data *ReleaseInfo) PlatformAssetMap {
	releases := PlatformAssetMap{}
	for _, u := range data.DownloadURLs() {
		releases[ClassifyAsset(u)] = u
	}
	return releases
}

// Keys returns the platforms present in display order.
func (m PlatformAssetMap) Keys() []Platform {
	keys := make([]Platform, 0, len(m))
	for _, p := range Platforms {
		if _, ok := m[p]; ok {
			keys = append(keys, p)
		}
	}
	return keys
}

// ByName returns the map keyed by platform identifier, for JSON output.
func (m PlatformAssetMap) ByName() map[string]string {
	out := make(map[string]string, len(m))
	for p, u := range m {
		out[p.String()] = u
	}
	return out
}
