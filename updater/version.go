package updater

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// CheckForUpdate reports whether the release's tag is a strictly newer semantic
// version than current.
func CheckForUpdate(data *ReleaseInfo, current string) (bool, error) {
	latest, err := LatestVersion(data)
	if err != nil {
		return false, err
	}
	cur, err := parseVersion(current)
	if err != nil {
		return false, err
	}
	debugf("version: latest=%s current=%s", latest, cur)
	return latest.GreaterThan(cur), nil
}

// LatestVersion parses the release tag as a semantic version.
func LatestVersion(data *ReleaseInfo) (*semver.Version, error) {
	if data == nil {
		return nil, fmt.Errorf("%w: no release data", ErrParse)
	}
	return parseVersion(stripTagPrefix(data.TagName))
}

// stripTagPrefix drops a single leading "v" from a release tag.
func stripTagPrefix(tag string) string {
	return strings.TrimPrefix(strings.TrimSpace(tag), "v")
}

func parseVersion(v string) (*semver.Version, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil, fmt.Errorf("%w: empty version", ErrParse)
	}
	parsed, err := semver.NewVersion(v)
	if err != nil {
		return nil, fmt.Errorf("%w: version %q: %w", ErrParse, v, err)
	}
	return parsed, nil
}
