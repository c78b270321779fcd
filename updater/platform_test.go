package updater

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setHostPlatform overrides the detected host platform for the duration of a test.
func setHostPlatform(t *testing.T, p Platform) {
	t.Helper()
	original := hostPlatform
	hostPlatform = p
	t.Cleanup(func() { hostPlatform = original })
}

func TestPlatformFromGOOS(t *testing.T) {
	tests := []struct {
		goos string
		want Platform
	}{
		{"windows", PlatformWindows},
		{"darwin", PlatformMac},
		{"linux", PlatformLinux},
		{"freebsd", PlatformUnsupported},
		{"plan9", PlatformUnsupported},
		{"", PlatformUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			assert.Equal(t, tt.want, PlatformFromGOOS(tt.goos))
		})
	}
}

func TestPlatformStringRoundTrip(t *testing.T) {
	for _, p := range Platforms {
		assert.Equal(t, p, ParsePlatform(p.String()))
	}
	assert.Equal(t, "unsupported", PlatformUnsupported.String())
	assert.Equal(t, PlatformUnsupported, ParsePlatform("beos"))
	assert.Equal(t, PlatformMac, ParsePlatform(" MAC "))
}

func TestGetRelease(t *testing.T) {
	releases := PlatformAssetMap{
		PlatformWindows: "https://x/app.exe",
		PlatformMac:     "https://x/app.dmg",
		PlatformLinux:   "https://x/app.tar.gz",
	}

	for _, p := range Platforms {
		t.Run(p.String(), func(t *testing.T) {
			setHostPlatform(t, p)

			got, err := GetRelease(releases)
			require.NoError(t, err)
			assert.Equal(t, releases[p], got)
		})
	}
}

func TestGetReleaseMissingHostAsset(t *testing.T) {
	setHostPlatform(t, PlatformLinux)

	_, err := GetRelease(PlatformAssetMap{PlatformWindows: "https://x/app.exe"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedPlatform)
	assert.Contains(t, err.Error(), "linux")
}

func TestGetReleaseUnsupportedHost(t *testing.T) {
	setHostPlatform(t, PlatformUnsupported)

	_, err := GetRelease(PlatformAssetMap{
		PlatformWindows: "https://x/app.exe",
		PlatformMac:     "https://x/app.dmg",
		PlatformLinux:   "https://x/app.tar.gz",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedPlatform)
}

func TestResolveEmptyMapAlwaysFails(t *testing.T) {
	empty := GetReleaseURLs(releaseWithURLs())

	for _, p := range append([]Platform{PlatformUnsupported}, Platforms...) {
		_, err := ResolvePlatformURL(empty, p)
		assert.ErrorIs(t, err, ErrUnsupportedPlatform, "platform %s", p)
	}
}
