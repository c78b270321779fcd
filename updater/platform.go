package updater

import (
	"fmt"
	"runtime"
	"strings"
)

// Platform identifies an operating system family a release asset targets.
type Platform int

const (
	PlatformUnsupported Platform = iota
	PlatformWindows
	PlatformMac
	PlatformLinux
)

func (p Platform) String() string {
	switch p {
	case PlatformWindows:
		return "windows"
	case PlatformMac:
		return "mac"
	case PlatformLinux:
		return "linux"
	default:
		return "unsupported"
	}
}

// Platforms lists the recognized platforms in display order.
var Platforms = []Platform{PlatformWindows, PlatformMac, PlatformLinux}

// ParsePlatform maps a platform identifier ("windows", "mac", "linux") back to a Platform.
func ParsePlatform(s string) Platform {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "windows":
		return PlatformWindows
	case "mac":
		return PlatformMac
	case "linux":
		return PlatformLinux
	default:
		return PlatformUnsupported
	}
}

// PlatformFromGOOS maps a runtime.GOOS value to a Platform.
func PlatformFromGOOS(goos string) Platform {
	switch goos {
	case "windows":
		return PlatformWindows
	case "darwin":
		return PlatformMac
	case "linux":
		return PlatformLinux
	default:
		return PlatformUnsupported
	}
}

// hostPlatform is resolved once; tests swap it.
var hostPlatform = PlatformFromGOOS(runtime.GOOS)

// HostPlatform returns the platform of the running process.
func HostPlatform() Platform {
	return hostPlatform
}

// ResolvePlatformURL looks up the asset URL for p. An unsupported platform and a
// platform without a published asset both yield ErrUnsupportedPlatform.
func ResolvePlatformURL(releases PlatformAssetMap, p Platform) (string, error) {
	if p == PlatformUnsupported {
		return "", fmt.Errorf("%w: unrecognized host platform", ErrUnsupportedPlatform)
	}
	u, ok := releases[p]
	if !ok || u == "" {
		return "", fmt.Errorf("%w: no %s asset published", ErrUnsupportedPlatform, p)
	}
	return u, nil
}

// GetRelease returns the asset URL for the host platform without downloading it.
func GetRelease(releases PlatformAssetMap) (string, error) {
	return ResolvePlatformURL(releases, HostPlatform())
}
