package updater

import "errors"

// Error kinds returned by this package. Every error is wrapped around one of these,
// so callers can classify failures with errors.Is and still read the root cause.
var (
	// ErrNetwork is returned when a request fails, times out, or gets an unexpected status.
	ErrNetwork = errors.New("network error")

	// ErrNotFound is returned when the repository or its latest release does not exist.
	ErrNotFound = errors.New("release not found")

	// ErrParse is returned for malformed release payloads and invalid version strings.
	ErrParse = errors.New("parse error")

	// ErrUnsupportedPlatform is returned when the host platform is not recognized or
	// the release publishes no asset for it. The two cases share this one kind.
	ErrUnsupportedPlatform = errors.New("no release available for your platform")

	// ErrIO is returned when the downloaded asset cannot be written to disk.
	ErrIO = errors.New("io error")
)
