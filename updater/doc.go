// Package updater checks a GitHub repository's latest release against a known
// version and fetches the release asset built for the running platform.
//
// The flow is linear: GetLatestRelease, then CheckForUpdate and GetReleaseURLs on
// the result, then either GetRelease for the URL or DownloadRelease to write the
// asset into the working directory.
package updater
