package updater

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/getsentry/sentry-go"
)

// DownloadRelease downloads the host platform's asset into c.Dir and returns the
// path written.
func (c *Client) DownloadRelease(ctx context.Context, releases PlatformAssetMap) (string, error) {
	u, err := GetRelease(releases)
	if err != nil {
		return "", err
	}
	return c.Download(ctx, u)
}

// DownloadRelease downloads the host platform's asset into the current working
// directory using DefaultClient.
func DownloadRelease(ctx context.Context, releases PlatformAssetMap) (string, error) {
	return DefaultClient.DownloadRelease(ctx, releases)
}

// Download fetches rawURL and writes the body to a file named after the URL's final
// path segment, replacing any existing file of that name.
func (c *Client) Download(ctx context.Context, rawURL string) (string, error) {
	name, err := assetFileName(rawURL)
	if err != nil {
		return "", err
	}
	dest := name
	if c.Dir != "" {
		dest = filepath.Join(c.Dir, name)
	}

	sentry.AddBreadcrumb(&sentry.Breadcrumb{
		Category: "updater",
		Message:  "download_release",
		Data:     map[string]interface{}{"url": rawURL},
		Level:    sentry.LevelInfo,
	})
	debugf("download: GET %s -> %s", rawURL, dest)

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// The idle timer covers the wait for headers and every gap between body reads.
	var stalled atomic.Bool
	idle := time.AfterFunc(c.idleTimeout, func() {
		stalled.Store(true)
		cancel()
	})
	defer idle.Stop()

	resp, err := c.get(ctx, c.downloadClient, rawURL)
	if err != nil {
		if stalled.Load() {
			return "", fmt.Errorf("%w: %s: no response within %s: %w", ErrNetwork, rawURL, c.idleTimeout, err)
		}
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: download %s failed with status %d", ErrNetwork, rawURL, resp.StatusCode)
	}

	out, err := os.Create(dest)
	if err != nil {
		return "", fmt.Errorf("%w: create %q: %w", ErrIO, dest, err)
	}
	defer out.Close()

	src := &trackedReader{r: resp.Body, idle: idle, limit: c.idleTimeout}
	n, err := io.Copy(out, src)
	if err != nil {
		if stalled.Load() {
			return "", fmt.Errorf("%w: read %s: no data for %s: %w", ErrNetwork, rawURL, c.idleTimeout, err)
		}
		if src.err != nil {
			return "", fmt.Errorf("%w: read %s: %w", ErrNetwork, rawURL, err)
		}
		return "", fmt.Errorf("%w: write %q: %w", ErrIO, dest, err)
	}
	if err := out.Close(); err != nil {
		return "", fmt.Errorf("%w: close %q: %w", ErrIO, dest, err)
	}

	debugf("download: wrote %d bytes to %s", n, dest)
	return dest, nil
}

// assetFileName returns the final path segment of rawURL, still percent-encoded.
// A path ending in "/" has an empty final segment and is rejected.
func assetFileName(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("%w: invalid download url %q: %w", ErrIO, rawURL, err)
	}
	p := u.EscapedPath()
	name := p[strings.LastIndex(p, "/")+1:]
	if name == "" || name == "." || name == ".." || filepath.Base(name) != name {
		return "", fmt.Errorf("%w: download url %q has no file name", ErrIO, rawURL)
	}
	return name, nil
}

// trackedReader remembers read errors so they can be told apart from write errors,
// and pushes back the idle deadline whenever bytes arrive.
type trackedReader struct {
	r     io.Reader
	err   error
	idle  *time.Timer
	limit time.Duration
}

func (t *trackedReader) Read(p []byte) (int, error) {
	n, err := t.r.Read(p)
	if n > 0 && t.idle != nil {
		t.idle.Reset(t.limit)
	}
	if err != nil && err != io.EOF {
		t.err = err
	}
	return n, err
}
