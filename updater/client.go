package updater

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
)

const (
	// DefaultBaseURL is the release provider's API root.
	DefaultBaseURL = "https://api.github.com"

	// UserAgent is sent on every request.
	UserAgent = "ghupdate (github.com/Thunder-Compute/ghupdate)"

	// RequestTimeout bounds each release lookup end to end. Downloads use it as a
	// connect, response-header and idle-read limit instead, so large assets that
	// keep streaming are never cut off.
	RequestTimeout = 10 * time.Second
)

// DefaultClient backs the package-level helpers.
var DefaultClient = NewClient(DefaultBaseURL)

type Client struct {
	baseURL        string
	httpClient     *http.Client
	downloadClient *http.Client

	// idleTimeout aborts a download once no bytes arrive for this long.
	idleTimeout time.Duration

	// Dir is where downloaded assets are written. Empty means the current working directory.
	Dir string
}

func NewClient(baseURL string) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	transport := newTransport()
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout:   RequestTimeout,
			Transport: transport,
		},
		downloadClient: &http.Client{
			Transport: transport,
		},
		idleTimeout: RequestTimeout,
	}
}

func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.DialContext = (&net.Dialer{
		Timeout:   RequestTimeout,
		KeepAlive: 30 * time.Second,
	}).DialContext
	t.TLSHandshakeTimeout = RequestTimeout
	t.ResponseHeaderTimeout = RequestTimeout
	return t
}

// BaseURL returns the API root the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Accept", "application/vnd.github+json")
}

func (c *Client) get(ctx context.Context, hc *http.Client, rawURL string) (*http.Response, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %w", ErrNetwork, err)
	}
	c.setHeaders(req)

	resp, err := hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: GET %s: %w", ErrNetwork, rawURL, err)
	}
	return resp, nil
}

// GetLatestRelease fetches the latest published release of author/repo.
func (c *Client) GetLatestRelease(ctx context.Context, author, repo string) (*ReleaseInfo, error) {
	author = strings.TrimSpace(author)
	repo = strings.TrimSpace(repo)
	if author == "" || repo == "" {
		return nil, fmt.Errorf("%w: owner and repository are required", ErrNotFound)
	}

	sentry.AddBreadcrumb(&sentry.Breadcrumb{
		Category: "updater",
		Message:  "get_latest_release",
		Data:     map[string]interface{}{"owner": author, "repo": repo},
		Level:    sentry.LevelInfo,
	})

	endpoint := fmt.Sprintf("%s/repos/%s/%s/releases/latest", c.baseURL, url.PathEscape(author), url.PathEscape(repo))
	debugf("release: GET %s", endpoint)

	resp, err := c.get(ctx, c.httpClient, endpoint)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%w: %s/%s has no published release", ErrNotFound, author, repo)
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("%w: http %d: %s (%s)", ErrNetwork, resp.StatusCode, resp.Status, strings.TrimSpace(string(body)))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read release body: %w", ErrNetwork, err)
	}

	release, err := ParseRelease(data)
	if err != nil {
		return nil, err
	}
	debugf("release: %s/%s tag=%s assets=%d", author, repo, release.TagName, len(release.Assets))
	return release, nil
}

// GetLatestRelease fetches the latest release using DefaultClient.
func GetLatestRelease(ctx context.Context, author, repo string) (*ReleaseInfo, error) {
	return DefaultClient.GetLatestRelease(ctx, author, repo)
}
