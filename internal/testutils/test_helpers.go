package testutils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path"
	"path/filepath"
	"sync/atomic"
	"testing"
)

type TestEnvironment struct {
	TempDir    string
	ConfigDir  string
	ConfigFile string
	Cleanup    func()
}

// SetupTestEnvironment creates a scratch project with an empty .ghupdate directory.
func SetupTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()
	tmpDir := t.TempDir()
	configDir := filepath.Join(tmpDir, ".ghupdate")

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("Failed to create config directory: %v", err)
	}

	return &TestEnvironment{
		TempDir:    tmpDir,
		ConfigDir:  configDir,
		ConfigFile: filepath.Join(configDir, "config.yaml"),
		Cleanup:    func() {},
	}
}

// WriteConfig replaces the project config file with content.
func (e *TestEnvironment) WriteConfig(t *testing.T, content string) {
	t.Helper()
	if err := os.WriteFile(e.ConfigFile, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
}

// GitHubServer is a fake release API serving one repository.
type GitHubServer struct {
	*httptest.Server

	Owner string
	Repo  string
	Tag   string

	releaseHits atomic.Int32
}

// NewGitHubServer serves owner/repo's latest release with tag. Each asset name is
// published under /dl/<name> on the same server and its body is "asset:<name>".
// Any other repository answers 404.
func NewGitHubServer(t *testing.T, owner, repo, tag string, assets ...string) *GitHubServer {
	t.Helper()
	gh := &GitHubServer{Owner: owner, Repo: repo, Tag: tag}

	mux := http.NewServeMux()
	gh.Server = httptest.NewServer(mux)
	t.Cleanup(gh.Close)

	mux.HandleFunc("/repos/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != path.Join("/repos", owner, repo, "releases", "latest") {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"Not Found"}`))
			return
		}
		gh.releaseHits.Add(1)

		type asset struct {
			Name               string `json:"name"`
			BrowserDownloadURL string `json:"browser_download_url"`
		}
		payload := struct {
			TagName string  `json:"tag_name"`
			HTMLURL string  `json:"html_url"`
			Assets  []asset `json:"assets"`
		}{
			TagName: tag,
			HTMLURL: gh.ReleasePage(),
			Assets:  []asset{},
		}
		for _, name := range assets {
			payload.Assets = append(payload.Assets, asset{Name: name, BrowserDownloadURL: gh.AssetURL(name)})
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(payload)
	})
	mux.HandleFunc("/dl/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/octet-stream")
		_, _ = w.Write(AssetBody(path.Base(r.URL.Path)))
	})
	return gh
}

// AssetURL is the download URL the server publishes for name.
func (g *GitHubServer) AssetURL(name string) string {
	return g.URL + "/dl/" + name
}

// ReleasePage is the html_url reported for the release.
func (g *GitHubServer) ReleasePage() string {
	return "https://github.com/" + g.Owner + "/" + g.Repo + "/releases/tag/" + g.Tag
}

// ReleaseHits reports how many times the latest-release endpoint was served.
func (g *GitHubServer) ReleaseHits() int {
	return int(g.releaseHits.Load())
}

// AssetBody is the content served for an asset name.
func AssetBody(name string) []byte {
	return []byte("asset:" + name)
}
