package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/Thunder-Compute/ghupdate/internal/config"
	"github.com/Thunder-Compute/ghupdate/internal/testutils"
	"github.com/Thunder-Compute/ghupdate/internal/updatecheck"
	"github.com/Thunder-Compute/ghupdate/tui"
	"github.com/Thunder-Compute/ghupdate/updater"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGitHubServer(t *testing.T, tag string) *testutils.GitHubServer {
	t.Helper()
	return testutils.NewGitHubServer(t, "acme", "app", tag, "app.exe", "app.dmg", "app-linux.tar.gz")
}

// setupCommand points config at srv and restores flag state afterwards.
func setupCommand(t *testing.T, srv *testutils.GitHubServer) {
	t.Helper()
	cleanup := config.ResetForTesting(t)
	t.Cleanup(cleanup)
	require.NoError(t, config.ApplyOverrides(map[string]any{config.KeyAPIURL: srv.URL}))

	t.Cleanup(func() {
		checkJSON = false
		assetsJSON = false
		urlPlatform = ""
		downloadDir = ""
		downloadQuiet = false
		downloadPlatform = ""
	})
}

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"check", "assets", "url", "download", "completion"} {
		assert.True(t, names[want], "missing command %s", want)
	}

	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("api-url"))
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("config"))
	assert.NotNil(t, checkCmd.Flags().Lookup("json"))
	assert.NotNil(t, urlCmd.Flags().Lookup("platform"))
	assert.NotNil(t, downloadCmd.Flags().Lookup("dir"))
	assert.NotNil(t, downloadCmd.Flags().Lookup("quiet"))
}

func TestRepoArgs(t *testing.T) {
	validate := repoArgs(1)

	assert.NoError(t, validate(checkCmd, nil))
	assert.NoError(t, validate(checkCmd, []string{"acme", "app"}))
	assert.NoError(t, validate(checkCmd, []string{"acme", "app", "1.0.0"}))
	assert.Error(t, validate(checkCmd, []string{"acme"}))
	assert.Error(t, validate(checkCmd, []string{"acme", "app", "1.0.0", "extra"}))
}

func TestResolveRepoFallsBackToConfig(t *testing.T) {
	defer config.ResetForTesting(t)()

	_, _, err := resolveRepo(nil)
	require.Error(t, err)

	require.NoError(t, config.ApplyOverrides(map[string]any{
		config.KeyOwner: "acme",
		config.KeyRepo:  "app",
	}))
	owner, repo, err := resolveRepo(nil)
	require.NoError(t, err)
	assert.Equal(t, "acme", owner)
	assert.Equal(t, "app", repo)

	owner, repo, err = resolveRepo([]string{"other", "tool"})
	require.NoError(t, err)
	assert.Equal(t, "other", owner)
	assert.Equal(t, "tool", repo)
}

func TestTargetPlatform(t *testing.T) {
	p, err := targetPlatform("")
	require.NoError(t, err)
	assert.Equal(t, updater.HostPlatform(), p)

	p, err = targetPlatform("Windows")
	require.NoError(t, err)
	assert.Equal(t, updater.PlatformWindows, p)

	_, err = targetPlatform("plan9")
	assert.Error(t, err)
}

func TestDisplayVersion(t *testing.T) {
	assert.Equal(t, "v1.2.3", displayVersion("1.2.3"))
	assert.Equal(t, "v1.2.3", displayVersion("v1.2.3"))
	assert.Equal(t, "unknown", displayVersion("  "))
}

func TestGetErrorType(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{fmt.Errorf("%w: acme/app", updater.ErrNotFound), "not_found"},
		{fmt.Errorf("wrap: %w", updater.ErrUnsupportedPlatform), "platform_error"},
		{fmt.Errorf("%w: bad tag", updater.ErrParse), "parsing_error"},
		{fmt.Errorf("%w: disk full", updater.ErrIO), "io_error"},
		{fmt.Errorf("%w: reset", updater.ErrNetwork), "network_error"},
		{context.DeadlineExceeded, "network_error"},
		{errors.New("load config: bad yaml"), "config_error"},
		{errors.New("owner and repository are required"), "usage_error"},
		{errors.New("boom"), "unknown_error"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, getErrorType(tt.err), tt.err.Error())
	}
}

func TestCaptureCommandErrorWithoutSentry(t *testing.T) {
	assert.NotPanics(t, func() {
		CaptureCommandError(checkCmd, errors.New("boom"))
		CaptureCommandError(downloadCmd, tui.ErrDownloadCancelled)
		CaptureCommandError(nil, errors.New("boom"))
	})
}

func TestRunCheckOutdated(t *testing.T) {
	srv := newGitHubServer(t, "v1.2.0")
	setupCommand(t, srv)

	var out bytes.Buffer
	require.NoError(t, runCheck(context.Background(), &out, []string{"acme", "app", "1.0.0"}))
	assert.Contains(t, out.String(), "Update available for acme/app")
	assert.Contains(t, out.String(), "v1.2.0")
	assert.Contains(t, out.String(), srv.ReleasePage())
	assert.Equal(t, 1, srv.ReleaseHits())
}

func TestRunCheckUpToDate(t *testing.T) {
	srv := newGitHubServer(t, "v1.2.0")
	setupCommand(t, srv)

	var out bytes.Buffer
	require.NoError(t, runCheck(context.Background(), &out, []string{"acme", "app", "v1.2.0"}))
	assert.Contains(t, out.String(), "acme/app is up-to-date")
}

func TestRunCheckUsesConfiguredVersion(t *testing.T) {
	srv := newGitHubServer(t, "v2.0.0")
	setupCommand(t, srv)
	require.NoError(t, config.ApplyOverrides(map[string]any{
		config.KeyOwner:          "acme",
		config.KeyRepo:           "app",
		config.KeyCurrentVersion: "1.9.9",
	}))
	checkJSON = true

	var out bytes.Buffer
	require.NoError(t, runCheck(context.Background(), &out, nil))

	var res updatecheck.Result
	require.NoError(t, json.Unmarshal(out.Bytes(), &res))
	assert.True(t, res.Outdated)
	assert.Equal(t, "1.9.9", res.CurrentVersion)
	assert.Equal(t, "2.0.0", res.LatestVersion)
	assert.Equal(t, srv.AssetURL("app.exe"), res.Assets["windows"])
}

func TestRunCheckSkippedWithoutVersion(t *testing.T) {
	srv := newGitHubServer(t, "v1.0.0")
	setupCommand(t, srv)

	var out bytes.Buffer
	require.NoError(t, runCheck(context.Background(), &out, []string{"acme", "app"}))
	assert.Contains(t, out.String(), "skipped")
	assert.Zero(t, srv.ReleaseHits())
}

func TestRunCheckNotFound(t *testing.T) {
	srv := newGitHubServer(t, "v1.0.0")
	setupCommand(t, srv)

	err := runCheck(context.Background(), &bytes.Buffer{}, []string{"acme", "missing", "1.0.0"})
	require.Error(t, err)
	assert.ErrorIs(t, err, updater.ErrNotFound)
}

func TestRunAssetsJSON(t *testing.T) {
	srv := newGitHubServer(t, "v1.0.0")
	setupCommand(t, srv)
	assetsJSON = true

	var out bytes.Buffer
	require.NoError(t, runAssets(context.Background(), &out, []string{"acme", "app"}))

	var got map[string]string
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, map[string]string{
		"windows": srv.AssetURL("app.exe"),
		"mac":     srv.AssetURL("app.dmg"),
		"linux":   srv.AssetURL("app-linux.tar.gz"),
	}, got)
}

func TestRunAssetsTable(t *testing.T) {
	srv := newGitHubServer(t, "v1.0.0")
	setupCommand(t, srv)

	var out bytes.Buffer
	require.NoError(t, runAssets(context.Background(), &out, []string{"acme", "app"}))
	assert.Contains(t, out.String(), "v1.0.0")
	assert.Contains(t, out.String(), srv.AssetURL("app.dmg"))
}

func TestRunURL(t *testing.T) {
	srv := newGitHubServer(t, "v1.0.0")
	setupCommand(t, srv)
	urlPlatform = "mac"

	var out bytes.Buffer
	require.NoError(t, runURL(context.Background(), &out, []string{"acme", "app"}))
	assert.Equal(t, srv.AssetURL("app.dmg")+"\n", out.String())
}

func TestRunURLRejectsUnknownPlatform(t *testing.T) {
	srv := newGitHubServer(t, "v1.0.0")
	setupCommand(t, srv)
	urlPlatform = "amiga"

	err := runURL(context.Background(), &bytes.Buffer{}, []string{"acme", "app"})
	assert.Error(t, err)
}

func TestRunDownloadQuiet(t *testing.T) {
	srv := newGitHubServer(t, "v1.0.0")
	setupCommand(t, srv)

	dir := t.TempDir()
	downloadDir = dir
	downloadQuiet = true
	downloadPlatform = "linux"

	var out bytes.Buffer
	require.NoError(t, runDownload(context.Background(), &out, []string{"acme", "app"}))
	assert.Contains(t, out.String(), "Downloaded")

	data, err := os.ReadFile(filepath.Join(dir, "app-linux.tar.gz"))
	require.NoError(t, err)
	assert.Equal(t, testutils.AssetBody("app-linux.tar.gz"), data)
}

func TestRunDownloadMissingRelease(t *testing.T) {
	srv := newGitHubServer(t, "v1.0.0")
	setupCommand(t, srv)
	downloadQuiet = true
	downloadDir = t.TempDir()

	err := runDownload(context.Background(), &bytes.Buffer{}, []string{"acme", "missing"})
	assert.ErrorIs(t, err, updater.ErrNotFound)
}

func TestLoadConfigFromFlag(t *testing.T) {
	srv := newGitHubServer(t, "v3.1.0")
	env := testutils.SetupTestEnvironment(t)
	defer env.Cleanup()
	env.WriteConfig(t, "owner: acme\nrepo: app\napi-url: "+srv.URL+"\n")

	// start from an uninitialized config so loadConfig sees the flag
	cleanup := config.ResetForTesting(t)
	cleanup()
	t.Cleanup(cleanup)
	t.Setenv("HOME", t.TempDir())
	testutils.Chdir(t, t.TempDir())

	configPathFlag = env.ConfigFile
	t.Cleanup(func() {
		configPathFlag = ""
		urlPlatform = ""
	})

	require.NoError(t, loadConfig())
	assert.Equal(t, srv.URL, config.GetString(config.KeyAPIURL))

	urlPlatform = "windows"
	var out bytes.Buffer
	require.NoError(t, runURL(context.Background(), &out, nil))
	assert.Equal(t, srv.AssetURL("app.exe")+"\n", out.String())
}
