package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestRenderUpToDate(t *testing.T) {
	result := RenderUpToDate("acme/app", "v1.0.0")
	assert.Contains(t, result, "up-to-date")
	assert.Contains(t, result, "acme/app")
	assert.Contains(t, result, "v1.0.0")
}

func TestRenderUpdateAvailable(t *testing.T) {
	result := RenderUpdateAvailable("acme/app", "v1.0.0", "v2.0.0")
	assert.Contains(t, result, "Update available")
	assert.Contains(t, result, "v1.0.0")
	assert.Contains(t, result, "v2.0.0")
}

func TestRenderAssets(t *testing.T) {
	result := RenderAssets("acme/app", "v2.0.0", []AssetRow{
		{Platform: "windows", URL: "https://x/app.exe"},
		{Platform: "linux", URL: "https://x/app.tar.gz", Host: true},
	})
	assert.Contains(t, result, "acme/app v2.0.0")
	assert.Contains(t, result, "windows")
	assert.Contains(t, result, "https://x/app.exe")
	assert.Contains(t, result, "●")

	empty := RenderAssets("acme/app", "v2.0.0", nil)
	assert.Contains(t, empty, "no downloadable assets")
}

func TestRenderDownloadFailed(t *testing.T) {
	result := RenderDownloadFailed(errors.New("boom"), "https://github.com/acme/app/releases/tag/v2.0.0")
	assert.Contains(t, result, "Download failed: boom")
	assert.Contains(t, result, "releases/tag/v2.0.0")

	assert.NotContains(t, RenderDownloadFailed(errors.New("boom"), ""), "manually")
}

func TestRenderReleaseLinkEmpty(t *testing.T) {
	assert.Empty(t, RenderReleaseLink(""))
}

func TestDownloadProgressModelFinishes(t *testing.T) {
	m := NewDownloadProgressModel("Downloading", func() error { return nil })

	next, cmd := m.Update(downloadDoneMsg{err: errors.New("write failed")})
	assert.NotNil(t, cmd)

	final := next.(DownloadProgressModel)
	assert.True(t, final.done)
	assert.EqualError(t, final.Err(), "write failed")
	assert.Empty(t, final.View())
}

func TestDownloadProgressModelCancel(t *testing.T) {
	m := NewDownloadProgressModel("Downloading", func() error { return nil })
	assert.Contains(t, m.View(), "Downloading")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	assert.ErrorIs(t, next.(DownloadProgressModel).Err(), ErrDownloadCancelled)
}
