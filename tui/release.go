package tui

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type releaseStyles struct {
	title      lipgloss.Style
	version    lipgloss.Style
	arrow      lipgloss.Style
	platform   lipgloss.Style
	url        lipgloss.Style
	host       lipgloss.Style
	help       lipgloss.Style
	spinnerMsg lipgloss.Style
}

func newReleaseStyles() releaseStyles {
	return releaseStyles{
		title:      PrimaryTitleStyle(),
		version:    PrimaryStyle().Bold(true),
		arrow:      SubtleTextStyle(),
		platform:   LabelStyle().Width(9),
		url:        PrimaryStyle(),
		host:       SuccessStyle(),
		help:       HelpStyle(),
		spinnerMsg: LabelStyle().Bold(false),
	}
}

// AssetRow is one classified release asset, in display order.
type AssetRow struct {
	Platform string
	URL      string
	Host     bool
}

func RenderUpToDate(repo, version string) string {
	InitCommonStyles(os.Stdout)
	return SuccessStyle().Render(fmt.Sprintf("✓ %s is up-to-date (%s)", repo, version))
}

func RenderUpdateAvailable(repo, currentVer, latestVer string) string {
	InitCommonStyles(os.Stdout)
	styles := newReleaseStyles()
	return fmt.Sprintf("%s %s %s %s",
		WarningStyle().Render(fmt.Sprintf("⚠ Update available for %s:", repo)),
		styles.version.Render(currentVer),
		styles.arrow.Render("→"),
		styles.version.Render(latestVer))
}

func RenderCheckSkipped(repo, reason string) string {
	InitCommonStyles(os.Stdout)
	return HelpStyle().Render(fmt.Sprintf("Update check for %s skipped (%s). Pass a current version to compare.", repo, reason))
}

func RenderReleaseLink(url string) string {
	if url == "" {
		return ""
	}
	InitCommonStyles(os.Stdout)
	return HelpStyle().Render("Release notes: " + url)
}

// RenderAssets lists classified assets; the host platform row is marked.
func RenderAssets(repo, tag string, rows []AssetRow) string {
	InitCommonStyles(os.Stdout)
	styles := newReleaseStyles()

	var b strings.Builder
	b.WriteString(styles.title.Render(fmt.Sprintf("%s %s", repo, tag)))
	b.WriteString("\n")
	if len(rows) == 0 {
		b.WriteString(styles.help.Render("  no downloadable assets published"))
		return b.String()
	}
	for i, row := range rows {
		marker := "  "
		if row.Host {
			marker = styles.host.Render("● ")
		}
		b.WriteString(marker)
		b.WriteString(styles.platform.Render(row.Platform))
		b.WriteString(styles.url.Render(row.URL))
		if i < len(rows)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func RenderDownloadComplete(path string) string {
	InitCommonStyles(os.Stdout)
	return SuccessStyle().Render(fmt.Sprintf("✓ Downloaded %s", path))
}

func RenderDownloadFailed(err error, releaseURL string) string {
	InitCommonStyles(os.Stdout)
	var content strings.Builder
	content.WriteString(ErrorStyle().Render(fmt.Sprintf("✗ Download failed: %v", err)))
	if releaseURL != "" {
		content.WriteString("\n")
		content.WriteString(HelpStyle().Render(fmt.Sprintf("You can download the release manually from: %s", releaseURL)))
	}
	return content.String()
}

// DownloadProgressModel shows a spinner while action runs.
type DownloadProgressModel struct {
	spinner  spinner.Model
	message  string
	quitting bool
	done     bool
	err      error
	action   func() error
	styles   releaseStyles
}

type downloadDoneMsg struct {
	err error
}

// ErrDownloadCancelled is returned when the user quits before the action finishes.
var ErrDownloadCancelled = errors.New("download cancelled")

func runDownloadAction(action func() error) tea.Cmd {
	return func() tea.Msg {
		return downloadDoneMsg{err: action()}
	}
}

func NewDownloadProgressModel(message string, action func() error) DownloadProgressModel {
	InitCommonStyles(os.Stdout)
	return DownloadProgressModel{
		spinner: NewPrimarySpinner(),
		message: message,
		action:  action,
		styles:  newReleaseStyles(),
	}
}

func (m DownloadProgressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, runDownloadAction(m.action))
}

func (m DownloadProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case downloadDoneMsg:
		m.done = true
		m.err = msg.err
		m.quitting = true
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			m.quitting = true
			m.err = ErrDownloadCancelled
			return m, tea.Quit
		}
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m DownloadProgressModel) View() string {
	if m.quitting || m.done {
		return ""
	}
	return fmt.Sprintf("%s %s\n", m.spinner.View(), m.styles.spinnerMsg.Render(m.message))
}

// Err reports the action's error, or a cancellation if the user quit first.
func (m DownloadProgressModel) Err() error {
	return m.err
}

func RunDownloadProgress(message string, action func() error) error {
	InitCommonStyles(os.Stdout)
	m := NewDownloadProgressModel(message, action)
	p := tea.NewProgram(m, tea.WithOutput(os.Stderr))
	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("error running download progress: %w", err)
	}

	result := finalModel.(DownloadProgressModel)
	return result.Err()
}
