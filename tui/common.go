package tui

import (
	"io"

	"github.com/Thunder-Compute/ghupdate/tui/theme"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
)

var (
	helpStyleTUI    lipgloss.Style
	errorStyleTUI   lipgloss.Style
	warningStyleTUI lipgloss.Style
	successStyle    lipgloss.Style

	primaryStyle      lipgloss.Style
	primaryTitleStyle lipgloss.Style
	labelStyle        lipgloss.Style
	subtleTextStyle   lipgloss.Style
)

func InitCommonStyles(out io.Writer) {
	theme.Init(out)

	helpStyleTUI = theme.Neutral().Italic(true)
	errorStyleTUI = theme.Error()
	warningStyleTUI = theme.Warning()
	successStyle = theme.Success()

	primaryStyle = theme.Primary()
	primaryTitleStyle = primaryStyle.Bold(true)
	labelStyle = theme.Label()
	subtleTextStyle = theme.Neutral()
}

func RenderWarning(message string) string {
	if message == "" {
		return ""
	}
	return warningStyleTUI.Render("⚠ Warning: " + message)
}

func RenderError(err error) string {
	if err == nil {
		return ""
	}
	return errorStyleTUI.Render("✗ Error: " + err.Error())
}

func PrimaryStyle() lipgloss.Style      { return primaryStyle }
func PrimaryTitleStyle() lipgloss.Style { return primaryTitleStyle }
func LabelStyle() lipgloss.Style        { return labelStyle }
func SubtleTextStyle() lipgloss.Style   { return subtleTextStyle }
func HelpStyle() lipgloss.Style         { return helpStyleTUI }
func WarningStyle() lipgloss.Style      { return warningStyleTUI }
func SuccessStyle() lipgloss.Style      { return successStyle }
func ErrorStyle() lipgloss.Style        { return errorStyleTUI }

func NewPrimarySpinner() spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = primaryStyle
	return s
}
