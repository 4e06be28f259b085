package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette. Use these instead of inline lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: project, module and file names.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for created files.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for renamed files.
	ColorYellow = lipgloss.Color("220")

	// ColorRed is used for removed variant files.
	ColorRed = lipgloss.Color("196")

	// ColorBoldRed is used for failures (matches ERROR level).
	ColorBoldRed = lipgloss.Color("204")

	// ColorGreenCheck is used for the completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for borders, tree branches and other chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns (names, paths, template keys).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleAction styles action verbs (copy, rewrite, rename, delete).
	StyleAction = lipgloss.NewStyle().Bold(true)

	// StyleDim styles structural chrome.
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)
)

// Styles groups the styles used by the tree renderer.
type Styles struct {
	Bold   lipgloss.Style
	Muted  lipgloss.Style
	Branch lipgloss.Style
}

// GetStyles returns the tree styles.
func GetStyles() Styles {
	return Styles{
		Bold:   lipgloss.NewStyle().Bold(true),
		Muted:  lipgloss.NewStyle().Foreground(ColorDimGray),
		Branch: lipgloss.NewStyle().Foreground(ColorDimGray),
	}
}

// Plan step statuses.
const (
	StatusCopied    = "copied"
	StatusRewritten = "rewritten"
	StatusRenamed   = "renamed"
	StatusDeleted   = "deleted"
	StatusPlanned   = "planned"
	StatusFailed    = "failed"
)

// StatusStyle returns the style for a plan step status.
// Unknown statuses return an unstyled default.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case StatusCopied, StatusRewritten:
		return lipgloss.NewStyle().Foreground(ColorGreen)
	case StatusRenamed:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case StatusDeleted:
		return lipgloss.NewStyle().Foreground(ColorRed)
	case StatusPlanned:
		return lipgloss.NewStyle().Faint(true)
	case StatusFailed:
		return lipgloss.NewStyle().Bold(true).Foreground(ColorBoldRed)
	default:
		return lipgloss.NewStyle()
	}
}

// minPathColumnWidth keeps status words aligned across lines.
const minPathColumnWidth = 48

// FormatStepLine renders one plan step: a dim verb, the path in cyan and a
// right-aligned status.
func FormatStepLine(verb, path, status string) string {
	padding := minPathColumnWidth - len(path)
	if padding < 2 {
		padding = 2
	}

	return StyleDim.Render(fmt.Sprintf("%-9s", verb)) +
		StyleNoun.Render(path) +
		strings.Repeat(" ", padding) +
		StatusStyle(status).Render(status)
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}
