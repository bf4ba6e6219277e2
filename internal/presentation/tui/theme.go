package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/aretw0/parley/pkg/domain"
)

// Rail characters framing the session, one marker column wide.
const (
	RailBeg = "┌"
	RailBar = "│"
	RailEnd = "└"
)

// Theme maps prompt statuses to markers and styles. The marker column is
// what tells the user at a glance which steps are settled and which one is
// asking.
type Theme struct {
	Markers map[domain.PromptStatus]string
	Styles  map[domain.PromptStatus]lipgloss.Style

	Rail    lipgloss.Style
	Title   lipgloss.Style
	Summary lipgloss.Style
	Detail  lipgloss.Style
	Err     lipgloss.Style
	Cursor  lipgloss.Style
}

// DefaultTheme returns the stock look: blue active diamond, green settled
// diamond, yellow warning.
func DefaultTheme() Theme {
	return Theme{
		Markers: map[domain.PromptStatus]string{
			domain.PromptHidden:    " ",
			domain.PromptActive:    "◆",
			domain.PromptSuccess:   "◇",
			domain.PromptWarning:   "◈",
			domain.PromptCancelled: "◈",
		},
		Styles: map[domain.PromptStatus]lipgloss.Style{
			domain.PromptActive:    lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true),
			domain.PromptSuccess:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
			domain.PromptWarning:   lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
			domain.PromptCancelled: lipgloss.NewStyle().Foreground(lipgloss.Color("7")).Faint(true),
		},
		Rail:    lipgloss.NewStyle().Faint(true),
		Title:   lipgloss.NewStyle().Bold(true),
		Summary: lipgloss.NewStyle().Faint(true),
		Detail:  lipgloss.NewStyle().Foreground(lipgloss.Color("7")).Faint(true),
		Err:     lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		Cursor:  lipgloss.NewStyle().Reverse(true),
	}
}

// Marker returns the marker for a status, defaulting to a blank column.
func (t Theme) Marker(status domain.PromptStatus) string {
	if m, ok := t.Markers[status]; ok {
		return m
	}
	return " "
}

// Style returns the style for a status, defaulting to a no-op style.
func (t Theme) Style(status domain.PromptStatus) lipgloss.Style {
	if s, ok := t.Styles[status]; ok {
		return s
	}
	return lipgloss.NewStyle()
}
