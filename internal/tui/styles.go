package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/habitkit/habitkit/internal/models"
)

// Styles is derived from the active theme's six color roles so an applied
// theme immediately restyles the whole interface.
type Styles struct {
	ActiveTab   lipgloss.Style
	InactiveTab lipgloss.Style
	Title       lipgloss.Style
	Card        lipgloss.Style
	Streak      lipgloss.Style
	Muted       lipgloss.Style
	Danger      lipgloss.Style
	Timer       lipgloss.Style
	CoachUser   lipgloss.Style
	CoachModel  lipgloss.Style
	Doc         lipgloss.Style
}

func newStyles(theme models.Theme) Styles {
	c := theme.Colors
	return Styles{
		ActiveTab: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Surface)).
			Background(lipgloss.Color(c.Primary)).
			Padding(0, 1).
			Bold(true),
		InactiveTab: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Secondary)).
			Padding(0, 1),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Primary)).
			Bold(true),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(c.Secondary)).
			Padding(0, 1),
		Streak: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Accent)).
			Bold(true),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Secondary)),
		Danger: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
		Timer: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Accent)),
		CoachUser: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Text)).
			Bold(true),
		CoachModel: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Primary)),
		Doc: lipgloss.NewStyle().Padding(1, 2),
	}
}
