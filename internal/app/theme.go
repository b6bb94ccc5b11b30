package app

import "github.com/habitkit/habitkit/internal/models"

// ApplyTheme replaces the current theme outright and persists it. Color
// values are passed through without validation.
func (s *State) ApplyTheme(theme models.Theme) error {
	s.Theme = theme
	return s.saveTheme()
}
