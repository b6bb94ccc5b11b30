package cli

import (
	"fmt"
	"strings"

	"github.com/habitkit/habitkit/internal/ai"
	"github.com/habitkit/habitkit/internal/app"
	"github.com/habitkit/habitkit/internal/i18n"
	"github.com/habitkit/habitkit/internal/models"
)

type Context struct {
	State *app.State

	// Gateway builds the AI client lazily so commands that never talk to
	// the coach work without an API key.
	Gateway func() (*ai.Gateway, error)
}

// T translates a UI string using the active language setting.
func (c *Context) T(key string) string {
	return i18n.T(c.State.Settings.Language, key)
}

// FindHabitByRef resolves a habit by id first, then by case-insensitive title.
func FindHabitByRef(state *app.State, ref string) (*models.Habit, error) {
	if h := state.FindHabit(ref); h != nil {
		return h, nil
	}
	for i := range state.Habits {
		if strings.EqualFold(state.Habits[i].Title, ref) {
			return &state.Habits[i], nil
		}
	}
	return nil, fmt.Errorf("habit %q not found", ref)
}

// ParseCategory validates a category flag value.
func ParseCategory(s string) (models.Category, error) {
	cat := models.Category(strings.ToLower(strings.TrimSpace(s)))
	switch cat {
	case models.CategoryHealth, models.CategoryProductivity, models.CategoryMindfulness, models.CategoryCreative, models.CategoryOther:
		return cat, nil
	}
	return "", fmt.Errorf("invalid category: %s (expected health, productivity, mindfulness, creative, or other)", s)
}

// FormatDuration renders a whole number of seconds as 1h02m03s style text.
func FormatDuration(seconds int) string {
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%dh%02dm%02ds", h, m, s)
	}
	if m > 0 {
		return fmt.Sprintf("%dm%02ds", m, s)
	}
	return fmt.Sprintf("%ds", s)
}
