package tui

import (
	"testing"

	"github.com/habitkit/habitkit/internal/i18n"
	"github.com/habitkit/habitkit/internal/models"
)

func TestNewHabitFormRestoresDraft(t *testing.T) {
	draft := models.HabitDraft{
		Title:    "Morning run",
		Goal:     "5km before work",
		Category: models.CategoryHealth,
	}

	var fm HabitFormModel
	form := newHabitForm(draft, &fm, func(key string) string {
		return i18n.T(models.LanguageEnglish, key)
	})
	if form == nil {
		t.Fatal("expected a form")
	}

	if fm.Title != draft.Title {
		t.Errorf("Title = %q, want %q", fm.Title, draft.Title)
	}
	if fm.Goal != draft.Goal {
		t.Errorf("Goal = %q, want %q", fm.Goal, draft.Goal)
	}
	if fm.Category != string(draft.Category) {
		t.Errorf("Category = %q, want %q", fm.Category, draft.Category)
	}

	// the form values must convert back into a storable draft unchanged
	saved := models.HabitDraft{
		Title:    fm.Title,
		Goal:     fm.Goal,
		Category: models.Category(fm.Category),
	}
	if saved != draft {
		t.Errorf("round-tripped draft = %+v, want %+v", saved, draft)
	}
}

func TestNewHabitFormDefaultsCategory(t *testing.T) {
	var fm HabitFormModel
	newHabitForm(models.HabitDraft{}, &fm, func(key string) string { return key })

	if fm.Category != string(models.CategoryOther) {
		t.Errorf("Category = %q, want %q", fm.Category, models.CategoryOther)
	}
}
