package app

import (
	"github.com/habitkit/habitkit/internal/constants"
	"github.com/habitkit/habitkit/internal/models"
)

// UpdateSettings applies the given patches in order and persists the record.
// The first failing patch aborts the update; earlier patches in the same
// call are not rolled back in memory but are only persisted on full success.
func (s *State) UpdateSettings(patches ...models.SettingsPatch) error {
	for _, p := range patches {
		if err := p.Apply(&s.Settings); err != nil {
			return err
		}
	}
	return s.saveSettings()
}

// SaveDraft persists the in-progress new-habit form under its own key.
func (s *State) SaveDraft(d models.HabitDraft) error {
	return s.store.Put(constants.KeyHabitDraft, d)
}

// LoadDraft returns the persisted new-habit draft, if one exists.
func (s *State) LoadDraft() (models.HabitDraft, bool) {
	var d models.HabitDraft
	found, err := s.store.Get(constants.KeyHabitDraft, &d)
	if err != nil || !found {
		return models.HabitDraft{}, false
	}
	return d, true
}

// ClearDraft discards the persisted new-habit draft.
func (s *State) ClearDraft() error {
	return s.store.Delete(constants.KeyHabitDraft)
}
