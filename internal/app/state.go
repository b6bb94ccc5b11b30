// Package app owns the in-memory application state: the habit ledger, daily
// log ledger, theme store, conversation store, and user settings. All
// mutations are synchronous and each one is mirrored to the persistence
// provider with an explicit save; the store holds no independent authority.
package app

import (
	"fmt"
	"time"

	"github.com/habitkit/habitkit/internal/constants"
	"github.com/habitkit/habitkit/internal/models"
	"github.com/habitkit/habitkit/internal/storage"
)

type State struct {
	Habits   []models.Habit
	Logs     []models.DailyLog
	Theme    models.Theme
	Chat     []models.ChatMessage
	Settings models.UserSettings

	store storage.Provider
	now   func() time.Time
}

func New(store storage.Provider) *State {
	return &State{
		store: store,
		now:   time.Now,
	}
}

// Load reads every persisted key into memory. Absent or corrupt blobs fall
// back to their named defaults.
func (s *State) Load() error {
	if err := s.store.Load(); err != nil {
		return err
	}

	s.Habits = []models.Habit{}
	if _, err := s.store.Get(constants.KeyHabits, &s.Habits); err != nil {
		return fmt.Errorf("loading habits: %w", err)
	}

	s.Logs = []models.DailyLog{}
	if _, err := s.store.Get(constants.KeyLogs, &s.Logs); err != nil {
		return fmt.Errorf("loading daily logs: %w", err)
	}

	var theme models.Theme
	found, err := s.store.Get(constants.KeyTheme, &theme)
	if err != nil {
		return fmt.Errorf("loading theme: %w", err)
	}
	if found {
		s.Theme = theme
	} else {
		s.Theme = models.DefaultTheme()
	}

	s.Chat = []models.ChatMessage{}
	if _, err := s.store.Get(constants.KeyChat, &s.Chat); err != nil {
		return fmt.Errorf("loading chat history: %w", err)
	}

	var settings models.UserSettings
	found, err = s.store.Get(constants.KeySettings, &settings)
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}
	if found {
		s.Settings = settings
	} else {
		s.Settings = models.DefaultSettings()
	}

	return nil
}

// Now returns the state's clock reading.
func (s *State) Now() time.Time {
	return s.now()
}

// Today returns the current calendar date as YYYY-MM-DD.
func (s *State) Today() string {
	return s.now().Format(constants.DateFormat)
}

// Reset clears all persisted state unconditionally. Irreversible. The
// in-memory ledgers are restored to their defaults.
func (s *State) Reset() error {
	if err := s.store.Reset(); err != nil {
		return err
	}
	s.Habits = []models.Habit{}
	s.Logs = []models.DailyLog{}
	s.Theme = models.DefaultTheme()
	s.Chat = []models.ChatMessage{}
	s.Settings = models.DefaultSettings()
	return nil
}

// ConfigPath exposes the backing store location for diagnostics.
func (s *State) ConfigPath() string {
	return s.store.ConfigPath()
}

func (s *State) saveHabits() error {
	return s.store.Put(constants.KeyHabits, s.Habits)
}

func (s *State) saveLogs() error {
	return s.store.Put(constants.KeyLogs, s.Logs)
}

func (s *State) saveTheme() error {
	return s.store.Put(constants.KeyTheme, s.Theme)
}

func (s *State) saveChat() error {
	return s.store.Put(constants.KeyChat, s.Chat)
}

func (s *State) saveSettings() error {
	return s.store.Put(constants.KeySettings, s.Settings)
}
