package app

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/habitkit/habitkit/internal/constants"
	"github.com/habitkit/habitkit/internal/logger"
	"github.com/habitkit/habitkit/internal/models"
)

// FindHabit returns a pointer into the ledger for the given id, or nil.
func (s *State) FindHabit(id string) *models.Habit {
	for i := range s.Habits {
		if s.Habits[i].ID == id {
			return &s.Habits[i]
		}
	}
	return nil
}

// AddHabit creates a habit with defaulted tracking fields and persists the
// collection.
func (s *State) AddHabit(title, goal string, category models.Category, frequency []string) (models.Habit, error) {
	if goal == "" {
		goal = "Daily"
	}
	if len(frequency) == 0 {
		frequency = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	}

	habit := models.Habit{
		ID:             uuid.New().String(),
		Title:          title,
		Category:       category,
		Goal:           goal,
		Frequency:      frequency,
		Streak:         0,
		CompletedDates: []string{},
		TimeLogs:       []models.TimeLog{},
		CreatedAt:      s.now(),
	}

	if err := habit.Validate(); err != nil {
		return models.Habit{}, err
	}

	s.Habits = append(s.Habits, habit)
	if err := s.saveHabits(); err != nil {
		return models.Habit{}, err
	}
	return habit, nil
}

// DeleteHabit removes a habit permanently. There is no undo.
func (s *State) DeleteHabit(id string) error {
	for i := range s.Habits {
		if s.Habits[i].ID == id {
			s.Habits = append(s.Habits[:i], s.Habits[i+1:]...)
			return s.saveHabits()
		}
	}
	return fmt.Errorf("habit not found: %s", id)
}

// ToggleCompletion flips the completion state of a habit for a calendar date.
//
// Removing a completed date decrements the streak by one, floored at zero,
// even when the removed date is not the most recent completion. Adding a date
// increments the streak when the immediately preceding day is already
// completed or this is the first-ever completion; otherwise the streak resets
// to one. An unknown habit id is a no-op.
func (s *State) ToggleCompletion(id, date string) error {
	h := s.FindHabit(id)
	if h == nil {
		logger.Debug("Toggle on unknown habit ignored", "id", id)
		return nil
	}

	if h.IsCompletedOn(date) {
		h.RemoveCompletion(date)
		h.Streak = max(0, h.Streak-1)
	} else {
		s.completeDate(h, date)
	}

	return s.saveHabits()
}

// completeDate adds date to the completion set and applies the streak rule.
// The yesterday check runs against the set as it was before the insert.
func (s *State) completeDate(h *models.Habit, date string) {
	yesterday := previousDay(date)
	firstEver := len(h.CompletedDates) == 0

	if h.IsCompletedOn(yesterday) || firstEver {
		h.Streak++
	} else {
		h.Streak = 1
	}
	h.AddCompletion(date)
}

func previousDay(date string) string {
	t, err := time.Parse(constants.DateFormat, date)
	if err != nil {
		return ""
	}
	return t.AddDate(0, 0, -1).Format(constants.DateFormat)
}

// StartTimer records the current instant as the habit's timer start. Starting
// an already-running timer overwrites the start instant, discarding the
// elapsed span. An unknown habit id is a no-op.
func (s *State) StartTimer(id string) error {
	h := s.FindHabit(id)
	if h == nil {
		logger.Debug("StartTimer on unknown habit ignored", "id", id)
		return nil
	}

	start := s.now()
	h.TimerStart = &start
	return s.saveHabits()
}

// StopTimer ends a running timer: it appends a time log with the elapsed
// whole seconds and clears the timer marker. If today is not yet in the
// completion set, stopping also completes the habit for today under the same
// streak rule as a manual toggle. A habit with no running timer, or an
// unknown id, is a no-op.
func (s *State) StopTimer(id string) error {
	h := s.FindHabit(id)
	if h == nil {
		logger.Debug("StopTimer on unknown habit ignored", "id", id)
		return nil
	}
	if h.TimerStart == nil {
		return nil
	}

	now := s.now()
	elapsed := int(now.Sub(*h.TimerStart).Round(time.Second) / time.Second)
	h.TimerStart = nil
	h.TimeLogs = append(h.TimeLogs, models.TimeLog{Date: now, Duration: elapsed})

	today := now.Format(constants.DateFormat)
	if !h.IsCompletedOn(today) {
		s.completeDate(h, today)
	}

	return s.saveHabits()
}
