package models

import (
	"fmt"
	"sort"
	"time"

	"github.com/habitkit/habitkit/internal/constants"
)

type Category string

const (
	CategoryHealth       Category = "health"
	CategoryProductivity Category = "productivity"
	CategoryMindfulness  Category = "mindfulness"
	CategoryCreative     Category = "creative"
	CategoryOther        Category = "other"
)

// Categories lists all valid habit categories in display order.
func Categories() []Category {
	return []Category{CategoryHealth, CategoryProductivity, CategoryMindfulness, CategoryCreative, CategoryOther}
}

// TimeLog is a single timed session recorded when a timer stops.
type TimeLog struct {
	Date     time.Time `json:"date"`
	Duration int       `json:"duration"` // seconds
}

type Habit struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Category       Category   `json:"category"`
	Goal           string     `json:"goal"`
	Frequency      []string   `json:"frequency"`       // weekday tags, e.g. ["Mon", "Wed"]; recorded but not enforced
	Streak         int        `json:"streak"`          // consecutive-day completion counter, never negative
	CompletedDates []string   `json:"completed_dates"` // YYYY-MM-DD, unique, kept sorted
	Archived       bool       `json:"archived"`
	TimeLogs       []TimeLog  `json:"time_logs"`
	TimerStart     *time.Time `json:"timer_start,omitempty"` // present iff a timer is running
	CreatedAt      time.Time  `json:"created_at"`
}

func (h *Habit) Validate() error {
	if h.Title == "" {
		return fmt.Errorf("habit title cannot be empty")
	}

	switch h.Category {
	case CategoryHealth, CategoryProductivity, CategoryMindfulness, CategoryCreative, CategoryOther:
	default:
		return fmt.Errorf("invalid category: %s", h.Category)
	}

	for _, d := range h.CompletedDates {
		if _, err := time.Parse(constants.DateFormat, d); err != nil {
			return fmt.Errorf("invalid completion date %q (expected YYYY-MM-DD): %w", d, err)
		}
	}

	return nil
}

// IsCompletedOn reports whether date (YYYY-MM-DD) is in the completion set.
func (h *Habit) IsCompletedOn(date string) bool {
	for _, d := range h.CompletedDates {
		if d == date {
			return true
		}
	}
	return false
}

// TimerRunning reports whether a timer is currently active for this habit.
func (h *Habit) TimerRunning() bool {
	return h.TimerStart != nil
}

// AddCompletion inserts date into the completion set, keeping it sorted.
// Duplicate dates are ignored.
func (h *Habit) AddCompletion(date string) {
	if h.IsCompletedOn(date) {
		return
	}
	h.CompletedDates = append(h.CompletedDates, date)
	sort.Strings(h.CompletedDates)
}

// RemoveCompletion drops date from the completion set if present.
func (h *Habit) RemoveCompletion(date string) {
	out := h.CompletedDates[:0]
	for _, d := range h.CompletedDates {
		if d != date {
			out = append(out, d)
		}
	}
	h.CompletedDates = out
}

// RecentCompletions returns up to the last n completion dates, oldest first.
func (h *Habit) RecentCompletions(n int) []string {
	if len(h.CompletedDates) <= n {
		return h.CompletedDates
	}
	return h.CompletedDates[len(h.CompletedDates)-n:]
}

// TotalTimeSeconds sums all recorded time-log durations.
func (h *Habit) TotalTimeSeconds() int {
	total := 0
	for _, tl := range h.TimeLogs {
		total += tl.Duration
	}
	return total
}
