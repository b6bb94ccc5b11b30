package models

import (
	"fmt"
	"time"

	"github.com/habitkit/habitkit/internal/constants"
)

// DailyLog is one mood/notes/energy record per calendar date. The date is the
// record's key; at most one log exists per date.
type DailyLog struct {
	Date        string `json:"date"` // YYYY-MM-DD
	Mood        *int   `json:"mood,omitempty"`
	Notes       string `json:"notes,omitempty"`
	EnergyLevel *int   `json:"energy_level,omitempty"`
}

func (l *DailyLog) Validate() error {
	if _, err := time.Parse(constants.DateFormat, l.Date); err != nil {
		return fmt.Errorf("invalid log date %q (expected YYYY-MM-DD): %w", l.Date, err)
	}
	if l.Mood != nil && (*l.Mood < 1 || *l.Mood > 10) {
		return fmt.Errorf("mood must be between 1 and 10, got %d", *l.Mood)
	}
	if l.EnergyLevel != nil && (*l.EnergyLevel < 1 || *l.EnergyLevel > 10) {
		return fmt.Errorf("energy level must be between 1 and 10, got %d", *l.EnergyLevel)
	}
	return nil
}
