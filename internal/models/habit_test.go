package models

import (
	"reflect"
	"testing"
)

func TestHabitValidate(t *testing.T) {
	tests := []struct {
		name    string
		habit   Habit
		wantErr bool
	}{
		{
			name:    "valid habit",
			habit:   Habit{ID: "1", Title: "Read", Category: CategoryCreative},
			wantErr: false,
		},
		{
			name:    "empty title",
			habit:   Habit{ID: "1", Category: CategoryHealth},
			wantErr: true,
		},
		{
			name:    "invalid category",
			habit:   Habit{ID: "1", Title: "Read", Category: "sports"},
			wantErr: true,
		},
		{
			name:    "malformed completion date",
			habit:   Habit{ID: "1", Title: "Read", Category: CategoryOther, CompletedDates: []string{"01/02/2025"}},
			wantErr: true,
		},
		{
			name:    "valid completion dates",
			habit:   Habit{ID: "1", Title: "Read", Category: CategoryOther, CompletedDates: []string{"2025-01-02", "2025-01-03"}},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.habit.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestAddCompletionKeepsSetSortedAndUnique(t *testing.T) {
	h := Habit{Title: "Run", Category: CategoryHealth, CompletedDates: []string{"2025-03-02", "2025-03-05"}}

	h.AddCompletion("2025-03-03")
	h.AddCompletion("2025-03-03") // duplicate ignored

	want := []string{"2025-03-02", "2025-03-03", "2025-03-05"}
	if !reflect.DeepEqual(h.CompletedDates, want) {
		t.Errorf("CompletedDates = %v, want %v", h.CompletedDates, want)
	}
}

func TestRemoveCompletion(t *testing.T) {
	h := Habit{CompletedDates: []string{"2025-03-02", "2025-03-03"}}

	h.RemoveCompletion("2025-03-02")
	if !reflect.DeepEqual(h.CompletedDates, []string{"2025-03-03"}) {
		t.Errorf("CompletedDates = %v, want [2025-03-03]", h.CompletedDates)
	}

	// Removing an absent date is harmless
	h.RemoveCompletion("2025-03-09")
	if len(h.CompletedDates) != 1 {
		t.Errorf("CompletedDates = %v, want one entry", h.CompletedDates)
	}
}

func TestRecentCompletions(t *testing.T) {
	h := Habit{CompletedDates: []string{"2025-03-01", "2025-03-02", "2025-03-03"}}

	if got := h.RecentCompletions(2); !reflect.DeepEqual(got, []string{"2025-03-02", "2025-03-03"}) {
		t.Errorf("RecentCompletions(2) = %v", got)
	}
	if got := h.RecentCompletions(7); len(got) != 3 {
		t.Errorf("RecentCompletions(7) returned %d entries, want 3", len(got))
	}
}

func TestTotalTimeSeconds(t *testing.T) {
	h := Habit{TimeLogs: []TimeLog{{Duration: 65}, {Duration: 35}}}
	if got := h.TotalTimeSeconds(); got != 100 {
		t.Errorf("TotalTimeSeconds() = %d, want 100", got)
	}
}
