package app

import (
	"testing"

	"github.com/habitkit/habitkit/internal/models"
)

func intPtr(n int) *int { return &n }

func TestUpsertLogReplacesWholeRecord(t *testing.T) {
	s, _ := newTestState(t)

	if err := s.UpsertLog(models.DailyLog{Date: "2025-03-10", Mood: intPtr(8), Notes: "good day"}); err != nil {
		t.Fatal(err)
	}

	// Second upsert omits notes; last write wins, old notes are lost.
	if err := s.UpsertLog(models.DailyLog{Date: "2025-03-10", Mood: intPtr(4)}); err != nil {
		t.Fatal(err)
	}

	log, ok := s.LogFor("2025-03-10")
	if !ok {
		t.Fatal("log not found")
	}
	if log.Mood == nil || *log.Mood != 4 {
		t.Errorf("Mood = %v, want 4", log.Mood)
	}
	if log.Notes != "" {
		t.Errorf("Notes = %q, want empty (full replacement)", log.Notes)
	}
	if len(s.Logs) != 1 {
		t.Errorf("Logs has %d entries, want 1", len(s.Logs))
	}
}

func TestUpsertLogAppendsNewDates(t *testing.T) {
	s, _ := newTestState(t)

	for _, date := range []string{"2025-03-08", "2025-03-09", "2025-03-10"} {
		if err := s.UpsertLog(models.DailyLog{Date: date}); err != nil {
			t.Fatal(err)
		}
	}

	if len(s.Logs) != 3 {
		t.Fatalf("Logs has %d entries, want 3", len(s.Logs))
	}

	recent := s.RecentLogs(2)
	if len(recent) != 2 || recent[0].Date != "2025-03-09" {
		t.Errorf("RecentLogs(2) = %+v", recent)
	}
}

func TestUpsertLogValidation(t *testing.T) {
	s, _ := newTestState(t)

	tests := []struct {
		name string
		log  models.DailyLog
	}{
		{"bad date", models.DailyLog{Date: "03-10-2025"}},
		{"mood out of range", models.DailyLog{Date: "2025-03-10", Mood: intPtr(11)}},
		{"energy out of range", models.DailyLog{Date: "2025-03-10", EnergyLevel: intPtr(0)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := s.UpsertLog(tt.log); err == nil {
				t.Error("UpsertLog() accepted invalid record")
			}
		})
	}
}
