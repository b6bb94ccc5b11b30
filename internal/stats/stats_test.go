package stats

import (
	"testing"
	"time"

	"github.com/habitkit/habitkit/internal/models"
)

func intPtr(n int) *int { return &n }

func TestLastNDays(t *testing.T) {
	today := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)
	got := LastNDays(today, 3)

	want := []string{"2025-03-08", "2025-03-09", "2025-03-10"}
	if len(got) != 3 {
		t.Fatalf("len = %d", len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestCompute(t *testing.T) {
	today := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)
	habits := []models.Habit{
		{Title: "Run", Streak: 5, CompletedDates: []string{"2025-03-09", "2025-03-10"}},
		{Title: "Read", Streak: 2, CompletedDates: []string{"2025-03-10"}},
	}
	logs := []models.DailyLog{
		{Date: "2025-03-09", Mood: intPtr(6)},
		{Date: "2025-03-10", Mood: intPtr(8)},
	}

	s := Compute(habits, logs, today)

	if s.TotalCompletions != 3 {
		t.Errorf("TotalCompletions = %d, want 3", s.TotalCompletions)
	}
	if s.BestStreak != 5 {
		t.Errorf("BestStreak = %d, want 5", s.BestStreak)
	}
	if len(s.Week) != 7 {
		t.Fatalf("Week has %d points", len(s.Week))
	}

	last := s.Week[6]
	if last.Date != "2025-03-10" || last.CompletionRate != 100 || last.Mood != 8 {
		t.Errorf("today point = %+v", last)
	}
	prev := s.Week[5]
	if prev.CompletionRate != 50 || prev.Mood != 6 {
		t.Errorf("yesterday point = %+v", prev)
	}
	if s.Week[0].Mood != 0 {
		t.Errorf("day without log should carry mood 0, got %d", s.Week[0].Mood)
	}
}

func TestComputeNoHabits(t *testing.T) {
	s := Compute(nil, nil, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))
	if s.WeeklyAvgPercent != 0 || s.BestStreak != 0 || s.TotalCompletions != 0 {
		t.Errorf("empty summary = %+v", s)
	}
}

func TestTodayProgress(t *testing.T) {
	habits := []models.Habit{
		{CompletedDates: []string{"2025-03-10"}},
		{CompletedDates: []string{}},
	}
	done, total := TodayProgress(habits, "2025-03-10")
	if done != 1 || total != 2 {
		t.Errorf("TodayProgress = %d/%d, want 1/2", done, total)
	}
}
