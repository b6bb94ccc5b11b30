// Package stats computes the analytics shown on the dashboard and stats
// views from habit and daily-log snapshots.
package stats

import (
	"math"
	"time"

	"github.com/habitkit/habitkit/internal/constants"
	"github.com/habitkit/habitkit/internal/models"
)

// DayPoint pairs a date's completion rate with the mood recorded for it.
type DayPoint struct {
	Date           string // YYYY-MM-DD
	CompletionRate int    // percent, 0-100
	Mood           int    // 0 when no log exists for the date
}

// Summary holds the headline metrics.
type Summary struct {
	TotalCompletions int
	BestStreak       int
	WeeklyAvgPercent int
	Week             []DayPoint
}

// LastNDays returns the n calendar dates ending today, oldest first.
func LastNDays(today time.Time, n int) []string {
	dates := make([]string, 0, n)
	for i := n - 1; i >= 0; i-- {
		dates = append(dates, today.AddDate(0, 0, -i).Format(constants.DateFormat))
	}
	return dates
}

// Compute builds the summary over the trailing 7 days.
func Compute(habits []models.Habit, logs []models.DailyLog, today time.Time) Summary {
	dates := LastNDays(today, 7)

	week := make([]DayPoint, 0, len(dates))
	rateSum := 0
	for _, date := range dates {
		completed := 0
		for _, h := range habits {
			if h.IsCompletedOn(date) {
				completed++
			}
		}
		rate := 0
		if len(habits) > 0 {
			rate = int(math.Round(float64(completed) / float64(len(habits)) * 100))
		}
		rateSum += rate

		mood := 0
		for _, l := range logs {
			if l.Date == date && l.Mood != nil {
				mood = *l.Mood
				break
			}
		}

		week = append(week, DayPoint{Date: date, CompletionRate: rate, Mood: mood})
	}

	total := 0
	best := 0
	for _, h := range habits {
		total += len(h.CompletedDates)
		if h.Streak > best {
			best = h.Streak
		}
	}

	avg := 0
	if len(week) > 0 {
		avg = int(math.Round(float64(rateSum) / float64(len(week))))
	}

	return Summary{
		TotalCompletions: total,
		BestStreak:       best,
		WeeklyAvgPercent: avg,
		Week:             week,
	}
}

// TodayProgress returns completed count and total for a single date.
func TodayProgress(habits []models.Habit, date string) (completed, total int) {
	for _, h := range habits {
		if h.IsCompletedOn(date) {
			completed++
		}
	}
	return completed, len(habits)
}
