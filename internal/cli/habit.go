package cli

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/habitkit/habitkit/internal/constants"
	"github.com/habitkit/habitkit/internal/models"
	"github.com/habitkit/habitkit/internal/stats"
)

type HabitCmd struct {
	Add    HabitAddCmd    `cmd:"" help:"Add a new habit."`
	List   HabitListCmd   `cmd:"" help:"List habits."`
	Toggle HabitToggleCmd `cmd:"" help:"Toggle a habit's completion for a day."`
	Log    HabitLogCmd    `cmd:"" help:"Show habit log (ASCII history)."`
	Delete HabitDeleteCmd `cmd:"" help:"Delete a habit."`
	Timer  struct {
		Start  TimerStartCmd  `cmd:"" help:"Start a focus timer for a habit."`
		Stop   TimerStopCmd   `cmd:"" help:"Stop the timer and record the session."`
		Status TimerStatusCmd `cmd:"" help:"Show running timers."`
	} `cmd:"" help:"Track time spent on a habit."`
}

type HabitAddCmd struct {
	Title     string   `arg:"" help:"Habit title."`
	Goal      string   `help:"Goal description (default: Daily)." default:""`
	Category  string   `help:"Category: health, productivity, mindfulness, creative, other." default:"other"`
	Frequency []string `help:"Weekdays the habit applies to (Mon,Tue,...). Defaults to every day."`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	for _, h := range ctx.State.Habits {
		if strings.EqualFold(h.Title, c.Title) {
			return fmt.Errorf("habit with title %q already exists", c.Title)
		}
	}

	cat, err := ParseCategory(c.Category)
	if err != nil {
		return err
	}

	habit, err := ctx.State.AddHabit(c.Title, c.Goal, cat, c.Frequency)
	if err != nil {
		return err
	}

	fmt.Printf("Added habit: %s (%s)\n", habit.Title, habit.ID)
	return nil
}

type HabitListCmd struct {
	Category string `help:"Only show habits in this category." default:""`
	Sort     string `help:"Sort order: newest, alphabetical, streak." default:"newest" enum:"newest,alphabetical,streak"`
}

func (c *HabitListCmd) Run(ctx *Context) error {
	habits := make([]models.Habit, 0, len(ctx.State.Habits))
	for _, h := range ctx.State.Habits {
		if c.Category != "" && string(h.Category) != strings.ToLower(c.Category) {
			continue
		}
		habits = append(habits, h)
	}

	switch c.Sort {
	case "alphabetical":
		sort.SliceStable(habits, func(i, j int) bool {
			return strings.ToLower(habits[i].Title) < strings.ToLower(habits[j].Title)
		})
	case "streak":
		sort.SliceStable(habits, func(i, j int) bool {
			return habits[i].Streak > habits[j].Streak
		})
	default:
		sort.SliceStable(habits, func(i, j int) bool {
			return habits[i].CreatedAt.After(habits[j].CreatedAt)
		})
	}

	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	today := ctx.State.Today()
	for _, h := range habits {
		mark := " "
		if h.IsCompletedOn(today) {
			mark = "x"
		}
		timer := ""
		if h.TimerRunning() {
			timer = " [timer running]"
		}
		fmt.Printf("[%s] %-30s %-13s streak %d%s\n", mark, h.Title, h.Category, h.Streak, timer)
	}
	return nil
}

type HabitToggleCmd struct {
	Habit string `arg:"" help:"Habit id or title."`
	Date  string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *HabitToggleCmd) Run(ctx *Context) error {
	habit, err := FindHabitByRef(ctx.State, c.Habit)
	if err != nil {
		return err
	}
	if habit.TimerRunning() {
		return fmt.Errorf("a timer is running for %q; stop it first", habit.Title)
	}

	day := c.Date
	if day == "" {
		day = ctx.State.Today()
	} else if _, err := time.Parse(constants.DateFormat, day); err != nil {
		return fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", day)
	}

	wasDone := habit.IsCompletedOn(day)
	if err := ctx.State.ToggleCompletion(habit.ID, day); err != nil {
		return err
	}

	if wasDone {
		fmt.Printf("Unmarked %s for %s (streak: %d)\n", habit.Title, day, habit.Streak)
	} else {
		fmt.Printf("Marked %s done for %s (streak: %d)\n", habit.Title, day, habit.Streak)
	}
	return nil
}

type HabitLogCmd struct {
	Habit string `arg:"" help:"Habit id or title."`
	Days  int    `help:"Number of days of history to show." default:"30"`
}

func (c *HabitLogCmd) Run(ctx *Context) error {
	habit, err := FindHabitByRef(ctx.State, c.Habit)
	if err != nil {
		return err
	}

	today, err := time.Parse(constants.DateFormat, ctx.State.Today())
	if err != nil {
		return err
	}

	fmt.Printf("%s (streak %d)\n", habit.Title, habit.Streak)
	var row strings.Builder
	for _, day := range stats.LastNDays(today, c.Days) {
		if habit.IsCompletedOn(day) {
			row.WriteByte('#')
		} else {
			row.WriteByte('.')
		}
	}
	fmt.Printf("  last %d days: %s\n", c.Days, row.String())

	if total := habit.TotalTimeSeconds(); total > 0 {
		fmt.Printf("  time tracked: %s over %d sessions\n", FormatDuration(total), len(habit.TimeLogs))
	}
	return nil
}

type HabitDeleteCmd struct {
	Habit string `arg:"" help:"Habit id or title."`
	Yes   bool   `help:"Skip the confirmation prompt."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	habit, err := FindHabitByRef(ctx.State, c.Habit)
	if err != nil {
		return err
	}

	if !c.Yes {
		fmt.Printf("Delete habit %q and all its history? [y/N] ", habit.Title)
		var answer string
		fmt.Scanln(&answer)
		if !strings.EqualFold(strings.TrimSpace(answer), "y") {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := ctx.State.DeleteHabit(habit.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted habit: %s\n", habit.Title)
	return nil
}

type TimerStartCmd struct {
	Habit string `arg:"" help:"Habit id or title."`
}

func (c *TimerStartCmd) Run(ctx *Context) error {
	habit, err := FindHabitByRef(ctx.State, c.Habit)
	if err != nil {
		return err
	}
	if err := ctx.State.StartTimer(habit.ID); err != nil {
		return err
	}
	fmt.Printf("Timer started for %s\n", habit.Title)
	return nil
}

type TimerStopCmd struct {
	Habit string `arg:"" help:"Habit id or title."`
}

func (c *TimerStopCmd) Run(ctx *Context) error {
	habit, err := FindHabitByRef(ctx.State, c.Habit)
	if err != nil {
		return err
	}
	if !habit.TimerRunning() {
		return fmt.Errorf("no timer running for %q", habit.Title)
	}
	if err := ctx.State.StopTimer(habit.ID); err != nil {
		return err
	}

	last := habit.TimeLogs[len(habit.TimeLogs)-1]
	fmt.Printf("Timer stopped for %s: %s recorded (streak: %d)\n", habit.Title, FormatDuration(last.Duration), habit.Streak)
	return nil
}

type TimerStatusCmd struct{}

func (c *TimerStatusCmd) Run(ctx *Context) error {
	running := false
	for _, h := range ctx.State.Habits {
		if !h.TimerRunning() {
			continue
		}
		running = true
		elapsed := int(time.Since(*h.TimerStart).Seconds())
		if elapsed < 0 {
			elapsed = 0
		}
		fmt.Printf("%s: running for %s\n", h.Title, FormatDuration(elapsed))
	}
	if !running {
		fmt.Println("No timers running.")
	}
	return nil
}
