package cli

import (
	"fmt"
	"time"

	"github.com/habitkit/habitkit/internal/constants"
	"github.com/habitkit/habitkit/internal/models"
)

type CheckinCmd struct {
	Mood   int    `help:"Mood rating from 1 (low) to 10 (high)." default:"0"`
	Energy int    `help:"Energy level from 1 (drained) to 10 (energized)." default:"0"`
	Note   string `help:"Free-form journal note." default:""`
	Date   string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
	Show   bool   `help:"Print the stored entry instead of writing one."`
}

func (c *CheckinCmd) Run(ctx *Context) error {
	day := c.Date
	if day == "" {
		day = ctx.State.Today()
	} else if _, err := time.Parse(constants.DateFormat, day); err != nil {
		return fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", day)
	}

	if c.Show {
		entry, ok := ctx.State.LogFor(day)
		if !ok {
			fmt.Printf("No check-in recorded for %s.\n", day)
			return nil
		}
		printLog(entry)
		return nil
	}

	// A check-in replaces the whole entry for the day, so unset flags clear
	// previously stored values.
	entry := models.DailyLog{Date: day, Notes: c.Note}
	if c.Mood != 0 {
		entry.Mood = &c.Mood
	}
	if c.Energy != 0 {
		entry.EnergyLevel = &c.Energy
	}

	if err := ctx.State.UpsertLog(entry); err != nil {
		return err
	}
	fmt.Printf("Check-in saved for %s.\n", day)
	return nil
}

func printLog(entry models.DailyLog) {
	fmt.Printf("%s\n", entry.Date)
	if entry.Mood != nil {
		fmt.Printf("  mood:   %d/10\n", *entry.Mood)
	}
	if entry.EnergyLevel != nil {
		fmt.Printf("  energy: %d/10\n", *entry.EnergyLevel)
	}
	if entry.Notes != "" {
		fmt.Printf("  notes:  %s\n", entry.Notes)
	}
}
