package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	ps "github.com/mitchellh/go-ps"

	"github.com/habitkit/habitkit/internal/export"
	"github.com/habitkit/habitkit/internal/keyring"
	"github.com/habitkit/habitkit/internal/stats"
)

type ExportCmd struct {
	Out string `help:"Directory to write the backup into (default: current directory)." default:"."`
}

func (c *ExportCmd) Run(ctx *Context) error {
	doc := export.Document{
		Habits:     ctx.State.Habits,
		Logs:       ctx.State.Logs,
		Settings:   ctx.State.Settings,
		Theme:      ctx.State.Theme,
		ExportDate: ctx.State.Now(),
	}

	path, err := export.Write(c.Out, doc)
	if err != nil {
		return err
	}
	fmt.Printf("Exported data to %s\n", path)
	return nil
}

type ResetCmd struct {
	Yes bool `help:"Skip the confirmation prompt."`
}

func (c *ResetCmd) Run(ctx *Context) error {
	if !c.Yes {
		fmt.Print("Delete ALL data? This cannot be undone. [y/N] ")
		var answer string
		fmt.Scanln(&answer)
		if !strings.EqualFold(strings.TrimSpace(answer), "y") {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := ctx.State.Reset(); err != nil {
		return err
	}
	fmt.Println("All data deleted. Defaults restored.")
	return nil
}

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *Context) error {
	summary := stats.Compute(ctx.State.Habits, ctx.State.Logs, ctx.State.Now())
	done, total := stats.TodayProgress(ctx.State.Habits, ctx.State.Today())

	fmt.Printf("today:             %d/%d habits done\n", done, total)
	fmt.Printf("total completions: %d\n", summary.TotalCompletions)
	fmt.Printf("best streak:       %d\n", summary.BestStreak)
	fmt.Printf("weekly average:    %d%%\n", summary.WeeklyAvgPercent)
	fmt.Println()
	fmt.Println("last 7 days:")
	for _, p := range summary.Week {
		mood := "-"
		if p.Mood > 0 {
			mood = fmt.Sprintf("%d/10", p.Mood)
		}
		fmt.Printf("  %s  %3d%%  mood %s\n", p.Date, p.CompletionRate, mood)
	}
	return nil
}

type KeyCmd struct {
	Set    KeySetCmd    `cmd:"" help:"Store the Gemini API key in the OS keyring."`
	Delete KeyDeleteCmd `cmd:"" help:"Remove the stored API key."`
	Status KeyStatusCmd `cmd:"" help:"Check whether an API key is configured."`
}

type KeySetCmd struct {
	Key string `arg:"" help:"Gemini API key."`
}

func (c *KeySetCmd) Run(ctx *Context) error {
	if err := keyring.SetAPIKey(c.Key); err != nil {
		return err
	}
	fmt.Println("API key stored.")
	return nil
}

type KeyDeleteCmd struct{}

func (c *KeyDeleteCmd) Run(ctx *Context) error {
	if err := keyring.DeleteAPIKey(); err != nil {
		return err
	}
	fmt.Println("API key removed.")
	return nil
}

type KeyStatusCmd struct{}

func (c *KeyStatusCmd) Run(ctx *Context) error {
	if _, err := keyring.GetAPIKey(); err != nil {
		fmt.Println("No API key configured.")
		return nil
	}
	fmt.Println("API key configured.")
	return nil
}

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false

	// Check 1: config directory writable
	dir := ctx.State.ConfigPath()
	if err := checkDirWritable(dir); err != nil {
		fmt.Printf("❌ Config directory writable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Config directory writable: OK (%s)\n", dir)
	}

	// Check 2: store readable (Load already succeeded to get here, but
	// re-check so doctor reports the error instead of the wrapper)
	if err := ctx.State.Load(); err != nil {
		fmt.Printf("❌ Store readable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Store readable: OK (%d habits, %d logs)\n", len(ctx.State.Habits), len(ctx.State.Logs))
	}

	// Check 3: OS keyring
	if keyring.IsAvailable() {
		fmt.Printf("✓ OS keyring: OK\n")
	} else {
		fmt.Printf("⊘ OS keyring: SKIPPED (not available; %s env var still works)\n", "GEMINI_API_KEY")
	}

	// Check 4: API key (warning only, the tracker works without it)
	if _, err := keyring.GetAPIKey(); err != nil {
		fmt.Printf("⚠ API key: WARNING\n")
		fmt.Printf("   Coach features are disabled until a key is set.\n")
	} else {
		fmt.Printf("✓ API key: OK\n")
	}

	// Check 5: concurrent instance sharing the store
	if others, err := concurrentInstances(); err != nil {
		fmt.Printf("⊘ Concurrent instances: SKIPPED (%v)\n", err)
	} else if len(others) > 0 {
		fmt.Printf("⚠ Concurrent instances: WARNING\n")
		fmt.Printf("   Another habitkit process is running (pid %d); writes may conflict.\n", others[0])
	} else {
		fmt.Printf("✓ Concurrent instances: OK (none)\n")
	}

	fmt.Println()
	if hasError {
		return fmt.Errorf("diagnostics found problems")
	}
	fmt.Println("All checks passed.")
	return nil
}

func checkDirWritable(dir string) error {
	probe := filepath.Join(dir, ".doctor-probe")
	if err := os.WriteFile(probe, []byte("ok"), 0o600); err != nil {
		return err
	}
	return os.Remove(probe)
}

// concurrentInstances lists other running processes with our executable name.
func concurrentInstances() ([]int, error) {
	self := os.Getpid()
	exe := filepath.Base(os.Args[0])

	procs, err := ps.Processes()
	if err != nil {
		return nil, err
	}

	var pids []int
	for _, p := range procs {
		if p.Pid() != self && p.Executable() == exe {
			pids = append(pids, p.Pid())
		}
	}
	return pids, nil
}
