package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/habitkit/habitkit/internal/ai"
	"github.com/habitkit/habitkit/internal/app"
	"github.com/habitkit/habitkit/internal/cli"
	"github.com/habitkit/habitkit/internal/constants"
	apperrors "github.com/habitkit/habitkit/internal/errors"
	"github.com/habitkit/habitkit/internal/keyring"
	"github.com/habitkit/habitkit/internal/logger"
	"github.com/habitkit/habitkit/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config directory." type:"string" default:"~/.config/habitkit"`
	Store   string `help:"Storage backend: json or sqlite." default:"json" enum:"json,sqlite"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Tui      cli.TuiCmd      `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Habit    cli.HabitCmd    `cmd:"" help:"Manage habits and completions."`
	Checkin  cli.CheckinCmd  `cmd:"" help:"Record today's mood, energy, and notes."`
	Coach    cli.CoachCmd    `cmd:"" help:"Talk to the AI coach."`
	Theme    cli.ThemeCmd    `cmd:"" help:"Manage the color theme."`
	Settings cli.SettingsCmd `cmd:"" help:"Manage application settings."`
	Stats    cli.StatsCmd    `cmd:"" help:"Show progress statistics."`
	Export   cli.ExportCmd   `cmd:"" help:"Export all data to a JSON backup."`
	Reset    cli.ResetCmd    `cmd:"" help:"Delete all data and restore defaults."`
	Doctor   cli.DoctorCmd   `cmd:"" help:"Run health checks and diagnostics."`
	Key      cli.KeyCmd      `cmd:"" help:"Manage the Gemini API key."`
}

func main() {
	// a .env in the working directory may carry GEMINI_API_KEY
	_ = godotenv.Load()

	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Habit tracker with streaks, daily check-ins, and an AI coach"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	configDir, err := expandHome(CLI.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: configDir}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize logging: %v\n", err)
		os.Exit(1)
	}

	var store storage.Provider
	if CLI.Store == "sqlite" {
		store = storage.NewSQLiteStore(filepath.Join(configDir, constants.AppName+".db"))
	} else {
		store = storage.NewJSONStore(configDir)
	}

	state := app.New(store)
	if err := state.Load(); err != nil {
		apperrors.Fatal(err)
	}
	defer store.Close()

	appCtx := &cli.Context{
		State: state,
		Gateway: func() (*ai.Gateway, error) {
			key, err := keyring.GetAPIKey()
			if err != nil {
				return nil, ai.ErrMissingAPIKey
			}
			return ai.New(key)
		},
	}

	if err := ctx.Run(appCtx); err != nil {
		store.Close()
		apperrors.Fatal(err)
	}
}

func expandHome(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
	}
	return path, nil
}
