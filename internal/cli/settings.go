package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/habitkit/habitkit/internal/ai"
	"github.com/habitkit/habitkit/internal/models"
)

type SettingsCmd struct {
	Show   SettingsShowCmd   `cmd:"" help:"Show current settings." default:"1"`
	Set    SettingsSetCmd    `cmd:"" help:"Update a settings field."`
	Toggle SettingsToggleCmd `cmd:"" help:"Toggle a notification or privacy preference."`
	Avatar SettingsAvatarCmd `cmd:"" help:"Generate a profile avatar with the AI backend."`
}

type SettingsShowCmd struct{}

func (c *SettingsShowCmd) Run(ctx *Context) error {
	s := ctx.State.Settings
	fmt.Printf("username:    %s\n", s.Username)
	fmt.Printf("language:    %s\n", s.Language)
	fmt.Printf("personality: %s\n", s.AIConfig.Personality)
	avatar := "none"
	if s.Avatar != "" {
		avatar = fmt.Sprintf("set (%d bytes)", len(s.Avatar))
	}
	fmt.Printf("avatar:      %s\n", avatar)
	fmt.Println("notifications:")
	fmt.Printf("  push:      %s\n", onOff(s.Notifications.Push))
	fmt.Printf("  email:     %s\n", onOff(s.Notifications.Email))
	fmt.Printf("  reminders: %s\n", onOff(s.Notifications.Reminders))
	fmt.Println("privacy:")
	fmt.Printf("  public-profile:  %s\n", onOff(s.Privacy.PublicProfile))
	fmt.Printf("  data-collection: %s\n", onOff(s.Privacy.DataCollection))
	return nil
}

type SettingsSetCmd struct {
	Username    string `help:"Display name." default:""`
	Language    string `help:"UI language: en, ru, uk." default:""`
	Personality string `help:"AI coach personality: coach, friend, analytical." default:""`
}

func (c *SettingsSetCmd) Run(ctx *Context) error {
	var patches []models.SettingsPatch
	if c.Username != "" {
		patches = append(patches, models.SetUsername{Username: c.Username})
	}
	if c.Language != "" {
		patches = append(patches, models.SetLanguage{Language: models.Language(c.Language)})
	}
	if c.Personality != "" {
		patches = append(patches, models.SetPersonality{Personality: models.Personality(c.Personality)})
	}
	if len(patches) == 0 {
		return fmt.Errorf("nothing to update; pass --username, --language, or --personality")
	}

	if err := ctx.State.UpdateSettings(patches...); err != nil {
		return err
	}
	fmt.Println("Settings updated.")
	return nil
}

type SettingsToggleCmd struct {
	Field string `arg:"" help:"One of: push, email, reminders, public-profile, data-collection." enum:"push,email,reminders,public-profile,data-collection"`
}

func (c *SettingsToggleCmd) Run(ctx *Context) error {
	var patch models.SettingsPatch
	switch c.Field {
	case "push":
		patch = models.ToggleNotification{Field: models.NotifyPush}
	case "email":
		patch = models.ToggleNotification{Field: models.NotifyEmail}
	case "reminders":
		patch = models.ToggleNotification{Field: models.NotifyReminders}
	case "public-profile":
		patch = models.TogglePrivacy{Field: models.PrivacyPublicProfile}
	case "data-collection":
		patch = models.TogglePrivacy{Field: models.PrivacyDataCollection}
	}

	if err := ctx.State.UpdateSettings(patch); err != nil {
		return err
	}
	fmt.Printf("Toggled %s.\n", c.Field)
	return nil
}

type SettingsAvatarCmd struct {
	Prompt string `arg:"" optional:"" help:"Image prompt (default: a friendly avatar based on your username)."`
}

func (c *SettingsAvatarCmd) Run(ctx *Context) error {
	gw, err := ctx.Gateway()
	if err != nil {
		if errors.Is(err, ai.ErrMissingAPIKey) {
			return fmt.Errorf("no API key configured; run `habitkit key set` or export %s", "GEMINI_API_KEY")
		}
		return err
	}

	prompt := c.Prompt
	if prompt == "" {
		prompt = fmt.Sprintf("A friendly, minimalist cartoon avatar for a habit tracking app user named %s", ctx.State.Settings.Username)
	}

	callCtx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	dataURL, err := gw.GenerateAvatarImage(callCtx, prompt)
	if err != nil {
		return fmt.Errorf("avatar generation failed: %w", err)
	}
	if dataURL == "" {
		return fmt.Errorf("the model returned no image")
	}

	if err := ctx.State.UpdateSettings(models.SetAvatar{DataURL: dataURL}); err != nil {
		return err
	}
	fmt.Println("Avatar updated.")
	return nil
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
