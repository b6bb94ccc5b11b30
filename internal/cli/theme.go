package cli

import (
	"fmt"

	"github.com/habitkit/habitkit/internal/models"
)

type ThemeCmd struct {
	Show  ThemeShowCmd  `cmd:"" help:"Show the active theme." default:"1"`
	Set   ThemeSetCmd   `cmd:"" help:"Replace the active theme."`
	Reset ThemeResetCmd `cmd:"" help:"Restore the built-in theme."`
}

type ThemeShowCmd struct{}

func (c *ThemeShowCmd) Run(ctx *Context) error {
	printTheme(ctx.State.Theme)
	return nil
}

type ThemeSetCmd struct {
	Name       string `arg:"" help:"Theme name."`
	Primary    string `help:"Primary color (hex)." default:""`
	Secondary  string `help:"Secondary color (hex)." default:""`
	Background string `help:"Background color (hex)." default:""`
	Surface    string `help:"Surface color (hex)." default:""`
	Text       string `help:"Text color (hex)." default:""`
	Accent     string `help:"Accent color (hex)." default:""`
}

func (c *ThemeSetCmd) Run(ctx *Context) error {
	// A theme change is a total overwrite. Unspecified colors fall back to
	// the built-in palette, not the previous theme's values.
	theme := models.Theme{Name: c.Name, Colors: models.DefaultTheme().Colors}
	if c.Primary != "" {
		theme.Colors.Primary = c.Primary
	}
	if c.Secondary != "" {
		theme.Colors.Secondary = c.Secondary
	}
	if c.Background != "" {
		theme.Colors.Background = c.Background
	}
	if c.Surface != "" {
		theme.Colors.Surface = c.Surface
	}
	if c.Text != "" {
		theme.Colors.Text = c.Text
	}
	if c.Accent != "" {
		theme.Colors.Accent = c.Accent
	}

	if err := ctx.State.ApplyTheme(theme); err != nil {
		return err
	}
	fmt.Printf("Applied theme: %s\n", theme.Name)
	return nil
}

type ThemeResetCmd struct{}

func (c *ThemeResetCmd) Run(ctx *Context) error {
	theme := models.DefaultTheme()
	if err := ctx.State.ApplyTheme(theme); err != nil {
		return err
	}
	fmt.Printf("Restored theme: %s\n", theme.Name)
	return nil
}

func printTheme(theme models.Theme) {
	fmt.Printf("%s\n", theme.Name)
	fmt.Printf("  primary:    %s\n", theme.Colors.Primary)
	fmt.Printf("  secondary:  %s\n", theme.Colors.Secondary)
	fmt.Printf("  background: %s\n", theme.Colors.Background)
	fmt.Printf("  surface:    %s\n", theme.Colors.Surface)
	fmt.Printf("  text:       %s\n", theme.Colors.Text)
	fmt.Printf("  accent:     %s\n", theme.Colors.Accent)
}
