package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"

	"github.com/habitkit/habitkit/internal/ai"
	"github.com/habitkit/habitkit/internal/logger"
	"github.com/habitkit/habitkit/internal/models"
)

// connectionTrouble is shown as the coach's reply when the AI backend cannot
// be reached. It is stored in the history like any other model message.
const connectionTrouble = "I'm having trouble connecting to my brain right now. Please check your internet or API key."

type CoachCmd struct {
	Send    CoachSendCmd    `cmd:"" help:"Send a message to the AI coach."`
	Analyze CoachAnalyzeCmd `cmd:"" help:"Ask the coach for a progress analysis."`
	History CoachHistoryCmd `cmd:"" help:"Show the conversation history."`
	Clear   CoachClearCmd   `cmd:"" help:"Clear the conversation history."`
}

type CoachSendCmd struct {
	Message []string `arg:"" help:"Message text."`
	Plain   bool     `help:"Print the reply without markdown rendering."`
}

func (c *CoachSendCmd) Run(ctx *Context) error {
	text := strings.TrimSpace(strings.Join(c.Message, " "))
	if text == "" {
		return fmt.Errorf("message must not be empty")
	}

	gw, err := ctx.Gateway()
	if err != nil {
		if errors.Is(err, ai.ErrMissingAPIKey) {
			return fmt.Errorf("no API key configured; run `habitkit key set` or export %s", "GEMINI_API_KEY")
		}
		return err
	}

	history := append([]models.ChatMessage(nil), ctx.State.Chat...)
	if _, err := ctx.State.AppendMessage(models.RoleUser, text); err != nil {
		return err
	}

	callCtx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	raw, err := gw.SendMessage(callCtx, text, history, ctx.State.Habits, ctx.State.Logs, ctx.State.Settings.AIConfig.Personality)
	if err != nil {
		logger.Error("Coach request failed", "error", err)
		raw = connectionTrouble
	}

	reply, applied, err := ctx.State.HandleCoachReply(raw)
	if err != nil {
		return err
	}
	if _, err := ctx.State.AppendMessage(models.RoleModel, reply); err != nil {
		return err
	}

	if applied {
		logger.Info("Theme applied from coach suggestion", "theme", ctx.State.Theme.Name)
	}
	return printReply(reply, c.Plain)
}

type CoachAnalyzeCmd struct {
	Plain bool `help:"Print the analysis without markdown rendering."`
}

func (c *CoachAnalyzeCmd) Run(ctx *Context) error {
	gw, err := ctx.Gateway()
	if err != nil {
		if errors.Is(err, ai.ErrMissingAPIKey) {
			return fmt.Errorf("no API key configured; run `habitkit key set` or export %s", "GEMINI_API_KEY")
		}
		return err
	}

	callCtx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	analysis, err := gw.GenerateAnalysis(callCtx, ctx.State.Habits, ctx.State.Logs, ctx.State.Settings.AIConfig.Personality)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}
	return printReply(analysis, c.Plain)
}

type CoachHistoryCmd struct {
	Last int `help:"Number of messages to show (0 = all)." default:"0"`
}

func (c *CoachHistoryCmd) Run(ctx *Context) error {
	msgs := ctx.State.Chat
	if c.Last > 0 && len(msgs) > c.Last {
		msgs = msgs[len(msgs)-c.Last:]
	}
	if len(msgs) == 0 {
		fmt.Println("No messages yet.")
		return nil
	}
	for _, m := range msgs {
		who := "you"
		if m.Role == models.RoleModel {
			who = "coach"
		}
		fmt.Printf("[%s] %s: %s\n", m.Timestamp.Format("2006-01-02 15:04"), who, m.Text)
	}
	return nil
}

type CoachClearCmd struct{}

func (c *CoachClearCmd) Run(ctx *Context) error {
	if err := ctx.State.ClearChat(); err != nil {
		return err
	}
	fmt.Println("Conversation cleared.")
	return nil
}

func printReply(text string, plain bool) error {
	if plain {
		fmt.Println(text)
		return nil
	}
	rendered, err := glamour.Render(text, "auto")
	if err != nil {
		// Markdown rendering is cosmetic only.
		fmt.Println(text)
		return nil
	}
	fmt.Print(rendered)
	return nil
}
