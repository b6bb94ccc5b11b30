package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/habitkit/habitkit/internal/ai"
	"github.com/habitkit/habitkit/internal/models"
)

type tickMsg time.Time

// tickCmd drives the once-a-second repaint that keeps running timer
// durations current. It never mutates state.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

type coachReplyMsg struct {
	raw string
	err error
}

func sendToCoach(gw *ai.Gateway, text string, history []models.ChatMessage, habits []models.Habit, logs []models.DailyLog, personality models.Personality) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		raw, err := gw.SendMessage(ctx, text, history, habits, logs, personality)
		return coachReplyMsg{raw: raw, err: err}
	}
}

type analysisMsg struct {
	text string
	err  error
}

func fetchAnalysis(gw *ai.Gateway, habits []models.Habit, logs []models.DailyLog, personality models.Personality) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		text, err := gw.GenerateAnalysis(ctx, habits, logs, personality)
		return analysisMsg{text: text, err: err}
	}
}
