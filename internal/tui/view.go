package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/habitkit/habitkit/internal/models"
	"github.com/habitkit/habitkit/internal/stats"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.session {
	case StateDashboard:
		content = m.viewDashboard()
	case StateHabits:
		content = m.habitList.View()
	case StateAnalytics:
		content = m.viewAnalytics()
	case StateCoach:
		content = m.viewCoach()
	case StateSettings:
		content = m.viewSettings()
	case StateNewHabit, StateCheckin:
		content = m.form.View()
	case StateConfirmDelete:
		content = m.viewConfirmDelete()
	case StateConfirmReset:
		content = m.styles.Danger.Render("Delete ALL data? This cannot be undone. (y/n)")
	}

	var status string
	if m.status != "" {
		status = m.styles.Muted.Render(m.status)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		m.styles.Doc.Render(content),
		status,
		m.help.View(m.keys),
	)
}

func (m Model) viewTabs() string {
	titles := []string{
		m.t("dashboard"),
		m.t("habits"),
		m.t("analytics"),
		m.t("coach"),
		m.t("settings"),
	}
	var tabs []string
	for i, title := range titles {
		if m.session == tabStates[i] || (m.session >= StateNewHabit && m.previousState == tabStates[i]) {
			tabs = append(tabs, m.styles.ActiveTab.Render(title))
		} else {
			tabs = append(tabs, m.styles.InactiveTab.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewDashboard() string {
	var b strings.Builder

	greeting := m.t("greetingBack")
	if m.app.Now().Hour() < 12 {
		greeting = m.t("greetingMorning")
	}
	b.WriteString(m.styles.Title.Render(fmt.Sprintf("%s %s", greeting, m.app.Settings.Username)))
	b.WriteString("\n\n")

	today := m.app.Today()
	done, total := stats.TodayProgress(m.app.Habits, today)
	b.WriteString(fmt.Sprintf("%s: %d/%d\n\n", m.t("dailyGoal"), done, total))

	b.WriteString(m.styles.Title.Render(m.t("todaysFocus")))
	b.WriteString("\n")
	if len(m.app.Habits) == 0 {
		b.WriteString(m.styles.Muted.Render(m.t("noHabitsToday")))
		b.WriteString("\n")
	}
	for _, h := range m.app.Habits {
		mark := "[ ]"
		if h.IsCompletedOn(today) {
			mark = "[x]"
		}
		line := fmt.Sprintf("%s %s  %s", mark, h.Title, m.styles.Streak.Render(fmt.Sprintf("%d %s", h.Streak, m.t("days"))))
		if h.TimerRunning() {
			elapsed := int(time.Since(*h.TimerStart).Seconds())
			if elapsed < 0 {
				elapsed = 0
			}
			line += "  " + m.styles.Timer.Render(fmt.Sprintf("%02d:%02d", elapsed/60, elapsed%60))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if entry, ok := m.app.LogFor(today); ok && entry.Mood != nil {
		b.WriteString(m.styles.Muted.Render(fmt.Sprintf("%s: %d/10", m.t("dailyCheckin"), *entry.Mood)))
	} else {
		b.WriteString(m.styles.Muted.Render(fmt.Sprintf("%s: press c", m.t("dailyCheckin"))))
	}
	return b.String()
}

func (m Model) viewAnalytics() string {
	var b strings.Builder
	summary := stats.Compute(m.app.Habits, m.app.Logs, m.app.Now())

	b.WriteString(m.styles.Title.Render(m.t("analytics")))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%s: %d   %s: %d %s   %s: %d%%\n\n",
		m.t("totalWins"), summary.TotalCompletions,
		m.t("bestStreak"), summary.BestStreak, m.t("days"),
		m.t("weeklyAvg"), summary.WeeklyAvgPercent))

	b.WriteString(m.styles.Title.Render(m.t("completionVsMood")))
	b.WriteString("\n")
	for _, p := range summary.Week {
		bar := strings.Repeat("█", p.CompletionRate/10)
		mood := ""
		if p.Mood > 0 {
			mood = fmt.Sprintf("  mood %d", p.Mood)
		}
		b.WriteString(fmt.Sprintf("%s %-10s %3d%%%s\n", p.Date, bar, p.CompletionRate, m.styles.Muted.Render(mood)))
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Title.Render(m.t("coachInsight")))
	b.WriteString("\n")
	switch {
	case m.waiting:
		b.WriteString(m.spinner.View() + " " + m.t("generating"))
	case m.analysis != "":
		b.WriteString(renderMarkdown(m.analysis, m.width))
	default:
		b.WriteString(m.styles.Muted.Render("press i to ask the coach"))
	}
	return b.String()
}

func (m Model) viewCoach() string {
	var b strings.Builder

	msgs := m.app.Chat
	if len(msgs) > 20 {
		msgs = msgs[len(msgs)-20:]
	}
	for _, msg := range msgs {
		if msg.Role == models.RoleUser {
			b.WriteString(m.styles.CoachUser.Render("you: " + msg.Text))
			b.WriteString("\n")
		} else {
			b.WriteString(m.styles.CoachModel.Render("coach:"))
			b.WriteString(renderMarkdown(msg.Text, m.width))
		}
	}

	b.WriteString("\n")
	if m.waiting {
		b.WriteString(m.spinner.View() + " " + m.t("generating") + "\n")
	}
	b.WriteString(m.chatInput.View())
	return b.String()
}

func (m Model) viewSettings() string {
	s := m.app.Settings
	var b strings.Builder

	b.WriteString(m.styles.Title.Render(m.t("profile")))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s\n\n", s.Username))

	b.WriteString(m.styles.Title.Render(m.t("general")))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s (l): %s\n", m.t("language"), s.Language))
	b.WriteString(fmt.Sprintf("  %s (p): %s\n\n", m.t("aiPersonality"), s.AIConfig.Personality))

	b.WriteString(m.styles.Title.Render(m.t("notifications")))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  1. %s: %s\n", m.t("pushNotifs"), checkbox(s.Notifications.Push)))
	b.WriteString(fmt.Sprintf("  2. Email: %s\n", checkbox(s.Notifications.Email)))
	b.WriteString(fmt.Sprintf("  3. %s: %s\n\n", m.t("habitReminders"), checkbox(s.Notifications.Reminders)))

	b.WriteString(m.styles.Title.Render(m.t("privacy")))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  4. Public profile: %s\n", checkbox(s.Privacy.PublicProfile)))
	b.WriteString(fmt.Sprintf("  5. Data collection: %s\n\n", checkbox(s.Privacy.DataCollection)))

	b.WriteString(m.styles.Muted.Render(fmt.Sprintf("e: %s   R: %s", m.t("exportData"), m.t("resetApp"))))
	return b.String()
}

func (m Model) viewConfirmDelete() string {
	title := m.pendingDelete
	if h := m.app.FindHabit(m.pendingDelete); h != nil {
		title = h.Title
	}
	return m.styles.Danger.Render(fmt.Sprintf("Delete habit %q permanently? (y/n)", title))
}

func checkbox(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}

func renderMarkdown(text string, width int) string {
	if width <= 0 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(width-4))
	if err != nil {
		return text + "\n"
	}
	out, err := r.Render(text)
	if err != nil {
		return text + "\n"
	}
	return out
}
