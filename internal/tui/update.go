package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/habitkit/habitkit/internal/ai"
	"github.com/habitkit/habitkit/internal/export"
	"github.com/habitkit/habitkit/internal/logger"
	"github.com/habitkit/habitkit/internal/models"
)

// connectionTrouble is shown as the coach's reply when the backend cannot be
// reached. It is stored in the history like any other model message.
const connectionTrouble = "I'm having trouble connecting to my brain right now. Please check your internet or API key."

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.habitList.SetSize(msg.Width-4, msg.Height-8)
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		// repaint only; running timers recompute their elapsed text in View
		return m, tickCmd()

	case spinner.TickMsg:
		if !m.waiting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case coachReplyMsg:
		return m.handleCoachReply(msg)

	case analysisMsg:
		m.waiting = false
		if msg.err != nil {
			logger.Error("Analysis request failed", "error", msg.err)
			m.status = connectionTrouble
			return m, nil
		}
		m.analysis = msg.text
		return m, nil
	}

	switch m.session {
	case StateNewHabit:
		return m.updateNewHabitForm(msg)
	case StateCheckin:
		return m.updateCheckinForm(msg)
	case StateConfirmDelete:
		return m.updateConfirmDelete(msg)
	case StateConfirmReset:
		return m.updateConfirmReset(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	// while the habit filter input is open, every key belongs to the list
	if m.session == StateHabits && m.habitList.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.habitList, cmd = m.habitList.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		// the coach input owns plain "q"
		if m.session == StateCoach && msg.String() == "q" {
			break
		}
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.NextTab):
		m.session = nextTab(m.session, 1)
		return m.enterTab()

	case key.Matches(msg, m.keys.PrevTab):
		m.session = nextTab(m.session, -1)
		return m.enterTab()

	case key.Matches(msg, m.keys.Help):
		if m.session != StateCoach {
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	switch m.session {
	case StateDashboard:
		return m.updateDashboard(msg)
	case StateHabits:
		return m.updateHabits(msg)
	case StateAnalytics:
		return m.updateAnalytics(msg)
	case StateCoach:
		return m.updateCoach(msg)
	case StateSettings:
		return m.updateSettings(msg)
	}
	return m, nil
}

func nextTab(s SessionState, dir int) SessionState {
	for i, tab := range tabStates {
		if tab == s {
			return tabStates[(i+dir+len(tabStates))%len(tabStates)]
		}
	}
	return StateDashboard
}

// enterTab runs per-tab setup after a tab switch.
func (m Model) enterTab() (tea.Model, tea.Cmd) {
	m.chatInput.Blur()
	if m.session == StateCoach {
		m.chatInput.Focus()
		return m, nil
	}
	if m.session == StateHabits {
		m.refreshHabits()
	}
	return m, nil
}

func (m Model) updateDashboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Checkin) {
		m.previousState = m.session
		m.session = StateCheckin
		m.checkinForm = &CheckinFormModel{Mood: 5, Energy: 5}
		if entry, ok := m.app.LogFor(m.app.Today()); ok {
			if entry.Mood != nil {
				m.checkinForm.Mood = *entry.Mood
			}
			if entry.EnergyLevel != nil {
				m.checkinForm.Energy = *entry.EnergyLevel
			}
			m.checkinForm.Note = entry.Notes
		}
		m.form = newCheckinForm(m.checkinForm, m.t)
		return m, m.form.Init()
	}
	return m, nil
}

func (m Model) updateHabits(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Toggle):
		habit := m.selectedHabit()
		if habit == nil {
			return m, nil
		}
		if habit.TimerRunning() {
			m.status = "Stop the timer before toggling completion."
			return m, nil
		}
		if err := m.app.ToggleCompletion(habit.ID, m.app.Today()); err != nil {
			m.status = err.Error()
		}
		m.refreshHabits()
		return m, nil

	case key.Matches(msg, m.keys.Timer):
		habit := m.selectedHabit()
		if habit == nil {
			return m, nil
		}
		var err error
		if habit.TimerRunning() {
			err = m.app.StopTimer(habit.ID)
		} else {
			err = m.app.StartTimer(habit.ID)
		}
		if err != nil {
			m.status = err.Error()
		}
		m.refreshHabits()
		return m, nil

	case key.Matches(msg, m.keys.NewHabit):
		m.previousState = m.session
		m.session = StateNewHabit
		m.habitForm = &HabitFormModel{}
		draft, found := m.app.LoadDraft()
		if found {
			m.status = m.t("draftSaved")
		}
		m.form = newHabitForm(draft, m.habitForm, m.t)
		return m, m.form.Init()

	case key.Matches(msg, m.keys.Delete):
		habit := m.selectedHabit()
		if habit == nil {
			return m, nil
		}
		m.pendingDelete = habit.ID
		m.previousState = m.session
		m.session = StateConfirmDelete
		return m, nil
	}

	var cmd tea.Cmd
	m.habitList, cmd = m.habitList.Update(msg)
	return m, cmd
}

func (m Model) updateAnalytics(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "i" && !m.waiting {
		gw, err := m.gateway()
		if err != nil {
			m.status = m.gatewayError(err)
			return m, nil
		}
		m.waiting = true
		return m, tea.Batch(
			m.spinner.Tick,
			fetchAnalysis(gw, m.app.Habits, m.app.Logs, m.app.Settings.AIConfig.Personality),
		)
	}
	return m, nil
}

func (m Model) updateCoach(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Clear):
		if err := m.app.ClearChat(); err != nil {
			m.status = err.Error()
		}
		return m, nil

	case key.Matches(msg, m.keys.Send):
		if m.waiting {
			return m, nil
		}
		text := strings.TrimSpace(m.chatInput.Value())
		if text == "" {
			return m, nil
		}
		gw, err := m.gateway()
		if err != nil {
			m.status = m.gatewayError(err)
			return m, nil
		}

		history := append([]models.ChatMessage(nil), m.app.Chat...)
		if _, err := m.app.AppendMessage(models.RoleUser, text); err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.chatInput.Reset()
		m.waiting = true
		return m, tea.Batch(
			m.spinner.Tick,
			sendToCoach(gw, text, history, m.app.Habits, m.app.Logs, m.app.Settings.AIConfig.Personality),
		)
	}

	var cmd tea.Cmd
	m.chatInput, cmd = m.chatInput.Update(msg)
	return m, cmd
}

func (m Model) handleCoachReply(msg coachReplyMsg) (tea.Model, tea.Cmd) {
	m.waiting = false

	raw := msg.raw
	if msg.err != nil {
		logger.Error("Coach request failed", "error", msg.err)
		raw = connectionTrouble
	}

	reply, applied, err := m.app.HandleCoachReply(raw)
	if err != nil {
		m.status = err.Error()
		return m, nil
	}
	if _, err := m.app.AppendMessage(models.RoleModel, reply); err != nil {
		m.status = err.Error()
	}
	if applied {
		m.styles = newStyles(m.app.Theme)
	}
	return m, nil
}

func (m Model) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	apply := func(p models.SettingsPatch) {
		if err := m.app.UpdateSettings(p); err != nil {
			m.status = err.Error()
		}
	}

	switch {
	case key.Matches(msg, m.keys.Language):
		apply(models.SetLanguage{Language: nextLanguage(m.app.Settings.Language)})
		return m, nil

	case key.Matches(msg, m.keys.Persona):
		apply(models.SetPersonality{Personality: nextPersonality(m.app.Settings.AIConfig.Personality)})
		return m, nil

	case key.Matches(msg, m.keys.Export):
		doc := export.Document{
			Habits:     m.app.Habits,
			Logs:       m.app.Logs,
			Settings:   m.app.Settings,
			Theme:      m.app.Theme,
			ExportDate: m.app.Now(),
		}
		path, err := export.Write(".", doc)
		if err != nil {
			m.status = err.Error()
		} else {
			m.status = fmt.Sprintf("Exported to %s", path)
		}
		return m, nil

	case key.Matches(msg, m.keys.Reset):
		m.previousState = m.session
		m.session = StateConfirmReset
		return m, nil
	}

	switch msg.String() {
	case "1":
		apply(models.ToggleNotification{Field: models.NotifyPush})
	case "2":
		apply(models.ToggleNotification{Field: models.NotifyEmail})
	case "3":
		apply(models.ToggleNotification{Field: models.NotifyReminders})
	case "4":
		apply(models.TogglePrivacy{Field: models.PrivacyPublicProfile})
	case "5":
		apply(models.TogglePrivacy{Field: models.PrivacyDataCollection})
	}
	return m, nil
}

func (m Model) updateNewHabitForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.Type == tea.KeyEsc {
		// keep partial input around for next time
		if err := m.app.SaveDraft(models.HabitDraft{
			Title:    m.habitForm.Title,
			Goal:     m.habitForm.Goal,
			Category: models.Category(m.habitForm.Category),
		}); err != nil {
			m.status = err.Error()
		}
		m.session = m.previousState
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		_, err := m.app.AddHabit(m.habitForm.Title, m.habitForm.Goal, models.Category(m.habitForm.Category), nil)
		if err != nil {
			m.status = err.Error()
		} else if err := m.app.ClearDraft(); err != nil {
			m.status = err.Error()
		}
		m.refreshHabits()
		m.session = m.previousState
	case huh.StateAborted:
		m.session = m.previousState
	}
	return m, cmd
}

func (m Model) updateCheckinForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.Type == tea.KeyEsc {
		m.session = m.previousState
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		entry := models.DailyLog{
			Date:        m.app.Today(),
			Mood:        &m.checkinForm.Mood,
			EnergyLevel: &m.checkinForm.Energy,
			Notes:       m.checkinForm.Note,
		}
		if err := m.app.UpsertLog(entry); err != nil {
			m.status = err.Error()
		}
		m.session = m.previousState
	case huh.StateAborted:
		m.session = m.previousState
	}
	return m, cmd
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch k.String() {
	case "y", "Y":
		if err := m.app.DeleteHabit(m.pendingDelete); err != nil {
			m.status = err.Error()
		}
		m.pendingDelete = ""
		m.refreshHabits()
		m.session = m.previousState
	case "n", "N", "esc":
		m.pendingDelete = ""
		m.session = m.previousState
	}
	return m, nil
}

func (m Model) updateConfirmReset(msg tea.Msg) (tea.Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch k.String() {
	case "y", "Y":
		if err := m.app.Reset(); err != nil {
			m.status = err.Error()
		} else {
			m.styles = newStyles(m.app.Theme)
			m.refreshHabits()
			m.status = "All data deleted."
		}
		m.session = m.previousState
	case "n", "N", "esc":
		m.session = m.previousState
	}
	return m, nil
}

func (m Model) gatewayError(err error) string {
	if errors.Is(err, ai.ErrMissingAPIKey) {
		return "No API key configured. Run `habitkit key set` first."
	}
	return err.Error()
}

func nextLanguage(l models.Language) models.Language {
	switch l {
	case models.LanguageEnglish:
		return models.LanguageRussian
	case models.LanguageRussian:
		return models.LanguageUkrainian
	default:
		return models.LanguageEnglish
	}
}

func nextPersonality(p models.Personality) models.Personality {
	switch p {
	case models.PersonalityCoach:
		return models.PersonalityFriend
	case models.PersonalityFriend:
		return models.PersonalityAnalytical
	default:
		return models.PersonalityCoach
	}
}
