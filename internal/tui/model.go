package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/habitkit/habitkit/internal/ai"
	"github.com/habitkit/habitkit/internal/app"
	"github.com/habitkit/habitkit/internal/i18n"
	"github.com/habitkit/habitkit/internal/models"
)

type SessionState int

const (
	StateDashboard SessionState = iota
	StateHabits
	StateAnalytics
	StateCoach
	StateSettings
	StateNewHabit
	StateCheckin
	StateConfirmDelete
	StateConfirmReset
)

// tab order shown in the header; form and confirm states are overlays.
var tabStates = []SessionState{StateDashboard, StateHabits, StateAnalytics, StateCoach, StateSettings}

type HabitFormModel struct {
	Title    string
	Goal     string
	Category string
}

type CheckinFormModel struct {
	Mood   int
	Energy int
	Note   string
}

type Model struct {
	app     *app.State
	gateway func() (*ai.Gateway, error)

	session       SessionState
	previousState SessionState
	keys          KeyMap
	help          help.Model
	styles        Styles

	habitList list.Model
	chatInput textinput.Model
	spinner   spinner.Model
	waiting   bool

	form        *huh.Form
	habitForm   *HabitFormModel
	checkinForm *CheckinFormModel

	analysis      string // last fetched coach insight
	pendingDelete string // habit id awaiting delete confirmation
	status        string // transient one-line notice
	quitting      bool
	width         int
	height        int
}

func New(state *app.State, gateway func() (*ai.Gateway, error)) Model {
	styles := newStyles(state.Theme)

	delegate := list.NewDefaultDelegate()
	hl := list.New(nil, delegate, 0, 0)
	hl.SetShowTitle(false)
	hl.SetShowHelp(false)
	hl.SetShowStatusBar(false)
	hl.SetFilteringEnabled(true)

	input := textinput.New()
	input.Placeholder = "Ask your coach..."
	input.CharLimit = 500

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		app:       state,
		gateway:   gateway,
		session:   StateDashboard,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		styles:    styles,
		habitList: hl,
		chatInput: input,
		spinner:   sp,
	}
	m.refreshHabits()
	return m
}

func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// t translates a UI string into the configured language.
func (m Model) t(key string) string {
	return i18n.T(m.app.Settings.Language, key)
}

type habitItem struct {
	habit models.Habit
	today string
}

func (i habitItem) Title() string {
	mark := "[ ]"
	if i.habit.IsCompletedOn(i.today) {
		mark = "[x]"
	}
	timer := ""
	if i.habit.TimerRunning() {
		timer = " ⏱"
	}
	return fmt.Sprintf("%s %s%s", mark, i.habit.Title, timer)
}

func (i habitItem) Description() string {
	desc := fmt.Sprintf("%s · streak %d", i.habit.Category, i.habit.Streak)
	if total := i.habit.TotalTimeSeconds(); total > 0 {
		desc += fmt.Sprintf(" · %dm tracked", total/60)
	}
	return desc
}

func (i habitItem) FilterValue() string { return i.habit.Title }

func (m *Model) refreshHabits() {
	today := m.app.Today()
	items := make([]list.Item, 0, len(m.app.Habits))
	for _, h := range m.app.Habits {
		items = append(items, habitItem{habit: h, today: today})
	}
	m.habitList.SetItems(items)
}

// selectedHabit returns the habit under the list cursor, or nil.
func (m *Model) selectedHabit() *models.Habit {
	item, ok := m.habitList.SelectedItem().(habitItem)
	if !ok {
		return nil
	}
	return m.app.FindHabit(item.habit.ID)
}

func newHabitForm(draft models.HabitDraft, fm *HabitFormModel, t func(string) string) *huh.Form {
	fm.Title = draft.Title
	fm.Goal = draft.Goal
	fm.Category = string(draft.Category)
	if fm.Category == "" {
		fm.Category = string(models.CategoryOther)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(t("title")).
				Value(&fm.Title).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("required")
					}
					return nil
				}),
			huh.NewInput().
				Title(t("goal")).
				Placeholder("Daily").
				Value(&fm.Goal),
			huh.NewSelect[string]().
				Title(t("category")).
				Options(huh.NewOptions(
					string(models.CategoryHealth),
					string(models.CategoryProductivity),
					string(models.CategoryMindfulness),
					string(models.CategoryCreative),
					string(models.CategoryOther),
				)...).
				Value(&fm.Category),
		),
	)
}

func newCheckinForm(fm *CheckinFormModel, t func(string) string) *huh.Form {
	scale := make([]huh.Option[int], 0, 10)
	for i := 1; i <= 10; i++ {
		scale = append(scale, huh.NewOption(fmt.Sprintf("%d", i), i))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title(t("howFeeling")).
				Options(scale...).
				Value(&fm.Mood),
			huh.NewSelect[int]().
				Title("Energy").
				Options(scale...).
				Value(&fm.Energy),
			huh.NewInput().
				Title(t("quickNote")).
				Value(&fm.Note),
		),
	)
}
