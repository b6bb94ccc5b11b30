package ai

import (
	"encoding/json"
	"fmt"

	"github.com/habitkit/habitkit/internal/models"
)

// baseInstruction is the fixed persona + output-format contract sent with
// every prompt. The fenced-JSON theme format is part of the contract: the
// caller extracts and applies it when present.
const baseInstruction = `
You are HabitTracker AI — an intelligent personal assistant and analytics engine.

Your skills:
- behavioral psychology, habit formation, coaching;
- UX/UI design assistance and theme generation;
- basic data analytics: statistics, correlations, trends;
- structured thinking and clear communication.

GENERAL STYLE & RESPONSE RULES:
1. Be friendly, motivating, concise.
2. Always include practical actions.
3. If data is missing, infer reasonably.
4. If asked for analytics, provide key metrics, trends, and recommendations.
5. If asked for design/theme, return a JSON object with the theme structure along with your explanation.

FEATURE MECHANICS:
1. Streaks + Habit Score.
2. Adaptive Difficulty.
3. Correlation Analysis.
4. Small Experiments.
5. Smart Reminders.

When analyzing data, look for patterns (e.g., "You miss gym when energy is low").
If the user asks to change the theme, provide a JSON block strictly in this format inside the text:
` + "```json" + `
{
  "theme": {
    "name": "Theme Name",
    "colors": {
       "primary": "#hex",
       "secondary": "#hex",
       "background": "#hex",
       "surface": "#hex",
       "text": "#hex",
       "accent": "#hex"
    }
  }
}
` + "```" + `
`

var personaPreambles = map[models.Personality]string{
	models.PersonalityCoach:      "Speak as a supportive coach: encouraging, goal-oriented, direct about slips.",
	models.PersonalityFriend:     "Speak as a warm friend: casual, empathetic, celebrate small wins.",
	models.PersonalityAnalytical: "Speak as an analyst: lead with numbers and observed patterns, keep emotion minimal.",
}

func systemInstruction(personality models.Personality) string {
	preamble, ok := personaPreambles[personality]
	if !ok {
		preamble = personaPreambles[models.PersonalityCoach]
	}
	return preamble + "\n" + baseInstruction
}

// habitSummary is the per-habit slice of state shared with the model:
// enough to coach on, without the full time-log history.
type habitSummary struct {
	Title              string   `json:"title"`
	Streak             int      `json:"streak"`
	CompletedLast7Days []string `json:"completedLast7Days"`
}

// BuildContext serializes current ledger state into the textual context
// block prepended to every chat prompt.
func BuildContext(habits []models.Habit, logs []models.DailyLog) string {
	summaries := make([]habitSummary, 0, len(habits))
	for _, h := range habits {
		summaries = append(summaries, habitSummary{
			Title:              h.Title,
			Streak:             h.Streak,
			CompletedLast7Days: h.RecentCompletions(7),
		})
	}

	recentLogs := logs
	if len(recentLogs) > 7 {
		recentLogs = recentLogs[len(recentLogs)-7:]
	}

	habitsJSON, _ := json.Marshal(summaries)
	logsJSON, _ := json.Marshal(recentLogs)

	return fmt.Sprintf("CURRENT USER DATA:\nHabits: %s\nRecent Logs (Last 7 days): %s", habitsJSON, logsJSON)
}

func contextualInstruction(habits []models.Habit, logs []models.DailyLog, personality models.Personality) string {
	return systemInstruction(personality) + "\n\n" + BuildContext(habits, logs)
}
