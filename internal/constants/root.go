package constants

const (
	AppName            = "habitkit"
	DefaultKeyringUser = "gemini-api-key"
	DefaultConfigDir   = "~/.config/habitkit"
	Version            = "v0.3.0"

	// DateFormat is the standard calendar-date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// APIKeyEnvVar is consulted when no key is stored in the OS keyring
	APIKeyEnvVar = "GEMINI_API_KEY"
)

// Persisted state keys. Each key maps to exactly one JSON blob in the store.
const (
	KeyHabits   = "ht_habits"
	KeyLogs     = "ht_logs"
	KeyTheme    = "ht_theme"
	KeyChat     = "ht_chat"
	KeySettings = "ht_settings"

	// KeyHabitDraft holds the in-progress new-habit form so an abandoned
	// draft survives a restart. UI convenience, not a ledger entity.
	KeyHabitDraft = "ht_new_habit_draft"
)

// Gemini model identifiers.
const (
	TextModel  = "gemini-2.5-flash"
	ImageModel = "gemini-2.5-flash-image"
)
