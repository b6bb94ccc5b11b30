package models

type Language string

const (
	LanguageEnglish   Language = "en"
	LanguageRussian   Language = "ru"
	LanguageUkrainian Language = "uk"
)

type Personality string

const (
	PersonalityCoach      Personality = "coach"
	PersonalityFriend     Personality = "friend"
	PersonalityAnalytical Personality = "analytical"
)

type NotificationPrefs struct {
	Push      bool `json:"push"`
	Email     bool `json:"email"`
	Reminders bool `json:"reminders"`
}

type PrivacyPrefs struct {
	PublicProfile  bool `json:"public_profile"`
	DataCollection bool `json:"data_collection"`
}

type AIConfig struct {
	Personality Personality `json:"personality"`
}

// UserSettings is the single application-wide settings record.
type UserSettings struct {
	Username      string            `json:"username"`
	Avatar        string            `json:"avatar,omitempty"` // data URL
	Language      Language          `json:"language"`
	Notifications NotificationPrefs `json:"notifications"`
	Privacy       PrivacyPrefs      `json:"privacy"`
	AIConfig      AIConfig          `json:"ai_config"`
}

// DefaultSettings returns the built-in settings record used when none has
// been persisted.
func DefaultSettings() UserSettings {
	return UserSettings{
		Username: "Guest User",
		Language: LanguageEnglish,
		Notifications: NotificationPrefs{
			Push:      true,
			Email:     false,
			Reminders: true,
		},
		Privacy: PrivacyPrefs{
			PublicProfile:  false,
			DataCollection: true,
		},
		AIConfig: AIConfig{
			Personality: PersonalityCoach,
		},
	}
}
