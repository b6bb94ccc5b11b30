package models

import "fmt"

type NotificationField string

const (
	NotifyPush      NotificationField = "push"
	NotifyEmail     NotificationField = "email"
	NotifyReminders NotificationField = "reminders"
)

type PrivacyField string

const (
	PrivacyPublicProfile  PrivacyField = "public_profile"
	PrivacyDataCollection PrivacyField = "data_collection"
)

// SettingsPatch is a single explicit settings update. Each concrete patch
// targets exactly one field, so callers never reach into the record by
// dynamic key name.
type SettingsPatch interface {
	Apply(*UserSettings) error
}

type SetUsername struct{ Username string }

func (p SetUsername) Apply(s *UserSettings) error {
	if p.Username == "" {
		return fmt.Errorf("username cannot be empty")
	}
	s.Username = p.Username
	return nil
}

type SetAvatar struct{ DataURL string }

func (p SetAvatar) Apply(s *UserSettings) error {
	s.Avatar = p.DataURL
	return nil
}

type SetLanguage struct{ Language Language }

func (p SetLanguage) Apply(s *UserSettings) error {
	switch p.Language {
	case LanguageEnglish, LanguageRussian, LanguageUkrainian:
		s.Language = p.Language
		return nil
	default:
		return fmt.Errorf("unsupported language: %s", p.Language)
	}
}

type SetPersonality struct{ Personality Personality }

func (p SetPersonality) Apply(s *UserSettings) error {
	switch p.Personality {
	case PersonalityCoach, PersonalityFriend, PersonalityAnalytical:
		s.AIConfig.Personality = p.Personality
		return nil
	default:
		return fmt.Errorf("unsupported AI personality: %s", p.Personality)
	}
}

type ToggleNotification struct{ Field NotificationField }

func (p ToggleNotification) Apply(s *UserSettings) error {
	switch p.Field {
	case NotifyPush:
		s.Notifications.Push = !s.Notifications.Push
	case NotifyEmail:
		s.Notifications.Email = !s.Notifications.Email
	case NotifyReminders:
		s.Notifications.Reminders = !s.Notifications.Reminders
	default:
		return fmt.Errorf("unknown notification field: %s", p.Field)
	}
	return nil
}

type TogglePrivacy struct{ Field PrivacyField }

func (p TogglePrivacy) Apply(s *UserSettings) error {
	switch p.Field {
	case PrivacyPublicProfile:
		s.Privacy.PublicProfile = !s.Privacy.PublicProfile
	case PrivacyDataCollection:
		s.Privacy.DataCollection = !s.Privacy.DataCollection
	default:
		return fmt.Errorf("unknown privacy field: %s", p.Field)
	}
	return nil
}
