package i18n

import (
	"testing"

	"github.com/habitkit/habitkit/internal/models"
)

func TestT(t *testing.T) {
	tests := []struct {
		name string
		lang models.Language
		key  string
		want string
	}{
		{
			name: "selected language hit",
			lang: models.LanguageRussian,
			key:  "habits",
			want: "Привычки",
		},
		{
			name: "english",
			lang: models.LanguageEnglish,
			key:  "habits",
			want: "Habits",
		},
		{
			name: "unknown language falls back to english",
			lang: "de",
			key:  "habits",
			want: "Habits",
		},
		{
			name: "unknown key falls back to raw key",
			lang: models.LanguageUkrainian,
			key:  "nonexistentKey",
			want: "nonexistentKey",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := T(tt.lang, tt.key); got != tt.want {
				t.Errorf("T(%q, %q) = %q, want %q", tt.lang, tt.key, got, tt.want)
			}
		})
	}
}
