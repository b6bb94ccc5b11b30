package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/habitkit/habitkit/internal/models"
)

func providers(t *testing.T) map[string]Provider {
	t.Helper()
	return map[string]Provider{
		"json":   NewJSONStore(t.TempDir()),
		"sqlite": NewSQLiteStore(filepath.Join(t.TempDir(), "habitkit.db")),
	}
}

func TestPutGetRoundtrip(t *testing.T) {
	for name, store := range providers(t) {
		t.Run(name, func(t *testing.T) {
			if err := store.Load(); err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			defer store.Close()

			in := []models.Habit{{ID: "a", Title: "Read", Category: models.CategoryCreative, Streak: 3}}
			if err := store.Put("ht_habits", in); err != nil {
				t.Fatalf("Put() error = %v", err)
			}

			var out []models.Habit
			found, err := store.Get("ht_habits", &out)
			if err != nil {
				t.Fatalf("Get() error = %v", err)
			}
			if !found {
				t.Fatal("Get() found = false, want true")
			}
			if len(out) != 1 || out[0].Title != "Read" || out[0].Streak != 3 {
				t.Errorf("Get() = %+v", out)
			}
		})
	}
}

func TestGetAbsentKey(t *testing.T) {
	for name, store := range providers(t) {
		t.Run(name, func(t *testing.T) {
			if err := store.Load(); err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			defer store.Close()

			var out []models.Habit
			found, err := store.Get("ht_habits", &out)
			if err != nil {
				t.Fatalf("Get() error = %v", err)
			}
			if found {
				t.Error("Get() found = true for absent key")
			}
		})
	}
}

func TestCorruptBlobFallsBackToAbsent(t *testing.T) {
	dir := t.TempDir()
	store := NewJSONStore(dir)
	if err := store.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "ht_theme.json"), []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}

	var theme models.Theme
	found, err := store.Get("ht_theme", &theme)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if found {
		t.Error("Get() found = true for corrupt blob, want fallback to absent")
	}
}

func TestResetClearsAllKeys(t *testing.T) {
	for name, store := range providers(t) {
		t.Run(name, func(t *testing.T) {
			if err := store.Load(); err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			defer store.Close()

			if err := store.Put("ht_theme", models.DefaultTheme()); err != nil {
				t.Fatal(err)
			}
			if err := store.Put("ht_settings", models.DefaultSettings()); err != nil {
				t.Fatal(err)
			}

			if err := store.Reset(); err != nil {
				t.Fatalf("Reset() error = %v", err)
			}

			var theme models.Theme
			found, err := store.Get("ht_theme", &theme)
			if err != nil {
				t.Fatal(err)
			}
			if found {
				t.Error("key survived Reset()")
			}
		})
	}
}

func TestOverwriteIsTotal(t *testing.T) {
	store := NewJSONStore(t.TempDir())
	if err := store.Load(); err != nil {
		t.Fatal(err)
	}

	if err := store.Put("ht_logs", []models.DailyLog{{Date: "2025-03-01", Notes: "first"}}); err != nil {
		t.Fatal(err)
	}
	if err := store.Put("ht_logs", []models.DailyLog{{Date: "2025-03-02"}}); err != nil {
		t.Fatal(err)
	}

	var logs []models.DailyLog
	if _, err := store.Get("ht_logs", &logs); err != nil {
		t.Fatal(err)
	}
	if len(logs) != 1 || logs[0].Date != "2025-03-02" {
		t.Errorf("logs = %+v, want single 2025-03-02 entry", logs)
	}
}
