package app

import (
	"strings"
	"testing"

	"github.com/habitkit/habitkit/internal/models"
)

func TestHandleCoachReplyAppliesTheme(t *testing.T) {
	s, _ := newTestState(t)

	raw := "Here is a darker look for you.\n" +
		"```json\n" +
		`{"theme":{"name":"Dark","colors":{"primary":"#111","secondary":"#222","background":"#000","surface":"#0a0a0a","text":"#eee","accent":"#0f0"}}}` +
		"\n```\nEnjoy!"

	clean, applied, err := s.HandleCoachReply(raw)
	if err != nil {
		t.Fatalf("HandleCoachReply() error = %v", err)
	}
	if !applied {
		t.Fatal("applied = false, want true")
	}

	if s.Theme.Name != "Dark" || s.Theme.Colors.Primary != "#111" || s.Theme.Colors.Accent != "#0f0" {
		t.Errorf("Theme = %+v, want the suggested record", s.Theme)
	}
	if strings.Contains(clean, "```") {
		t.Errorf("fence not stripped from display text: %q", clean)
	}
	if !strings.Contains(clean, "(I've applied the new theme for you!)") {
		t.Errorf("confirmation sentence missing: %q", clean)
	}
	if !strings.Contains(clean, "darker look") || !strings.Contains(clean, "Enjoy!") {
		t.Errorf("surrounding text lost: %q", clean)
	}
}

func TestHandleCoachReplyInvalidJSONLeavesThemeUntouched(t *testing.T) {
	s, _ := newTestState(t)

	raw := "Try this:\n```json\n{\"theme\": not valid\n```"
	clean, applied, err := s.HandleCoachReply(raw)
	if err != nil {
		t.Fatal(err)
	}
	if applied {
		t.Error("applied = true for unparseable JSON")
	}
	if clean != raw {
		t.Errorf("text modified: %q", clean)
	}
	if s.Theme.Name != "Default Light" {
		t.Errorf("theme changed to %q", s.Theme.Name)
	}
}

func TestHandleCoachReplyWithoutThemePropertyIsVerbatim(t *testing.T) {
	s, _ := newTestState(t)

	raw := "Stats:\n```json\n{\"completions\": 4}\n```"
	clean, applied, err := s.HandleCoachReply(raw)
	if err != nil {
		t.Fatal(err)
	}
	if applied || clean != raw {
		t.Errorf("applied=%v clean=%q, want verbatim pass-through", applied, clean)
	}
}

func TestHandleCoachReplyNoFence(t *testing.T) {
	s, _ := newTestState(t)

	raw := "Keep up the great streak!"
	clean, applied, err := s.HandleCoachReply(raw)
	if err != nil {
		t.Fatal(err)
	}
	if applied || clean != raw {
		t.Errorf("applied=%v clean=%q, want untouched", applied, clean)
	}
}

func TestHandleCoachReplyUsesFirstFenceOnly(t *testing.T) {
	s, _ := newTestState(t)

	raw := "```json\n{\"theme\":{\"name\":\"First\",\"colors\":{}}}\n```\n" +
		"```json\n{\"theme\":{\"name\":\"Second\",\"colors\":{}}}\n```"

	clean, applied, err := s.HandleCoachReply(raw)
	if err != nil {
		t.Fatal(err)
	}
	if !applied {
		t.Fatal("applied = false")
	}
	if s.Theme.Name != "First" {
		t.Errorf("Theme.Name = %q, want First", s.Theme.Name)
	}
	if !strings.Contains(clean, "Second") {
		t.Error("second fence should remain in the display text")
	}
}

func TestAppendMessageAndClearChat(t *testing.T) {
	s, store := newTestState(t)

	if _, err := s.AppendMessage(models.RoleUser, "hello"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.AppendMessage(models.RoleModel, "hi there"); err != nil {
		t.Fatal(err)
	}

	if len(s.Chat) != 2 {
		t.Fatalf("Chat has %d messages, want 2", len(s.Chat))
	}
	if s.Chat[0].Role != models.RoleUser || s.Chat[1].Role != models.RoleModel {
		t.Errorf("roles = %s,%s", s.Chat[0].Role, s.Chat[1].Role)
	}

	if err := s.ClearChat(); err != nil {
		t.Fatal(err)
	}
	if len(s.Chat) != 0 {
		t.Error("chat not cleared")
	}

	var persisted []models.ChatMessage
	if _, err := store.Get("ht_chat", &persisted); err != nil {
		t.Fatal(err)
	}
	if len(persisted) != 0 {
		t.Error("cleared chat still persisted")
	}
}
