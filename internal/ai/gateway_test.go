package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/habitkit/habitkit/internal/models"
)

func testGateway(t *testing.T, handler http.HandlerFunc) *Gateway {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	g, err := New("test-key")
	if err != nil {
		t.Fatal(err)
	}
	g.baseURL = srv.URL
	return g
}

func textResponse(text string) string {
	resp := map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"parts": []map[string]any{{"text": text}}}},
		},
	}
	data, _ := json.Marshal(resp)
	return string(data)
}

func TestNewRequiresAPIKey(t *testing.T) {
	if _, err := New(""); err != ErrMissingAPIKey {
		t.Errorf("New(\"\") error = %v, want ErrMissingAPIKey", err)
	}
}

func TestSendMessageBuildsPrompt(t *testing.T) {
	var captured geminiRequest
	g := testGateway(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "gemini-2.5-flash:generateContent") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Fatal(err)
		}
		w.Write([]byte(textResponse("Keep going!")))
	})

	habits := []models.Habit{{Title: "Run", Streak: 4, CompletedDates: []string{"2025-03-09", "2025-03-10"}}}
	logs := []models.DailyLog{{Date: "2025-03-10", Notes: "tired"}}
	history := []models.ChatMessage{{Role: models.RoleUser, Text: "hi"}, {Role: models.RoleModel, Text: "hello"}}

	got, err := g.SendMessage(context.Background(), "How am I doing?", history, habits, logs, models.PersonalityCoach)
	if err != nil {
		t.Fatalf("SendMessage() error = %v", err)
	}
	if got != "Keep going!" {
		t.Errorf("reply = %q", got)
	}

	if captured.SystemInstruction == nil {
		t.Fatal("system instruction missing")
	}
	sys := captured.SystemInstruction.Parts[0].Text
	if !strings.Contains(sys, "HabitTracker AI") {
		t.Error("base instruction missing from system prompt")
	}
	if !strings.Contains(sys, "CURRENT USER DATA") || !strings.Contains(sys, `"title":"Run"`) {
		t.Errorf("context block missing habit data: %s", sys)
	}

	// history turns + the new user message
	if len(captured.Contents) != 3 {
		t.Fatalf("contents len = %d, want 3", len(captured.Contents))
	}
	last := captured.Contents[2]
	if last.Role != "user" || last.Parts[0].Text != "How am I doing?" {
		t.Errorf("final turn = %+v", last)
	}
}

func TestSendMessagePropagatesAPIError(t *testing.T) {
	g := testGateway(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"quota exceeded"}}`, http.StatusTooManyRequests)
	})

	_, err := g.SendMessage(context.Background(), "hi", nil, nil, nil, models.PersonalityCoach)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "429") {
		t.Errorf("error = %v, want status code included", err)
	}
}

func TestGenerateAvatarImage(t *testing.T) {
	g := testGateway(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "gemini-2.5-flash-image") {
			t.Errorf("unexpected model path %s", r.URL.Path)
		}
		resp := map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{
					{"text": "here you go"},
					{"inlineData": map[string]any{"mimeType": "image/png", "data": "aGVsbG8="}},
				}}},
			},
		}
		json.NewEncoder(w).Encode(resp)
	})

	got, err := g.GenerateAvatarImage(context.Background(), "a fox")
	if err != nil {
		t.Fatal(err)
	}
	if got != "data:image/png;base64,aGVsbG8=" {
		t.Errorf("data URL = %q", got)
	}
}

func TestGenerateAvatarImageNoImagePart(t *testing.T) {
	g := testGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(textResponse("sorry, text only")))
	})

	got, err := g.GenerateAvatarImage(context.Background(), "a fox")
	if err != nil {
		t.Fatal(err)
	}
	if got != "" {
		t.Errorf("got %q, want empty when no image part", got)
	}
}

func TestBuildContextLimitsToLastSeven(t *testing.T) {
	var logs []models.DailyLog
	for _, d := range []string{"01", "02", "03", "04", "05", "06", "07", "08", "09"} {
		logs = append(logs, models.DailyLog{Date: "2025-03-" + d})
	}

	ctx := BuildContext(nil, logs)
	if strings.Contains(ctx, "2025-03-01") || strings.Contains(ctx, "2025-03-02") {
		t.Errorf("context includes logs older than 7 entries: %s", ctx)
	}
	if !strings.Contains(ctx, "2025-03-09") {
		t.Error("context missing most recent log")
	}
}
