package app

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/habitkit/habitkit/internal/logger"
	"github.com/habitkit/habitkit/internal/models"
)

// themeConfirmation is appended to a reply after a suggested theme has been
// applied and the fenced block stripped.
const themeConfirmation = "(I've applied the new theme for you!)"

var fencedJSON = regexp.MustCompile("(?s)```json\\s*(\\{.*?\\})\\s*```")

// AppendMessage records a chat message and persists the history.
func (s *State) AppendMessage(role models.Role, text string) (models.ChatMessage, error) {
	msg := models.ChatMessage{
		ID:        uuid.New().String(),
		Role:      role,
		Text:      text,
		Timestamp: s.now(),
	}
	s.Chat = append(s.Chat, msg)
	return msg, s.saveChat()
}

// ClearChat discards the whole conversation history.
func (s *State) ClearChat() error {
	s.Chat = []models.ChatMessage{}
	return s.saveChat()
}

// HandleCoachReply processes a raw AI reply: if the first fenced ```json
// block parses to an object with a "theme" property, the theme is applied,
// the block is stripped from the display text, and a confirmation sentence
// is appended. A fence that fails to parse, or parses without a theme, is
// left in place and the original text is returned verbatim. At most one
// extraction happens per reply.
func (s *State) HandleCoachReply(raw string) (string, bool, error) {
	match := fencedJSON.FindStringSubmatchIndex(raw)
	if match == nil {
		return raw, false, nil
	}

	payload := raw[match[2]:match[3]]

	var parsed struct {
		Theme *models.Theme `json:"theme"`
	}
	if err := json.Unmarshal([]byte(payload), &parsed); err != nil {
		logger.Warn("Failed to parse theme JSON from coach reply", "error", err)
		return raw, false, nil
	}
	if parsed.Theme == nil {
		return raw, false, nil
	}

	if err := s.ApplyTheme(*parsed.Theme); err != nil {
		return raw, false, err
	}

	clean := raw[:match[0]] + raw[match[1]:]
	clean = strings.TrimSpace(clean) + "\n\n" + themeConfirmation
	return clean, true, nil
}
