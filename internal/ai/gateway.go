// Package ai bridges ledger state and the Gemini generation API. It only
// produces text; callers decide what to do with structured suggestions
// embedded in a reply.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/habitkit/habitkit/internal/constants"
	"github.com/habitkit/habitkit/internal/logger"
	"github.com/habitkit/habitkit/internal/models"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// ErrMissingAPIKey is returned when the gateway is constructed without a
// credential. Surfaced at first use; there is no retry.
var ErrMissingAPIKey = errors.New("Gemini API key missing")

// Gateway is a client for the Google Generative Language API.
type Gateway struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func New(apiKey string) (*Gateway, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	return &Gateway{
		baseURL: defaultBaseURL,
		apiKey:  apiKey,
		client:  &http.Client{},
	}, nil
}

// Wire types for the generateContent endpoint.

type geminiPart struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	SystemInstruction *geminiContent  `json:"systemInstruction,omitempty"`
	Contents          []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// SendMessage sends one coach-chat turn: the persona system instruction plus
// a context block built from current ledger state, the conversation so far,
// and the new user message. It returns the raw reply text; any failure of
// the external call propagates to the caller.
func (g *Gateway) SendMessage(ctx context.Context, message string, history []models.ChatMessage, habits []models.Habit, logs []models.DailyLog, personality models.Personality) (string, error) {
	contents := make([]geminiContent, 0, len(history)+1)
	for _, msg := range history {
		contents = append(contents, geminiContent{
			Role:  string(msg.Role),
			Parts: []geminiPart{{Text: msg.Text}},
		})
	}
	contents = append(contents, geminiContent{
		Role:  string(models.RoleUser),
		Parts: []geminiPart{{Text: message}},
	})

	req := geminiRequest{
		SystemInstruction: &geminiContent{
			Parts: []geminiPart{{Text: contextualInstruction(habits, logs, personality)}},
		},
		Contents: contents,
	}

	resp, err := g.generate(ctx, constants.TextModel, req)
	if err != nil {
		return "", err
	}
	return responseText(resp)
}

// GenerateAnalysis asks for a concise performance summary over the full
// habit and log ledgers: key metrics, one trend, two recommendations.
func (g *Gateway) GenerateAnalysis(ctx context.Context, habits []models.Habit, logs []models.DailyLog, personality models.Personality) (string, error) {
	habitsJSON, err := json.Marshal(habits)
	if err != nil {
		return "", fmt.Errorf("serializing habits: %w", err)
	}
	logsJSON, err := json.Marshal(logs)
	if err != nil {
		return "", fmt.Errorf("serializing logs: %w", err)
	}

	prompt := fmt.Sprintf(`Analyze the following user data.
Habits: %s
Logs: %s

Provide a concise summary of performance, 1 trend, and 2 specific recommendations for improvement.`, habitsJSON, logsJSON)

	req := geminiRequest{
		SystemInstruction: &geminiContent{
			Parts: []geminiPart{{Text: systemInstruction(personality)}},
		},
		Contents: []geminiContent{{Role: string(models.RoleUser), Parts: []geminiPart{{Text: prompt}}}},
	}

	resp, err := g.generate(ctx, constants.TextModel, req)
	if err != nil {
		return "", err
	}
	return responseText(resp)
}

// GenerateAvatarImage asks the image model for one picture and returns it as
// a base64 data URL. An empty string with a nil error means the response
// carried no image part. Transport errors propagate.
func (g *Gateway) GenerateAvatarImage(ctx context.Context, prompt string) (string, error) {
	req := geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	}

	resp, err := g.generate(ctx, constants.ImageModel, req)
	if err != nil {
		return "", err
	}

	for _, cand := range resp.Candidates {
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil {
				return fmt.Sprintf("data:%s;base64,%s", part.InlineData.MimeType, part.InlineData.Data), nil
			}
		}
	}
	return "", nil
}

func (g *Gateway) generate(ctx context.Context, model string, body geminiRequest) (*geminiResponse, error) {
	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.baseURL, model, g.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	logger.Debug("Calling Gemini", "model", model)
	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("API error: status %d: %s", resp.StatusCode, string(respBody))
	}

	var parsed geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	return &parsed, nil
}

func responseText(resp *geminiResponse) (string, error) {
	var out bytes.Buffer
	for _, cand := range resp.Candidates {
		for _, part := range cand.Content.Parts {
			out.WriteString(part.Text)
		}
	}
	if out.Len() == 0 {
		return "", errors.New("empty response from model")
	}
	return out.String(), nil
}
