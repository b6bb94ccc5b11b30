// Package export serializes the full application state into a single
// downloadable JSON document. One-way only; there is no import path.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/habitkit/habitkit/internal/constants"
	"github.com/habitkit/habitkit/internal/models"
)

// Document is the exported snapshot shape.
type Document struct {
	Habits     []models.Habit      `json:"habits"`
	Logs       []models.DailyLog   `json:"logs"`
	Settings   models.UserSettings `json:"settings"`
	Theme      models.Theme        `json:"theme"`
	ExportDate time.Time           `json:"exportDate"`
}

// FileName returns the default export file name for the given day.
func FileName(now time.Time) string {
	return fmt.Sprintf("habit-tracker-backup-%s.json", now.Format(constants.DateFormat))
}

// Write serializes the document to dir, returning the written path.
func Write(dir string, doc Document) (string, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize export: %w", err)
	}

	path := filepath.Join(dir, FileName(doc.ExportDate))
	if err := os.WriteFile(path, data, 0600); err != nil {
		return "", fmt.Errorf("failed to write export: %w", err)
	}

	return path, nil
}
