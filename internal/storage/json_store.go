package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/habitkit/habitkit/internal/logger"
)

// JSONStore persists each key as its own pretty-printed <key>.json file in a
// config directory. This is the default backend.
type JSONStore struct {
	dir string
}

func NewJSONStore(configDir string) *JSONStore {
	return &JSONStore{dir: configDir}
}

func (s *JSONStore) Load() error {
	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) filePath(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *JSONStore) Get(key string, into any) (bool, error) {
	data, err := os.ReadFile(s.filePath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read %s: %w", key, err)
	}

	if err := json.Unmarshal(data, into); err != nil {
		// Corrupt blob: recoverable. Report "absent" so the caller falls
		// back to the key's default instead of failing startup.
		logger.Warn("Discarding corrupt persisted blob", "key", key, "error", err)
		return false, nil
	}

	return true, nil
}

func (s *JSONStore) Put(key string, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", key, err)
	}

	if err := os.WriteFile(s.filePath(key), data, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}

	return nil
}

func (s *JSONStore) Delete(key string) error {
	if err := os.Remove(s.filePath(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

func (s *JSONStore) Reset() error {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read config directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, entry.Name())); err != nil {
			return fmt.Errorf("failed to remove %s: %w", entry.Name(), err)
		}
	}

	return nil
}

func (s *JSONStore) ConfigPath() string {
	return s.dir
}
