// Package keyring stores the Gemini API key in the OS credential store so it
// never sits in a config file next to the user's data.
package keyring

import (
	"errors"
	"fmt"
	"os"

	"github.com/zalando/go-keyring"

	"github.com/habitkit/habitkit/internal/constants"
)

var (
	// ErrNotFound is returned when no API key is stored in the keyring
	ErrNotFound = errors.New("API key not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring is not available
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// GetAPIKey resolves the Gemini API key: OS keyring first, then the
// GEMINI_API_KEY environment variable. Returns ErrNotFound when neither
// is set.
func GetAPIKey() (string, error) {
	key, err := keyring.Get(constants.AppName, constants.DefaultKeyringUser)
	if err == nil && key != "" {
		return key, nil
	}
	if err != nil && err != keyring.ErrNotFound {
		// Keyring broken or absent on this system; fall through to env.
		if envKey := os.Getenv(constants.APIKeyEnvVar); envKey != "" {
			return envKey, nil
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}

	if envKey := os.Getenv(constants.APIKeyEnvVar); envKey != "" {
		return envKey, nil
	}

	return "", ErrNotFound
}

// SetAPIKey stores the Gemini API key in the OS keyring.
func SetAPIKey(key string) error {
	if key == "" {
		return errors.New("API key cannot be empty")
	}
	if err := keyring.Set(constants.AppName, constants.DefaultKeyringUser, key); err != nil {
		return fmt.Errorf("failed to store API key in keyring: %w", err)
	}
	return nil
}

// DeleteAPIKey removes the Gemini API key from the OS keyring.
func DeleteAPIKey() error {
	err := keyring.Delete(constants.AppName, constants.DefaultKeyringUser)
	if err != nil {
		if err == keyring.ErrNotFound {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete API key from keyring: %w", err)
	}
	return nil
}

// IsAvailable checks if the OS keyring is usable on the current system.
// Best-effort: probes with a read and treats "not found" as available.
func IsAvailable() bool {
	_, err := keyring.Get(constants.AppName, "test-availability")
	return err == nil || err == keyring.ErrNotFound
}
