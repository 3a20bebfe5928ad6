// Package storage persists user settings through gdata and run history in a
// local SQLite database.
package storage

import (
	"encoding/json"
	"fmt"

	"github.com/ModricFX/JumpScape-sub000/config"
	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata"
)

const settingsKey = "settings"

// ItemStore is the key/value backend settings are written to. gdata.Manager
// satisfies it.
type ItemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// SettingsStore loads and saves config.Settings as a JSON record.
type SettingsStore struct {
	items ItemStore
}

// OpenSettings opens the per-user gdata storage for appName.
func OpenSettings(appName string) (*SettingsStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("storage: open settings: %w", err)
	}
	return NewSettingsStore(m), nil
}

func NewSettingsStore(items ItemStore) *SettingsStore {
	return &SettingsStore{items: items}
}

// Load returns the saved settings, or the defaults when nothing usable is
// stored. Read and decode failures are logged, never returned.
func (s *SettingsStore) Load() config.Settings {
	if s == nil || s.items == nil {
		return config.DefaultSettings()
	}

	data, err := s.items.LoadItem(settingsKey)
	if err != nil {
		log.Warn("could not load settings", "err", err)
		return config.DefaultSettings()
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return config.DefaultSettings()
	}

	settings := config.DefaultSettings()
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Warn("could not parse saved settings", "err", err)
		return config.DefaultSettings()
	}
	return settings.Normalize()
}

// Save writes settings to the backend.
func (s *SettingsStore) Save(settings config.Settings) error {
	if s == nil || s.items == nil {
		return nil
	}

	data, err := json.Marshal(settings.Normalize())
	if err != nil {
		return fmt.Errorf("storage: encode settings: %w", err)
	}
	if err := s.items.SaveItem(settingsKey, data); err != nil {
		return fmt.Errorf("storage: save settings: %w", err)
	}
	return nil
}
