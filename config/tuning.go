package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// userTuningPath returns ~/.jumpscape/<name>, or "" when the home directory is
// unknown.
func userTuningPath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".jumpscape", name)
}

// LoadTuning overlays tuning values from YAML onto the built-in defaults.
// Search order: customPath -> ~/.jumpscape/tuning.yaml -> built-in defaults.
// Fields absent from the document keep their current value. It returns the
// path that was applied, or "" when only defaults are in effect.
func LoadTuning(customPath string) (string, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return "", fmt.Errorf("failed to read tuning %s: %w", customPath, err)
		}
		if err := ApplyTuning(data); err != nil {
			return "", fmt.Errorf("failed to parse tuning %s: %w", customPath, err)
		}
		return customPath, nil
	}

	if userPath := userTuningPath("tuning.yaml"); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := ApplyTuning(data); err != nil {
				return "", fmt.Errorf("failed to parse tuning %s: %w", userPath, err)
			}
			return userPath, nil
		}
	}

	return "", nil
}

// ApplyTuning decodes a YAML document onto the live configuration.
func ApplyTuning(data []byte) error {
	t := Current()
	return yaml.Unmarshal(data, &t)
}

// DumpTuning encodes the live configuration as YAML.
func DumpTuning() ([]byte, error) {
	t := Current()
	return yaml.Marshal(&t)
}
