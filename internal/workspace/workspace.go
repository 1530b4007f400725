package workspace

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const BaseDirName = "CalmCollective"

//go:embed assets/*.json
var defaultAssets embed.FS

// Settings is the small amount of user configuration the app keeps.
type Settings struct {
	EmergencyText         string `json:"emergency_text"`
	EmergencyContactLabel string `json:"emergency_contact_label"`
	EmergencyContactValue string `json:"emergency_contact_value"`
	DefaultSupportFlavor  string `json:"default_support_flavor"`
}

func DefaultSettings() Settings {
	return Settings{
		EmergencyText:         "If you are in immediate danger, contact local emergency services.",
		EmergencyContactLabel: "Family",
		EmergencyContactValue: "",
		DefaultSupportFlavor:  "secular",
	}
}

// EnsureDefault prepares the workspace under the user's home directory.
func EnsureDefault() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home: %w", err)
	}
	return EnsureAt(filepath.Join(home, BaseDirName))
}

// EnsureAt creates the data and assets directories under base and seeds
// settings plus the default content pools when absent. Existing files are
// never overwritten.
func EnsureAt(base string) (string, error) {
	dataDir := DataDir(base)
	assetsDir := AssetsDir(base)
	for _, p := range []string{dataDir, assetsDir} {
		if err := os.MkdirAll(p, 0o755); err != nil {
			return "", fmt.Errorf("mkdir %s: %w", p, err)
		}
	}

	settingsPath := SettingsPath(base)
	if _, err := os.Stat(settingsPath); os.IsNotExist(err) {
		if err := SaveSettings(settingsPath, DefaultSettings()); err != nil {
			return "", err
		}
	}

	seeds := []string{"quotes.json", "scriptures.json", "wisdom.json", "prompts.json"}
	for _, name := range seeds {
		dst := filepath.Join(assetsDir, name)
		if _, err := os.Stat(dst); err == nil {
			continue
		}
		raw, err := defaultAssets.ReadFile("assets/" + name)
		if err != nil {
			return "", fmt.Errorf("read embedded %s: %w", name, err)
		}
		if err := os.WriteFile(dst, raw, 0o644); err != nil {
			return "", fmt.Errorf("seed %s: %w", name, err)
		}
	}

	return base, nil
}

func DataDir(base string) string   { return filepath.Join(base, "data") }
func AssetsDir(base string) string { return filepath.Join(base, "assets") }

func SettingsPath(base string) string {
	return filepath.Join(DataDir(base), "settings.json")
}

func EntriesDBPath(base string) string {
	return filepath.Join(DataDir(base), "entries.db")
}

// LoadSettings reads settings, returning defaults when the file is missing
// or unreadable.
func LoadSettings(path string) Settings {
	raw, err := os.ReadFile(path)
	if err != nil {
		return DefaultSettings()
	}
	s := DefaultSettings()
	if err := json.Unmarshal(raw, &s); err != nil {
		return DefaultSettings()
	}
	return s
}

func SaveSettings(path string, s Settings) error {
	raw, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}
