package workspace

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEnsureAtSeedsWorkspace(t *testing.T) {
	base := filepath.Join(t.TempDir(), BaseDirName)
	root, err := EnsureAt(base)
	if err != nil {
		t.Fatalf("ensure workspace: %v", err)
	}

	paths := []string{
		SettingsPath(root),
		filepath.Join(AssetsDir(root), "quotes.json"),
		filepath.Join(AssetsDir(root), "scriptures.json"),
		filepath.Join(AssetsDir(root), "wisdom.json"),
		filepath.Join(AssetsDir(root), "prompts.json"),
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			t.Fatalf("expected path to exist %s: %v", p, err)
		}
	}

	s := LoadSettings(SettingsPath(root))
	if s.DefaultSupportFlavor != "secular" {
		t.Fatalf("expected secular default flavor, got %q", s.DefaultSupportFlavor)
	}
}

func TestEnsureAtDoesNotOverwrite(t *testing.T) {
	base := filepath.Join(t.TempDir(), BaseDirName)
	if _, err := EnsureAt(base); err != nil {
		t.Fatalf("ensure workspace: %v", err)
	}

	s := DefaultSettings()
	s.EmergencyContactValue = "+62 812 0000 0000"
	if err := SaveSettings(SettingsPath(base), s); err != nil {
		t.Fatalf("save settings: %v", err)
	}

	if _, err := EnsureAt(base); err != nil {
		t.Fatalf("re-ensure workspace: %v", err)
	}
	got := LoadSettings(SettingsPath(base))
	if got.EmergencyContactValue != "+62 812 0000 0000" {
		t.Fatalf("expected settings preserved, got %+v", got)
	}
}

func TestLoadSettingsMissingFileReturnsDefaults(t *testing.T) {
	got := LoadSettings(filepath.Join(t.TempDir(), "settings.json"))
	if got != DefaultSettings() {
		t.Fatalf("expected defaults, got %+v", got)
	}
}
