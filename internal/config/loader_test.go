package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestLoadCustomPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "custom.yaml")

	yamlData := `
game:
  boxes: 8
  speed: 3
limits:
  max_boxes: 12
  max_speed: 6
`
	if err := os.WriteFile(path, []byte(yamlData), 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Game.Boxes != 8 || cfg.Game.Speed != 3 {
		t.Errorf("game settings = %+v", cfg.Game)
	}
	if cfg.Limits.MaxBoxes != 12 || cfg.Limits.MaxSpeed != 6 {
		t.Errorf("limits = %+v", cfg.Limits)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err == nil {
		t.Error("Load() with a missing explicit path should fail")
	}
}

func TestLoadInvalidYAMLFails(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "broken.yaml")
	if err := os.WriteFile(path, []byte("game: ["), 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() with invalid YAML should fail")
	}
}

func TestNormalizeClamps(t *testing.T) {
	cfg := GameConfig{
		Game:   GameSettings{Boxes: 0, Speed: -2},
		Limits: LimitsConfig{MaxBoxes: 0, MaxSpeed: 0},
	}
	cfg.Normalize()

	if cfg.Game.Boxes != 1 || cfg.Game.Speed != 1 {
		t.Errorf("normalized game settings = %+v", cfg.Game)
	}
	if cfg.Limits.MaxBoxes < cfg.Game.Boxes || cfg.Limits.MaxSpeed < cfg.Game.Speed {
		t.Errorf("normalized limits = %+v", cfg.Limits)
	}
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var embedded GameConfig
	if err := yaml.Unmarshal(defaultGameYAML, &embedded); err != nil {
		t.Fatalf("embedded default YAML is invalid: %v", err)
	}

	if embedded != DefaultGameConfig() {
		t.Errorf("embedded defaults %+v diverge from hardcoded %+v", embedded, DefaultGameConfig())
	}
}
