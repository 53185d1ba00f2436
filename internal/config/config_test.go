package config

import (
	"math"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestEmbeddedMatchesDefault(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) error = %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("embedded YAML and Default() differ:\n%+v\n%+v", cfg, Default())
	}
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("striker:\n  lives: 3\ncompanion:\n  min_interval: 30s\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cfg.Striker.Lives != 3 {
		t.Errorf("Striker.Lives = %d, expected 3", cfg.Striker.Lives)
	}
	if cfg.Striker.SpawnRate != 500 {
		t.Errorf("Striker.SpawnRate = %v, expected default 500", cfg.Striker.SpawnRate)
	}
	if cfg.Companion.MinInterval != 30*time.Second {
		t.Errorf("Companion.MinInterval = %v, expected 30s", cfg.Companion.MinInterval)
	}
	if cfg.Engine.InputRadius != 20 {
		t.Errorf("Engine.InputRadius = %v, expected default 20", cfg.Engine.InputRadius)
	}
}

func TestParseInvalid(t *testing.T) {
	if _, err := Parse([]byte("striker: [unterminated")); err == nil {
		t.Error("Parse() of malformed YAML should fail")
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("blitz:\n  time_limit: 20\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Blitz.TimeLimit != 20 {
		t.Errorf("Blitz.TimeLimit = %v, expected 20", cfg.Blitz.TimeLimit)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of missing custom path should fail")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(Default())
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Error("Marshal/Parse should preserve the configuration")
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		enabled bool
		initial float64
	}{
		{DifficultyEasy, true, 0.0},
		{DifficultyNormal, true, 0.3},
		{DifficultyHard, true, 0.7},
		{DifficultyFixed, false, 0.0},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := Default()
			ApplyPreset(&cfg, tc.preset)
			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Difficulty.InitialLevel != tc.initial {
				t.Errorf("InitialLevel = %v, expected %v", cfg.Difficulty.InitialLevel, tc.initial)
			}
		})
	}

	cfg := Default()
	ApplyPreset(&cfg, "")
	if !reflect.DeepEqual(cfg, Default()) {
		t.Error("empty preset should leave the config untouched")
	}
}

func TestParsePreset(t *testing.T) {
	if p, ok := ParsePreset("hard"); !ok || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %q, %v", p, ok)
	}
	if _, ok := ParsePreset(""); !ok {
		t.Error("empty preset should be accepted")
	}
	if _, ok := ParsePreset("nightmare"); ok {
		t.Error("unknown preset should be rejected")
	}
}

func TestDifficultyRampTime(t *testing.T) {
	ramp := NewDifficultyRamp(Default().Difficulty)

	tests := []struct {
		elapsed  int64
		expected float64
	}{
		{0, 0},
		{30000, 0.5},
		{60000, 1},
		{120000, 1},
		{-500, 0},
	}
	for _, tc := range tests {
		got := ramp.Level(0, tc.elapsed)
		if math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("Level(0, %d) = %v, expected %v", tc.elapsed, got, tc.expected)
		}
	}
}

func TestDifficultyRampInitialLevel(t *testing.T) {
	cfg := Default().Difficulty
	cfg.InitialLevel = 0.3
	ramp := NewDifficultyRamp(cfg)

	if got := ramp.Level(0, 0); got != 0.3 {
		t.Errorf("Level at start = %v, expected 0.3", got)
	}
	if got := ramp.Level(0, 30000); math.Abs(got-0.65) > 1e-9 {
		t.Errorf("Level halfway = %v, expected 0.65", got)
	}

	cfg.Enabled = false
	fixed := NewDifficultyRamp(cfg)
	if fixed.IsEnabled() {
		t.Error("IsEnabled() should be false for a disabled config")
	}
	if got := fixed.Level(0, 60000); got != 0.3 {
		t.Errorf("disabled ramp Level = %v, expected initial 0.3", got)
	}

	cfg.InitialLevel = 2
	if got := NewDifficultyRamp(cfg).Level(0, 0); got != 1 {
		t.Errorf("initial level should clamp to 1, got %v", got)
	}
}

func TestDifficultyRampScore(t *testing.T) {
	ramp := NewDifficultyRamp(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 100},
	})
	if got := ramp.Level(25, 999999); got != 0.25 {
		t.Errorf("Level(25, _) = %v, expected 0.25", got)
	}

	none := NewDifficultyRamp(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.4,
		Progression:  ProgressionConfig{Type: "none"},
	})
	if got := none.Level(1000, 1000); got != 0.4 {
		t.Errorf("none progression Level = %v, expected 0.4", got)
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(700, -400, 0.5); got != 500 {
		t.Errorf("Lerp(700, -400, 0.5) = %v, expected 500", got)
	}
}
