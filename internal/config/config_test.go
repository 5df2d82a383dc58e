package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "budget.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
	if cfg.FeedbackDuration != 3*time.Second {
		t.Fatalf("expected 3s feedback, got %s", cfg.FeedbackDuration)
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeFile(t, "window_width: 1600\nfeedback_duration: 5s\nparticle_count: 40\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.WindowWidth != 1600 || cfg.FeedbackDuration != 5*time.Second || cfg.ParticleCount != 40 {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.WindowHeight != Default().WindowHeight {
		t.Fatalf("unset field should keep default, got %d", cfg.WindowHeight)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "window_width: 1600\nhud_scale: 3\n")
	t.Setenv("BUDGET_WINDOW_WIDTH", "900")
	t.Setenv("BUDGET_FEEDBACK_DURATION", "1500ms")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.WindowWidth != 900 {
		t.Fatalf("expected env width 900, got %d", cfg.WindowWidth)
	}
	if cfg.HUDScale != 3 {
		t.Fatalf("expected file hud_scale 3, got %d", cfg.HUDScale)
	}
	if cfg.FeedbackDuration != 1500*time.Millisecond {
		t.Fatalf("expected 1.5s, got %s", cfg.FeedbackDuration)
	}
}

func TestLoad_BadInputs(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
	if _, err := Load(writeFile(t, "window_width: [1, 2\n")); err == nil || !strings.Contains(err.Error(), "config yaml") {
		t.Fatalf("expected yaml error, got %v", err)
	}
	t.Setenv("BUDGET_HUD_SCALE", "big")
	if _, err := Load(""); err == nil || !strings.Contains(err.Error(), "parse env") {
		t.Fatalf("expected env error, got %v", err)
	}
}

func TestValidate_RejectsNonPositive(t *testing.T) {
	cfg := Default()
	cfg.WindowWidth = 0
	cfg.CameraFrames = -1
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "window size") || !strings.Contains(err.Error(), "camera_frames") {
		t.Fatalf("expected both problems reported, got %v", err)
	}
}

func TestMerge_OnlyNonZero(t *testing.T) {
	base := Default()
	got := base.Merge(Config{WindowHeight: 600, Seed: 7})
	if got.WindowHeight != 600 || got.Seed != 7 {
		t.Fatalf("overrides not applied: %+v", got)
	}
	if got.WindowWidth != base.WindowWidth || got.Title != base.Title {
		t.Fatalf("zero fields should not override: %+v", got)
	}
}
