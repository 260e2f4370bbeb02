package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.toml")
	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load error = %v", err)
	}
	if exists {
		t.Error("Load reported a missing file as existing")
	}
	if resolved == "" {
		t.Error("Load returned empty resolved path")
	}
	if cfg.Calibration.MinWordDurationMs != defaultMinWordDurationMs {
		t.Errorf("MinWordDurationMs = %d, want default %d",
			cfg.Calibration.MinWordDurationMs, defaultMinWordDurationMs)
	}
}

func TestLoadPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[calibration]\nmin_word_duration_ms = 80\n\n[logging]\nlevel = \"DEBUG\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load error = %v", err)
	}
	if !exists {
		t.Error("Load did not report the file as existing")
	}
	if cfg.Calibration.MinWordDurationMs != 80 {
		t.Errorf("MinWordDurationMs = %d, want 80", cfg.Calibration.MinWordDurationMs)
	}
	// Unset fields fall back to defaults; strings are canonicalized.
	if cfg.Calibration.SpaceMsPerSyllable != defaultSpaceMsPerSyllable {
		t.Errorf("SpaceMsPerSyllable = %d, want default", cfg.Calibration.SpaceMsPerSyllable)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "debug")
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad weighting", "[splice]\nweighting = \"vibes\"\n"},
		{"bad borrow fraction", "[calibration]\nmax_borrow_fraction = 1.5\n"},
		{"bad log format", "[logging]\nformat = \"xml\"\n"},
		{"negative min duration", "[calibration]\nmin_word_duration_ms = -5\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, _, _, err := Load(path); err == nil {
				t.Error("Load succeeded, want validation error")
			}
		})
	}
}

func TestCalibrateOptions(t *testing.T) {
	cfg := Default()
	opts := cfg.CalibrateOptions()
	if opts.MinWordDurationMs != defaultMinWordDurationMs ||
		opts.MaxBorrowFraction != defaultMaxBorrowFraction {
		t.Errorf("CalibrateOptions = %+v, want config values", opts)
	}
}

func TestCreateSampleRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := CreateSample(path); err != nil {
		t.Fatalf("CreateSample error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(data), "[calibration]") {
		t.Error("sample missing calibration section")
	}

	// The sample must load cleanly.
	if _, _, _, err := Load(path); err != nil {
		t.Errorf("Load(sample) error = %v", err)
	}
}
