package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"splicer/internal/calibrate"
)

//go:embed sample_config.toml
var sampleConfig string

// Calibration contains the thresholds the timestamp calibrator works with.
type Calibration struct {
	// MinWordDurationMs is the floor duration for an inserted word and the
	// duration a borrowed-from neighbor always keeps.
	MinWordDurationMs int64 `toml:"min_word_duration_ms"`
	// DefaultWordDurationMs sizes words when nothing in the sequence carries
	// timing.
	DefaultWordDurationMs int64 `toml:"default_word_duration_ms"`
	// SpaceMsPerSyllable converts a phrase's syllable count into the window
	// duration it asks for.
	SpaceMsPerSyllable int64 `toml:"space_ms_per_syllable"`
	// MaxBorrowFraction bounds how much of a neighbor's duration borrowing
	// may take, in (0, 1].
	MaxBorrowFraction float64 `toml:"max_borrow_fraction"`
}

// Splice contains settings for the direct splice entry points.
type Splice struct {
	// Weighting selects how splice durations are shared: "syllables",
	// "chars", or "even".
	Weighting string `toml:"weighting"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for splicer.
type Config struct {
	Calibration Calibration `toml:"calibration"`
	Splice      Splice      `toml:"splice"`
	Logging     Logging     `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration
// file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/splicer/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// boolean reports whether a file was actually found; when none exists the
// defaults are returned as-is.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("splicer.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// CalibrateOptions converts the calibration section into calibrator options.
func (c *Config) CalibrateOptions() calibrate.Options {
	return calibrate.Options{
		MinWordDurationMs:     c.Calibration.MinWordDurationMs,
		DefaultWordDurationMs: c.Calibration.DefaultWordDurationMs,
		SpaceMsPerSyllable:    c.Calibration.SpaceMsPerSyllable,
		MaxBorrowFraction:     c.Calibration.MaxBorrowFraction,
	}
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
