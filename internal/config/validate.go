package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateCalibration(); err != nil {
		return err
	}
	if err := c.validateSplice(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateCalibration() error {
	if c.Calibration.MinWordDurationMs < 0 {
		return errors.New("calibration.min_word_duration_ms must not be negative")
	}
	if c.Calibration.DefaultWordDurationMs <= 0 {
		return errors.New("calibration.default_word_duration_ms must be positive")
	}
	if c.Calibration.SpaceMsPerSyllable <= 0 {
		return errors.New("calibration.space_ms_per_syllable must be positive")
	}
	if c.Calibration.MaxBorrowFraction <= 0 || c.Calibration.MaxBorrowFraction > 1 {
		return errors.New("calibration.max_borrow_fraction must be in (0, 1]")
	}
	return nil
}

func (c *Config) validateSplice() error {
	switch c.Splice.Weighting {
	case "syllables", "chars", "even":
		return nil
	default:
		return fmt.Errorf("splice.weighting: unsupported value %q (want syllables, chars, or even)", c.Splice.Weighting)
	}
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q (want console or json)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
}
