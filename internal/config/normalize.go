package config

import "strings"

// normalize canonicalizes string values and backfills zeroed numeric fields
// with defaults so a sparse config file still yields a complete Config.
func (c *Config) normalize() {
	c.Splice.Weighting = strings.ToLower(strings.TrimSpace(c.Splice.Weighting))
	if c.Splice.Weighting == "" {
		c.Splice.Weighting = defaultSpliceWeighting
	}

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}

	if c.Calibration.MinWordDurationMs == 0 {
		c.Calibration.MinWordDurationMs = defaultMinWordDurationMs
	}
	if c.Calibration.DefaultWordDurationMs == 0 {
		c.Calibration.DefaultWordDurationMs = defaultDefaultWordDurationMs
	}
	if c.Calibration.SpaceMsPerSyllable == 0 {
		c.Calibration.SpaceMsPerSyllable = defaultSpaceMsPerSyllable
	}
	if c.Calibration.MaxBorrowFraction == 0 {
		c.Calibration.MaxBorrowFraction = defaultMaxBorrowFraction
	}
}
