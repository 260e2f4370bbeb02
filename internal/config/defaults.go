package config

const (
	defaultMinWordDurationMs     = 100
	defaultDefaultWordDurationMs = 300
	defaultSpaceMsPerSyllable    = 100
	defaultMaxBorrowFraction     = 0.5
	defaultSpliceWeighting       = "syllables"
	defaultLogFormat             = "console"
	defaultLogLevel              = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Calibration: Calibration{
			MinWordDurationMs:     defaultMinWordDurationMs,
			DefaultWordDurationMs: defaultDefaultWordDurationMs,
			SpaceMsPerSyllable:    defaultSpaceMsPerSyllable,
			MaxBorrowFraction:     defaultMaxBorrowFraction,
		},
		Splice: Splice{
			Weighting: defaultSpliceWeighting,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
