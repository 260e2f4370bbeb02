package calibrate

// Options controls calibration behavior. The zero value is usable: every
// field falls back to its default.
type Options struct {
	// MinWordDurationMs is the floor duration each uncalibrated word should
	// receive, and the duration a borrowed-from neighbor always keeps.
	MinWordDurationMs int64
	// DefaultWordDurationMs sizes words when the whole sequence is
	// uncalibrated and there is no timing to derive from.
	DefaultWordDurationMs int64
	// SpaceMsPerSyllable converts a phrase's syllable weight into the window
	// duration it wants.
	SpaceMsPerSyllable int64
	// MaxBorrowFraction bounds how much of a neighbor's own duration may be
	// taken, in (0, 1].
	MaxBorrowFraction float64
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		MinWordDurationMs:     100,
		DefaultWordDurationMs: 300,
		SpaceMsPerSyllable:    100,
		MaxBorrowFraction:     0.5,
	}
}

func (o Options) withDefaults() Options {
	defaults := DefaultOptions()
	if o.MinWordDurationMs <= 0 {
		o.MinWordDurationMs = defaults.MinWordDurationMs
	}
	if o.DefaultWordDurationMs <= 0 {
		o.DefaultWordDurationMs = defaults.DefaultWordDurationMs
	}
	if o.SpaceMsPerSyllable <= 0 {
		o.SpaceMsPerSyllable = defaults.SpaceMsPerSyllable
	}
	if o.MaxBorrowFraction <= 0 || o.MaxBorrowFraction > 1 {
		o.MaxBorrowFraction = defaults.MaxBorrowFraction
	}
	return o
}
