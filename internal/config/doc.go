// Package config loads, normalizes, and validates splicer configuration data.
//
// It supplies repository defaults, expands tilde paths, and reads TOML files.
// The Config type centralizes every knob the CLI needs: calibration
// thresholds, the splice weighting strategy, and log output settings. Obtain
// settings through this package so downstream code receives canonical values
// and clear validation errors.
package config
