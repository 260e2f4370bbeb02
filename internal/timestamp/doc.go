// Package timestamp provides the millisecond-precision time primitives used
// throughout the word-timing pipeline.
//
// A Timestamp is a non-negative instant; a Range is an ordered start/end pair.
// Both are small immutable value types with the interval queries (duration,
// distance, intersection) that distribution and calibration are built on.
package timestamp
