// Package history keeps a leveldb journal of successful conversions.
// Conversions of the same value in the same system share one record
// which counts how often the value was converted.
package history
