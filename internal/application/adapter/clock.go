// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "time"

// Clock supplies the current time. The revenue engine takes its "now" from a
// Clock instead of reading the wall clock so reports are reproducible in
// tests and identical inputs always produce identical summaries.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock, reading the wall clock in UTC.
type SystemClock struct{}

// Now returns the current UTC time.
func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
