// Package term resolves the academic term and year a schedule snapshot is
// fetched for.
package term

import (
	"fmt"
	"strings"
	"time"
)

// Recognized term names, lowercase.
const (
	Spring = "spring"
	Summer = "summer"
	Fall   = "fall"
)

// Validate reports whether name is one of the recognized terms,
// case-insensitively. Empty input is not valid.
func Validate(name string) error {
	switch strings.ToLower(name) {
	case Spring, Summer, Fall:
		return nil
	}
	return fmt.Errorf("unknown term %q: must be one of %s, %s or %s", name, Spring, Summer, Fall)
}

// Infer picks the term for a point in time: before May is spring, before
// August is summer, anything later is fall.
func Infer(now time.Time) string {
	switch {
	case now.Month() < time.May:
		return Spring
	case now.Month() < time.August:
		return Summer
	default:
		return Fall
	}
}

// Resolve normalizes an explicit term/year pair, filling in defaults from
// now. An explicit term is honored only when it validates; anything else
// falls back to month-based inference. A zero year means the current year.
func Resolve(name string, year int, now time.Time) (string, int) {
	if year == 0 {
		year = now.Year()
	}
	if Validate(name) != nil {
		return Infer(now), year
	}
	return strings.ToLower(name), year
}
