package cache

import (
	"strings"
	"time"
)

// Comparators for the sort keys the dashboard sections offer. Each returns
// a less function for Collection.SortBy.

// TextAsc orders case-insensitively ascending on a string key.
func TextAsc[T any](key func(T) string) func(a, b T) bool {
	return func(a, b T) bool {
		return strings.ToLower(key(a)) < strings.ToLower(key(b))
	}
}

// DateAsc orders chronologically ascending on a date key. Records with a
// missing date sort last.
func DateAsc[T any](key func(T) (time.Time, bool)) func(a, b T) bool {
	return func(a, b T) bool {
		ta, okA := key(a)
		tb, okB := key(b)
		switch {
		case okA && okB:
			return ta.Before(tb)
		case okA:
			return true
		default:
			return false
		}
	}
}

// NumberDesc orders numerically descending, used for progress keys.
func NumberDesc[T any](key func(T) float64) func(a, b T) bool {
	return func(a, b T) bool {
		return key(a) > key(b)
	}
}
