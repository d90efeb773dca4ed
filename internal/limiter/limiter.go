// Package limiter windows result lists with limit, offset and tail.
package limiter

import (
	"fmt"
)

// Config holds the record-limiting parameters.
type Config struct {
	Limit  int // Show only this many records (0 = unlimited)
	Offset int // Skip the first N records (0 = no skip)
	Tail   int // Show only the last N records (0 = disabled); mutually exclusive with Limit
}

// Validate checks for conflicting option combinations and returns an error if invalid.
// Rules:
// - Limit and Tail are mutually exclusive
// - If Tail is set, Offset is ignored
// - All numeric values must be non-negative
func (c Config) Validate() error {
	if c.Limit < 0 {
		return fmt.Errorf("--limit must be non-negative, got %d", c.Limit)
	}
	if c.Offset < 0 {
		return fmt.Errorf("--offset must be non-negative, got %d", c.Offset)
	}
	if c.Tail < 0 {
		return fmt.Errorf("--tail must be non-negative, got %d", c.Tail)
	}
	if c.Limit > 0 && c.Tail > 0 {
		return fmt.Errorf("--limit and --tail are mutually exclusive")
	}
	return nil
}

// IsActive returns true if any limiting is configured.
func (c Config) IsActive() bool {
	return c.Limit > 0 || c.Offset > 0 || c.Tail > 0
}

// Apply returns the window of items selected by c. The input is not copied;
// the result shares its backing array.
func Apply[T any](c Config, items []T) []T {
	if !c.IsActive() {
		return items
	}
	length := len(items)

	if c.Tail > 0 {
		start := length - c.Tail
		if start < 0 {
			start = 0
		}
		return items[start:]
	}

	start := c.Offset
	if start > length {
		start = length
	}
	end := length
	if c.Limit > 0 && start+c.Limit < length {
		end = start + c.Limit
	}
	return items[start:end]
}
