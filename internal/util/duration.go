// Package util holds small helpers shared across the monitor: duration
// parsing for configuration values and PATH lookups for external tools.
package util

import (
	"fmt"
	"strconv"
	"time"
)

// ParseDuration parses a configuration duration. A bare integer is taken as
// minutes; anything else must use Go duration syntax (e.g. "2h30m", "90s").
func ParseDuration(input string) (time.Duration, error) {
	if minutes, err := strconv.Atoi(input); err == nil {
		return time.Duration(minutes) * time.Minute, nil
	}

	duration, err := time.ParseDuration(input)
	if err != nil {
		return 0, fmt.Errorf("invalid duration format: %s", input)
	}
	return duration, nil
}
