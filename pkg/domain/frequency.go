package domain

import (
	"fmt"
	"time"

	"github.com/sosodev/duration"
)

// ParseFrequency parses an ISO-8601 duration like "PT5S" or "PT1H30M" into a positive time.Duration
func ParseFrequency(s string) (time.Duration, error) {
	d, err := duration.Parse(s)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid frequency %q: %v", ErrInvalidConfig, s, err)
	}
	res := d.ToTimeDuration()
	if res <= 0 {
		return 0, fmt.Errorf("%w: frequency must be positive, got %q", ErrInvalidConfig, s)
	}
	return res, nil
}

// FormatFrequency renders a duration as ISO-8601, the inverse of ParseFrequency
func FormatFrequency(d time.Duration) string {
	return duration.FromTimeDuration(d).String()
}
