package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidTimeFormat = errors.New("invalid time format")
	ErrInvalidTimezone   = errors.New("invalid timezone")
)

// dateTimeLayout is the layout of a datetime given without zone.
const dateTimeLayout = "2006-01-02 15:04:05"

// ParseCutoff parses a point in time given on the command line. Accepted forms:
//
//	2006-01-02                         (midnight UTC)
//	2006-01-02 15:04:05                (UTC)
//	2006-01-02 15:04:05 Asia/Shanghai  (named zone)
//	2006-01-02T15:04:05+08:00          (RFC3339)
//
// A plain duration such as 720h is taken relative to now.
func ParseCutoff(input string, now time.Time) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return time.Time{}, ErrInvalidTimeFormat
	}

	if d, err := time.ParseDuration(input); err == nil {
		if d <= 0 {
			return time.Time{}, fmt.Errorf("%w: duration must be positive: %s", ErrInvalidTimeFormat, input)
		}

		return now.Add(-d), nil
	}

	if t, err := time.Parse(time.RFC3339, input); err == nil {
		return t, nil
	}

	if t, err := time.Parse(time.DateOnly, input); err == nil {
		return t, nil
	}

	parts := strings.Fields(input)

	switch len(parts) {
	case 2:
		t, err := time.Parse(dateTimeLayout, input)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %w", ErrInvalidTimeFormat, err)
		}

		return t, nil
	case 3:
		if strings.EqualFold(parts[2], "UTC") {
			return ParseCutoff(parts[0]+" "+parts[1], now)
		}

		loc, err := time.LoadLocation(parts[2])
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %s: %w", ErrInvalidTimezone, parts[2], err)
		}

		t, err := time.ParseInLocation(dateTimeLayout, parts[0]+" "+parts[1], loc)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %w", ErrInvalidTimeFormat, err)
		}

		return t, nil
	}

	return time.Time{}, fmt.Errorf("%w: unsupported format: %s", ErrInvalidTimeFormat, input)
}
