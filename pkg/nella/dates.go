package nella

import (
	"fmt"
	"strings"
	"time"
)

// apiDateLayout is the backend timestamp format. The backend sometimes
// appends a fractional-seconds suffix after a dot; it is truncated, not
// rounded.
const apiDateLayout = "2006-01-02T15:04:05"

// ParseAPIDate parses a backend date string into a time.Time.
// Returns ErrInvalidDateFormat if the string does not match the layout.
func ParseAPIDate(dateStr string) (time.Time, error) {
	s := dateStr
	if i := strings.IndexByte(s, '.'); i >= 0 {
		s = s[:i]
	}

	t, err := time.Parse(apiDateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, dateStr)
	}
	return t, nil
}
