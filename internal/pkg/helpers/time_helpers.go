package helpers

import (
	"time"

	"github.com/rs/zerolog/log"
)

// DateLayout is the wire format for attendance and payment dates.
const DateLayout = "2006-01-02"

// ParseDuration parses a duration string, returns default duration on error.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	return duration
}

// Today returns the current date truncated to midnight UTC. Attendance rows
// carry a date only, never a time of day.
func Today() time.Time {
	return time.Now().UTC().Truncate(24 * time.Hour)
}

// FormatDate renders a date in the wire format.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a date in the wire format.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}
