package utils

import (
	"time"

	"github.com/yukikurage/campus-wellness-api/internal/constants"
)

// Clock returns the current time. Services take one so tests can pin "today".
type Clock func() time.Time

// FormatDate renders the calendar day of t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(constants.DateLayout)
}

// ParseDate parses a YYYY-MM-DD string in the given location.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(constants.DateLayout, s, loc)
}
