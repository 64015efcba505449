package services

import (
	"fmt"
	"time"
)

// DateLayout is the calendar date format used by clients and cases
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD calendar date as used for date_added,
// date_opened, filing_date and hearing_date
func ParseDate(dateStr string) (time.Time, error) {
	parsed, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", dateStr)
	}
	return parsed, nil
}

// FormatDate renders t as a calendar date in t's own location
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

func isDate(value string) bool {
	_, err := ParseDate(value)
	return err == nil
}
