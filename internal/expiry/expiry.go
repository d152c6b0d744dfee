package expiry

import (
	"log/slog"
	"strings"
	"time"
)

// Status is the urgency tier of an inventory item, derived from how many days
// remain until its expiry date.
type Status string

const (
	StatusUrgent  Status = "URGENT"
	StatusWarning Status = "WARNING"
	StatusFresh   Status = "FRESH"
)

// DateLayout is the calendar date format used in persisted inventory records.
const DateLayout = "02/01/2006"

// Classify maps an expiry date string (DD/MM/YYYY) to an urgency tier relative
// to today: 2 or fewer days remaining (including already expired) is URGENT,
// 3-7 days is WARNING, more than 7 is FRESH.
//
// An unparseable date classifies as FRESH rather than raising an error, so a
// corrupt record never alarms the user. The failure is logged at debug level.
func Classify(dateStr string, today time.Time) Status {
	expiresAt, err := time.Parse(DateLayout, strings.TrimSpace(dateStr))
	if err != nil {
		slog.Debug("unparseable expiry date, treating as fresh", "date", dateStr)
		return StatusFresh
	}

	switch days := DaysUntil(expiresAt, today); {
	case days <= 2:
		return StatusUrgent
	case days <= 7:
		return StatusWarning
	default:
		return StatusFresh
	}
}

// DaysUntil returns the calendar-day difference between today and date,
// ignoring the time-of-day component of both. Negative when date is past.
func DaysUntil(date, today time.Time) int {
	return int(dayUTC(date).Sub(dayUTC(today)).Hours() / 24)
}

func dayUTC(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
