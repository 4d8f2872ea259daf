package model

import "time"

// Status is the lifecycle state of a certification relative to its expiry date.
type Status string

const (
	StatusActive   Status = "active"
	StatusExpiring Status = "expiring"
	StatusExpired  Status = "expired"
	StatusUnknown  Status = "unknown"
)

// ExpiringWindowDays is the horizon within which a certification counts as
// expiring rather than active.
const ExpiringWindowDays = 30

const dateLayout = "2006-01-02"

// ClassifyStatus maps an expiry date to a Status given the current date.
//
// expired  if expiry < today
// expiring if 0 <= expiry - today <= 30 days
// active   if expiry - today > 30 days
// unknown  if expiryDate is empty or unparseable
//
// The function is pure and total: malformed input degrades to StatusUnknown
// instead of failing. Only the calendar date of today matters; its clock time
// is discarded.
func ClassifyStatus(expiryDate string, today time.Time) Status {
	expiry, err := ParseDate(expiryDate)
	if err != nil {
		return StatusUnknown
	}

	t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	days := int(expiry.Sub(t).Hours() / 24)

	switch {
	case days < 0:
		return StatusExpired
	case days <= ExpiringWindowDays:
		return StatusExpiring
	default:
		return StatusActive
	}
}

// ParseDate parses a calendar date in YYYY-MM-DD form. Full RFC3339
// timestamps are accepted by taking the date part.
func ParseDate(s string) (time.Time, error) {
	if len(s) > len(dateLayout) {
		s = s[:len(dateLayout)]
	}
	return time.Parse(dateLayout, s)
}

// FormatDate renders t as a YYYY-MM-DD calendar date.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}
