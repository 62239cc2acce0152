package domain

import "time"

const (
	minExpiryYear = 1
	maxExpiryYear = 9999
)

// ExpiryEndOfMonth returns the last calendar day of the given month in UTC.
// ok is false for a month outside 1..12 or a year outside 1..9999.
func ExpiryEndOfMonth(month, year int) (time.Time, bool) {
	if month < 1 || month > 12 || year < minExpiryYear || year > maxExpiryYear {
		return time.Time{}, false
	}
	// Day 0 of the following month is the last day of this one.
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC), true
}

// IsExpiryDateValid reports whether a card expiring in month/year is still
// usable on the UTC calendar date of now. Cards are valid through the end of
// their expiry month.
func IsExpiryDateValid(month, year int, now time.Time) bool {
	end, ok := ExpiryEndOfMonth(month, year)
	if !ok {
		return false
	}
	u := now.UTC()
	today := time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
	return !end.Before(today)
}
