package services

import "time"

// Date validation outcomes for the stay range picker.
type DateError string

func (e DateError) Error() string { return string(e) }

const (
	ErrPastDate     = DateError("checkin_date_in_past")
	ErrInvalidRange = DateError("checkout_not_after_checkin")
)

// midnight reduces a timestamp to its calendar day, anchored in UTC. Parsed
// date-only values and the server clock may carry different zones; taking the
// year/month/day each reads in its own zone and rebuilding in one frame keeps
// the comparison about dates, never wall-clock offsets.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ValidateStayRange enforces the two hard rules of the date picker: check-in
// may not be before today, and check-out must be strictly after check-in.
// There is no upper bound on stay length.
func ValidateStayRange(checkIn, checkOut, today time.Time) error {
	if midnight(checkIn).Before(midnight(today)) {
		return ErrPastDate
	}
	if !midnight(checkOut).After(midnight(checkIn)) {
		return ErrInvalidRange
	}
	return nil
}

// IsDateSelectable is the advisory predicate calendar widgets use to gray out
// cells on a check-out picker. It is filtering only; ValidateStayRange remains
// the authority when the range is submitted.
func IsDateSelectable(candidate, checkIn, minDate, today time.Time) bool {
	c := midnight(candidate)
	if !checkIn.IsZero() && !c.After(midnight(checkIn)) {
		return false
	}
	if !minDate.IsZero() && c.Before(midnight(minDate)) {
		return false
	}
	if c.Before(midnight(today)) {
		return false
	}
	return true
}

// NightsBetween returns the number of nights a stay covers, counting calendar
// days and rounding any partial day up. Callers must have validated the range
// first; the result is meaningless for checkOut <= checkIn.
func NightsBetween(checkIn, checkOut time.Time) int {
	hours := checkOut.Sub(checkIn).Hours()
	nights := int(hours / 24)
	if hours > float64(nights)*24 {
		nights++
	}
	return nights
}
