package loan

import (
	"time"
)

// renewalWindowDays is how far ahead of today a renewal may be set: 4 weeks.
const renewalWindowDays = 28

// proposedRenewalDays is the default renewal offered on the form: 3 weeks.
const proposedRenewalDays = 21

// ValidationError is a user-correctable input error. Its message is shown
// verbatim next to the form field that caused it.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var (
	ErrRenewalInPast      = &ValidationError{Message: "Invalid date - renewal in past"}
	ErrRenewalTooFarAhead = &ValidationError{Message: "Invalid date - renewal more than 4 weeks ahead"}
)

// ValidateRenewalDate checks a proposed due-back date against the renewal
// rules. Rules run in order and the first failure wins: the date must not be
// in the past, and must not be more than 4 weeks ahead of today. Both the
// form-binding path and the service write path call this one function.
func ValidateRenewalDate(date, today time.Time) error {
	date, today = dateOnly(date), dateOnly(today)
	if date.Before(today) {
		return ErrRenewalInPast
	}
	if date.After(today.AddDate(0, 0, renewalWindowDays)) {
		return ErrRenewalTooFarAhead
	}
	return nil
}

// ProposedRenewalDate is the default due-back date offered when the renewal
// form is first shown: three weeks from today.
func ProposedRenewalDate(today time.Time) time.Time {
	return dateOnly(today).AddDate(0, 0, proposedRenewalDays)
}

// dateOnly truncates a time to its calendar date. Renewal rules compare whole
// days, not clock times.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
