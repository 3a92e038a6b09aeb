package domain

import "time"

// DateLayout is the canonical layout for schedule dates. All schedule dates
// are calendar days at UTC midnight.
const DateLayout = "2006-01-02"

// DefaultGenerateDaysAhead is how far into the future the background
// scheduler keeps the rotation generated.
const DefaultGenerateDaysAhead = 30

// DefaultReminderTime is the UTC time (HH:MM) at which the daily shift
// reminders are sent.
const DefaultReminderTime = "08:00"

// Date truncates t to its calendar day at UTC midnight.
func Date(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Today returns the current calendar day at UTC midnight.
func Today() time.Time {
	return Date(time.Now().UTC())
}
