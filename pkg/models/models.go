// Package models contains data types for countdown.
package models

import (
	"strings"

	"countdown/internal/calendar"
	cderrors "countdown/internal/errors"
)

// Event is a named calendar date the user is counting down to.
type Event struct {
	ID   string
	Name string
	Date calendar.Date
}

// Validate checks that the event has a name and a real calendar date.
func (e Event) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return cderrors.New(cderrors.KindValidation, "event name is required")
	}
	if !e.Date.Valid() {
		return cderrors.Newf(cderrors.KindValidation, "event %q has invalid date %s", e.Name, e.Date)
	}
	return nil
}

// DaysLeft returns the whole days from today until the event; negative once
// the event has passed.
func (e Event) DaysLeft(today calendar.Date) int {
	return today.DaysUntil(e.Date)
}

// Countdown is an event that has not happened yet, ready for display.
type Countdown struct {
	Name     string
	DaysLeft int
}
