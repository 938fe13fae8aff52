package schedule

import (
	"time"

	"github.com/Theryu22/Wareed/internal/clock"
)

// Clinic operating window on the clinic wall clock. Open from 8:00:00
// through 15:59:59; 16:00:00 and later is closed.
const (
	OpenHour  = 8
	CloseHour = 16
)

// clinicOffset is the clinic's fixed UTC+3 civil offset. It is applied
// arithmetically so results never depend on the host timezone database or
// the caller's device timezone.
const clinicOffset = 3 * time.Hour

// ClinicTime is a wall-clock time of day on the clinic's fixed-offset clock.
type ClinicTime struct {
	Hour   int
	Minute int
}

// Valid reports whether the time of day is within 0:00..23:59.
func (t ClinicTime) Valid() bool {
	return t.Hour >= 0 && t.Hour <= 23 && t.Minute >= 0 && t.Minute <= 59
}

// Calendar answers "is the clinic open now" on the fixed clinic clock.
type Calendar struct {
	clock         clock.Clock
	overrideHours bool
}

func NewCalendar(clk clock.Clock, opts ...CalendarOption) *Calendar {
	c := &Calendar{clock: clk}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type CalendarOption func(*Calendar)

// WithOverrideHours lets bookings proceed outside operating hours
// (administrative bypass, also used when exercising the flow in tests).
func WithOverrideHours(override bool) CalendarOption {
	return func(c *Calendar) {
		c.overrideHours = override
	}
}

// Now returns the current clinic wall-clock time of day.
func (c *Calendar) Now() ClinicTime {
	t := c.clock.Now().UTC().Add(clinicOffset)
	return ClinicTime{Hour: t.Hour(), Minute: t.Minute()}
}

// Today returns the clinic-timezone calendar day for the current instant.
func (c *Calendar) Today() string {
	return c.clock.Now().UTC().Add(clinicOffset).Format("2006-01-02")
}

// OverrideHours reports whether closed-hours bookings are allowed.
func (c *Calendar) OverrideHours() bool {
	return c.overrideHours
}

// IsOpen reports whether the clinic accepts bookings at the given wall time.
func IsOpen(t ClinicTime) bool {
	return t.Hour >= OpenHour && t.Hour < CloseHour
}
