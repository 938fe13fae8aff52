package schedule

import (
	"fmt"

	"github.com/Theryu22/Wareed/internal/domain"
)

// SlotInterval is the spacing between bookable appointment starts, minutes.
const SlotInterval = 20

// Donor-facing period markers, 12-hour convention.
const (
	periodMorning   = "صباحًا"
	periodAfternoon = "مساءً"
)

// GenerateSlots returns the ordered bookable slot labels for the remainder
// of the clinic day, given the current clinic wall-clock time. The result
// is recomputed per call and fully determined by its input; an empty slice
// means no slots remain today, which is a normal outcome.
func GenerateSlots(now ClinicTime) ([]string, error) {
	if !now.Valid() {
		return nil, domain.ErrInvalidClinicTime
	}

	hour := now.Hour
	// Round up to the next slot boundary, rolling into the next hour when
	// the current minute is past the last boundary.
	firstMinute := ((now.Minute + SlotInterval - 1) / SlotInterval) * SlotInterval
	if firstMinute >= 60 {
		firstMinute = 0
		hour++
	}
	// Before opening the grid starts at the first slot of the day.
	if hour < OpenHour {
		hour = OpenHour
		firstMinute = 0
	}

	var slots []string
	for ; hour < CloseHour; hour++ {
		for minute := firstMinute; minute < 60; minute += SlotInterval {
			slots = append(slots, FormatSlot(hour, minute))
		}
		firstMinute = 0
	}
	return slots, nil
}

// FormatSlot renders a clinic wall-clock time as a donor-facing slot label,
// e.g. "9:20 صباحًا" or "3:40 مساءً".
func FormatSlot(hour, minute int) string {
	period := periodMorning
	if hour >= 12 {
		period = periodAfternoon
	}
	displayHour := hour
	if displayHour > 12 {
		displayHour -= 12
	}
	if displayHour == 0 {
		displayHour = 12
	}
	return fmt.Sprintf("%d:%02d %s", displayHour, minute, period)
}
