package domain

import "time"

type UrgencyLevel string

const (
	UrgencyVeryUrgent UrgencyLevel = "very-urgent"
	UrgencyUrgent     UrgencyLevel = "urgent"
	UrgencyNormal     UrgencyLevel = "normal"
)

// ValidUrgency reports whether level is one of the three known tags.
func ValidUrgency(level UrgencyLevel) bool {
	switch level {
	case UrgencyVeryUrgent, UrgencyUrgent, UrgencyNormal:
		return true
	}
	return false
}

// DonationRequest is an open case published by an administrator. The
// booking flow only reads it; case management owns its lifecycle.
type DonationRequest struct {
	ID          string
	Urgency     UrgencyLevel
	BloodType   string
	Location    string
	Description string
	CreatedAt   time.Time
}
