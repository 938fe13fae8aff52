package domain

type DonationStatus string

const (
	DonationStatusPending  DonationStatus = "pending"
	DonationStatusApproved DonationStatus = "approved"
	DonationStatusRejected DonationStatus = "rejected"
)

// ClinicTimezone is stored on records as data only; scheduling math never
// consults the tz database (fixed-offset arithmetic, see internal/schedule).
const ClinicTimezone = "Asia/Riyadh"

// ValidDonationStatus reports whether s is a known review status.
func ValidDonationStatus(s DonationStatus) bool {
	switch s {
	case DonationStatusPending, DonationStatusApproved, DonationStatusRejected:
		return true
	}
	return false
}

// DonationRecord is the persisted outcome of a completed booking. The
// booking flow creates it once; only admin review mutates Status afterwards.
type DonationRecord struct {
	ID          string
	DonorName   string
	Urgency     UrgencyLevel
	TicketCode  string
	BloodType   string
	Location    string
	DateCreated string // clinic-timezone calendar day, YYYY-MM-DD
	Time        string // slot label exactly as offered
	Status      DonationStatus
	Timezone    string
	OwnerUserID string
	CreatedAtMS int64 // epoch milliseconds at creation
}

var donationTransitions = map[DonationStatus][]DonationStatus{
	DonationStatusPending:  {DonationStatusApproved, DonationStatusRejected},
	DonationStatusApproved: {DonationStatusPending},
	DonationStatusRejected: {DonationStatusPending},
}

// ValidStatusTransition reports whether an admin may move a donation from
// one review status to another.
func ValidStatusTransition(from, to DonationStatus) bool {
	for _, allowed := range donationTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
