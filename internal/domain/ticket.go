package domain

// Ticket is the donor-facing confirmation artifact. It is assembled in
// memory at booking time and only trustworthy once the matching
// DonationRecord has been durably written.
type Ticket struct {
	Code      string
	DonorName string
	Time      string
	Location  string
	BloodType string
	Urgency   UrgencyLevel
}
