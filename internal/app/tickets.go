package app

import (
	"math/rand"
	"strings"

	"github.com/Theryu22/Wareed/internal/domain"
)

const (
	ticketCodeLength   = 9
	ticketCodeAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// newTicketCode mints a 9-character upper-case base-36 code. The source is
// non-cryptographic and codes are not checked against existing records, so
// collisions are possible; the store-generated record id is the durable key.
func newTicketCode() string {
	var b strings.Builder
	b.Grow(ticketCodeLength)
	for i := 0; i < ticketCodeLength; i++ {
		b.WriteByte(ticketCodeAlphabet[rand.Intn(len(ticketCodeAlphabet))])
	}
	return strings.ToUpper(b.String())
}

// IssueTicket assembles the donor-facing confirmation for a selected slot.
// Pure assembly apart from code generation; no I/O.
func IssueTicket(donorName, bloodType, slot string, request domain.DonationRequest) domain.Ticket {
	return domain.Ticket{
		Code:      newTicketCode(),
		DonorName: donorName,
		Time:      slot,
		Location:  request.Location,
		BloodType: bloodType,
		Urgency:   request.Urgency,
	}
}
