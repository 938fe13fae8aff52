package app

import (
	"regexp"
	"testing"

	"github.com/Theryu22/Wareed/internal/domain"
)

func TestNewTicketCode(t *testing.T) {
	t.Parallel()

	pattern := regexp.MustCompile(`^[0-9A-Z]{9}$`)
	for i := 0; i < 100; i++ {
		code := newTicketCode()
		if !pattern.MatchString(code) {
			t.Fatalf("expected 9 upper-case alphanumerics, got %q", code)
		}
	}
}

func TestIssueTicket(t *testing.T) {
	t.Parallel()

	request := domain.DonationRequest{
		ID:        "case-1",
		Urgency:   domain.UrgencyUrgent,
		BloodType: "A-",
		Location:  "Hafar Al-Batin Central Hospital",
	}

	ticket := IssueTicket("Sara", "O+", "9:20 صباحًا", request)

	if ticket.Code == "" {
		t.Fatalf("expected ticket code to be set")
	}
	if ticket.DonorName != "Sara" {
		t.Fatalf("expected donor name Sara, got %q", ticket.DonorName)
	}
	if ticket.BloodType != "O+" {
		t.Fatalf("expected donor blood type O+, got %q", ticket.BloodType)
	}
	if ticket.Time != "9:20 صباحًا" {
		t.Fatalf("expected slot 9:20 صباحًا, got %q", ticket.Time)
	}
	if ticket.Location != request.Location {
		t.Fatalf("expected location from request, got %q", ticket.Location)
	}
	if ticket.Urgency != domain.UrgencyUrgent {
		t.Fatalf("expected urgency from request, got %q", ticket.Urgency)
	}
}
