package app

import (
	"context"
	"fmt"
	"slices"

	"github.com/Theryu22/Wareed/internal/auth"
	"github.com/Theryu22/Wareed/internal/clock"
	"github.com/Theryu22/Wareed/internal/domain"
	"github.com/Theryu22/Wareed/internal/schedule"
)

// BookingCaseSource is the minimal read access to donation cases the
// booking flow needs. Case lifecycle belongs to CaseService.
type BookingCaseSource interface {
	GetCase(ctx context.Context, id string) (domain.DonationRequest, error)
}

// DonationAppender persists a finished booking and returns the
// store-generated record id.
type DonationAppender interface {
	AppendDonation(ctx context.Context, record domain.DonationRecord) (string, error)
}

// AttemptState tracks the linear progression of one booking attempt.
type AttemptState string

const (
	StateIdle                 AttemptState = "idle"
	StateSelectingRequest     AttemptState = "selecting_request"
	StateCheckingAvailability AttemptState = "checking_availability"
	StateBlocked              AttemptState = "blocked"
	StatePickingSlot          AttemptState = "picking_slot"
	StateConfirming           AttemptState = "confirming"
	StatePersisting           AttemptState = "persisting"
	StateCompleted            AttemptState = "completed"
	StateFailed               AttemptState = "failed"
)

// BlockedReason explains a Blocked terminal state.
type BlockedReason string

const (
	BlockedBookingDisabled BlockedReason = "booking_disabled"
	BlockedClinicClosed    BlockedReason = "clinic_closed"
	BlockedNoSlots         BlockedReason = "no_slots"
)

// Attempt is one caller's booking attempt. Attempts are independent: the
// service keeps no registry of in-flight attempts, so a second concurrent
// attempt for the same case is a separate Attempt value.
type Attempt struct {
	state     AttemptState
	request   domain.DonationRequest
	slots     []string
	blocked   BlockedReason
	clinicNow schedule.ClinicTime
}

func (a *Attempt) State() AttemptState { return a.state }

func (a *Attempt) Request() domain.DonationRequest { return a.request }

// Slots returns the offered slot labels; empty unless state is PickingSlot.
func (a *Attempt) Slots() []string { return slices.Clone(a.slots) }

// Blocked returns the reason for a Blocked state, empty otherwise.
func (a *Attempt) Blocked() BlockedReason { return a.blocked }

// ClinicTime returns the clinic wall-clock time observed during the
// availability check, for caller-facing messaging.
func (a *Attempt) ClinicTime() schedule.ClinicTime { return a.clinicNow }

type BookingService struct {
	cases     BookingCaseSource
	donations DonationAppender
	calendar  *schedule.Calendar
	clock     clock.Clock
	enabled   bool
}

func NewBookingService(cases BookingCaseSource, donations DonationAppender, calendar *schedule.Calendar, clk clock.Clock, opts ...BookingServiceOption) *BookingService {
	svc := &BookingService{
		cases:     cases,
		donations: donations,
		calendar:  calendar,
		clock:     clk,
		enabled:   true,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

type BookingServiceOption func(*BookingService)

// WithBookingEnabled is the global kill switch for new bookings.
func WithBookingEnabled(enabled bool) BookingServiceOption {
	return func(s *BookingService) {
		s.enabled = enabled
	}
}

// Begin starts a booking attempt for the given case: it resolves the case,
// checks availability and, when the clinic accepts bookings, generates the
// slot grid. A Blocked attempt is a valid outcome, not an error; errors are
// reserved for unknown cases and repository failures.
func (s *BookingService) Begin(ctx context.Context, requestID string) (*Attempt, error) {
	a := &Attempt{state: StateIdle}

	a.state = StateSelectingRequest
	request, err := s.cases.GetCase(ctx, requestID)
	if err != nil {
		return nil, err
	}
	a.request = request

	a.state = StateCheckingAvailability
	a.clinicNow = s.calendar.Now()

	if !s.enabled {
		a.state = StateBlocked
		a.blocked = BlockedBookingDisabled
		return a, nil
	}
	if !schedule.IsOpen(a.clinicNow) && !s.calendar.OverrideHours() {
		a.state = StateBlocked
		a.blocked = BlockedClinicClosed
		return a, nil
	}

	slots, err := schedule.GenerateSlots(a.clinicNow)
	if err != nil {
		return nil, err
	}
	if len(slots) == 0 {
		a.state = StateBlocked
		a.blocked = BlockedNoSlots
		return a, nil
	}

	a.state = StatePickingSlot
	a.slots = slots
	return a, nil
}

type ConfirmInput struct {
	DonorName string
	BloodType string
	Slot      string
}

// BookingConfirmation is returned once the donation record is durably
// written. The ticket must not be shown to the donor on any other path.
type BookingConfirmation struct {
	Ticket domain.Ticket
	Record domain.DonationRecord
}

// Confirm takes a slot the caller picked from the attempt's offer, issues
// the ticket and persists the donation record. The slot must be one of the
// labels Begin offered; anything else is rejected before any write.
func (s *BookingService) Confirm(ctx context.Context, a *Attempt, in ConfirmInput) (BookingConfirmation, error) {
	if a == nil || a.state != StatePickingSlot {
		return BookingConfirmation{}, domain.ErrInvalidTransition
	}
	if in.DonorName == "" {
		return BookingConfirmation{}, domain.ErrDonorNameRequired
	}
	if in.BloodType == "" {
		return BookingConfirmation{}, domain.ErrBloodTypeRequired
	}
	if !slices.Contains(a.slots, in.Slot) {
		return BookingConfirmation{}, domain.ErrSlotNotOffered
	}

	a.state = StateConfirming
	ticket := IssueTicket(in.DonorName, in.BloodType, in.Slot, a.request)

	a.state = StatePersisting
	ownerID, ok := auth.UserID(ctx)
	if !ok {
		a.state = StateFailed
		return BookingConfirmation{}, domain.ErrAuthRequired
	}

	record := domain.DonationRecord{
		DonorName:   in.DonorName,
		Urgency:     a.request.Urgency,
		TicketCode:  ticket.Code,
		BloodType:   in.BloodType,
		Location:    a.request.Location,
		DateCreated: s.calendar.Today(),
		Time:        in.Slot,
		Status:      domain.DonationStatusPending,
		Timezone:    domain.ClinicTimezone,
		OwnerUserID: ownerID,
		CreatedAtMS: s.clock.Now().UnixMilli(),
	}

	id, err := s.donations.AppendDonation(ctx, record)
	if err != nil {
		// The in-memory ticket was never durably recorded; the caller must
		// treat it as void.
		a.state = StateFailed
		return BookingConfirmation{}, fmt.Errorf("persist donation: %w", err)
	}
	record.ID = id

	a.state = StateCompleted
	return BookingConfirmation{Ticket: ticket, Record: record}, nil
}
