package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/Theryu22/Wareed/internal/app"
	"github.com/Theryu22/Wareed/internal/domain"
)

// BookingFlow is the minimal interface the booking endpoints need.
type BookingFlow interface {
	Begin(ctx context.Context, requestID string) (*app.Attempt, error)
	Confirm(ctx context.Context, a *app.Attempt, in app.ConfirmInput) (app.BookingConfirmation, error)
}

// HandlePreviewBooking checks availability for a case and returns either
// the offered slots or the blocked reason. Blocked is a normal answer
// here, not an error status.
func HandlePreviewBooking(svc BookingFlow) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		var req previewBookingRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}
		if req.RequestID == "" {
			writeError(w, http.StatusBadRequest, codeInvalidID, domain.ErrInvalidID.Error())
			return
		}

		attempt, err := svc.Begin(r.Context(), req.RequestID)
		if err != nil {
			writeBeginError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(previewResponseFor(attempt))
	}
}

// HandleCreateBooking runs the whole booking flow for a selected slot:
// availability check, slot validation, ticket issuance and persistence.
func HandleCreateBooking(svc BookingFlow) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		var req createBookingRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}
		if req.RequestID == "" {
			writeError(w, http.StatusBadRequest, codeInvalidID, domain.ErrInvalidID.Error())
			return
		}

		attempt, err := svc.Begin(r.Context(), req.RequestID)
		if err != nil {
			writeBeginError(w, err)
			return
		}
		if attempt.State() == app.StateBlocked {
			observeBooking(string(attempt.Blocked()))
			status, code := blockedStatus(attempt.Blocked())
			writeError(w, status, code, blockedMessage(attempt))
			return
		}

		conf, err := svc.Confirm(r.Context(), attempt, app.ConfirmInput{
			DonorName: req.DonorName,
			BloodType: req.BloodType,
			Slot:      req.Slot,
		})
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrDonorNameRequired):
				writeError(w, http.StatusBadRequest, codeDonorNameRequired, err.Error())
			case errors.Is(err, domain.ErrBloodTypeRequired):
				writeError(w, http.StatusBadRequest, codeBloodTypeRequired, err.Error())
			case errors.Is(err, domain.ErrSlotNotOffered):
				writeError(w, http.StatusConflict, codeSlotNotOffered, err.Error())
			case errors.Is(err, domain.ErrAuthRequired):
				writeError(w, http.StatusUnauthorized, codeAuthRequired, err.Error())
			default:
				// The record was not durably saved; any ticket minted along
				// the way is void.
				observeBooking("failed")
				writeError(w, http.StatusBadGateway, codeBookingNotCompleted, "booking was not completed")
			}
			return
		}

		observeBooking("completed")
		resp := bookingResponse{
			RecordID:    conf.Record.ID,
			Status:      string(conf.Record.Status),
			DateCreated: conf.Record.DateCreated,
			Timezone:    conf.Record.Timezone,
			Ticket: ticketResponse{
				Code:      conf.Ticket.Code,
				DonorName: conf.Ticket.DonorName,
				Time:      conf.Ticket.Time,
				Location:  conf.Ticket.Location,
				BloodType: conf.Ticket.BloodType,
				Urgency:   string(conf.Ticket.Urgency),
			},
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func writeBeginError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrCaseNotFound):
		writeError(w, http.StatusNotFound, codeCaseNotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidID):
		writeError(w, http.StatusBadRequest, codeInvalidID, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
	}
}

func blockedStatus(reason app.BlockedReason) (int, string) {
	switch reason {
	case app.BlockedBookingDisabled:
		return http.StatusServiceUnavailable, codeBookingDisabled
	case app.BlockedClinicClosed:
		return http.StatusConflict, codeClinicClosed
	default:
		return http.StatusConflict, codeNoSlots
	}
}

func blockedMessage(attempt *app.Attempt) string {
	switch attempt.Blocked() {
	case app.BlockedBookingDisabled:
		return "booking is temporarily disabled"
	case app.BlockedClinicClosed:
		now := attempt.ClinicTime()
		return fmt.Sprintf("clinic is closed, current clinic time %d:%02d, working hours 8:00-16:00", now.Hour, now.Minute)
	default:
		return "no slots available today"
	}
}

func previewResponseFor(attempt *app.Attempt) previewBookingResponse {
	resp := previewBookingResponse{State: string(attempt.State())}
	switch attempt.State() {
	case app.StatePickingSlot:
		resp.Slots = attempt.Slots()
	case app.StateBlocked:
		resp.BlockedReason = string(attempt.Blocked())
		if attempt.Blocked() == app.BlockedClinicClosed {
			now := attempt.ClinicTime()
			resp.ClinicTime = fmt.Sprintf("%d:%02d", now.Hour, now.Minute)
		}
	}
	return resp
}

type previewBookingRequest struct {
	RequestID string `json:"request_id"`
}

type previewBookingResponse struct {
	State         string   `json:"state"`
	Slots         []string `json:"slots,omitempty"`
	BlockedReason string   `json:"blocked_reason,omitempty"`
	ClinicTime    string   `json:"clinic_time,omitempty"`
}

type createBookingRequest struct {
	RequestID string `json:"request_id"`
	DonorName string `json:"donor_name"`
	BloodType string `json:"blood_type"`
	Slot      string `json:"slot"`
}

type ticketResponse struct {
	Code      string `json:"code"`
	DonorName string `json:"donor_name"`
	Time      string `json:"time"`
	Location  string `json:"location"`
	BloodType string `json:"blood_type"`
	Urgency   string `json:"urgency"`
}

type bookingResponse struct {
	RecordID    string         `json:"record_id"`
	Status      string         `json:"status"`
	DateCreated string         `json:"date_created"`
	Timezone    string         `json:"timezone"`
	Ticket      ticketResponse `json:"ticket"`
}
