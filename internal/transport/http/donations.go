package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/Theryu22/Wareed/internal/domain"
)

// DonationReviewer is the minimal interface for admin review endpoints.
type DonationReviewer interface {
	ListByStatus(ctx context.Context, status domain.DonationStatus) ([]domain.DonationRecord, error)
	SetStatus(ctx context.Context, id string, to domain.DonationStatus) (domain.DonationRecord, error)
}

// DonationViewer is the donor's view of their own records.
type DonationViewer interface {
	ListMine(ctx context.Context) ([]domain.DonationRecord, error)
}

// HandleAdminDonations lists donations by review status, newest first.
func HandleAdminDonations(svc DonationReviewer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		status := domain.DonationStatus(r.URL.Query().Get("status"))
		if status == "" {
			status = domain.DonationStatusPending
		}

		records, err := svc.ListByStatus(r.Context(), status)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidTransition) {
				writeError(w, http.StatusBadRequest, codeInvalidTransition, "unknown status")
				return
			}
			writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			return
		}
		writeDonationList(w, records)
	}
}

// HandleDonationStatus moves one donation through the review lifecycle.
func HandleDonationStatus(svc DonationReviewer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		id, ok := parseDonationStatusPath(r.URL.Path)
		if !ok {
			writeError(w, http.StatusNotFound, codeNotFound, "not found")
			return
		}

		var req setStatusRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}

		record, err := svc.SetStatus(r.Context(), id, domain.DonationStatus(req.Status))
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrInvalidTransition):
				writeError(w, http.StatusConflict, codeInvalidTransition, err.Error())
			case errors.Is(err, domain.ErrDonationNotFound):
				writeError(w, http.StatusNotFound, codeDonationNotFound, err.Error())
			case errors.Is(err, domain.ErrInvalidID):
				writeError(w, http.StatusBadRequest, codeInvalidID, err.Error())
			default:
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(donationResponseFor(record))
	}
}

// HandleMyDonations returns the calling donor's own records.
func HandleMyDonations(svc DonationViewer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		records, err := svc.ListMine(r.Context())
		if err != nil {
			if errors.Is(err, domain.ErrAuthRequired) {
				writeError(w, http.StatusUnauthorized, codeAuthRequired, err.Error())
				return
			}
			writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			return
		}
		writeDonationList(w, records)
	}
}

func writeDonationList(w http.ResponseWriter, records []domain.DonationRecord) {
	resp := make([]donationResponse, 0, len(records))
	for _, record := range records {
		resp = append(resp, donationResponseFor(record))
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func parseDonationStatusPath(path string) (string, bool) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) != 4 {
		return "", false
	}
	if parts[0] != "admin" || parts[1] != "donations" || parts[3] != "status" {
		return "", false
	}
	if parts[2] == "" {
		return "", false
	}
	return parts[2], true
}

type setStatusRequest struct {
	Status string `json:"status"`
}

type donationResponse struct {
	ID          string `json:"id"`
	DonorName   string `json:"donor_name"`
	Urgency     string `json:"urgency"`
	TicketCode  string `json:"ticket_code"`
	BloodType   string `json:"blood_type"`
	Location    string `json:"location"`
	DateCreated string `json:"date_created"`
	Time        string `json:"time"`
	Status      string `json:"status"`
	Timezone    string `json:"timezone"`
	CreatedAtMS int64  `json:"created_at_ms"`
}

func donationResponseFor(record domain.DonationRecord) donationResponse {
	return donationResponse{
		ID:          record.ID,
		DonorName:   record.DonorName,
		Urgency:     string(record.Urgency),
		TicketCode:  record.TicketCode,
		BloodType:   record.BloodType,
		Location:    record.Location,
		DateCreated: record.DateCreated,
		Time:        record.Time,
		Status:      string(record.Status),
		Timezone:    record.Timezone,
		CreatedAtMS: record.CreatedAtMS,
	}
}
