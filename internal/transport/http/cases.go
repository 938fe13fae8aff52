package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/Theryu22/Wareed/internal/app"
	"github.com/Theryu22/Wareed/internal/domain"
)

// CaseManager is the minimal interface needed for admin case endpoints.
type CaseManager interface {
	CreateCase(ctx context.Context, in app.CreateCaseInput) (domain.DonationRequest, error)
	UpdateCase(ctx context.Context, in app.UpdateCaseInput) (domain.DonationRequest, error)
	DeleteCase(ctx context.Context, id string) error
	ListCases(ctx context.Context) ([]domain.DonationRequest, error)
}

// CaseLister is the read-only view donors get of open cases.
type CaseLister interface {
	ListCasesByUrgency(ctx context.Context, urgency domain.UrgencyLevel) ([]domain.DonationRequest, error)
}

// HandleAdminCases returns an HTTP handler for case creation/listing.
func HandleAdminCases(svc CaseManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			cases, err := svc.ListCases(r.Context())
			if err != nil {
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
				return
			}
			writeCaseList(w, http.StatusOK, cases)
			return
		case http.MethodPost:
			var req caseRequest
			dec := json.NewDecoder(r.Body)
			dec.DisallowUnknownFields()
			if err := dec.Decode(&req); err != nil {
				writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
				return
			}

			created, err := svc.CreateCase(r.Context(), app.CreateCaseInput{
				Urgency:     domain.UrgencyLevel(req.Urgency),
				BloodType:   req.BloodType,
				Location:    req.Location,
				Description: req.Description,
			})
			if err != nil {
				writeCaseError(w, err)
				return
			}

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(caseResponseFor(created))
			return
		default:
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}
	}
}

// HandleAdminCase returns an HTTP handler for updating/deleting one case.
func HandleAdminCase(svc CaseManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseAdminCasePath(r.URL.Path)
		if !ok {
			writeError(w, http.StatusNotFound, codeNotFound, "not found")
			return
		}

		switch r.Method {
		case http.MethodPut:
			var req caseRequest
			dec := json.NewDecoder(r.Body)
			dec.DisallowUnknownFields()
			if err := dec.Decode(&req); err != nil {
				writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
				return
			}

			updated, err := svc.UpdateCase(r.Context(), app.UpdateCaseInput{
				ID:          id,
				Urgency:     domain.UrgencyLevel(req.Urgency),
				BloodType:   req.BloodType,
				Location:    req.Location,
				Description: req.Description,
			})
			if err != nil {
				writeCaseError(w, err)
				return
			}

			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(caseResponseFor(updated))
			return
		case http.MethodDelete:
			if err := svc.DeleteCase(r.Context(), id); err != nil {
				writeCaseError(w, err)
				return
			}
			w.WriteHeader(http.StatusNoContent)
			return
		default:
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}
	}
}

// HandleListRequests returns the donor-facing list of open cases filtered
// by urgency level.
func HandleListRequests(svc CaseLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		urgency := domain.UrgencyLevel(r.URL.Query().Get("urgency"))
		cases, err := svc.ListCasesByUrgency(r.Context(), urgency)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidUrgency) {
				writeError(w, http.StatusBadRequest, codeInvalidUrgency, err.Error())
				return
			}
			writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			return
		}
		writeCaseList(w, http.StatusOK, cases)
	}
}

func writeCaseError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidUrgency):
		writeError(w, http.StatusBadRequest, codeInvalidUrgency, err.Error())
	case errors.Is(err, domain.ErrBloodTypeRequired):
		writeError(w, http.StatusBadRequest, codeBloodTypeRequired, err.Error())
	case errors.Is(err, domain.ErrLocationRequired):
		writeError(w, http.StatusBadRequest, codeLocationRequired, err.Error())
	case errors.Is(err, domain.ErrInvalidID):
		writeError(w, http.StatusBadRequest, codeInvalidID, err.Error())
	case errors.Is(err, domain.ErrCaseNotFound):
		writeError(w, http.StatusNotFound, codeCaseNotFound, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
	}
}

func writeCaseList(w http.ResponseWriter, status int, cases []domain.DonationRequest) {
	resp := make([]caseResponse, 0, len(cases))
	for _, request := range cases {
		resp = append(resp, caseResponseFor(request))
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

func parseAdminCasePath(path string) (string, bool) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) != 3 {
		return "", false
	}
	if parts[0] != "admin" || parts[1] != "cases" || parts[2] == "" {
		return "", false
	}
	return parts[2], true
}

type caseRequest struct {
	Urgency     string `json:"urgency"`
	BloodType   string `json:"blood_type"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

type caseResponse struct {
	ID          string    `json:"id"`
	Urgency     string    `json:"urgency"`
	BloodType   string    `json:"blood_type"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func caseResponseFor(request domain.DonationRequest) caseResponse {
	return caseResponse{
		ID:          request.ID,
		Urgency:     string(request.Urgency),
		BloodType:   request.BloodType,
		Location:    request.Location,
		Description: request.Description,
		CreatedAt:   request.CreatedAt,
	}
}
