package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Theryu22/Wareed/internal/domain"
)

type stubDonationReviewer struct {
	listed  []domain.DonationRecord
	updated domain.DonationRecord
	err     error

	listedStatus domain.DonationStatus
	setID        string
	setTo        domain.DonationStatus
}

func (s *stubDonationReviewer) ListByStatus(_ context.Context, status domain.DonationStatus) ([]domain.DonationRecord, error) {
	s.listedStatus = status
	if s.err != nil {
		return nil, s.err
	}
	return s.listed, nil
}

func (s *stubDonationReviewer) SetStatus(_ context.Context, id string, to domain.DonationStatus) (domain.DonationRecord, error) {
	s.setID, s.setTo = id, to
	if s.err != nil {
		return domain.DonationRecord{}, s.err
	}
	return s.updated, nil
}

type stubDonationViewer struct {
	listed []domain.DonationRecord
	err    error
}

func (s *stubDonationViewer) ListMine(context.Context) ([]domain.DonationRecord, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.listed, nil
}

func TestHandleAdminDonations(t *testing.T) {
	t.Parallel()

	t.Run("defaults to pending", func(t *testing.T) {
		svc := &stubDonationReviewer{listed: []domain.DonationRecord{{ID: "rec-1", Status: domain.DonationStatusPending}}}
		req := httptest.NewRequest(http.MethodGet, "/admin/donations", nil)
		rec := httptest.NewRecorder()

		HandleAdminDonations(svc).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rec.Code)
		}
		if svc.listedStatus != domain.DonationStatusPending {
			t.Fatalf("expected pending filter, got %q", svc.listedStatus)
		}
		var resp []donationResponse
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if len(resp) != 1 || resp[0].ID != "rec-1" {
			t.Fatalf("unexpected response: %+v", resp)
		}
	})

	t.Run("honours status filter", func(t *testing.T) {
		svc := &stubDonationReviewer{}
		req := httptest.NewRequest(http.MethodGet, "/admin/donations?status=approved", nil)
		rec := httptest.NewRecorder()

		HandleAdminDonations(svc).ServeHTTP(rec, req)

		if svc.listedStatus != domain.DonationStatusApproved {
			t.Fatalf("expected approved filter, got %q", svc.listedStatus)
		}
	})

	t.Run("unknown status is 400", func(t *testing.T) {
		svc := &stubDonationReviewer{err: domain.ErrInvalidTransition}
		req := httptest.NewRequest(http.MethodGet, "/admin/donations?status=maybe", nil)
		rec := httptest.NewRecorder()

		HandleAdminDonations(svc).ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d", rec.Code)
		}
	})
}

func TestHandleDonationStatus(t *testing.T) {
	t.Parallel()

	t.Run("approves a donation", func(t *testing.T) {
		svc := &stubDonationReviewer{updated: domain.DonationRecord{ID: "rec-1", Status: domain.DonationStatusApproved}}
		req := httptest.NewRequest(http.MethodPost, "/admin/donations/rec-1/status", strings.NewReader(`{"status":"approved"}`))
		rec := httptest.NewRecorder()

		HandleDonationStatus(svc).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if svc.setID != "rec-1" || svc.setTo != domain.DonationStatusApproved {
			t.Fatalf("unexpected call: id=%q to=%q", svc.setID, svc.setTo)
		}
		var resp donationResponse
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if resp.Status != "approved" {
			t.Fatalf("expected approved, got %q", resp.Status)
		}
	})

	t.Run("invalid transition is a conflict", func(t *testing.T) {
		svc := &stubDonationReviewer{err: domain.ErrInvalidTransition}
		req := httptest.NewRequest(http.MethodPost, "/admin/donations/rec-1/status", strings.NewReader(`{"status":"rejected"}`))
		rec := httptest.NewRecorder()

		HandleDonationStatus(svc).ServeHTTP(rec, req)

		if rec.Code != http.StatusConflict {
			t.Fatalf("expected status 409, got %d", rec.Code)
		}
	})

	t.Run("unknown donation is 404", func(t *testing.T) {
		svc := &stubDonationReviewer{err: domain.ErrDonationNotFound}
		req := httptest.NewRequest(http.MethodPost, "/admin/donations/missing/status", strings.NewReader(`{"status":"approved"}`))
		rec := httptest.NewRecorder()

		HandleDonationStatus(svc).ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected status 404, got %d", rec.Code)
		}
	})

	t.Run("malformed path is 404", func(t *testing.T) {
		svc := &stubDonationReviewer{}
		req := httptest.NewRequest(http.MethodPost, "/admin/donations/rec-1", strings.NewReader(`{"status":"approved"}`))
		rec := httptest.NewRecorder()

		HandleDonationStatus(svc).ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected status 404, got %d", rec.Code)
		}
	})
}

func TestHandleMyDonations(t *testing.T) {
	t.Parallel()

	t.Run("returns the caller's records", func(t *testing.T) {
		svc := &stubDonationViewer{listed: []domain.DonationRecord{
			{ID: "rec-2", OwnerUserID: "user-7"},
			{ID: "rec-1", OwnerUserID: "user-7"},
		}}
		req := httptest.NewRequest(http.MethodGet, "/donations", nil)
		req.Header.Set(userIDHeader, "user-7")
		rec := httptest.NewRecorder()

		Identity(HandleMyDonations(svc)).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rec.Code)
		}
		var resp []donationResponse
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if len(resp) != 2 || resp[0].ID != "rec-2" {
			t.Fatalf("unexpected response: %+v", resp)
		}
	})

	t.Run("anonymous caller gets 401", func(t *testing.T) {
		svc := &stubDonationViewer{err: domain.ErrAuthRequired}
		req := httptest.NewRequest(http.MethodGet, "/donations", nil)
		rec := httptest.NewRecorder()

		Identity(HandleMyDonations(svc)).ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected status 401, got %d", rec.Code)
		}
	})
}
