package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Theryu22/Wareed/internal/clock"
	"github.com/Theryu22/Wareed/internal/domain"
)

type fakeCaseRepo struct {
	cases map[string]domain.DonationRequest
}

func newFakeCaseRepo(seed ...domain.DonationRequest) *fakeCaseRepo {
	repo := &fakeCaseRepo{cases: make(map[string]domain.DonationRequest)}
	for _, request := range seed {
		repo.cases[request.ID] = request
	}
	return repo
}

func (f *fakeCaseRepo) CreateCase(_ context.Context, request domain.DonationRequest) error {
	f.cases[request.ID] = request
	return nil
}

func (f *fakeCaseRepo) UpdateCase(_ context.Context, request domain.DonationRequest) error {
	if _, ok := f.cases[request.ID]; !ok {
		return domain.ErrCaseNotFound
	}
	f.cases[request.ID] = request
	return nil
}

func (f *fakeCaseRepo) DeleteCase(_ context.Context, id string) error {
	if _, ok := f.cases[id]; !ok {
		return domain.ErrCaseNotFound
	}
	delete(f.cases, id)
	return nil
}

func (f *fakeCaseRepo) GetCase(_ context.Context, id string) (domain.DonationRequest, error) {
	request, ok := f.cases[id]
	if !ok {
		return domain.DonationRequest{}, domain.ErrCaseNotFound
	}
	return request, nil
}

func (f *fakeCaseRepo) ListCases(_ context.Context) ([]domain.DonationRequest, error) {
	out := make([]domain.DonationRequest, 0, len(f.cases))
	for _, request := range f.cases {
		out = append(out, request)
	}
	return out, nil
}

func (f *fakeCaseRepo) ListCasesByUrgency(_ context.Context, urgency domain.UrgencyLevel) ([]domain.DonationRequest, error) {
	var out []domain.DonationRequest
	for _, request := range f.cases {
		if request.Urgency == urgency {
			out = append(out, request)
		}
	}
	return out, nil
}

func TestCaseService_CreateCase(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("creates with generated id", func(t *testing.T) {
		repo := newFakeCaseRepo()
		svc := NewCaseService(repo, clock.NewFixed(now))

		request, err := svc.CreateCase(context.Background(), CreateCaseInput{
			Urgency:     domain.UrgencyUrgent,
			BloodType:   "A-",
			Location:    "Hafar Al-Batin Central Hospital",
			Description: "needs a donation within hours",
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if request.ID == "" {
			t.Fatalf("expected generated id")
		}
		if !request.CreatedAt.Equal(now) {
			t.Fatalf("expected created_at %v, got %v", now, request.CreatedAt)
		}
		if len(repo.cases) != 1 {
			t.Fatalf("expected 1 case stored, got %d", len(repo.cases))
		}
	})

	t.Run("validates input", func(t *testing.T) {
		svc := NewCaseService(newFakeCaseRepo(), clock.NewFixed(now))

		if _, err := svc.CreateCase(context.Background(), CreateCaseInput{Urgency: "critical", BloodType: "A-", Location: "x"}); !errors.Is(err, domain.ErrInvalidUrgency) {
			t.Fatalf("expected ErrInvalidUrgency, got %v", err)
		}
		if _, err := svc.CreateCase(context.Background(), CreateCaseInput{Urgency: domain.UrgencyNormal, Location: "x"}); !errors.Is(err, domain.ErrBloodTypeRequired) {
			t.Fatalf("expected ErrBloodTypeRequired, got %v", err)
		}
		if _, err := svc.CreateCase(context.Background(), CreateCaseInput{Urgency: domain.UrgencyNormal, BloodType: "A-"}); !errors.Is(err, domain.ErrLocationRequired) {
			t.Fatalf("expected ErrLocationRequired, got %v", err)
		}
	})
}

func TestCaseService_UpdateCase(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	existing := domain.DonationRequest{
		ID:        "case-1",
		Urgency:   domain.UrgencyNormal,
		BloodType: "B+",
		Location:  "Maternity and Children Hospital",
		CreatedAt: now.Add(-time.Hour),
	}

	t.Run("updates fields, keeps creation time", func(t *testing.T) {
		repo := newFakeCaseRepo(existing)
		svc := NewCaseService(repo, clock.NewFixed(now))

		updated, err := svc.UpdateCase(context.Background(), UpdateCaseInput{
			ID:        "case-1",
			Urgency:   domain.UrgencyVeryUrgent,
			BloodType: "B+",
			Location:  "Maternity and Children Hospital",
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if updated.Urgency != domain.UrgencyVeryUrgent {
			t.Fatalf("expected urgency very-urgent, got %q", updated.Urgency)
		}
		if !updated.CreatedAt.Equal(existing.CreatedAt) {
			t.Fatalf("expected creation time preserved")
		}
	})

	t.Run("unknown case", func(t *testing.T) {
		svc := NewCaseService(newFakeCaseRepo(), clock.NewFixed(now))

		_, err := svc.UpdateCase(context.Background(), UpdateCaseInput{
			ID:        "missing",
			Urgency:   domain.UrgencyNormal,
			BloodType: "B+",
			Location:  "x",
		})
		if !errors.Is(err, domain.ErrCaseNotFound) {
			t.Fatalf("expected ErrCaseNotFound, got %v", err)
		}
	})
}

func TestCaseService_DeleteCase(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	repo := newFakeCaseRepo(domain.DonationRequest{ID: "case-1", Urgency: domain.UrgencyNormal, BloodType: "B+", Location: "x"})
	svc := NewCaseService(repo, clock.NewFixed(now))

	if err := svc.DeleteCase(context.Background(), ""); !errors.Is(err, domain.ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
	if err := svc.DeleteCase(context.Background(), "case-1"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(repo.cases) != 0 {
		t.Fatalf("expected case removed")
	}
}

func TestCaseService_ListCasesByUrgency(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	repo := newFakeCaseRepo(
		domain.DonationRequest{ID: "case-1", Urgency: domain.UrgencyUrgent, BloodType: "A-", Location: "x"},
		domain.DonationRequest{ID: "case-2", Urgency: domain.UrgencyNormal, BloodType: "B+", Location: "y"},
	)
	svc := NewCaseService(repo, clock.NewFixed(now))

	urgent, err := svc.ListCasesByUrgency(context.Background(), domain.UrgencyUrgent)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(urgent) != 1 || urgent[0].ID != "case-1" {
		t.Fatalf("expected only case-1, got %v", urgent)
	}

	if _, err := svc.ListCasesByUrgency(context.Background(), "asap"); !errors.Is(err, domain.ErrInvalidUrgency) {
		t.Fatalf("expected ErrInvalidUrgency, got %v", err)
	}
}
