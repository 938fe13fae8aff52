package app

import (
	"context"

	"github.com/google/uuid"

	"github.com/Theryu22/Wareed/internal/clock"
	"github.com/Theryu22/Wareed/internal/domain"
)

type CaseRepository interface {
	CreateCase(ctx context.Context, request domain.DonationRequest) error
	UpdateCase(ctx context.Context, request domain.DonationRequest) error
	DeleteCase(ctx context.Context, id string) error
	GetCase(ctx context.Context, id string) (domain.DonationRequest, error)
	ListCases(ctx context.Context) ([]domain.DonationRequest, error)
	ListCasesByUrgency(ctx context.Context, urgency domain.UrgencyLevel) ([]domain.DonationRequest, error)
}

// CaseService owns the lifecycle of donation cases published by admins.
type CaseService struct {
	repo  CaseRepository
	clock clock.Clock
}

func NewCaseService(repo CaseRepository, clk clock.Clock) *CaseService {
	return &CaseService{
		repo:  repo,
		clock: clk,
	}
}

type CreateCaseInput struct {
	Urgency     domain.UrgencyLevel
	BloodType   string
	Location    string
	Description string
}

func (s *CaseService) CreateCase(ctx context.Context, in CreateCaseInput) (domain.DonationRequest, error) {
	if !domain.ValidUrgency(in.Urgency) {
		return domain.DonationRequest{}, domain.ErrInvalidUrgency
	}
	if in.BloodType == "" {
		return domain.DonationRequest{}, domain.ErrBloodTypeRequired
	}
	if in.Location == "" {
		return domain.DonationRequest{}, domain.ErrLocationRequired
	}

	request := domain.DonationRequest{
		ID:          uuid.NewString(),
		Urgency:     in.Urgency,
		BloodType:   in.BloodType,
		Location:    in.Location,
		Description: in.Description,
		CreatedAt:   s.clock.Now(),
	}

	if err := s.repo.CreateCase(ctx, request); err != nil {
		return domain.DonationRequest{}, err
	}
	return request, nil
}

type UpdateCaseInput struct {
	ID          string
	Urgency     domain.UrgencyLevel
	BloodType   string
	Location    string
	Description string
}

func (s *CaseService) UpdateCase(ctx context.Context, in UpdateCaseInput) (domain.DonationRequest, error) {
	if in.ID == "" {
		return domain.DonationRequest{}, domain.ErrInvalidID
	}
	if !domain.ValidUrgency(in.Urgency) {
		return domain.DonationRequest{}, domain.ErrInvalidUrgency
	}
	if in.BloodType == "" {
		return domain.DonationRequest{}, domain.ErrBloodTypeRequired
	}
	if in.Location == "" {
		return domain.DonationRequest{}, domain.ErrLocationRequired
	}

	existing, err := s.repo.GetCase(ctx, in.ID)
	if err != nil {
		return domain.DonationRequest{}, err
	}

	existing.Urgency = in.Urgency
	existing.BloodType = in.BloodType
	existing.Location = in.Location
	existing.Description = in.Description

	if err := s.repo.UpdateCase(ctx, existing); err != nil {
		return domain.DonationRequest{}, err
	}
	return existing, nil
}

func (s *CaseService) DeleteCase(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrInvalidID
	}
	return s.repo.DeleteCase(ctx, id)
}

func (s *CaseService) ListCases(ctx context.Context) ([]domain.DonationRequest, error) {
	return s.repo.ListCases(ctx)
}

func (s *CaseService) ListCasesByUrgency(ctx context.Context, urgency domain.UrgencyLevel) ([]domain.DonationRequest, error) {
	if !domain.ValidUrgency(urgency) {
		return nil, domain.ErrInvalidUrgency
	}
	return s.repo.ListCasesByUrgency(ctx, urgency)
}
