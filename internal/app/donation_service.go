package app

import (
	"context"

	"github.com/Theryu22/Wareed/internal/auth"
	"github.com/Theryu22/Wareed/internal/domain"
)

type DonationRepository interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
	GetDonation(ctx context.Context, id string) (domain.DonationRecord, error)
	ListDonationsByStatus(ctx context.Context, status domain.DonationStatus) ([]domain.DonationRecord, error)
	ListDonationsByOwner(ctx context.Context, ownerUserID string) ([]domain.DonationRecord, error)
	UpdateDonationStatus(ctx context.Context, id string, status domain.DonationStatus) error
}

// DonationService covers admin review of persisted donations plus the
// donor's view of their own records. It never creates records; that is the
// booking flow's job.
type DonationService struct {
	repo DonationRepository
}

func NewDonationService(repo DonationRepository) *DonationService {
	return &DonationService{repo: repo}
}

func (s *DonationService) ListByStatus(ctx context.Context, status domain.DonationStatus) ([]domain.DonationRecord, error) {
	if !domain.ValidDonationStatus(status) {
		return nil, domain.ErrInvalidTransition
	}
	return s.repo.ListDonationsByStatus(ctx, status)
}

// ListMine returns the calling donor's records, newest first.
func (s *DonationService) ListMine(ctx context.Context) ([]domain.DonationRecord, error) {
	ownerID, ok := auth.UserID(ctx)
	if !ok {
		return nil, domain.ErrAuthRequired
	}
	return s.repo.ListDonationsByOwner(ctx, ownerID)
}

// SetStatus moves a donation through the review lifecycle, enforcing the
// transition map.
func (s *DonationService) SetStatus(ctx context.Context, id string, to domain.DonationStatus) (domain.DonationRecord, error) {
	if id == "" {
		return domain.DonationRecord{}, domain.ErrInvalidID
	}
	if !domain.ValidDonationStatus(to) {
		return domain.DonationRecord{}, domain.ErrInvalidTransition
	}

	var record domain.DonationRecord
	err := s.repo.WithTx(ctx, func(txCtx context.Context) error {
		var err error
		record, err = s.repo.GetDonation(txCtx, id)
		if err != nil {
			return err
		}
		if !domain.ValidStatusTransition(record.Status, to) {
			return domain.ErrInvalidTransition
		}
		return s.repo.UpdateDonationStatus(txCtx, id, to)
	})
	if err != nil {
		return domain.DonationRecord{}, err
	}
	record.Status = to
	return record, nil
}
