package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Theryu22/Wareed/internal/domain"
)

type CaseRepository struct {
	pool *pgxpool.Pool
}

func NewCaseRepository(pool *pgxpool.Pool) *CaseRepository {
	return &CaseRepository{pool: pool}
}

func (r *CaseRepository) CreateCase(ctx context.Context, request domain.DonationRequest) error {
	const stmt = `
INSERT INTO donation_cases (id, urgency, blood_type, location, description, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.exec(ctx, stmt,
		request.ID,
		request.Urgency,
		request.BloodType,
		request.Location,
		request.Description,
		request.CreatedAt,
	)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		return fmt.Errorf("create case: %w", err)
	}
	return nil
}

func (r *CaseRepository) UpdateCase(ctx context.Context, request domain.DonationRequest) error {
	const stmt = `
UPDATE donation_cases
SET urgency = $2, blood_type = $3, location = $4, description = $5
WHERE id = $1`

	tag, err := r.exec(ctx, stmt,
		request.ID,
		request.Urgency,
		request.BloodType,
		request.Location,
		request.Description,
	)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		return fmt.Errorf("update case: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCaseNotFound
	}
	return nil
}

func (r *CaseRepository) DeleteCase(ctx context.Context, id string) error {
	tag, err := r.exec(ctx, `DELETE FROM donation_cases WHERE id = $1`, id)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		return fmt.Errorf("delete case: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCaseNotFound
	}
	return nil
}

func (r *CaseRepository) GetCase(ctx context.Context, id string) (domain.DonationRequest, error) {
	const query = `
SELECT id, urgency, blood_type, location, description, created_at
FROM donation_cases
WHERE id = $1`

	var request domain.DonationRequest
	err := r.queryRow(ctx, query, id).Scan(
		&request.ID,
		&request.Urgency,
		&request.BloodType,
		&request.Location,
		&request.Description,
		&request.CreatedAt,
	)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.DonationRequest{}, domain.ErrInvalidID
		}
		if err == pgx.ErrNoRows {
			return domain.DonationRequest{}, domain.ErrCaseNotFound
		}
		return domain.DonationRequest{}, fmt.Errorf("get case: %w", err)
	}
	return request, nil
}

func (r *CaseRepository) ListCases(ctx context.Context) ([]domain.DonationRequest, error) {
	const query = `
SELECT id, urgency, blood_type, location, description, created_at
FROM donation_cases
ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list cases: %w", err)
	}
	defer rows.Close()

	return scanCases(rows)
}

func (r *CaseRepository) ListCasesByUrgency(ctx context.Context, urgency domain.UrgencyLevel) ([]domain.DonationRequest, error) {
	const query = `
SELECT id, urgency, blood_type, location, description, created_at
FROM donation_cases
WHERE urgency = $1
ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, urgency)
	if err != nil {
		return nil, fmt.Errorf("list cases by urgency: %w", err)
	}
	defer rows.Close()

	return scanCases(rows)
}

func scanCases(rows pgx.Rows) ([]domain.DonationRequest, error) {
	out := make([]domain.DonationRequest, 0)
	for rows.Next() {
		var request domain.DonationRequest
		if err := rows.Scan(
			&request.ID,
			&request.Urgency,
			&request.BloodType,
			&request.Location,
			&request.Description,
			&request.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan case: %w", err)
		}
		out = append(out, request)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cases: %w", err)
	}
	return out, nil
}

func (r *CaseRepository) exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if tx := txFromContext(ctx); tx != nil {
		return tx.Exec(ctx, sql, args...)
	}
	return r.pool.Exec(ctx, sql, args...)
}

func (r *CaseRepository) queryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if tx := txFromContext(ctx); tx != nil {
		return tx.QueryRow(ctx, sql, args...)
	}
	return r.pool.QueryRow(ctx, sql, args...)
}
