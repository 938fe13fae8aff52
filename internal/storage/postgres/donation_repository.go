package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Theryu22/Wareed/internal/domain"
)

type DonationRepository struct {
	pool *pgxpool.Pool
}

func NewDonationRepository(pool *pgxpool.Pool) *DonationRepository {
	return &DonationRepository{pool: pool}
}

func (r *DonationRepository) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return withTx(ctx, r.pool, fn)
}

// AppendDonation inserts a new record under a store-generated id, distinct
// from the donor-facing ticket code.
func (r *DonationRepository) AppendDonation(ctx context.Context, record domain.DonationRecord) (string, error) {
	const stmt = `
INSERT INTO donations (id, donor_name, urgency, ticket_code, blood_type, location,
	date_created, slot_time, status, timezone, owner_user_id, created_at_ms)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	id := uuid.NewString()
	_, err := r.exec(ctx, stmt,
		id,
		record.DonorName,
		record.Urgency,
		record.TicketCode,
		record.BloodType,
		record.Location,
		record.DateCreated,
		record.Time,
		record.Status,
		record.Timezone,
		record.OwnerUserID,
		record.CreatedAtMS,
	)
	if err != nil {
		return "", fmt.Errorf("append donation: %w", err)
	}
	return id, nil
}

func (r *DonationRepository) GetDonation(ctx context.Context, id string) (domain.DonationRecord, error) {
	const query = donationColumns + ` WHERE id = $1`

	var record domain.DonationRecord
	err := scanDonation(r.queryRow(ctx, query, id), &record)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.DonationRecord{}, domain.ErrInvalidID
		}
		if err == pgx.ErrNoRows {
			return domain.DonationRecord{}, domain.ErrDonationNotFound
		}
		return domain.DonationRecord{}, fmt.Errorf("get donation: %w", err)
	}
	return record, nil
}

func (r *DonationRepository) ListDonationsByStatus(ctx context.Context, status domain.DonationStatus) ([]domain.DonationRecord, error) {
	const query = donationColumns + ` WHERE status = $1 ORDER BY created_at_ms DESC`

	rows, err := r.pool.Query(ctx, query, status)
	if err != nil {
		return nil, fmt.Errorf("list donations by status: %w", err)
	}
	defer rows.Close()

	return collectDonations(rows)
}

func (r *DonationRepository) ListDonationsByOwner(ctx context.Context, ownerUserID string) ([]domain.DonationRecord, error) {
	const query = donationColumns + ` WHERE owner_user_id = $1 ORDER BY created_at_ms DESC`

	rows, err := r.pool.Query(ctx, query, ownerUserID)
	if err != nil {
		return nil, fmt.Errorf("list donations by owner: %w", err)
	}
	defer rows.Close()

	return collectDonations(rows)
}

func (r *DonationRepository) UpdateDonationStatus(ctx context.Context, id string, status domain.DonationStatus) error {
	tag, err := r.exec(ctx, `UPDATE donations SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		return fmt.Errorf("update donation status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDonationNotFound
	}
	return nil
}

const donationColumns = `
SELECT id, donor_name, urgency, ticket_code, blood_type, location,
	date_created, slot_time, status, timezone, owner_user_id, created_at_ms
FROM donations`

func scanDonation(row pgx.Row, record *domain.DonationRecord) error {
	return row.Scan(
		&record.ID,
		&record.DonorName,
		&record.Urgency,
		&record.TicketCode,
		&record.BloodType,
		&record.Location,
		&record.DateCreated,
		&record.Time,
		&record.Status,
		&record.Timezone,
		&record.OwnerUserID,
		&record.CreatedAtMS,
	)
}

func collectDonations(rows pgx.Rows) ([]domain.DonationRecord, error) {
	out := make([]domain.DonationRecord, 0)
	for rows.Next() {
		var record domain.DonationRecord
		if err := scanDonation(rows, &record); err != nil {
			return nil, fmt.Errorf("scan donation: %w", err)
		}
		out = append(out, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate donations: %w", err)
	}
	return out, nil
}

func (r *DonationRepository) exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if tx := txFromContext(ctx); tx != nil {
		return tx.Exec(ctx, sql, args...)
	}
	return r.pool.Exec(ctx, sql, args...)
}

func (r *DonationRepository) queryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if tx := txFromContext(ctx); tx != nil {
		return tx.QueryRow(ctx, sql, args...)
	}
	return r.pool.QueryRow(ctx, sql, args...)
}
