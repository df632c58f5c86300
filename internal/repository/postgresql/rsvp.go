package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/gatherly/rsvp-backend-go/internal/domain/rsvp"
	"github.com/gatherly/rsvp-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type rsvpRepositoryImpl struct {
	db *database.DB
}

// NewRSVPRepository creates a new ledger repository instance
func NewRSVPRepository(db *database.DB) rsvp.RSVPRepository {
	return &rsvpRepositoryImpl{db: db}
}

// Upsert implements rsvp.RSVPRepository.
// A single ON CONFLICT statement: Postgres serializes concurrent
// submissions for the same (invite, email) row, created_at survives
// re-submission, and an empty display name never clobbers a stored one.
func (r *rsvpRepositoryImpl) Upsert(ctx context.Context, inviteID uuid.UUID, email, displayName string, state rsvp.State) (rsvp.RSVP, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO rsvps (invite_id, email, display_name, state)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (invite_id, email) DO UPDATE SET
			state = EXCLUDED.state,
			display_name = CASE
				WHEN EXCLUDED.display_name <> '' THEN EXCLUDED.display_name
				ELSE rsvps.display_name
			END,
			updated_at = NOW()
		RETURNING id, invite_id, email, display_name, state, created_at, updated_at
	`

	var row rsvp.RSVP
	err := q.QueryRow(ctx, query, inviteID, email, displayName, string(state)).Scan(
		&row.ID, &row.InviteID, &row.Email, &row.DisplayName,
		&row.State, &row.CreatedAt, &row.UpdatedAt,
	)
	if err != nil {
		return rsvp.RSVP{}, fmt.Errorf("failed to upsert rsvp: %w", err)
	}

	return row, nil
}

// GetByInviteAndEmail implements rsvp.RSVPRepository.
func (r *rsvpRepositoryImpl) GetByInviteAndEmail(ctx context.Context, inviteID uuid.UUID, email string) (rsvp.RSVP, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, invite_id, email, display_name, state, created_at, updated_at
		FROM rsvps
		WHERE invite_id = $1 AND email = $2
	`

	var row rsvp.RSVP
	err := q.QueryRow(ctx, query, inviteID, email).Scan(
		&row.ID, &row.InviteID, &row.Email, &row.DisplayName,
		&row.State, &row.CreatedAt, &row.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return row, rsvp.ErrRSVPNotFound
		}
		return row, fmt.Errorf("failed to get rsvp: %w", err)
	}

	return row, nil
}

// ListByInvite implements rsvp.RSVPRepository.
func (r *rsvpRepositoryImpl) ListByInvite(ctx context.Context, inviteID uuid.UUID) ([]rsvp.RSVP, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, invite_id, email, display_name, state, created_at, updated_at
		FROM rsvps
		WHERE invite_id = $1
		ORDER BY created_at ASC
	`

	rows, err := q.Query(ctx, query, inviteID)
	if err != nil {
		return nil, fmt.Errorf("failed to list rsvps: %w", err)
	}
	defer rows.Close()

	var result []rsvp.RSVP
	for rows.Next() {
		var row rsvp.RSVP
		err := rows.Scan(
			&row.ID, &row.InviteID, &row.Email, &row.DisplayName,
			&row.State, &row.CreatedAt, &row.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan rsvp: %w", err)
		}
		result = append(result, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}

// CountStates implements rsvp.RSVPRepository.
func (r *rsvpRepositoryImpl) CountStates(ctx context.Context, inviteID uuid.UUID) (rsvp.StateCounts, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COALESCE(SUM(CASE WHEN state = 'join' THEN 1 ELSE 0 END), 0) AS join_count,
			COALESCE(SUM(CASE WHEN state = 'maybe' THEN 1 ELSE 0 END), 0) AS maybe_count,
			COALESCE(SUM(CASE WHEN state = 'decline' THEN 1 ELSE 0 END), 0) AS decline_count,
			COUNT(*) AS total
		FROM rsvps
		WHERE invite_id = $1
	`

	var counts rsvp.StateCounts
	err := q.QueryRow(ctx, query, inviteID).Scan(
		&counts.Join, &counts.Maybe, &counts.Decline, &counts.Total,
	)
	if err != nil {
		return counts, fmt.Errorf("failed to count rsvp states: %w", err)
	}

	return counts, nil
}

// FirstResponseAt implements rsvp.RSVPRepository.
func (r *rsvpRepositoryImpl) FirstResponseAt(ctx context.Context, inviteID uuid.UUID) (*time.Time, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT MIN(created_at) FROM rsvps WHERE invite_id = $1`

	var first *time.Time
	err := q.QueryRow(ctx, query, inviteID).Scan(&first)
	if err != nil {
		return nil, fmt.Errorf("failed to get first response time: %w", err)
	}

	return first, nil
}
