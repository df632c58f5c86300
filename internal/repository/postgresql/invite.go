package postgresql

import (
	"context"
	"fmt"

	"github.com/gatherly/rsvp-backend-go/internal/domain/invite"
	"github.com/gatherly/rsvp-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type inviteRepositoryImpl struct {
	db *database.DB
}

// NewInviteRepository creates a new invite repository instance
func NewInviteRepository(db *database.DB) invite.InviteRepository {
	return &inviteRepositoryImpl{db: db}
}

// Create implements invite.InviteRepository.
func (r *inviteRepositoryImpl) Create(ctx context.Context, inv invite.Invite) (invite.Invite, error) {
	var created invite.Invite

	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO invites (title, creator_id, creator_email, window_start, window_end)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, title, creator_id, creator_email, window_start, window_end, created_at, updated_at
		`

		err := tx.QueryRow(ctx, query,
			inv.Title, inv.CreatorID, inv.CreatorEmail, inv.WindowStart, inv.WindowEnd,
		).Scan(
			&created.ID, &created.Title, &created.CreatorID, &created.CreatorEmail,
			&created.WindowStart, &created.WindowEnd, &created.CreatedAt, &created.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to create invite: %w", err)
		}

		for _, circleID := range inv.CircleIDs {
			_, err := tx.Exec(ctx, `
				INSERT INTO invite_circles (invite_id, circle_id) VALUES ($1, $2)
				ON CONFLICT (invite_id, circle_id) DO NOTHING
			`, created.ID, circleID)
			if err != nil {
				return fmt.Errorf("failed to attach circle %s: %w", circleID, err)
			}
			created.CircleIDs = append(created.CircleIDs, circleID)
		}

		return nil
	})
	if err != nil {
		return invite.Invite{}, err
	}

	return created, nil
}

// GetByID implements invite.InviteRepository.
func (r *inviteRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (invite.Invite, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, title, creator_id, creator_email, window_start, window_end, created_at, updated_at
		FROM invites
		WHERE id = $1
	`

	var inv invite.Invite
	err := q.QueryRow(ctx, query, id).Scan(
		&inv.ID, &inv.Title, &inv.CreatorID, &inv.CreatorEmail,
		&inv.WindowStart, &inv.WindowEnd, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return inv, invite.ErrInviteNotFound
		}
		return inv, fmt.Errorf("failed to get invite: %w", err)
	}

	rows, err := q.Query(ctx, `SELECT circle_id FROM invite_circles WHERE invite_id = $1`, id)
	if err != nil {
		return inv, fmt.Errorf("failed to list invite circles: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var circleID uuid.UUID
		if err := rows.Scan(&circleID); err != nil {
			return inv, fmt.Errorf("failed to scan circle id: %w", err)
		}
		inv.CircleIDs = append(inv.CircleIDs, circleID)
	}
	if err = rows.Err(); err != nil {
		return inv, fmt.Errorf("rows iteration error: %w", err)
	}

	return inv, nil
}

// ListByCreator implements invite.InviteRepository.
func (r *inviteRepositoryImpl) ListByCreator(ctx context.Context, creatorID string) ([]invite.Invite, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, title, creator_id, creator_email, window_start, window_end, created_at, updated_at
		FROM invites
		WHERE creator_id = $1
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, creatorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list invites: %w", err)
	}
	defer rows.Close()

	var invites []invite.Invite
	for rows.Next() {
		var inv invite.Invite
		err := rows.Scan(
			&inv.ID, &inv.Title, &inv.CreatorID, &inv.CreatorEmail,
			&inv.WindowStart, &inv.WindowEnd, &inv.CreatedAt, &inv.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invite: %w", err)
		}
		invites = append(invites, inv)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return invites, nil
}

// Delete implements invite.InviteRepository. RSVPs and circle targets
// are removed by the ON DELETE CASCADE constraints.
func (r *inviteRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM invites WHERE id = $1 RETURNING id`

	var deletedID uuid.UUID
	err := q.QueryRow(ctx, query, id).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return invite.ErrInviteNotFound
		}
		return fmt.Errorf("failed to delete invite: %w", err)
	}

	return nil
}
