package postgresql

import (
	"context"
	"fmt"

	"github.com/gatherly/rsvp-backend-go/internal/domain/circle"
	"github.com/gatherly/rsvp-backend-go/internal/pkg/database"
	"github.com/google/uuid"
)

type membershipRepositoryImpl struct {
	db *database.DB
}

// NewMembershipRepository creates a new circle membership repository instance
func NewMembershipRepository(db *database.DB) circle.MembershipRepository {
	return &membershipRepositoryImpl{db: db}
}

// EnsureMember implements circle.MembershipRepository.
// ON CONFLICT DO NOTHING keeps an existing membership untouched (the
// stored name is never overwritten); the follow-up SELECT returns the
// row either way.
func (r *membershipRepositoryImpl) EnsureMember(ctx context.Context, circleID uuid.UUID, email string, displayName *string) (circle.Membership, error) {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		INSERT INTO circle_members (circle_id, email, display_name)
		VALUES ($1, $2, $3)
		ON CONFLICT (circle_id, email) DO NOTHING
	`, circleID, email, displayName)
	if err != nil {
		return circle.Membership{}, fmt.Errorf("failed to ensure membership: %w", err)
	}

	query := `
		SELECT id, circle_id, email, display_name, created_at
		FROM circle_members
		WHERE circle_id = $1 AND email = $2
	`

	var m circle.Membership
	err = q.QueryRow(ctx, query, circleID, email).Scan(
		&m.ID, &m.CircleID, &m.Email, &m.DisplayName, &m.CreatedAt,
	)
	if err != nil {
		return circle.Membership{}, fmt.Errorf("failed to load membership: %w", err)
	}

	return m, nil
}

// ListByCircle implements circle.MembershipRepository.
func (r *membershipRepositoryImpl) ListByCircle(ctx context.Context, circleID uuid.UUID) ([]circle.Membership, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, circle_id, email, display_name, created_at
		FROM circle_members
		WHERE circle_id = $1
		ORDER BY created_at ASC
	`

	rows, err := q.Query(ctx, query, circleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	var members []circle.Membership
	for rows.Next() {
		var m circle.Membership
		if err := rows.Scan(&m.ID, &m.CircleID, &m.Email, &m.DisplayName, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan membership: %w", err)
		}
		members = append(members, m)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return members, nil
}
