package circle

import (
	"context"

	"github.com/google/uuid"
)

// MembershipRepository defines the interface for circle membership access
type MembershipRepository interface {
	// EnsureMember creates the (circle, email) membership if absent and
	// returns the stored row either way. An existing membership is
	// reused untouched; its name is never overwritten.
	EnsureMember(ctx context.Context, circleID uuid.UUID, email string, displayName *string) (Membership, error)

	// ListByCircle lists members of a circle, oldest first
	ListByCircle(ctx context.Context, circleID uuid.UUID) ([]Membership, error)
}
