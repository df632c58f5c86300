package invite

import (
	"context"

	"github.com/google/uuid"
)

// InviteRepository defines the interface for invite data access
type InviteRepository interface {
	// Create inserts a new invite and its circle targets
	Create(ctx context.Context, inv Invite) (Invite, error)

	// GetByID retrieves an invite with its targeted circle ids
	GetByID(ctx context.Context, id uuid.UUID) (Invite, error)

	// ListByCreator lists a creator's invites, newest first
	ListByCreator(ctx context.Context, creatorID string) ([]Invite, error)

	// Delete removes an invite; its RSVPs and circle targets cascade
	Delete(ctx context.Context, id uuid.UUID) error
}

// InviteService defines the interface for invite business logic
type InviteService interface {
	// Create parses the free-text window and publishes a new invite
	Create(ctx context.Context, req CreateRequest, creatorID, creatorEmail string) (InviteResponse, error)

	// Get returns invite details with aggregate counts (public)
	Get(ctx context.Context, id string) (InviteResponse, error)

	// ListMine lists the calling creator's invites with classification
	ListMine(ctx context.Context, creatorID string) ([]ListItemResponse, error)

	// Delete removes an invite; creator only, RSVPs cascade
	Delete(ctx context.Context, id string, creatorID string) error
}
