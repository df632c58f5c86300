package rsvp

import (
	"context"
	"time"

	"github.com/gatherly/rsvp-backend-go/internal/domain/identity"
	"github.com/google/uuid"
)

// StateCounts is the per-state respondent tally for one invite
type StateCounts struct {
	Join    int
	Maybe   int
	Decline int
	Total   int
}

// RSVPRepository defines the interface for ledger data access
type RSVPRepository interface {
	// Upsert atomically records a response: inserts a new row with
	// created = updated = now, or updates state/updated (and display
	// name, only when non-empty) on the existing (invite, email) row.
	// CreatedAt of an existing row is never touched.
	Upsert(ctx context.Context, inviteID uuid.UUID, email, displayName string, state State) (RSVP, error)

	// GetByInviteAndEmail retrieves one respondent's current row
	GetByInviteAndEmail(ctx context.Context, inviteID uuid.UUID, email string) (RSVP, error)

	// ListByInvite lists all ledger rows for an invite, oldest first
	ListByInvite(ctx context.Context, inviteID uuid.UUID) ([]RSVP, error)

	// CountStates tallies distinct respondents per latest state
	CountStates(ctx context.Context, inviteID uuid.UUID) (StateCounts, error)

	// FirstResponseAt returns the earliest created timestamp for an
	// invite, or nil when no response exists
	FirstResponseAt(ctx context.Context, inviteID uuid.UUID) (*time.Time, error)
}

// RSVPService defines the interface for response business logic
type RSVPService interface {
	// Submit resolves the respondent identity, enforces the window
	// expiry gate and records the response. Circle reconciliation and
	// creator notification run as best-effort side effects after the
	// write commits.
	Submit(ctx context.Context, req SubmitRequest, respondent identity.Respondent) (Ack, error)

	// Roster lists all responses for an invite; invite creator only
	Roster(ctx context.Context, inviteID string, callerID string) ([]RosterEntry, error)
}
