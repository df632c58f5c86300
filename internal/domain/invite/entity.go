package invite

import (
	"time"

	"github.com/google/uuid"
)

// Invite represents a host-published, time-bounded activity announcement.
// Invites are immutable after creation; there is no edit flow.
type Invite struct {
	ID           uuid.UUID
	Title        string
	CreatorID    string
	CreatorEmail string
	WindowStart  time.Time
	WindowEnd    time.Time
	CircleIDs    []uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsExpired checks if the invite window has closed (query-time check)
func (i *Invite) IsExpired(now time.Time) bool {
	return now.After(i.WindowEnd)
}

// AcceptsResponses checks if a response may still be recorded
func (i *Invite) AcceptsResponses(now time.Time) bool {
	return !i.IsExpired(now)
}
