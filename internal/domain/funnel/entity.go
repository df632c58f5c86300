package funnel

import (
	"time"

	"github.com/google/uuid"
)

// EventKind is a funnel interaction step
type EventKind string

const (
	KindLandingView   EventKind = "landing_view"
	KindCreateClick   EventKind = "create_click"
	KindInviteCreated EventKind = "invite_created"
)

// IsValid reports whether k is a known funnel event kind
func (k EventKind) IsValid() bool {
	switch k {
	case KindLandingView, KindCreateClick, KindInviteCreated:
		return true
	}
	return false
}

// SessionEvent is one raw interaction row in the event stream
type SessionEvent struct {
	ID         uuid.UUID
	SessionID  string
	Kind       EventKind
	OccurredAt time.Time
}
