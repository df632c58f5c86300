package rsvp

import (
	"time"

	"github.com/google/uuid"
)

// State represents a respondent's latest answer
type State string

const (
	StateJoin    State = "join"
	StateMaybe   State = "maybe"
	StateDecline State = "decline"
)

// IsValid reports whether s is one of the supported response states
func (s State) IsValid() bool {
	switch s {
	case StateJoin, StateMaybe, StateDecline:
		return true
	}
	return false
}

// RSVP is one logical response: at most one row per (invite, canonical
// email). CreatedAt is the first-ever submission time and never moves;
// UpdatedAt and State always reflect the most recent submission.
type RSVP struct {
	ID          uuid.UUID
	InviteID    uuid.UUID
	Email       string
	DisplayName string
	State       State
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
