package rsvp

import (
	"strings"

	"github.com/gatherly/rsvp-backend-go/internal/pkg/validator"
)

// SubmitRequest - POST /invites/{id}/rsvps
// Guests send email (+ optional name); authenticated respondents only
// send state, their identity comes from verified claims.
type SubmitRequest struct {
	InviteID string `json:"-"` // from chi URL param
	Email    string `json:"email,omitempty"`
	Name     string `json:"name,omitempty"`
	State    string `json:"state"`
}

// Validate checks the fields a guest submission must carry. The email
// syntax itself is re-checked by the identity resolver after
// canonicalization.
func (r *SubmitRequest) Validate(authenticated bool) error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.InviteID) {
		errs = append(errs, validator.ValidationError{
			Field:   "invite_id",
			Message: "invite id must be a valid UUID",
		})
	}

	if !State(r.State).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "state",
			Message: "state must be one of join, maybe, decline",
		})
	}

	if !authenticated {
		// Surrounding whitespace is canonicalized away by the resolver,
		// so it must not fail the syntax check here
		email := strings.TrimSpace(r.Email)
		if email == "" {
			errs = append(errs, validator.ValidationError{
				Field:   "email",
				Message: "email is required",
			})
		} else if !validator.IsValidEmail(email) {
			errs = append(errs, validator.ValidationError{
				Field:   "email",
				Message: "email format is invalid",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Ack - response submission acknowledgement
type Ack struct {
	InviteID  string `json:"invite_id"`
	Email     string `json:"email"`
	State     string `json:"state"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// RosterEntry - GET /invites/{id}/roster (creator only)
type RosterEntry struct {
	State       string `json:"state"`
	DisplayName string `json:"display_name,omitempty"`
	Email       string `json:"email"`
}
