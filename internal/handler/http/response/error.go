package response

import (
	"errors"
	"net/http"

	"github.com/gatherly/rsvp-backend-go/internal/domain/invite"
	"github.com/gatherly/rsvp-backend-go/internal/domain/rsvp"
	"github.com/gatherly/rsvp-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Invite domain errors
	case errors.Is(err, invite.ErrInviteNotFound):
		NotFound(w, "Invite not found")
	case errors.Is(err, invite.ErrInviteExpired):
		Gone(w, "Invite window has ended")
	case errors.Is(err, invite.ErrNotInviteCreator):
		Forbidden(w, "Only the invite creator may perform this action")
	case errors.Is(err, invite.ErrWindowParseFailed):
		// Unparseable window text is a validation failure, never a
		// defaulted window
		ValidationError(w, map[string]string{
			"when": "could not understand the invite time window",
		})
	case errors.Is(err, invite.ErrInvalidWindow):
		BadRequest(w, "Invite window end must be after its start", nil)

	// Response ledger errors
	case errors.Is(err, rsvp.ErrRSVPNotFound):
		NotFound(w, "Response not found")
	case errors.Is(err, rsvp.ErrInvalidState):
		BadRequest(w, "Unsupported response state", nil)
	case errors.Is(err, rsvp.ErrRosterDenied):
		Forbidden(w, "Only the invite creator may view the roster")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
