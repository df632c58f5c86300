package funnel

import "github.com/gatherly/rsvp-backend-go/internal/pkg/validator"

// RecordRequest - POST /events
type RecordRequest struct {
	SessionID string `json:"session_id"`
	Kind      string `json:"kind"`
}

func (r *RecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.SessionID) {
		errs = append(errs, validator.ValidationError{
			Field:   "session_id",
			Message: "session_id is required",
		})
	}

	if !EventKind(r.Kind).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "kind",
			Message: "kind must be one of landing_view, create_click, invite_created",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
