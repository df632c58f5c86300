package invite

import "github.com/gatherly/rsvp-backend-go/internal/pkg/validator"

// CreateRequest - POST /invites
type CreateRequest struct {
	Title     string   `json:"title"`
	When      string   `json:"when"` // free text, resolved by the window parser
	CircleIDs []string `json:"circle_ids,omitempty"`
	SessionID string   `json:"-"` // from X-Session-ID header, feeds the funnel
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}

	if validator.IsEmpty(r.When) {
		errs = append(errs, validator.ValidationError{
			Field:   "when",
			Message: "when is required",
		})
	}

	for _, id := range r.CircleIDs {
		if !validator.IsValidUUID(id) {
			errs = append(errs, validator.ValidationError{
				Field:   "circle_ids",
				Message: "circle_ids must be valid UUIDs",
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ResponseCounts is the aggregate respondent tally for one invite.
// A respondent who changed state is counted once, under the latest state.
type ResponseCounts struct {
	Join        int `json:"join"`
	Maybe       int `json:"maybe"`
	Decline     int `json:"decline"`
	Respondents int `json:"respondents"`
}

// InviteResponse - GET /invites/{id}
type InviteResponse struct {
	ID             string         `json:"id"`
	Title          string         `json:"title"`
	WindowStart    string         `json:"window_start"`
	WindowEnd      string         `json:"window_end"`
	CreatedAt      string         `json:"created_at"`
	Classification string         `json:"classification"`
	Counts         ResponseCounts `json:"counts"`
}

// ListItemResponse - GET /invites (creator's own invites)
type ListItemResponse struct {
	ID             string         `json:"id"`
	Title          string         `json:"title"`
	WindowStart    string         `json:"window_start"`
	WindowEnd      string         `json:"window_end"`
	CreatedAt      string         `json:"created_at"`
	Classification string         `json:"classification"`
	Counts         ResponseCounts `json:"counts"`
}
