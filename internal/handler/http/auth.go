package http

import (
	"encoding/json"
	"net/http"

	"github.com/gatherly/rsvp-backend-go/internal/handler/http/response"
	"github.com/gatherly/rsvp-backend-go/internal/pkg/jwt"
	"github.com/gatherly/rsvp-backend-go/internal/pkg/validator"
)

type AuthHandler interface {
	// Development only - mints an access token without an identity
	// provider roundtrip. Never mounted outside the dev environment.
	MintToken(w http.ResponseWriter, r *http.Request)
}

type authHandlerImpl struct {
	jwtService jwt.Service
}

func NewAuthHandler(jwtService jwt.Service) AuthHandler {
	return &authHandlerImpl{
		jwtService: jwtService,
	}
}

type mintTokenRequest struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

func (req *mintTokenRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(req.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}

	if !validator.IsValidEmail(req.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email format is invalid",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// MintToken implements AuthHandler
func (h *authHandlerImpl) MintToken(w http.ResponseWriter, r *http.Request) {
	var req mintTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	token, expiresAt, err := h.jwtService.GenerateAccessToken(req.UserID, req.Email, req.Name)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{
		"access_token": token,
		"expires_at":   expiresAt,
	})
}
