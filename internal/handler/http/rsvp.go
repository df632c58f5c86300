package http

import (
	"encoding/json"
	"net/http"

	"github.com/gatherly/rsvp-backend-go/internal/domain/identity"
	"github.com/gatherly/rsvp-backend-go/internal/domain/rsvp"
	"github.com/gatherly/rsvp-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
)

type RSVPHandler interface {
	// Public endpoint - guests and signed-in users share it
	Submit(w http.ResponseWriter, r *http.Request)
	// Authenticated endpoint - invite creator only
	Roster(w http.ResponseWriter, r *http.Request)
}

type rsvpHandlerImpl struct {
	rsvpService rsvp.RSVPService
}

func NewRSVPHandler(rsvpService rsvp.RSVPService) RSVPHandler {
	return &rsvpHandlerImpl{
		rsvpService: rsvpService,
	}
}

// Submit implements RSVPHandler - records a response to an invite.
// A valid access token makes the submission authenticated; otherwise
// the body must carry a guest email.
func (h *rsvpHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	var req rsvp.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.InviteID = chi.URLParam(r, "id")

	respondent := resolveRespondent(r, req)

	result, err := h.rsvpService.Submit(r.Context(), req, respondent)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Response recorded", result)
}

// Roster implements RSVPHandler - full response list, creator only
func (h *rsvpHandlerImpl) Roster(w http.ResponseWriter, r *http.Request) {
	_, claims, _ := jwtauth.FromContext(r.Context())

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		response.Unauthorized(w, "User ID not found in token")
		return
	}

	results, err := h.rsvpService.Roster(r.Context(), chi.URLParam(r, "id"), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// resolveRespondent picks the identity key-space for a submission.
// Tokens are optional here, so decode failures fall back to guest.
func resolveRespondent(r *http.Request, req rsvp.SubmitRequest) identity.Respondent {
	token, claims, err := jwtauth.FromContext(r.Context())
	if err != nil || token == nil {
		return identity.Respondent{Guest: &identity.Guest{Email: req.Email, Name: req.Name}}
	}

	tokenType, _ := claims["type"].(string)
	userID, _ := claims["user_id"].(string)
	email, _ := claims["email"].(string)
	if tokenType != "access" || userID == "" || email == "" {
		return identity.Respondent{Guest: &identity.Guest{Email: req.Email, Name: req.Name}}
	}

	name, _ := claims["name"].(string)
	return identity.Respondent{Account: &identity.Account{
		UserID: userID,
		Email:  email,
		Name:   name,
	}}
}
