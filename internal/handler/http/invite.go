package http

import (
	"encoding/json"
	"net/http"

	"github.com/gatherly/rsvp-backend-go/internal/domain/invite"
	"github.com/gatherly/rsvp-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
)

type InviteHandler interface {
	// Authenticated endpoints
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	// Public endpoint - invite details for the landing page
	Get(w http.ResponseWriter, r *http.Request)
}

type inviteHandlerImpl struct {
	inviteService invite.InviteService
}

func NewInviteHandler(inviteService invite.InviteService) InviteHandler {
	return &inviteHandlerImpl{
		inviteService: inviteService,
	}
}

// Create implements InviteHandler - publishes a new invite
func (h *inviteHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	_, claims, _ := jwtauth.FromContext(r.Context())

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		response.Unauthorized(w, "User ID not found in token")
		return
	}

	email, ok := claims["email"].(string)
	if !ok || email == "" {
		response.Unauthorized(w, "Email not found in token")
		return
	}

	var req invite.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.SessionID = r.Header.Get("X-Session-ID")

	result, err := h.inviteService.Create(r.Context(), req, userID, email)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Invite created successfully", result)
}

// Get implements InviteHandler - public invite details
func (h *inviteHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.inviteService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements InviteHandler - lists the caller's invites
func (h *inviteHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	_, claims, _ := jwtauth.FromContext(r.Context())

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		response.Unauthorized(w, "User ID not found in token")
		return
	}

	results, err := h.inviteService.ListMine(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// Delete implements InviteHandler - removes an invite, creator only
func (h *inviteHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	_, claims, _ := jwtauth.FromContext(r.Context())

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		response.Unauthorized(w, "User ID not found in token")
		return
	}

	if err := h.inviteService.Delete(r.Context(), id, userID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Invite deleted successfully", nil)
}
