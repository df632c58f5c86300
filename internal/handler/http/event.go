package http

import (
	"encoding/json"
	"net/http"

	"github.com/gatherly/rsvp-backend-go/internal/domain/funnel"
	"github.com/gatherly/rsvp-backend-go/internal/handler/http/response"
)

type EventHandler interface {
	// Public endpoint - anonymous session instrumentation
	Record(w http.ResponseWriter, r *http.Request)
}

type eventHandlerImpl struct {
	eventService funnel.EventService
}

func NewEventHandler(eventService funnel.EventService) EventHandler {
	return &eventHandlerImpl{
		eventService: eventService,
	}
}

// Record implements EventHandler - appends one funnel event
func (h *eventHandlerImpl) Record(w http.ResponseWriter, r *http.Request) {
	var req funnel.RecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	ev, err := h.eventService.Record(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Event recorded", map[string]string{
		"id": ev.ID.String(),
	})
}
