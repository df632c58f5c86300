package funnel

import (
	"context"
	"fmt"
	"time"

	"github.com/gatherly/rsvp-backend-go/internal/domain/funnel"
)

type EventServiceImpl struct {
	funnel.EventRepository
}

// NewEventService creates a new funnel event service instance
func NewEventService(eventRepo funnel.EventRepository) funnel.EventService {
	return &EventServiceImpl{
		EventRepository: eventRepo,
	}
}

// Record implements funnel.EventService.
func (s *EventServiceImpl) Record(ctx context.Context, req funnel.RecordRequest) (funnel.SessionEvent, error) {
	if err := req.Validate(); err != nil {
		return funnel.SessionEvent{}, err
	}

	ev, err := s.EventRepository.Record(ctx, req.SessionID, funnel.EventKind(req.Kind), time.Now().UTC())
	if err != nil {
		return funnel.SessionEvent{}, fmt.Errorf("failed to record session event: %w", err)
	}

	return ev, nil
}
