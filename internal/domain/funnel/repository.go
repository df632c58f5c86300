package funnel

import (
	"context"
	"time"
)

// EventRepository defines the interface for session event access
type EventRepository interface {
	// Record appends one interaction event to the stream
	Record(ctx context.Context, sessionID string, kind EventKind, occurredAt time.Time) (SessionEvent, error)

	// ListSince returns raw events with occurred_at >= since, oldest first
	ListSince(ctx context.Context, since time.Time) ([]SessionEvent, error)
}

// EventService defines the interface for funnel ingestion
type EventService interface {
	// Record validates and stores one interaction event
	Record(ctx context.Context, req RecordRequest) (SessionEvent, error)
}
