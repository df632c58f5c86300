package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/gatherly/rsvp-backend-go/internal/domain/funnel"
	"github.com/gatherly/rsvp-backend-go/internal/pkg/database"
)

type eventRepositoryImpl struct {
	db *database.DB
}

// NewEventRepository creates a new session event repository instance
func NewEventRepository(db *database.DB) funnel.EventRepository {
	return &eventRepositoryImpl{db: db}
}

// Record implements funnel.EventRepository.
func (r *eventRepositoryImpl) Record(ctx context.Context, sessionID string, kind funnel.EventKind, occurredAt time.Time) (funnel.SessionEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO session_events (session_id, kind, occurred_at)
		VALUES ($1, $2, $3)
		RETURNING id, session_id, kind, occurred_at
	`

	var ev funnel.SessionEvent
	err := q.QueryRow(ctx, query, sessionID, string(kind), occurredAt).Scan(
		&ev.ID, &ev.SessionID, &ev.Kind, &ev.OccurredAt,
	)
	if err != nil {
		return funnel.SessionEvent{}, fmt.Errorf("failed to record session event: %w", err)
	}

	return ev, nil
}

// ListSince implements funnel.EventRepository.
func (r *eventRepositoryImpl) ListSince(ctx context.Context, since time.Time) ([]funnel.SessionEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, session_id, kind, occurred_at
		FROM session_events
		WHERE occurred_at >= $1
		ORDER BY occurred_at ASC
	`

	rows, err := q.Query(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("failed to list session events: %w", err)
	}
	defer rows.Close()

	var events []funnel.SessionEvent
	for rows.Next() {
		var ev funnel.SessionEvent
		if err := rows.Scan(&ev.ID, &ev.SessionID, &ev.Kind, &ev.OccurredAt); err != nil {
			return nil, fmt.Errorf("failed to scan session event: %w", err)
		}
		events = append(events, ev)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return events, nil
}
