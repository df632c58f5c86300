package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/gatherly/rsvp-backend-go/internal/domain/metrics"
	"github.com/gatherly/rsvp-backend-go/internal/pkg/database"
)

type metricsRepositoryImpl struct {
	db *database.DB
}

// NewMetricsRepository creates a new metrics repository instance
func NewMetricsRepository(db *database.DB) metrics.MetricsRepository {
	return &metricsRepositoryImpl{db: db}
}

// ListInviteStats implements metrics.MetricsRepository.
// One row per in-window invite with the earliest ledger response time;
// the classification itself happens in the domain layer.
func (r *metricsRepositoryImpl) ListInviteStats(ctx context.Context, since time.Time) ([]metrics.InviteStat, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			i.id, i.creator_id, i.created_at, i.window_start, i.window_end,
			MIN(rv.created_at) AS first_response_at
		FROM invites i
		LEFT JOIN rsvps rv ON rv.invite_id = i.id
		WHERE i.created_at >= $1
		GROUP BY i.id, i.creator_id, i.created_at, i.window_start, i.window_end
		ORDER BY i.created_at ASC
	`

	rows, err := q.Query(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("failed to list invite stats: %w", err)
	}
	defer rows.Close()

	var stats []metrics.InviteStat
	for rows.Next() {
		var st metrics.InviteStat
		err := rows.Scan(
			&st.InviteID, &st.CreatorID, &st.CreatedAt,
			&st.WindowStart, &st.WindowEnd, &st.FirstResponseAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invite stat: %w", err)
		}
		stats = append(stats, st)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return stats, nil
}

// ListRSVPBreakdown implements metrics.MetricsRepository.
func (r *metricsRepositoryImpl) ListRSVPBreakdown(ctx context.Context, since time.Time) ([]metrics.RSVPBreakdownRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			TO_CHAR(created_at AT TIME ZONE 'UTC', 'YYYY-MM-DD') AS day,
			COALESCE(SUM(CASE WHEN state = 'join' THEN 1 ELSE 0 END), 0) AS join_count,
			COALESCE(SUM(CASE WHEN state = 'maybe' THEN 1 ELSE 0 END), 0) AS maybe_count,
			COALESCE(SUM(CASE WHEN state = 'decline' THEN 1 ELSE 0 END), 0) AS decline_count,
			COUNT(*) AS total
		FROM rsvps
		WHERE created_at >= $1
		GROUP BY day
		ORDER BY day ASC
	`

	rows, err := q.Query(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("failed to list rsvp breakdown: %w", err)
	}
	defer rows.Close()

	var breakdown []metrics.RSVPBreakdownRow
	for rows.Next() {
		var row metrics.RSVPBreakdownRow
		if err := rows.Scan(&row.Day, &row.Join, &row.Maybe, &row.Decline, &row.Total); err != nil {
			return nil, fmt.Errorf("failed to scan rsvp breakdown row: %w", err)
		}
		breakdown = append(breakdown, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return breakdown, nil
}
