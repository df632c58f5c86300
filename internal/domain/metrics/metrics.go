package metrics

import (
	"context"
	"time"

	"github.com/gatherly/rsvp-backend-go/internal/domain/funnel"
	"github.com/google/uuid"
)

// HeroMetrics is the headline engagement block for the dashboard.
// Ratios are in [0,1]; nil means undefined (no data), never 0.
type HeroMetrics struct {
	WindowDays                       int      `json:"window_days"`
	InvitesCreated                   int      `json:"invites_created"`
	NewCreators                      int      `json:"new_creators"`
	InvitesWithRSVPPercent           *float64 `json:"invites_with_rsvp_percent"`
	MedianTimeToFirstResponseMinutes *float64 `json:"median_time_to_first_response_minutes"`
	InviteExpiryRate                 *float64 `json:"invite_expiry_rate"`
}

// InviteMetricRow is the per-day invite engagement breakdown
type InviteMetricRow struct {
	Day              string `json:"day"`
	InvitesCreated   int    `json:"invites_created"`
	WithResponse     int    `json:"with_response"`
	ExpiredNoRSVP30m int    `json:"expired_no_rsvp_30m"`
}

// RSVPBreakdownRow is the per-day response state breakdown
type RSVPBreakdownRow struct {
	Day     string `json:"day"`
	Join    int    `json:"join"`
	Maybe   int    `json:"maybe"`
	Decline int    `json:"decline"`
	Total   int    `json:"total"`
}

// DailyTables bundles the three daily breakdowns for the dashboard
type DailyTables struct {
	WindowDays    int                `json:"window_days"`
	Funnel        []funnel.Row       `json:"funnel"`
	InviteMetrics []InviteMetricRow  `json:"invite_metrics"`
	RSVPBreakdown []RSVPBreakdownRow `json:"rsvp_breakdown"`
}

// InviteStat is the raw per-invite row the rollup classifies: the invite
// window, its creation time, and the earliest ledger response (nil when
// none exists).
type InviteStat struct {
	InviteID        uuid.UUID
	CreatorID       string
	CreatedAt       time.Time
	WindowStart     time.Time
	WindowEnd       time.Time
	FirstResponseAt *time.Time
}

// MetricsRepository defines the raw reads the rollup is computed from
type MetricsRepository interface {
	// ListInviteStats returns one row per invite created at or after
	// since, with its earliest response timestamp
	ListInviteStats(ctx context.Context, since time.Time) ([]InviteStat, error)

	// ListRSVPBreakdown tallies responses per UTC day and state for
	// rows created at or after since
	ListRSVPBreakdown(ctx context.Context, since time.Time) ([]RSVPBreakdownRow, error)
}

// MetricsService defines the interface for the engagement rollup
type MetricsService interface {
	// ComputeHero computes the headline metrics over a rolling window
	ComputeHero(ctx context.Context, windowDays int) (HeroMetrics, error)

	// ComputeDailyTables computes the per-day breakdown tables
	ComputeDailyTables(ctx context.Context, windowDays int) (DailyTables, error)
}
