package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/gatherly/rsvp-backend-go/internal/domain/funnel"
	"github.com/gatherly/rsvp-backend-go/internal/domain/metrics"
	"golang.org/x/sync/errgroup"
)

type MetricsServiceImpl struct {
	metrics.MetricsRepository
	eventRepository funnel.EventRepository
}

// NewMetricsService creates a new metrics service instance
func NewMetricsService(metricsRepo metrics.MetricsRepository, eventRepo funnel.EventRepository) metrics.MetricsService {
	return &MetricsServiceImpl{
		MetricsRepository: metricsRepo,
		eventRepository:   eventRepo,
	}
}

// ComputeHero implements metrics.MetricsService.
func (s *MetricsServiceImpl) ComputeHero(ctx context.Context, windowDays int) (metrics.HeroMetrics, error) {
	now := time.Now().UTC()
	since := now.AddDate(0, 0, -windowDays)

	stats, err := s.MetricsRepository.ListInviteStats(ctx, since)
	if err != nil {
		return metrics.HeroMetrics{}, fmt.Errorf("failed to load invite stats: %w", err)
	}

	return metrics.ComputeHeroFromStats(stats, windowDays, now), nil
}

// ComputeDailyTables implements metrics.MetricsService.
// The three breakdowns are independent reads, so they run in parallel.
func (s *MetricsServiceImpl) ComputeDailyTables(ctx context.Context, windowDays int) (metrics.DailyTables, error) {
	now := time.Now().UTC()
	since := now.AddDate(0, 0, -windowDays)

	var (
		stats     []metrics.InviteStat
		events    []funnel.SessionEvent
		breakdown []metrics.RSVPBreakdownRow
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		stats, err = s.MetricsRepository.ListInviteStats(gctx, since)
		if err != nil {
			return fmt.Errorf("failed to load invite stats: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		events, err = s.eventRepository.ListSince(gctx, since)
		if err != nil {
			return fmt.Errorf("failed to load session events: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		breakdown, err = s.MetricsRepository.ListRSVPBreakdown(gctx, since)
		if err != nil {
			return fmt.Errorf("failed to load rsvp breakdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return metrics.DailyTables{}, err
	}

	return metrics.DailyTables{
		WindowDays:    windowDays,
		Funnel:        funnel.AggregateRange(events),
		InviteMetrics: metrics.ComputeInviteMetricRows(stats, now),
		RSVPBreakdown: breakdown,
	}, nil
}
