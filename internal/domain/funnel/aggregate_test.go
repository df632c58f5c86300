package funnel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayKey_UsesUTC(t *testing.T) {
	t.Parallel()
	loc := time.FixedZone("UTC+7", 7*60*60)
	// 02:00 on March 2nd in UTC+7 is still March 1st in UTC
	local := time.Date(2026, 3, 2, 2, 0, 0, 0, loc)

	assert.Equal(t, "2026-03-01", DayKey(local))
}

func TestAggregateDay_DistinctSessions(t *testing.T) {
	t.Parallel()
	day := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	events := []SessionEvent{
		{SessionID: "s1", Kind: KindLandingView, OccurredAt: day.Add(1 * time.Hour)},
		{SessionID: "s1", Kind: KindLandingView, OccurredAt: day.Add(2 * time.Hour)},
		{SessionID: "s2", Kind: KindLandingView, OccurredAt: day.Add(3 * time.Hour)},
		{SessionID: "s1", Kind: KindCreateClick, OccurredAt: day.Add(2 * time.Hour)},
		{SessionID: "s1", Kind: KindInviteCreated, OccurredAt: day.Add(2 * time.Hour)},
		{SessionID: "s1", Kind: KindInviteCreated, OccurredAt: day.Add(4 * time.Hour)},
	}

	row := AggregateDay(day, events)

	// Repeated landings from the same session count once
	assert.Equal(t, 2, row.LandingSessions)
	assert.Equal(t, 1, row.CreateClicks)
	// Created invites are raw counts, not distinct sessions
	assert.Equal(t, 2, row.InvitesCreated)

	require.NotNil(t, row.ConversionRate)
	assert.Equal(t, 0.5, *row.ConversionRate)
}

func TestAggregateDay_NoLandingsMeansUndefinedRate(t *testing.T) {
	t.Parallel()
	day := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	events := []SessionEvent{
		{SessionID: "s1", Kind: KindCreateClick, OccurredAt: day.Add(time.Hour)},
	}

	row := AggregateDay(day, events)
	assert.Equal(t, 0, row.LandingSessions)
	assert.Equal(t, 1, row.CreateClicks)
	assert.Nil(t, row.ConversionRate)
}

func TestAggregateRange_SplitsAndOrdersDays(t *testing.T) {
	t.Parallel()
	day1 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	events := []SessionEvent{
		{SessionID: "s1", Kind: KindLandingView, OccurredAt: day2},
		{SessionID: "s2", Kind: KindLandingView, OccurredAt: day1},
		{SessionID: "s2", Kind: KindCreateClick, OccurredAt: day1.Add(time.Minute)},
	}

	rows := AggregateRange(events)
	require.Len(t, rows, 2)

	assert.Equal(t, "2026-03-01", rows[0].Day)
	assert.Equal(t, 1, rows[0].LandingSessions)
	assert.Equal(t, 1, rows[0].CreateClicks)

	assert.Equal(t, "2026-03-02", rows[1].Day)
	assert.Equal(t, 1, rows[1].LandingSessions)
	assert.Equal(t, 0, rows[1].CreateClicks)
}

func TestEventKind_IsValid(t *testing.T) {
	t.Parallel()
	assert.True(t, KindLandingView.IsValid())
	assert.True(t, KindCreateClick.IsValid())
	assert.True(t, KindInviteCreated.IsValid())
	assert.False(t, EventKind("page_scroll").IsValid())
	assert.False(t, EventKind("").IsValid())
}
