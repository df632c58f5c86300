package funnel

import (
	"sort"
	"time"
)

// Row is the daily conversion funnel: distinct sessions that landed,
// distinct sessions that clicked create, and invites actually created.
// ConversionRate is create-click sessions over landing sessions and is
// nil, not zero, when there were no landing sessions that day.
type Row struct {
	Day             string   `json:"day"` // YYYY-MM-DD in UTC
	LandingSessions int      `json:"landing_sessions"`
	CreateClicks    int      `json:"create_clicks"`
	InvitesCreated  int      `json:"invites_created"`
	ConversionRate  *float64 `json:"conversion_rate"`
}

// DayKey formats t as the UTC calendar day it belongs to. All funnel
// grouping uses UTC so cross-day comparisons are deterministic
// regardless of each client's local zone.
func DayKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// AggregateDay computes the funnel row for a single UTC calendar day.
// Events outside that day are ignored.
func AggregateDay(day time.Time, events []SessionEvent) Row {
	key := DayKey(day)

	landing := make(map[string]struct{})
	clicks := make(map[string]struct{})
	created := 0

	for _, ev := range events {
		if DayKey(ev.OccurredAt) != key {
			continue
		}
		switch ev.Kind {
		case KindLandingView:
			landing[ev.SessionID] = struct{}{}
		case KindCreateClick:
			clicks[ev.SessionID] = struct{}{}
		case KindInviteCreated:
			created++
		}
	}

	row := Row{
		Day:             key,
		LandingSessions: len(landing),
		CreateClicks:    len(clicks),
		InvitesCreated:  created,
	}
	if row.LandingSessions > 0 {
		rate := float64(row.CreateClicks) / float64(row.LandingSessions)
		row.ConversionRate = &rate
	}
	return row
}

// AggregateRange computes one row per UTC day that has at least one
// event, oldest day first.
func AggregateRange(events []SessionEvent) []Row {
	byDay := make(map[string][]SessionEvent)
	for _, ev := range events {
		key := DayKey(ev.OccurredAt)
		byDay[key] = append(byDay[key], ev)
	}

	days := make([]string, 0, len(byDay))
	for key := range byDay {
		days = append(days, key)
	}
	sort.Strings(days)

	rows := make([]Row, 0, len(days))
	for _, key := range days {
		day, _ := time.Parse("2006-01-02", key)
		rows = append(rows, AggregateDay(day, byDay[key]))
	}
	return rows
}
