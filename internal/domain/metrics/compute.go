package metrics

import (
	"sort"
	"time"

	"github.com/gatherly/rsvp-backend-go/internal/domain/invite"
)

// Median returns the median of samples using the standard even/odd rule
// (the two middle values are averaged for even counts). Returns nil for
// an empty sample set — undefined, not zero.
func Median(samples []float64) *float64 {
	if len(samples) == 0 {
		return nil
	}

	sorted := make([]float64, len(samples))
	copy(sorted, samples)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	var m float64
	if len(sorted)%2 == 1 {
		m = sorted[mid]
	} else {
		m = (sorted[mid-1] + sorted[mid]) / 2
	}
	return &m
}

// Ratio returns num/den, or nil when den is zero
func Ratio(num, den int) *float64 {
	if den == 0 {
		return nil
	}
	r := float64(num) / float64(den)
	return &r
}

// ComputeHeroFromStats folds the raw per-invite rows into the headline
// metrics at instant now.
func ComputeHeroFromStats(stats []InviteStat, windowDays int, now time.Time) HeroMetrics {
	hero := HeroMetrics{
		WindowDays:     windowDays,
		InvitesCreated: len(stats),
	}

	creators := make(map[string]struct{})
	withResponse := 0
	expired30m := 0
	eligible30m := 0
	var latencies []float64

	for _, st := range stats {
		creators[st.CreatorID] = struct{}{}

		if st.FirstResponseAt != nil {
			withResponse++
			// Negative latency means clock skew or out-of-order rows;
			// invalid sample, not a zero-minute response.
			latency := st.FirstResponseAt.Sub(st.CreatedAt).Minutes()
			if latency >= 0 {
				latencies = append(latencies, latency)
			}
		}

		inv := invite.Invite{WindowStart: st.WindowStart, WindowEnd: st.WindowEnd}
		switch invite.ClassifyEngagement(inv, st.FirstResponseAt, now) {
		case invite.EngagementMissed:
			expired30m++
			eligible30m++
		case invite.EngagementResponded:
			eligible30m++
		}
		// EngagementTooEarly invites stay out of both counts until
		// their 30-minute mark passes.
	}

	hero.NewCreators = len(creators)
	hero.InvitesWithRSVPPercent = Ratio(withResponse, len(stats))
	hero.MedianTimeToFirstResponseMinutes = Median(latencies)
	hero.InviteExpiryRate = Ratio(expired30m, eligible30m)
	return hero
}

// ComputeInviteMetricRows groups the raw per-invite rows by UTC creation
// day, counting responded and expired-without-RSVP-by-30-minutes invites
// per day.
func ComputeInviteMetricRows(stats []InviteStat, now time.Time) []InviteMetricRow {
	byDay := make(map[string]*InviteMetricRow)
	for _, st := range stats {
		key := st.CreatedAt.UTC().Format("2006-01-02")
		row, ok := byDay[key]
		if !ok {
			row = &InviteMetricRow{Day: key}
			byDay[key] = row
		}
		row.InvitesCreated++
		if st.FirstResponseAt != nil {
			row.WithResponse++
		}
		inv := invite.Invite{WindowStart: st.WindowStart, WindowEnd: st.WindowEnd}
		if invite.ClassifyEngagement(inv, st.FirstResponseAt, now) == invite.EngagementMissed {
			row.ExpiredNoRSVP30m++
		}
	}

	days := make([]string, 0, len(byDay))
	for key := range byDay {
		days = append(days, key)
	}
	sort.Strings(days)

	rows := make([]InviteMetricRow, 0, len(days))
	for _, key := range days {
		rows = append(rows, *byDay[key])
	}
	return rows
}
