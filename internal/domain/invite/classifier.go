package invite

import "time"

// Classification is the lifecycle state of an invite relative to its
// window end and the earliest recorded response.
type Classification string

const (
	ClassActive                 Classification = "active"
	ClassExpiredWithResponse    Classification = "expired_with_response"
	ClassExpiredWithoutResponse Classification = "expired_without_response"
)

// EngagementStatus classifies an invite against the 30-minutes-from-open
// mark. Urgency is measured from window start, not window end: hard
// expiry is about when the invite closes, engagement is about how fast
// people respond once it opens.
type EngagementStatus string

const (
	// EngagementTooEarly: the 30-minute mark has not passed and no
	// response exists yet. Excluded from the expiry-rate metric entirely.
	EngagementTooEarly EngagementStatus = "too_early"
	// EngagementResponded: a response was recorded by the 30-minute mark.
	EngagementResponded EngagementStatus = "responded"
	// EngagementMissed: the 30-minute mark passed with no response by it.
	EngagementMissed EngagementStatus = "missed"
)

// ResponseUrgencyWindow is how long after the window opens an invite has
// to collect its first response before counting as expired for the
// engagement metric.
const ResponseUrgencyWindow = 30 * time.Minute

// Classify reports the lifecycle state of an invite at instant now.
// firstResponseAt is the earliest ledger created timestamp, nil when the
// invite has no responses. Any recorded response counts: a row can only
// exist if it was accepted before the window closed.
func Classify(inv Invite, firstResponseAt *time.Time, now time.Time) Classification {
	if !now.After(inv.WindowEnd) {
		return ClassActive
	}
	if firstResponseAt != nil {
		return ClassExpiredWithResponse
	}
	return ClassExpiredWithoutResponse
}

// ClassifyEngagement reports whether the invite collected a response by
// the 30-minute mark after its window opened.
func ClassifyEngagement(inv Invite, firstResponseAt *time.Time, now time.Time) EngagementStatus {
	mark := inv.WindowStart.Add(ResponseUrgencyWindow)
	if firstResponseAt != nil && !firstResponseAt.After(mark) {
		return EngagementResponded
	}
	if now.After(mark) {
		return EngagementMissed
	}
	return EngagementTooEarly
}
