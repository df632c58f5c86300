package invite

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestClassify_ActiveWhileWindowOpen(t *testing.T) {
	t.Parallel()
	start := time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC)
	inv := Invite{WindowStart: start, WindowEnd: start.Add(2 * time.Hour)}

	assert.Equal(t, ClassActive, Classify(inv, nil, start.Add(time.Hour)))
	// Exactly at window end the invite is still active
	assert.Equal(t, ClassActive, Classify(inv, nil, inv.WindowEnd))
}

func TestClassify_ExpiredSplitsOnResponses(t *testing.T) {
	t.Parallel()
	start := time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC)
	inv := Invite{WindowStart: start, WindowEnd: start.Add(2 * time.Hour)}
	after := inv.WindowEnd.Add(time.Minute)

	assert.Equal(t, ClassExpiredWithoutResponse, Classify(inv, nil, after))

	first := start.Add(45 * time.Minute)
	assert.Equal(t, ClassExpiredWithResponse, Classify(inv, timePtr(first), after))
}

func TestClassifyEngagement_TooEarlyBeforeMark(t *testing.T) {
	t.Parallel()
	start := time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC)
	inv := Invite{WindowStart: start, WindowEnd: start.Add(2 * time.Hour)}

	// 15 minutes in, no response yet: not counted either way
	assert.Equal(t, EngagementTooEarly, ClassifyEngagement(inv, nil, start.Add(15*time.Minute)))
}

func TestClassifyEngagement_MissedAfterMark(t *testing.T) {
	t.Parallel()
	start := time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC)
	inv := Invite{WindowStart: start, WindowEnd: start.Add(2 * time.Hour)}

	// 31 minutes in with no response
	assert.Equal(t, EngagementMissed, ClassifyEngagement(inv, nil, start.Add(31*time.Minute)))

	// A response that only arrived after the mark does not rescue it
	late := start.Add(40 * time.Minute)
	assert.Equal(t, EngagementMissed, ClassifyEngagement(inv, timePtr(late), start.Add(time.Hour)))
}

func TestClassifyEngagement_RespondedByMark(t *testing.T) {
	t.Parallel()
	start := time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC)
	inv := Invite{WindowStart: start, WindowEnd: start.Add(2 * time.Hour)}

	early := start.Add(10 * time.Minute)
	assert.Equal(t, EngagementResponded, ClassifyEngagement(inv, timePtr(early), start.Add(time.Hour)))

	// Exactly at the 30-minute mark still counts as responded
	atMark := start.Add(ResponseUrgencyWindow)
	assert.Equal(t, EngagementResponded, ClassifyEngagement(inv, timePtr(atMark), start.Add(time.Hour)))
}

func TestInvite_AcceptsResponses(t *testing.T) {
	t.Parallel()
	start := time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC)
	inv := Invite{WindowStart: start, WindowEnd: start.Add(2 * time.Hour)}

	assert.True(t, inv.AcceptsResponses(inv.WindowEnd))
	assert.False(t, inv.AcceptsResponses(inv.WindowEnd.Add(time.Second)))
}
