package circle

import (
	"time"

	"github.com/google/uuid"
)

// Membership links a canonical email to a circle. At most one row per
// (circle, email); created lazily on a guest's first qualifying RSVP and
// never deleted by this service (circles are owned by longer-lived group
// management).
type Membership struct {
	ID          uuid.UUID
	CircleID    uuid.UUID
	Email       string
	DisplayName *string
	CreatedAt   time.Time
}
