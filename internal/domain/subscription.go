package domain

import "time"

// Subscription is a user's opt-in to change notifications for one item type.
// The (UserID, TypeID) pair is unique.
type Subscription struct {
	UserID    int64
	TypeID    int64
	CreatedAt time.Time
}
