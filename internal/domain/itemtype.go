package domain

import "time"

// ItemType categorizes items. Types with RequiresApproval set can only be
// reserved by moderators and admins.
type ItemType struct {
	ID               int64
	Name             string
	RequiresApproval bool
	CreatedAt        time.Time
}

// Group is a logical ownership/visibility bucket for items. Membership is
// optional; deleting a group detaches its items rather than deleting them.
type Group struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}
