package domain

import "time"

// Item is a trackable shared resource with a reservation state.
//
// Invariant: OwnerID is set iff State == ItemStateTaken. Purpose may only be
// set while the item is taken.
type Item struct {
	ID          int64
	Name        string
	TypeID      int64
	GroupID     *int64
	OwnerID     *int64
	Purpose     *string
	Description *string
	State       ItemState
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsFree reports whether the item is available to take.
func (i *Item) IsFree() bool { return i.State == ItemStateFree }

// OwnershipConsistent reports whether the state/owner invariant holds.
func (i *Item) OwnershipConsistent() bool {
	if i.State == ItemStateTaken {
		return i.OwnerID != nil
	}
	return i.OwnerID == nil
}
