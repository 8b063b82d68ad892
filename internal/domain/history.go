package domain

import (
	"time"

	"github.com/google/uuid"
)

// HistoryEntry is one append-only record of a state-changing action.
// ItemID is a weak reference: the item may be deleted later, the entry
// survives.
type HistoryEntry struct {
	ID        uuid.UUID
	ActorID   int64
	Action    HistoryAction
	ItemID    *int64
	Detail    string
	CreatedAt time.Time
}

// HistoryFilter defines parameters for querying the history log.
// Results are ordered by created_at ascending; unbounded queries are paged
// by the caller via Limit/Offset.
type HistoryFilter struct {
	ActorID *int64
	Action  *HistoryAction
	ItemID  *int64
	From    *time.Time
	To      *time.Time
	Limit   int
	Offset  int
}
