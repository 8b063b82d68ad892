package admin

import (
	"time"

	"github.com/google/uuid"

	"github.com/allocbot/allocbot-backend/internal/domain"
)

// DumpFormatVersion is the current export format. Import rejects dumps with
// any other version.
const DumpFormatVersion = 1

// Dump is the versioned, self-contained export of the whole registry.
// Serialization happens outside any storage transaction.
type Dump struct {
	FormatVersion int       `json:"format_version"`
	DumpID        uuid.UUID `json:"dump_id"`
	CreatedAt     time.Time `json:"created_at"`

	Types         []TypeRecord         `json:"types"`
	Groups        []GroupRecord        `json:"groups"`
	Items         []ItemRecord         `json:"items"`
	Subscriptions []SubscriptionRecord `json:"subscriptions"`
	Moderators    []int64              `json:"moderators"`
	History       []HistoryRecord      `json:"history,omitempty"`
}

// TypeRecord is an exported item type.
type TypeRecord struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	RequiresApproval bool      `json:"requires_approval"`
	CreatedAt        time.Time `json:"created_at"`
}

// GroupRecord is an exported group.
type GroupRecord struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// ItemRecord is an exported item, reservation state included.
type ItemRecord struct {
	ID          int64            `json:"id"`
	Name        string           `json:"name"`
	TypeID      int64            `json:"type_id"`
	GroupID     *int64           `json:"group_id,omitempty"`
	OwnerID     *int64           `json:"owner_id,omitempty"`
	Purpose     *string          `json:"purpose,omitempty"`
	Description *string          `json:"description,omitempty"`
	State       domain.ItemState `json:"state"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// SubscriptionRecord is an exported subscription.
type SubscriptionRecord struct {
	UserID    int64     `json:"user_id"`
	TypeID    int64     `json:"type_id"`
	CreatedAt time.Time `json:"created_at"`
}

// HistoryRecord is an exported history entry (optional in the dump).
type HistoryRecord struct {
	ID        uuid.UUID            `json:"id"`
	ActorID   int64                `json:"actor_id"`
	Action    domain.HistoryAction `json:"action"`
	ItemID    *int64               `json:"item_id,omitempty"`
	Detail    string               `json:"detail"`
	CreatedAt time.Time            `json:"created_at"`
}

func typeRecord(t domain.ItemType) TypeRecord {
	return TypeRecord{ID: t.ID, Name: t.Name, RequiresApproval: t.RequiresApproval, CreatedAt: t.CreatedAt}
}

func (r TypeRecord) toDomain() domain.ItemType {
	return domain.ItemType{ID: r.ID, Name: r.Name, RequiresApproval: r.RequiresApproval, CreatedAt: r.CreatedAt}
}

func groupRecord(g domain.Group) GroupRecord {
	return GroupRecord{ID: g.ID, Name: g.Name, CreatedAt: g.CreatedAt}
}

func (r GroupRecord) toDomain() domain.Group {
	return domain.Group{ID: r.ID, Name: r.Name, CreatedAt: r.CreatedAt}
}

func itemRecord(i domain.Item) ItemRecord {
	return ItemRecord{
		ID:          i.ID,
		Name:        i.Name,
		TypeID:      i.TypeID,
		GroupID:     i.GroupID,
		OwnerID:     i.OwnerID,
		Purpose:     i.Purpose,
		Description: i.Description,
		State:       i.State,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}

func (r ItemRecord) toDomain() domain.Item {
	return domain.Item{
		ID:          r.ID,
		Name:        r.Name,
		TypeID:      r.TypeID,
		GroupID:     r.GroupID,
		OwnerID:     r.OwnerID,
		Purpose:     r.Purpose,
		Description: r.Description,
		State:       r.State,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func subscriptionRecord(s domain.Subscription) SubscriptionRecord {
	return SubscriptionRecord{UserID: s.UserID, TypeID: s.TypeID, CreatedAt: s.CreatedAt}
}

func (r SubscriptionRecord) toDomain() domain.Subscription {
	return domain.Subscription{UserID: r.UserID, TypeID: r.TypeID, CreatedAt: r.CreatedAt}
}

func historyRecord(e domain.HistoryEntry) HistoryRecord {
	return HistoryRecord{ID: e.ID, ActorID: e.ActorID, Action: e.Action, ItemID: e.ItemID, Detail: e.Detail, CreatedAt: e.CreatedAt}
}
