package testhelper

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/allocbot/allocbot-backend/internal/domain"
)

// seq makes seeded names unique across parallel tests sharing one database.
var seq atomic.Int64

func nextSuffix() int64 { return seq.Add(1) }

// SeedType inserts an item type with a unique name and returns it.
func SeedType(t *testing.T, pool *pgxpool.Pool) domain.ItemType {
	t.Helper()
	return SeedTypeNamed(t, pool, fmt.Sprintf("type-%d", nextSuffix()), false)
}

// SeedTypeNamed inserts an item type with the given name and approval flag.
func SeedTypeNamed(t *testing.T, pool *pgxpool.Pool, name string, requiresApproval bool) domain.ItemType {
	t.Helper()

	var typ domain.ItemType
	err := pool.QueryRow(context.Background(),
		`INSERT INTO item_types (name, requires_approval) VALUES ($1, $2)
		 RETURNING id, name, requires_approval, created_at`,
		name, requiresApproval,
	).Scan(&typ.ID, &typ.Name, &typ.RequiresApproval, &typ.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: seed item_type: %v", err)
	}

	return typ
}

// SeedGroup inserts a group with a unique name and returns it.
func SeedGroup(t *testing.T, pool *pgxpool.Pool) domain.Group {
	t.Helper()

	var g domain.Group
	err := pool.QueryRow(context.Background(),
		`INSERT INTO groups (name) VALUES ($1) RETURNING id, name, created_at`,
		fmt.Sprintf("group-%d", nextSuffix()),
	).Scan(&g.ID, &g.Name, &g.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: seed group: %v", err)
	}

	return g
}

// SeedItem inserts a free item of the given type and returns it.
func SeedItem(t *testing.T, pool *pgxpool.Pool, typeID int64) domain.Item {
	t.Helper()

	var it domain.Item
	err := pool.QueryRow(context.Background(),
		`INSERT INTO items (name, type_id) VALUES ($1, $2)
		 RETURNING id, name, type_id, group_id, owner_id, purpose, description, state, created_at, updated_at`,
		fmt.Sprintf("item-%d", nextSuffix()), typeID,
	).Scan(&it.ID, &it.Name, &it.TypeID, &it.GroupID, &it.OwnerID,
		&it.Purpose, &it.Description, &it.State, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: seed item: %v", err)
	}

	return it
}

// SeedTakenItem inserts an item already held by ownerID and returns it.
func SeedTakenItem(t *testing.T, pool *pgxpool.Pool, typeID, ownerID int64, purpose string) domain.Item {
	t.Helper()

	var it domain.Item
	err := pool.QueryRow(context.Background(),
		`INSERT INTO items (name, type_id, owner_id, purpose, state)
		 VALUES ($1, $2, $3, $4, 'TAKEN')
		 RETURNING id, name, type_id, group_id, owner_id, purpose, description, state, created_at, updated_at`,
		fmt.Sprintf("item-%d", nextSuffix()), typeID, ownerID, purpose,
	).Scan(&it.ID, &it.Name, &it.TypeID, &it.GroupID, &it.OwnerID,
		&it.Purpose, &it.Description, &it.State, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: seed taken item: %v", err)
	}

	return it
}

// SeedSubscription subscribes a user to a type.
func SeedSubscription(t *testing.T, pool *pgxpool.Pool, userID, typeID int64) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO subscriptions (user_id, type_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		userID, typeID,
	)
	if err != nil {
		t.Fatalf("testhelper: seed subscription: %v", err)
	}
}

// SeedModerator adds a user to the moderator set.
func SeedModerator(t *testing.T, pool *pgxpool.Pool, userID int64) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO moderators (user_id, added_by) VALUES ($1, $1) ON CONFLICT DO NOTHING`,
		userID,
	)
	if err != nil {
		t.Fatalf("testhelper: seed moderator: %v", err)
	}
}
