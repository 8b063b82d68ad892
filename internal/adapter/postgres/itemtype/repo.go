// Package itemtype implements the ItemType repository using PostgreSQL.
package itemtype

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/allocbot/allocbot-backend/internal/adapter/postgres"
	"github.com/allocbot/allocbot-backend/internal/domain"
)

// Repo provides item type persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new item type repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const createSQL = `
INSERT INTO item_types (name, requires_approval)
VALUES ($1, $2)
RETURNING id, name, requires_approval, created_at`

const createWithIDSQL = `
INSERT INTO item_types (id, name, requires_approval, created_at)
VALUES ($1, $2, $3, $4)
RETURNING id, name, requires_approval, created_at`

const getByIDSQL = `
SELECT id, name, requires_approval, created_at
FROM item_types
WHERE id = $1`

const getByNameSQL = `
SELECT id, name, requires_approval, created_at
FROM item_types
WHERE name = $1`

const listSQL = `
SELECT id, name, requires_approval, created_at
FROM item_types
ORDER BY name`

const deleteSQL = `DELETE FROM item_types WHERE id = $1`

// Create inserts a new item type and returns the persisted row.
// Returns domain.ErrAlreadyExists when the name is taken.
func (r *Repo) Create(ctx context.Context, name string, requiresApproval bool) (*domain.ItemType, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var t domain.ItemType
	err := q.QueryRow(ctx, createSQL, name, requiresApproval).
		Scan(&t.ID, &t.Name, &t.RequiresApproval, &t.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "item_type", name)
	}

	return &t, nil
}

// CreateWithID inserts an item type preserving its original ID.
// Used only by import; sequences are resynced afterwards.
func (r *Repo) CreateWithID(ctx context.Context, t domain.ItemType) (*domain.ItemType, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var out domain.ItemType
	err := q.QueryRow(ctx, createWithIDSQL, t.ID, t.Name, t.RequiresApproval, t.CreatedAt).
		Scan(&out.ID, &out.Name, &out.RequiresApproval, &out.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "item_type", t.ID)
	}

	return &out, nil
}

// GetByID returns an item type by primary key.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.ItemType, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var t domain.ItemType
	err := q.QueryRow(ctx, getByIDSQL, id).
		Scan(&t.ID, &t.Name, &t.RequiresApproval, &t.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "item_type", id)
	}

	return &t, nil
}

// GetByName returns an item type by its unique name.
func (r *Repo) GetByName(ctx context.Context, name string) (*domain.ItemType, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var t domain.ItemType
	err := q.QueryRow(ctx, getByNameSQL, name).
		Scan(&t.ID, &t.Name, &t.RequiresApproval, &t.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "item_type", name)
	}

	return &t, nil
}

// List returns all item types ordered by name.
// Returns an empty slice (not nil) when there are none.
func (r *Repo) List(ctx context.Context) ([]domain.ItemType, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listSQL)
	if err != nil {
		return nil, fmt.Errorf("list item_types: %w", err)
	}
	defer rows.Close()

	types := []domain.ItemType{}
	for rows.Next() {
		var t domain.ItemType
		if err := rows.Scan(&t.ID, &t.Name, &t.RequiresApproval, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan item_type: %w", err)
		}
		types = append(types, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list item_types: %w", err)
	}

	return types, nil
}

// Delete removes an item type.
// Returns domain.ErrConflict while items still reference the type (the
// foreign key is RESTRICT on purpose) and domain.ErrNotFound when it does
// not exist.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "item_type", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("item_type %d: %w", id, domain.ErrNotFound)
	}

	return nil
}
