// Package item implements the Item repository using PostgreSQL, including
// the conditional updates the reservation engine relies on. State checks are
// baked into the UPDATE statements so a lost race surfaces as zero affected
// rows instead of a silent overwrite.
package item

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/allocbot/allocbot-backend/internal/adapter/postgres"
	"github.com/allocbot/allocbot-backend/internal/domain"
)

// Repo provides item persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new item repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const itemColumns = `id, name, type_id, group_id, owner_id, purpose, description, state, created_at, updated_at`

const createSQL = `
INSERT INTO items (name, type_id, group_id, description)
VALUES ($1, $2, $3, $4)
RETURNING ` + itemColumns

const createWithIDSQL = `
INSERT INTO items (id, name, type_id, group_id, owner_id, purpose, description, state, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING ` + itemColumns

const getByIDSQL = `
SELECT ` + itemColumns + `
FROM items
WHERE id = $1`

const getByIDForUpdateSQL = getByIDSQL + `
FOR UPDATE`

const getByNameSQL = `
SELECT ` + itemColumns + `
FROM items
WHERE name = $1`

const takeSQL = `
UPDATE items
SET owner_id = $2, purpose = $3, state = 'TAKEN', updated_at = now()
WHERE id = $1 AND state = 'FREE'
RETURNING ` + itemColumns

const freeSQL = `
UPDATE items
SET owner_id = NULL, purpose = NULL, state = 'FREE', updated_at = now()
WHERE id = $1 AND state = 'TAKEN'
RETURNING ` + itemColumns

const setOwnerSQL = `
UPDATE items
SET owner_id = $2, purpose = $3, state = 'TAKEN', updated_at = now()
WHERE id = $1 AND state = 'TAKEN'
RETURNING ` + itemColumns

const assignSQL = `
UPDATE items
SET type_id = COALESCE($2, type_id),
    group_id = CASE WHEN $3 THEN $4 ELSE group_id END,
    updated_at = now()
WHERE id = $1
RETURNING ` + itemColumns

const listAllSQL = `
SELECT ` + itemColumns + `
FROM items
ORDER BY id`

const deleteSQL = `DELETE FROM items WHERE id = $1`

func scanItem(row pgx.Row) (*domain.Item, error) {
	var i domain.Item
	err := row.Scan(
		&i.ID, &i.Name, &i.TypeID, &i.GroupID, &i.OwnerID,
		&i.Purpose, &i.Description, &i.State, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

// Create inserts a new free item and returns the persisted row.
// Returns domain.ErrAlreadyExists when the name is taken and
// domain.ErrConflict when the referenced type or group does not exist.
func (r *Repo) Create(ctx context.Context, name string, typeID int64, groupID *int64, description *string) (*domain.Item, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	it, err := scanItem(q.QueryRow(ctx, createSQL, name, typeID, groupID, description))
	if err != nil {
		return nil, postgres.MapError(err, "item", name)
	}

	return it, nil
}

// CreateWithID inserts an item preserving its original ID and full state
// (import only).
func (r *Repo) CreateWithID(ctx context.Context, it domain.Item) (*domain.Item, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	out, err := scanItem(q.QueryRow(ctx, createWithIDSQL,
		it.ID, it.Name, it.TypeID, it.GroupID, it.OwnerID,
		it.Purpose, it.Description, it.State, it.CreatedAt, it.UpdatedAt,
	))
	if err != nil {
		return nil, postgres.MapError(err, "item", it.ID)
	}

	return out, nil
}

// GetByID returns an item by primary key.
// Returns domain.ErrNotFound if the item does not exist.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	it, err := scanItem(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "item", id)
	}

	return it, nil
}

// GetByIDForUpdate returns an item by primary key and locks the row for the
// remainder of the transaction. Concurrent steals serialize on this lock.
// Only valid inside RunInTx.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Item, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	it, err := scanItem(q.QueryRow(ctx, getByIDForUpdateSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "item", id)
	}

	return it, nil
}

// GetByName returns an item by its unique name.
func (r *Repo) GetByName(ctx context.Context, name string) (*domain.Item, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	it, err := scanItem(q.QueryRow(ctx, getByNameSQL, name))
	if err != nil {
		return nil, postgres.MapError(err, "item", name)
	}

	return it, nil
}

// List returns items matching the filter ordered by name, paged by
// limit/offset.
// Returns an empty slice (not nil) when nothing matches.
func (r *Repo) List(ctx context.Context, f domain.ItemFilter) ([]domain.Item, error) {
	normalize(&f)

	builder := sq.Select(
		"id", "name", "type_id", "group_id", "owner_id",
		"purpose", "description", "state", "created_at", "updated_at",
	).
		From("items").
		OrderBy("name ASC").
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset)).
		PlaceholderFormat(sq.Dollar)

	if f.GroupID != nil {
		builder = builder.Where(sq.Eq{"group_id": *f.GroupID})
	}
	if f.TypeID != nil {
		builder = builder.Where(sq.Eq{"type_id": *f.TypeID})
	}
	if f.OwnerID != nil {
		builder = builder.Where(sq.Eq{"owner_id": *f.OwnerID})
	}
	if f.OnlyFree {
		builder = builder.Where(sq.Eq{"state": domain.ItemStateFree})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	items := []domain.Item{}
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, *it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}

	return items, nil
}

// ListAll returns every item ordered by ID. Export only: the command-facing
// listing goes through List with its paging bounds.
func (r *Repo) ListAll(ctx context.Context) ([]domain.Item, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listAllSQL)
	if err != nil {
		return nil, fmt.Errorf("list all items: %w", err)
	}
	defer rows.Close()

	items := []domain.Item{}
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, *it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list all items: %w", err)
	}

	return items, nil
}

// Count returns the number of items matching the filter (ignoring paging).
func (r *Repo) Count(ctx context.Context, f domain.ItemFilter) (int, error) {
	builder := sq.Select("count(*)").From("items").PlaceholderFormat(sq.Dollar)

	if f.GroupID != nil {
		builder = builder.Where(sq.Eq{"group_id": *f.GroupID})
	}
	if f.TypeID != nil {
		builder = builder.Where(sq.Eq{"type_id": *f.TypeID})
	}
	if f.OwnerID != nil {
		builder = builder.Where(sq.Eq{"owner_id": *f.OwnerID})
	}
	if f.OnlyFree {
		builder = builder.Where(sq.Eq{"state": domain.ItemStateFree})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := q.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count items: %w", err)
	}

	return count, nil
}

// CountByType returns the number of items referencing the given type.
func (r *Repo) CountByType(ctx context.Context, typeID int64) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	err := q.QueryRow(ctx, `SELECT count(*) FROM items WHERE type_id = $1`, typeID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count items by type: %w", err)
	}

	return count, nil
}

// Take marks a free item as taken by ownerID. The FREE state check is part
// of the UPDATE, so the loser of a concurrent take gets zero rows back,
// surfacing as domain.ErrNotFound here; the service re-reads the row to
// report Conflict vs NotFound.
func (r *Repo) Take(ctx context.Context, id, ownerID int64, purpose *string) (*domain.Item, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	it, err := scanItem(q.QueryRow(ctx, takeSQL, id, ownerID, purpose))
	if err != nil {
		return nil, postgres.MapError(err, "item", id)
	}

	return it, nil
}

// Free releases a taken item. Same zero-row semantics as Take.
func (r *Repo) Free(ctx context.Context, id int64) (*domain.Item, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	it, err := scanItem(q.QueryRow(ctx, freeSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "item", id)
	}

	return it, nil
}

// SetOwner overwrites the owner and purpose of a taken item (steal and
// forced assignment). Affects zero rows when the item is free.
func (r *Repo) SetOwner(ctx context.Context, id, ownerID int64, purpose *string) (*domain.Item, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	it, err := scanItem(q.QueryRow(ctx, setOwnerSQL, id, ownerID, purpose))
	if err != nil {
		return nil, postgres.MapError(err, "item", id)
	}

	return it, nil
}

// AssignTypeGroup re-assigns the item's type and/or group. typeID nil keeps
// the current type; setGroup false keeps the current group, setGroup true
// with groupID nil detaches the item from its group.
func (r *Repo) AssignTypeGroup(ctx context.Context, id int64, typeID *int64, setGroup bool, groupID *int64) (*domain.Item, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	it, err := scanItem(q.QueryRow(ctx, assignSQL, id, typeID, setGroup, groupID))
	if err != nil {
		return nil, postgres.MapError(err, "item", id)
	}

	return it, nil
}

// Delete removes an item.
// Returns domain.ErrNotFound when the item does not exist.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "item", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("item %d: %w", id, domain.ErrNotFound)
	}

	return nil
}
