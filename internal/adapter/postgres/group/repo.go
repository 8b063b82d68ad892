// Package group implements the Group repository using PostgreSQL.
package group

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/allocbot/allocbot-backend/internal/adapter/postgres"
	"github.com/allocbot/allocbot-backend/internal/domain"
)

// Repo provides group persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new group repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const createSQL = `
INSERT INTO groups (name)
VALUES ($1)
RETURNING id, name, created_at`

const createWithIDSQL = `
INSERT INTO groups (id, name, created_at)
VALUES ($1, $2, $3)
RETURNING id, name, created_at`

const getByIDSQL = `
SELECT id, name, created_at
FROM groups
WHERE id = $1`

const getByNameSQL = `
SELECT id, name, created_at
FROM groups
WHERE name = $1`

const listSQL = `
SELECT id, name, created_at
FROM groups
ORDER BY name`

const deleteSQL = `DELETE FROM groups WHERE id = $1`

// Create inserts a new group and returns the persisted row.
// Returns domain.ErrAlreadyExists when the name is taken.
func (r *Repo) Create(ctx context.Context, name string) (*domain.Group, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var g domain.Group
	if err := q.QueryRow(ctx, createSQL, name).Scan(&g.ID, &g.Name, &g.CreatedAt); err != nil {
		return nil, postgres.MapError(err, "group", name)
	}

	return &g, nil
}

// CreateWithID inserts a group preserving its original ID (import only).
func (r *Repo) CreateWithID(ctx context.Context, g domain.Group) (*domain.Group, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var out domain.Group
	err := q.QueryRow(ctx, createWithIDSQL, g.ID, g.Name, g.CreatedAt).
		Scan(&out.ID, &out.Name, &out.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "group", g.ID)
	}

	return &out, nil
}

// GetByID returns a group by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Group, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var g domain.Group
	if err := q.QueryRow(ctx, getByIDSQL, id).Scan(&g.ID, &g.Name, &g.CreatedAt); err != nil {
		return nil, postgres.MapError(err, "group", id)
	}

	return &g, nil
}

// GetByName returns a group by its unique name.
func (r *Repo) GetByName(ctx context.Context, name string) (*domain.Group, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var g domain.Group
	if err := q.QueryRow(ctx, getByNameSQL, name).Scan(&g.ID, &g.Name, &g.CreatedAt); err != nil {
		return nil, postgres.MapError(err, "group", name)
	}

	return &g, nil
}

// List returns all groups ordered by name.
func (r *Repo) List(ctx context.Context) ([]domain.Group, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listSQL)
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	defer rows.Close()

	groups := []domain.Group{}
	for rows.Next() {
		var g domain.Group
		if err := rows.Scan(&g.ID, &g.Name, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan group: %w", err)
		}
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}

	return groups, nil
}

// Delete removes a group. Items that referenced it are detached (group_id
// set to NULL by the foreign key), not deleted.
// Returns domain.ErrNotFound when the group does not exist.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "group", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("group %d: %w", id, domain.ErrNotFound)
	}

	return nil
}
