// Package moderator implements the moderator-set repository using PostgreSQL.
// The set backs role resolution and is re-read on every command, never cached.
package moderator

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/allocbot/allocbot-backend/internal/adapter/postgres"
	"github.com/allocbot/allocbot-backend/internal/domain"
)

// Repo provides moderator-set persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new moderator repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const addSQL = `
INSERT INTO moderators (user_id, added_by)
VALUES ($1, $2)
ON CONFLICT (user_id) DO NOTHING`

const removeSQL = `DELETE FROM moderators WHERE user_id = $1`

const isModeratorSQL = `SELECT EXISTS (SELECT 1 FROM moderators WHERE user_id = $1)`

const listSQL = `SELECT user_id FROM moderators ORDER BY user_id`

// Add grants moderator to a user. Idempotent: adding an existing moderator
// affects zero rows and reports added=false.
func (r *Repo) Add(ctx context.Context, userID, addedBy int64) (added bool, err error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, addSQL, userID, addedBy)
	if err != nil {
		return false, postgres.MapError(err, "moderator", userID)
	}

	return tag.RowsAffected() > 0, nil
}

// Remove revokes moderator from a user.
// Returns domain.ErrNotFound when the user was not a moderator.
func (r *Repo) Remove(ctx context.Context, userID int64) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, removeSQL, userID)
	if err != nil {
		return postgres.MapError(err, "moderator", userID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("moderator %d: %w", userID, domain.ErrNotFound)
	}

	return nil
}

// IsModerator reports whether the user is in the moderator set.
func (r *Repo) IsModerator(ctx context.Context, userID int64) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	if err := q.QueryRow(ctx, isModeratorSQL, userID).Scan(&exists); err != nil {
		return false, fmt.Errorf("moderator lookup %d: %w", userID, err)
	}

	return exists, nil
}

// List returns all moderator user IDs in ascending order.
func (r *Repo) List(ctx context.Context) ([]int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listSQL)
	if err != nil {
		return nil, fmt.Errorf("list moderators: %w", err)
	}
	defer rows.Close()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan moderator: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list moderators: %w", err)
	}

	return ids, nil
}
