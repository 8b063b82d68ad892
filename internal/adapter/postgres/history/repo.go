// Package history implements the append-only history log repository using
// PostgreSQL. There is no update or single-row delete; the only destructive
// operation is TruncateAll, reserved for the administrative reset.
package history

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/allocbot/allocbot-backend/internal/adapter/postgres"
	"github.com/allocbot/allocbot-backend/internal/domain"
)

// Repo provides history log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new history repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const createSQL = `
INSERT INTO history (id, actor_id, action, item_id, detail)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, actor_id, action, item_id, detail, created_at`

// Record appends a history entry. The ID is generated here when the caller
// leaves it zero.
func (r *Repo) Record(ctx context.Context, entry domain.HistoryEntry) (domain.HistoryEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	id := entry.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	var out domain.HistoryEntry
	err := q.QueryRow(ctx, createSQL, id, entry.ActorID, entry.Action, entry.ItemID, entry.Detail).
		Scan(&out.ID, &out.ActorID, &out.Action, &out.ItemID, &out.Detail, &out.CreatedAt)
	if err != nil {
		return domain.HistoryEntry{}, postgres.MapError(err, "history_entry", id)
	}

	return out, nil
}

// Log appends a history entry without returning it. Satisfies the
// historyLogger interfaces of the service packages.
func (r *Repo) Log(ctx context.Context, entry domain.HistoryEntry) error {
	_, err := r.Record(ctx, entry)
	return err
}

// Query returns history entries matching the filter, ordered by created_at
// ascending (ties broken by id for a stable page sequence). Unbounded
// queries are paged by the caller via Limit/Offset.
func (r *Repo) Query(ctx context.Context, f domain.HistoryFilter) ([]domain.HistoryEntry, error) {
	builder := sq.Select("id", "actor_id", "action", "item_id", "detail", "created_at").
		From("history").
		OrderBy("created_at ASC", "id ASC").
		PlaceholderFormat(sq.Dollar)

	if f.ActorID != nil {
		builder = builder.Where(sq.Eq{"actor_id": *f.ActorID})
	}
	if f.Action != nil {
		builder = builder.Where(sq.Eq{"action": *f.Action})
	}
	if f.ItemID != nil {
		builder = builder.Where(sq.Eq{"item_id": *f.ItemID})
	}
	if f.From != nil {
		builder = builder.Where(sq.GtOrEq{"created_at": *f.From})
	}
	if f.To != nil {
		builder = builder.Where(sq.Lt{"created_at": *f.To})
	}
	if f.Limit > 0 {
		builder = builder.Limit(uint64(f.Limit))
	}
	if f.Offset > 0 {
		builder = builder.Offset(uint64(f.Offset))
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build history query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	entries := []domain.HistoryEntry{}
	for rows.Next() {
		var e domain.HistoryEntry
		if err := rows.Scan(&e.ID, &e.ActorID, &e.Action, &e.ItemID, &e.Detail, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan history_entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}

	return entries, nil
}

// TruncateAll erases the whole log. Only the administrative reset calls
// this, inside the same transaction that truncates the registry.
func (r *Repo) TruncateAll(ctx context.Context) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, `TRUNCATE history`); err != nil {
		return fmt.Errorf("truncate history: %w", err)
	}

	return nil
}
