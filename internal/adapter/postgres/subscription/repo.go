// Package subscription implements the Subscription repository using
// PostgreSQL. Subscribe/Unsubscribe are idempotent set operations.
package subscription

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/allocbot/allocbot-backend/internal/adapter/postgres"
	"github.com/allocbot/allocbot-backend/internal/domain"
)

// Repo provides subscription persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new subscription repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const subscribeSQL = `
INSERT INTO subscriptions (user_id, type_id)
VALUES ($1, $2)
ON CONFLICT (user_id, type_id) DO NOTHING`

const subscribeWithTimeSQL = `
INSERT INTO subscriptions (user_id, type_id, created_at)
VALUES ($1, $2, $3)
ON CONFLICT (user_id, type_id) DO NOTHING`

const unsubscribeSQL = `
DELETE FROM subscriptions
WHERE user_id = $1 AND type_id = $2`

const listByUserSQL = `
SELECT user_id, type_id, created_at
FROM subscriptions
WHERE user_id = $1
ORDER BY type_id`

const listAllSQL = `
SELECT user_id, type_id, created_at
FROM subscriptions
ORDER BY user_id, type_id`

const recipientsByTypeSQL = `
SELECT DISTINCT user_id
FROM subscriptions
WHERE type_id = $1
ORDER BY user_id`

// Subscribe adds a (user, type) pair. Idempotent: re-subscribing affects
// zero rows. Returns domain.ErrConflict when the type does not exist.
func (r *Repo) Subscribe(ctx context.Context, userID, typeID int64) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, subscribeSQL, userID, typeID); err != nil {
		return postgres.MapError(err, "subscription", typeID)
	}

	return nil
}

// Restore re-inserts a subscription preserving its timestamp (import only).
func (r *Repo) Restore(ctx context.Context, sub domain.Subscription) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, subscribeWithTimeSQL, sub.UserID, sub.TypeID, sub.CreatedAt); err != nil {
		return postgres.MapError(err, "subscription", sub.TypeID)
	}

	return nil
}

// Unsubscribe removes a (user, type) pair. Idempotent: removing an absent
// pair is not an error.
func (r *Repo) Unsubscribe(ctx context.Context, userID, typeID int64) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, unsubscribeSQL, userID, typeID); err != nil {
		return postgres.MapError(err, "subscription", typeID)
	}

	return nil
}

// ListByUser returns a user's subscriptions ordered by type ID.
func (r *Repo) ListByUser(ctx context.Context, userID int64) ([]domain.Subscription, error) {
	return r.list(ctx, listByUserSQL, userID)
}

// ListAll returns every subscription (export).
func (r *Repo) ListAll(ctx context.Context) ([]domain.Subscription, error) {
	return r.list(ctx, listAllSQL)
}

func (r *Repo) list(ctx context.Context, sql string, args ...any) ([]domain.Subscription, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list subscriptions: %w", err)
	}
	defer rows.Close()

	subs := []domain.Subscription{}
	for rows.Next() {
		var s domain.Subscription
		if err := rows.Scan(&s.UserID, &s.TypeID, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan subscription: %w", err)
		}
		subs = append(subs, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list subscriptions: %w", err)
	}

	return subs, nil
}

// RecipientsByType returns the deduplicated, ordered set of user IDs
// subscribed to the given type. The fan-out computation is deterministic:
// same subscriptions in, same recipient list out.
func (r *Repo) RecipientsByType(ctx context.Context, typeID int64) ([]int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, recipientsByTypeSQL, typeID)
	if err != nil {
		return nil, fmt.Errorf("recipients by type: %w", err)
	}
	defer rows.Close()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan recipient: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("recipients by type: %w", err)
	}

	return ids, nil
}
