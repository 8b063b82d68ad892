// Package maintenance bundles the destructive whole-database operations
// used by the administrative reset and by import. Nothing else in the code
// base is allowed to truncate tables.
package maintenance

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/allocbot/allocbot-backend/internal/adapter/postgres"
)

// Repo provides database-wide maintenance operations.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new maintenance repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const truncateRegistrySQL = `
TRUNCATE items, groups, item_types, subscriptions, moderators
RESTART IDENTITY CASCADE`

// syncSequenceStatements realign the serial sequences after an import
// inserted rows with explicit IDs. One statement per table: pgx's extended
// protocol does not accept multi-statement strings.
var syncSequenceStatements = []string{
	`SELECT setval(pg_get_serial_sequence('item_types', 'id'), COALESCE(max(id), 0) + 1, false) FROM item_types`,
	`SELECT setval(pg_get_serial_sequence('groups', 'id'), COALESCE(max(id), 0) + 1, false) FROM groups`,
	`SELECT setval(pg_get_serial_sequence('items', 'id'), COALESCE(max(id), 0) + 1, false) FROM items`,
}

// TruncateRegistry erases all registry tables (items, groups, types,
// subscriptions, moderators) and restarts their ID sequences. History is
// truncated separately so the terminal Reset entry lands in a fresh log.
func (r *Repo) TruncateRegistry(ctx context.Context) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, truncateRegistrySQL); err != nil {
		return fmt.Errorf("truncate registry: %w", err)
	}

	return nil
}

// SyncSequences realigns serial sequences with the highest imported IDs so
// rows created after an import do not collide.
func (r *Repo) SyncSequences(ctx context.Context) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	for _, stmt := range syncSequenceStatements {
		if _, err := q.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("sync sequences: %w", err)
		}
	}

	return nil
}
