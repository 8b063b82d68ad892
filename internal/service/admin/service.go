// Package admin implements the administrative operations: moderator
// management, export/import of the whole registry and the destructive reset.
package admin

import (
	"context"
	"log/slog"

	"github.com/allocbot/allocbot-backend/internal/domain"
	"github.com/allocbot/allocbot-backend/pkg/ctxutil"
)

type itemRepo interface {
	ListAll(ctx context.Context) ([]domain.Item, error)
	CreateWithID(ctx context.Context, it domain.Item) (*domain.Item, error)
}

type typeRepo interface {
	List(ctx context.Context) ([]domain.ItemType, error)
	CreateWithID(ctx context.Context, t domain.ItemType) (*domain.ItemType, error)
}

type groupRepo interface {
	List(ctx context.Context) ([]domain.Group, error)
	CreateWithID(ctx context.Context, g domain.Group) (*domain.Group, error)
}

type subscriptionRepo interface {
	ListAll(ctx context.Context) ([]domain.Subscription, error)
	Restore(ctx context.Context, sub domain.Subscription) error
}

type moderatorRepo interface {
	Add(ctx context.Context, userID, addedBy int64) (added bool, err error)
	Remove(ctx context.Context, userID int64) error
	List(ctx context.Context) ([]int64, error)
}

type historyRepo interface {
	Log(ctx context.Context, entry domain.HistoryEntry) error
	Query(ctx context.Context, f domain.HistoryFilter) ([]domain.HistoryEntry, error)
	TruncateAll(ctx context.Context) error
}

type maintenanceRepo interface {
	TruncateRegistry(ctx context.Context) error
	SyncSequences(ctx context.Context) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides administrative operations.
type Service struct {
	items       itemRepo
	types       typeRepo
	groups      groupRepo
	subs        subscriptionRepo
	moderators  moderatorRepo
	history     historyRepo
	maintenance maintenanceRepo
	tx          txManager
	log         *slog.Logger
}

// NewService creates a new Admin service.
func NewService(
	log *slog.Logger,
	items itemRepo,
	types typeRepo,
	groups groupRepo,
	subs subscriptionRepo,
	moderators moderatorRepo,
	history historyRepo,
	maintenance maintenanceRepo,
	tx txManager,
) *Service {
	return &Service{
		items:       items,
		types:       types,
		groups:      groups,
		subs:        subs,
		moderators:  moderators,
		history:     history,
		maintenance: maintenance,
		tx:          tx,
		log:         log.With("service", "admin"),
	}
}

func actor(ctx context.Context, action domain.Action) (int64, error) {
	actorID, ok := ctxutil.ActorIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrPermissionDenied
	}
	if !domain.Allowed(ctxutil.RoleFromCtx(ctx), action) {
		return 0, domain.ErrPermissionDenied
	}
	return actorID, nil
}
