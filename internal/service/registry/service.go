// Package registry implements item, type and group management: the catalog
// side of the system, as opposed to the reservation state machine.
package registry

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/allocbot/allocbot-backend/internal/domain"
	"github.com/allocbot/allocbot-backend/pkg/ctxutil"
)

type itemRepo interface {
	Create(ctx context.Context, name string, typeID int64, groupID *int64, description *string) (*domain.Item, error)
	GetByID(ctx context.Context, id int64) (*domain.Item, error)
	GetByName(ctx context.Context, name string) (*domain.Item, error)
	List(ctx context.Context, f domain.ItemFilter) ([]domain.Item, error)
	Count(ctx context.Context, f domain.ItemFilter) (int, error)
	CountByType(ctx context.Context, typeID int64) (int, error)
	AssignTypeGroup(ctx context.Context, id int64, typeID *int64, setGroup bool, groupID *int64) (*domain.Item, error)
	Delete(ctx context.Context, id int64) error
}

type typeRepo interface {
	Create(ctx context.Context, name string, requiresApproval bool) (*domain.ItemType, error)
	GetByID(ctx context.Context, id int64) (*domain.ItemType, error)
	List(ctx context.Context) ([]domain.ItemType, error)
	Delete(ctx context.Context, id int64) error
}

type groupRepo interface {
	Create(ctx context.Context, name string) (*domain.Group, error)
	GetByID(ctx context.Context, id int64) (*domain.Group, error)
	List(ctx context.Context) ([]domain.Group, error)
	Delete(ctx context.Context, id int64) error
}

type historyLogger interface {
	Log(ctx context.Context, entry domain.HistoryEntry) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides registry management operations.
type Service struct {
	items   itemRepo
	types   typeRepo
	groups  groupRepo
	history historyLogger
	tx      txManager
	log     *slog.Logger
}

// NewService creates a new Registry service.
func NewService(
	log *slog.Logger,
	items itemRepo,
	types typeRepo,
	groups groupRepo,
	history historyLogger,
	tx txManager,
) *Service {
	return &Service{
		items:   items,
		types:   types,
		groups:  groups,
		history: history,
		tx:      tx,
		log:     log.With("service", "registry"),
	}
}

// actor extracts the acting user and checks the permission table for the
// action. The role was resolved by the router and travels in the context.
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

// resolveItem finds an item by numeric ID or by its unique name. Commands
// address items either way.
func (s *Service) resolveItem(ctx context.Context, ref string) (*domain.Item, error) {
	ref = strings.TrimSpace(ref)
	if id, err := strconv.ParseInt(ref, 10, 64); err == nil {
		return s.items.GetByID(ctx, id)
	}
	return s.items.GetByName(ctx, ref)
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
