// Package reservation implements the take/free/steal state machine on top
// of the item repository's conditional updates. Every transition is recorded
// in the history log inside the same transaction.
package reservation

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/allocbot/allocbot-backend/internal/domain"
	"github.com/allocbot/allocbot-backend/pkg/ctxutil"
)

type itemRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Item, error)
	GetByName(ctx context.Context, name string) (*domain.Item, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Item, error)
	Take(ctx context.Context, id, ownerID int64, purpose *string) (*domain.Item, error)
	Free(ctx context.Context, id int64) (*domain.Item, error)
	SetOwner(ctx context.Context, id, ownerID int64, purpose *string) (*domain.Item, error)
}

type typeRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.ItemType, error)
}

type historyLogger interface {
	Log(ctx context.Context, entry domain.HistoryEntry) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides reservation operations.
type Service struct {
	items   itemRepo
	types   typeRepo
	history historyLogger
	tx      txManager
	log     *slog.Logger
}

// NewService creates a new Reservation service.
func NewService(
	log *slog.Logger,
	items itemRepo,
	types typeRepo,
	history historyLogger,
	tx txManager,
) *Service {
	return &Service{
		items:   items,
		types:   types,
		history: history,
		tx:      tx,
		log:     log.With("service", "reservation"),
	}
}

// actor extracts the acting user and checks the permission table for the
// action.
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

// resolveItem finds an item by numeric ID or by its unique name.
func (s *Service) resolveItem(ctx context.Context, ref string) (*domain.Item, error) {
	ref = strings.TrimSpace(ref)
	if id, err := strconv.ParseInt(ref, 10, 64); err == nil {
		return s.items.GetByID(ctx, id)
	}
	return s.items.GetByName(ctx, ref)
}

// checkApproval rejects takes on approval-gated types by plain users.
// Moderators and admins pass.
func (s *Service) checkApproval(ctx context.Context, typeID int64) error {
	typ, err := s.types.GetByID(ctx, typeID)
	if err != nil {
		return err
	}
	if typ.RequiresApproval && !ctxutil.RoleFromCtx(ctx).AtLeast(domain.RoleModerator) {
		return domain.ErrPermissionDenied
	}
	return nil
}

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
