// Package history exposes the audit log to commands: the full, filterable
// view for admins and a personal view for everyone.
package history

import (
	"context"
	"log/slog"

	"github.com/allocbot/allocbot-backend/internal/domain"
	"github.com/allocbot/allocbot-backend/pkg/ctxutil"
)

type historyRepo interface {
	Query(ctx context.Context, f domain.HistoryFilter) ([]domain.HistoryEntry, error)
}

// Service provides history query operations.
type Service struct {
	history historyRepo
	log     *slog.Logger
}

// NewService creates a new History service.
func NewService(log *slog.Logger, history historyRepo) *Service {
	return &Service{
		history: history,
		log:     log.With("service", "history"),
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
