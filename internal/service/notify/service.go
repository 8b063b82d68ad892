// Package notify implements subscription management and notification
// fan-out. The fan-out is a pure computation over stored subscriptions:
// the result is a recipient/text list, delivery belongs to the transport.
package notify

import (
	"context"
	"log/slog"

	"github.com/allocbot/allocbot-backend/internal/domain"
	"github.com/allocbot/allocbot-backend/pkg/ctxutil"
)

type subscriptionRepo interface {
	Subscribe(ctx context.Context, userID, typeID int64) error
	Unsubscribe(ctx context.Context, userID, typeID int64) error
	ListByUser(ctx context.Context, userID int64) ([]domain.Subscription, error)
	RecipientsByType(ctx context.Context, typeID int64) ([]int64, error)
}

type typeRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.ItemType, error)
}

// Service provides subscription and notification operations.
type Service struct {
	subs              subscriptionRepo
	types             typeRepo
	notifyStolenOwner bool
	log               *slog.Logger
}

// NewService creates a new Notify service. notifyStolenOwner adds the
// dispossessed owner to the recipients of every steal.
func NewService(
	log *slog.Logger,
	subs subscriptionRepo,
	types typeRepo,
	notifyStolenOwner bool,
) *Service {
	return &Service{
		subs:              subs,
		types:             types,
		notifyStolenOwner: notifyStolenOwner,
		log:               log.With("service", "notify"),
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
