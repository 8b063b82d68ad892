package notify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/allocbot/allocbot-backend/internal/domain"
)

// SubscribeInput holds the parameters for subscribing to an item type.
type SubscribeInput struct {
	TypeID int64
}

// Validate checks all fields and collects all errors.
func (i SubscribeInput) Validate() error {
	if i.TypeID <= 0 {
		return domain.NewValidationError("type_id", "required")
	}
	return nil
}

// Subscribe registers the actor for change notifications on an item type.
// Idempotent: subscribing twice is not an error.
func (s *Service) Subscribe(ctx context.Context, input SubscribeInput) error {
	actorID, err := actor(ctx, domain.ActionSubscribe)
	if err != nil {
		return err
	}

	if err := input.Validate(); err != nil {
		return err
	}

	if _, err := s.types.GetByID(ctx, input.TypeID); err != nil {
		return fmt.Errorf("get item_type: %w", err)
	}

	if err := s.subs.Subscribe(ctx, actorID, input.TypeID); err != nil {
		return fmt.Errorf("subscribe: %w", err)
	}

	s.log.InfoContext(ctx, "subscribed",
		slog.Int64("actor_id", actorID),
		slog.Int64("type_id", input.TypeID),
	)

	return nil
}

// Unsubscribe removes the actor's subscription on an item type. Idempotent.
func (s *Service) Unsubscribe(ctx context.Context, input SubscribeInput) error {
	actorID, err := actor(ctx, domain.ActionUnsubscribe)
	if err != nil {
		return err
	}

	if err := input.Validate(); err != nil {
		return err
	}

	if err := s.subs.Unsubscribe(ctx, actorID, input.TypeID); err != nil {
		return fmt.Errorf("unsubscribe: %w", err)
	}

	s.log.InfoContext(ctx, "unsubscribed",
		slog.Int64("actor_id", actorID),
		slog.Int64("type_id", input.TypeID),
	)

	return nil
}

// Subscriptions returns the actor's subscriptions ordered by type ID.
func (s *Service) Subscriptions(ctx context.Context) ([]domain.Subscription, error) {
	actorID, err := actor(ctx, domain.ActionSubscribe)
	if err != nil {
		return nil, err
	}

	subs, err := s.subs.ListByUser(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("list subscriptions: %w", err)
	}

	return subs, nil
}
