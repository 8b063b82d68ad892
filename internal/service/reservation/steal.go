package reservation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/allocbot/allocbot-backend/internal/domain"
)

// StealResult reports a completed steal. PreviousOwner feeds the
// notification fan-out: the dispossessed user learns what happened.
type StealResult struct {
	Item          *domain.Item
	PreviousOwner int64
}

// Steal takes over a taken item from its current holder. The row lock
// serializes concurrent steals: last writer wins, every attempt that reaches
// the lock is recorded. Stealing a free item or your own item is a Conflict.
func (s *Service) Steal(ctx context.Context, input StealInput) (*StealResult, error) {
	actorID, err := actor(ctx, domain.ActionSteal)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	item, err := s.resolveItem(ctx, input.ItemRef)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}

	if err := s.checkApproval(ctx, item.TypeID); err != nil {
		return nil, err
	}

	purpose := trimOrNil(&input.Purpose)

	var (
		stolen        *domain.Item
		previousOwner int64
	)
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		locked, lockErr := s.items.GetByIDForUpdate(txCtx, item.ID)
		if lockErr != nil {
			return fmt.Errorf("lock item: %w", lockErr)
		}

		if locked.IsFree() {
			return fmt.Errorf("item %q is free, take it instead: %w", locked.Name, domain.ErrConflict)
		}
		if *locked.OwnerID == actorID {
			return fmt.Errorf("item %q is already yours: %w", locked.Name, domain.ErrConflict)
		}
		previousOwner = *locked.OwnerID

		var setErr error
		stolen, setErr = s.items.SetOwner(txCtx, locked.ID, actorID, purpose)
		if setErr != nil {
			return fmt.Errorf("steal item: %w", setErr)
		}

		detail := fmt.Sprintf("item %q stolen from user %d", locked.Name, previousOwner)
		if purpose != nil {
			detail = fmt.Sprintf("item %q stolen from user %d: %s", locked.Name, previousOwner, *purpose)
		}
		logErr := s.history.Log(txCtx, domain.HistoryEntry{
			ActorID: actorID,
			Action:  domain.HistoryActionSteal,
			ItemID:  &item.ID,
			Detail:  detail,
		})
		if logErr != nil {
			return fmt.Errorf("history log: %w", logErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "item stolen",
		slog.Int64("actor_id", actorID),
		slog.Int64("item_id", stolen.ID),
		slog.Int64("previous_owner", previousOwner),
	)

	return &StealResult{Item: stolen, PreviousOwner: previousOwner}, nil
}
