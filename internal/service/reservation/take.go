package reservation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/allocbot/allocbot-backend/internal/domain"
)

// Take reserves a free item for the actor. The state check is part of the
// UPDATE statement, so two concurrent takes cannot both win: the loser's
// update matches zero rows and the re-read reports who holds the item.
// Types flagged requires_approval are takeable by Moderator and above only.
func (s *Service) Take(ctx context.Context, input TakeInput) (*domain.Item, error) {
	actorID, err := actor(ctx, domain.ActionTake)
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

	var taken *domain.Item
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var takeErr error
		taken, takeErr = s.items.Take(txCtx, item.ID, actorID, purpose)
		if takeErr != nil {
			if errors.Is(takeErr, domain.ErrNotFound) {
				return s.takeLossReason(txCtx, item.ID)
			}
			return fmt.Errorf("take item: %w", takeErr)
		}

		detail := fmt.Sprintf("item %q taken", item.Name)
		if purpose != nil {
			detail = fmt.Sprintf("item %q taken: %s", item.Name, *purpose)
		}
		logErr := s.history.Log(txCtx, domain.HistoryEntry{
			ActorID: actorID,
			Action:  domain.HistoryActionTake,
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

	s.log.InfoContext(ctx, "item taken",
		slog.Int64("actor_id", actorID),
		slog.Int64("item_id", taken.ID),
		slog.String("name", taken.Name),
	)

	return taken, nil
}

// takeLossReason distinguishes why the conditional take matched zero rows:
// the item is already taken (Conflict, owner reported) or it vanished
// (NotFound).
func (s *Service) takeLossReason(ctx context.Context, itemID int64) error {
	current, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return fmt.Errorf("get item: %w", err)
	}
	if current.OwnerID != nil {
		return fmt.Errorf("item %q is held by user %d: %w", current.Name, *current.OwnerID, domain.ErrConflict)
	}
	return fmt.Errorf("item %q: %w", current.Name, domain.ErrConflict)
}
