package reservation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/allocbot/allocbot-backend/internal/domain"
)

// AssignResult reports a forced hand-over. PreviousOwner is nil when the
// item was free.
type AssignResult struct {
	Item          *domain.Item
	PreviousOwner *int64
}

// AssignOwner hands an item to a specific user regardless of its current
// state. Moderator or higher. The history records a Take on behalf of the
// target with the assigning actor in the detail.
func (s *Service) AssignOwner(ctx context.Context, input AssignOwnerInput) (*AssignResult, error) {
	actorID, err := actor(ctx, domain.ActionAssignOwner)
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

	purpose := trimOrNil(input.Purpose)

	var (
		assigned      *domain.Item
		previousOwner *int64
	)
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		locked, lockErr := s.items.GetByIDForUpdate(txCtx, item.ID)
		if lockErr != nil {
			return fmt.Errorf("lock item: %w", lockErr)
		}

		if locked.OwnerID != nil && *locked.OwnerID == input.OwnerID {
			return fmt.Errorf("item %q is already held by user %d: %w", locked.Name, input.OwnerID, domain.ErrConflict)
		}

		var assignErr error
		if locked.IsFree() {
			assigned, assignErr = s.items.Take(txCtx, locked.ID, input.OwnerID, purpose)
		} else {
			owner := *locked.OwnerID
			previousOwner = &owner
			assigned, assignErr = s.items.SetOwner(txCtx, locked.ID, input.OwnerID, purpose)
		}
		if assignErr != nil {
			return fmt.Errorf("assign owner: %w", assignErr)
		}

		logErr := s.history.Log(txCtx, domain.HistoryEntry{
			ActorID: input.OwnerID,
			Action:  domain.HistoryActionTake,
			ItemID:  &item.ID,
			Detail:  assignOwnerDetail(locked, input.OwnerID, actorID, previousOwner),
		})
		if logErr != nil {
			return fmt.Errorf("history log: %w", logErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "item assigned",
		slog.Int64("actor_id", actorID),
		slog.Int64("item_id", assigned.ID),
		slog.Int64("owner_id", input.OwnerID),
	)

	return &AssignResult{Item: assigned, PreviousOwner: previousOwner}, nil
}

func assignOwnerDetail(item *domain.Item, newOwner, actorID int64, previousOwner *int64) string {
	if previousOwner != nil {
		return fmt.Sprintf("item %q reassigned from user %d to user %d by user %d", item.Name, *previousOwner, newOwner, actorID)
	}
	return fmt.Sprintf("item %q assigned to user %d by user %d", item.Name, newOwner, actorID)
}
