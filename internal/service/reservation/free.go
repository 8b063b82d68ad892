package reservation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/allocbot/allocbot-backend/internal/domain"
	"github.com/allocbot/allocbot-backend/pkg/ctxutil"
)

// Free releases a taken item. The holder may free their own item; Moderator
// and Admin may free anyone's. Freeing an already-free item is a Conflict.
func (s *Service) Free(ctx context.Context, input FreeInput) (*domain.Item, error) {
	actorID, err := actor(ctx, domain.ActionFree)
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

	if item.IsFree() {
		return nil, fmt.Errorf("item %q is already free: %w", item.Name, domain.ErrConflict)
	}

	holder := *item.OwnerID
	if holder != actorID && !ctxutil.RoleFromCtx(ctx).AtLeast(domain.RoleModerator) {
		return nil, domain.ErrPermissionDenied
	}

	var freed *domain.Item
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var freeErr error
		freed, freeErr = s.items.Free(txCtx, item.ID)
		if freeErr != nil {
			// Zero rows: somebody freed it between the read and the update.
			if errors.Is(freeErr, domain.ErrNotFound) {
				return fmt.Errorf("item %q is already free: %w", item.Name, domain.ErrConflict)
			}
			return fmt.Errorf("free item: %w", freeErr)
		}

		logErr := s.history.Log(txCtx, domain.HistoryEntry{
			ActorID: actorID,
			Action:  domain.HistoryActionFree,
			ItemID:  &item.ID,
			Detail:  fmt.Sprintf("item %q freed from user %d", item.Name, holder),
		})
		if logErr != nil {
			return fmt.Errorf("history log: %w", logErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "item freed",
		slog.Int64("actor_id", actorID),
		slog.Int64("item_id", freed.ID),
		slog.Int64("previous_owner", holder),
	)

	return freed, nil
}
