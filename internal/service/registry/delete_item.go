package registry

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/allocbot/allocbot-backend/internal/domain"
)

// DeleteItem deletes an item. Moderator or higher. Deleting a taken item is
// one user-visible operation but two audit facts: a Free entry for the
// implicit release and a Delete entry, both in the same transaction.
func (s *Service) DeleteItem(ctx context.Context, input DeleteItemInput) error {
	actorID, err := actor(ctx, domain.ActionDeleteItem)
	if err != nil {
		return err
	}

	if err := input.Validate(); err != nil {
		return err
	}

	item, err := s.resolveItem(ctx, input.ItemRef)
	if err != nil {
		return fmt.Errorf("get item: %w", err)
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if item.State == domain.ItemStateTaken {
			logErr := s.history.Log(txCtx, domain.HistoryEntry{
				ActorID: actorID,
				Action:  domain.HistoryActionFree,
				ItemID:  &item.ID,
				Detail:  fmt.Sprintf("item %q implicitly freed from user %d on delete", item.Name, *item.OwnerID),
			})
			if logErr != nil {
				return fmt.Errorf("history log: %w", logErr)
			}
		}

		if deleteErr := s.items.Delete(txCtx, item.ID); deleteErr != nil {
			return fmt.Errorf("delete item: %w", deleteErr)
		}

		logErr := s.history.Log(txCtx, domain.HistoryEntry{
			ActorID: actorID,
			Action:  domain.HistoryActionDelete,
			ItemID:  &item.ID,
			Detail:  fmt.Sprintf("item %q deleted", item.Name),
		})
		if logErr != nil {
			return fmt.Errorf("history log: %w", logErr)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "item deleted",
		slog.Int64("actor_id", actorID),
		slog.Int64("item_id", item.ID),
		slog.String("name", item.Name),
		slog.Bool("was_taken", item.State == domain.ItemStateTaken),
	)

	return nil
}
