package registry

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/allocbot/allocbot-backend/internal/domain"
)

// DeleteType deletes an item type. Admin only. Fails with domain.ErrConflict
// while items still reference the type.
func (s *Service) DeleteType(ctx context.Context, input DeleteTypeInput) error {
	actorID, err := actor(ctx, domain.ActionDeleteType)
	if err != nil {
		return err
	}

	if err := input.Validate(); err != nil {
		return err
	}

	typ, err := s.types.GetByID(ctx, input.TypeID)
	if err != nil {
		return fmt.Errorf("get item_type: %w", err)
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if deleteErr := s.types.Delete(txCtx, input.TypeID); deleteErr != nil {
			return fmt.Errorf("delete item_type: %w", deleteErr)
		}

		logErr := s.history.Log(txCtx, domain.HistoryEntry{
			ActorID: actorID,
			Action:  domain.HistoryActionDelete,
			Detail:  fmt.Sprintf("type %q (id %d) deleted", typ.Name, typ.ID),
		})
		if logErr != nil {
			return fmt.Errorf("history log: %w", logErr)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "item type deleted",
		slog.Int64("actor_id", actorID),
		slog.Int64("type_id", typ.ID),
		slog.String("name", typ.Name),
	)

	return nil
}
