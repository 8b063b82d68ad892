package registry

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/allocbot/allocbot-backend/internal/domain"
)

// DeleteGroup deletes a group. Moderator or higher. Items keep existing:
// the group reference is detached from members inside the same transaction
// (ON DELETE SET NULL on the foreign key).
func (s *Service) DeleteGroup(ctx context.Context, input DeleteGroupInput) error {
	actorID, err := actor(ctx, domain.ActionDeleteGroup)
	if err != nil {
		return err
	}

	if err := input.Validate(); err != nil {
		return err
	}

	group, err := s.groups.GetByID(ctx, input.GroupID)
	if err != nil {
		return fmt.Errorf("get group: %w", err)
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if deleteErr := s.groups.Delete(txCtx, input.GroupID); deleteErr != nil {
			return fmt.Errorf("delete group: %w", deleteErr)
		}

		logErr := s.history.Log(txCtx, domain.HistoryEntry{
			ActorID: actorID,
			Action:  domain.HistoryActionDelete,
			Detail:  fmt.Sprintf("group %q (id %d) deleted", group.Name, group.ID),
		})
		if logErr != nil {
			return fmt.Errorf("history log: %w", logErr)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "group deleted",
		slog.Int64("actor_id", actorID),
		slog.Int64("group_id", group.ID),
		slog.String("name", group.Name),
	)

	return nil
}
