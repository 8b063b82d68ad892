package registry

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/allocbot/allocbot-backend/internal/domain"
)

// AssignTypeGroup re-assigns an item's type and/or group. Moderator or
// higher. The target type and group are checked before the update so a
// dangling reference reads as NotFound instead of a bare constraint error.
func (s *Service) AssignTypeGroup(ctx context.Context, input AssignTypeGroupInput) (*domain.Item, error) {
	actorID, err := actor(ctx, domain.ActionAssignType)
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

	if input.TypeID != nil {
		if _, err := s.types.GetByID(ctx, *input.TypeID); err != nil {
			return nil, fmt.Errorf("get item_type: %w", err)
		}
	}
	if input.SetGroup && input.GroupID != nil {
		if _, err := s.groups.GetByID(ctx, *input.GroupID); err != nil {
			return nil, fmt.Errorf("get group: %w", err)
		}
	}

	var updated *domain.Item
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var assignErr error
		updated, assignErr = s.items.AssignTypeGroup(txCtx, item.ID, input.TypeID, input.SetGroup, input.GroupID)
		if assignErr != nil {
			return fmt.Errorf("assign item: %w", assignErr)
		}

		logErr := s.history.Log(txCtx, domain.HistoryEntry{
			ActorID: actorID,
			Action:  domain.HistoryActionAssignType,
			ItemID:  &item.ID,
			Detail:  assignDetail(item, updated),
		})
		if logErr != nil {
			return fmt.Errorf("history log: %w", logErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "item reassigned",
		slog.Int64("actor_id", actorID),
		slog.Int64("item_id", item.ID),
		slog.Int64("type_id", updated.TypeID),
	)

	return updated, nil
}

func assignDetail(old, new *domain.Item) string {
	detail := fmt.Sprintf("item %q: type %d -> %d", old.Name, old.TypeID, new.TypeID)
	switch {
	case old.GroupID == nil && new.GroupID != nil:
		detail += fmt.Sprintf(", group none -> %d", *new.GroupID)
	case old.GroupID != nil && new.GroupID == nil:
		detail += fmt.Sprintf(", group %d -> none", *old.GroupID)
	case old.GroupID != nil && new.GroupID != nil && *old.GroupID != *new.GroupID:
		detail += fmt.Sprintf(", group %d -> %d", *old.GroupID, *new.GroupID)
	}
	return detail
}
