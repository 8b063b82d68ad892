package registry

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/allocbot/allocbot-backend/internal/domain"
)

// CreateItem creates a new free item. Moderator or higher. The type must
// exist; the group is optional.
func (s *Service) CreateItem(ctx context.Context, input CreateItemInput) (*domain.Item, error) {
	actorID, err := actor(ctx, domain.ActionCreateItem)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	description := trimOrNil(input.Description)

	var item *domain.Item
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		item, createErr = s.items.Create(txCtx, name, input.TypeID, input.GroupID, description)
		if createErr != nil {
			return fmt.Errorf("create item: %w", createErr)
		}

		logErr := s.history.Log(txCtx, domain.HistoryEntry{
			ActorID: actorID,
			Action:  domain.HistoryActionCreate,
			ItemID:  &item.ID,
			Detail:  fmt.Sprintf("item %q created", item.Name),
		})
		if logErr != nil {
			return fmt.Errorf("history log: %w", logErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "item created",
		slog.Int64("actor_id", actorID),
		slog.Int64("item_id", item.ID),
		slog.String("name", item.Name),
	)

	return item, nil
}
