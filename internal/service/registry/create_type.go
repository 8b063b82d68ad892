package registry

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/allocbot/allocbot-backend/internal/domain"
)

// CreateType creates a new item type. Admin only.
func (s *Service) CreateType(ctx context.Context, input CreateTypeInput) (*domain.ItemType, error) {
	actorID, err := actor(ctx, domain.ActionCreateType)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)

	var typ *domain.ItemType
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		typ, createErr = s.types.Create(txCtx, name, input.RequiresApproval)
		if createErr != nil {
			return fmt.Errorf("create item_type: %w", createErr)
		}

		logErr := s.history.Log(txCtx, domain.HistoryEntry{
			ActorID: actorID,
			Action:  domain.HistoryActionCreate,
			Detail:  fmt.Sprintf("type %q (id %d) created", typ.Name, typ.ID),
		})
		if logErr != nil {
			return fmt.Errorf("history log: %w", logErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "item type created",
		slog.Int64("actor_id", actorID),
		slog.Int64("type_id", typ.ID),
		slog.String("name", typ.Name),
	)

	return typ, nil
}
