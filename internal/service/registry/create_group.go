package registry

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/allocbot/allocbot-backend/internal/domain"
)

// CreateGroup creates a new group. Moderator or higher.
func (s *Service) CreateGroup(ctx context.Context, input CreateGroupInput) (*domain.Group, error) {
	actorID, err := actor(ctx, domain.ActionCreateGroup)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)

	var group *domain.Group
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		group, createErr = s.groups.Create(txCtx, name)
		if createErr != nil {
			return fmt.Errorf("create group: %w", createErr)
		}

		logErr := s.history.Log(txCtx, domain.HistoryEntry{
			ActorID: actorID,
			Action:  domain.HistoryActionCreate,
			Detail:  fmt.Sprintf("group %q (id %d) created", group.Name, group.ID),
		})
		if logErr != nil {
			return fmt.Errorf("history log: %w", logErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "group created",
		slog.Int64("actor_id", actorID),
		slog.Int64("group_id", group.ID),
		slog.String("name", group.Name),
	)

	return group, nil
}
