package admin

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/allocbot/allocbot-backend/internal/domain"
)

// ModeratorInput holds the target of a moderator grant or revoke.
type ModeratorInput struct {
	UserID int64
}

// Validate checks all fields and collects all errors.
func (i ModeratorInput) Validate() error {
	if i.UserID <= 0 {
		return domain.NewValidationError("user_id", "required")
	}
	return nil
}

// AddModerator grants moderator to a user. Admin only. Idempotent: granting
// an existing moderator reports added=false and writes no history entry.
func (s *Service) AddModerator(ctx context.Context, input ModeratorInput) (added bool, err error) {
	actorID, err := actor(ctx, domain.ActionAddModerator)
	if err != nil {
		return false, err
	}

	if err := input.Validate(); err != nil {
		return false, err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var addErr error
		added, addErr = s.moderators.Add(txCtx, input.UserID, actorID)
		if addErr != nil {
			return fmt.Errorf("add moderator: %w", addErr)
		}
		if !added {
			return nil
		}

		logErr := s.history.Log(txCtx, domain.HistoryEntry{
			ActorID: actorID,
			Action:  domain.HistoryActionAddModerator,
			Detail:  fmt.Sprintf("user %d granted moderator", input.UserID),
		})
		if logErr != nil {
			return fmt.Errorf("history log: %w", logErr)
		}

		return nil
	})
	if err != nil {
		return false, err
	}

	s.log.InfoContext(ctx, "moderator added",
		slog.Int64("actor_id", actorID),
		slog.Int64("user_id", input.UserID),
		slog.Bool("added", added),
	)

	return added, nil
}

// RemoveModerator revokes moderator from a user. Admin only.
// Returns domain.ErrNotFound when the user was not a moderator.
func (s *Service) RemoveModerator(ctx context.Context, input ModeratorInput) error {
	actorID, err := actor(ctx, domain.ActionRemoveModerator)
	if err != nil {
		return err
	}

	if err := input.Validate(); err != nil {
		return err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if removeErr := s.moderators.Remove(txCtx, input.UserID); removeErr != nil {
			return fmt.Errorf("remove moderator: %w", removeErr)
		}

		logErr := s.history.Log(txCtx, domain.HistoryEntry{
			ActorID: actorID,
			Action:  domain.HistoryActionRemoveModerator,
			Detail:  fmt.Sprintf("user %d revoked moderator", input.UserID),
		})
		if logErr != nil {
			return fmt.Errorf("history log: %w", logErr)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "moderator removed",
		slog.Int64("actor_id", actorID),
		slog.Int64("user_id", input.UserID),
	)

	return nil
}

// ListModerators returns all moderator user IDs. Admin only.
func (s *Service) ListModerators(ctx context.Context) ([]int64, error) {
	if _, err := actor(ctx, domain.ActionAddModerator); err != nil {
		return nil, err
	}

	ids, err := s.moderators.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list moderators: %w", err)
	}

	return ids, nil
}
