package admin

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/allocbot/allocbot-backend/internal/domain"
)

// Reset erases the whole registry and the history log in one transaction,
// then writes the terminal Reset entry into the fresh, otherwise empty log.
// Admin only; there is no undo.
func (s *Service) Reset(ctx context.Context) error {
	actorID, err := actor(ctx, domain.ActionReset)
	if err != nil {
		return err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.maintenance.TruncateRegistry(txCtx); err != nil {
			return err
		}
		if err := s.history.TruncateAll(txCtx); err != nil {
			return err
		}

		logErr := s.history.Log(txCtx, domain.HistoryEntry{
			ActorID: actorID,
			Action:  domain.HistoryActionReset,
			Detail:  "registry and history erased",
		})
		if logErr != nil {
			return fmt.Errorf("history log: %w", logErr)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "registry reset", slog.Int64("actor_id", actorID))

	return nil
}
