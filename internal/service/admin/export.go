package admin

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/allocbot/allocbot-backend/internal/domain"
)

// ExportInput holds the export options.
type ExportInput struct {
	IncludeHistory bool
}

// Export reads every registry table into a versioned dump. The reads and
// the Export history entry share one transaction so the dump is a
// consistent snapshot; JSON marshalling is the caller's business and
// happens outside it.
func (s *Service) Export(ctx context.Context, input ExportInput) (*Dump, error) {
	actorID, err := actor(ctx, domain.ActionExport)
	if err != nil {
		return nil, err
	}

	dump := &Dump{
		FormatVersion: DumpFormatVersion,
		DumpID:        uuid.New(),
		CreatedAt:     time.Now().UTC(),
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		types, err := s.types.List(txCtx)
		if err != nil {
			return fmt.Errorf("list item_types: %w", err)
		}
		for _, t := range types {
			dump.Types = append(dump.Types, typeRecord(t))
		}

		groups, err := s.groups.List(txCtx)
		if err != nil {
			return fmt.Errorf("list groups: %w", err)
		}
		for _, g := range groups {
			dump.Groups = append(dump.Groups, groupRecord(g))
		}

		items, err := s.items.ListAll(txCtx)
		if err != nil {
			return fmt.Errorf("list items: %w", err)
		}
		for _, it := range items {
			dump.Items = append(dump.Items, itemRecord(it))
		}

		subs, err := s.subs.ListAll(txCtx)
		if err != nil {
			return fmt.Errorf("list subscriptions: %w", err)
		}
		for _, sub := range subs {
			dump.Subscriptions = append(dump.Subscriptions, subscriptionRecord(sub))
		}

		moderators, err := s.moderators.List(txCtx)
		if err != nil {
			return fmt.Errorf("list moderators: %w", err)
		}
		dump.Moderators = moderators

		if input.IncludeHistory {
			entries, err := s.history.Query(txCtx, domain.HistoryFilter{})
			if err != nil {
				return fmt.Errorf("query history: %w", err)
			}
			for _, e := range entries {
				dump.History = append(dump.History, historyRecord(e))
			}
		}

		logErr := s.history.Log(txCtx, domain.HistoryEntry{
			ActorID: actorID,
			Action:  domain.HistoryActionExport,
			Detail:  fmt.Sprintf("dump %s: %d types, %d groups, %d items", dump.DumpID, len(dump.Types), len(dump.Groups), len(dump.Items)),
		})
		if logErr != nil {
			return fmt.Errorf("history log: %w", logErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "registry exported",
		slog.Int64("actor_id", actorID),
		slog.String("dump_id", dump.DumpID.String()),
		slog.Int("items", len(dump.Items)),
	)

	return dump, nil
}
