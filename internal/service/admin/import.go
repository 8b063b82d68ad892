package admin

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/allocbot/allocbot-backend/internal/domain"
)

// Import replaces the registry with the contents of a dump. The whole dump
// is validated first: any dangling reference or uniqueness violation means
// nothing is applied. The apply runs in one transaction and ends with a
// sequence resync so new rows do not collide with imported IDs.
// History is never imported; the Import entry lands in the existing log.
func (s *Service) Import(ctx context.Context, dump *Dump) error {
	actorID, err := actor(ctx, domain.ActionImport)
	if err != nil {
		return err
	}

	if err := validateDump(dump); err != nil {
		return err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.maintenance.TruncateRegistry(txCtx); err != nil {
			return err
		}

		for _, rec := range dump.Types {
			if _, err := s.types.CreateWithID(txCtx, rec.toDomain()); err != nil {
				return fmt.Errorf("import item_type %d: %w", rec.ID, err)
			}
		}
		for _, rec := range dump.Groups {
			if _, err := s.groups.CreateWithID(txCtx, rec.toDomain()); err != nil {
				return fmt.Errorf("import group %d: %w", rec.ID, err)
			}
		}
		for _, rec := range dump.Items {
			if _, err := s.items.CreateWithID(txCtx, rec.toDomain()); err != nil {
				return fmt.Errorf("import item %d: %w", rec.ID, err)
			}
		}
		for _, rec := range dump.Subscriptions {
			if err := s.subs.Restore(txCtx, rec.toDomain()); err != nil {
				return fmt.Errorf("import subscription %d/%d: %w", rec.UserID, rec.TypeID, err)
			}
		}
		for _, userID := range dump.Moderators {
			if _, err := s.moderators.Add(txCtx, userID, actorID); err != nil {
				return fmt.Errorf("import moderator %d: %w", userID, err)
			}
		}

		if err := s.maintenance.SyncSequences(txCtx); err != nil {
			return err
		}

		logErr := s.history.Log(txCtx, domain.HistoryEntry{
			ActorID: actorID,
			Action:  domain.HistoryActionImport,
			Detail:  fmt.Sprintf("dump %s imported: %d types, %d groups, %d items", dump.DumpID, len(dump.Types), len(dump.Groups), len(dump.Items)),
		})
		if logErr != nil {
			return fmt.Errorf("history log: %w", logErr)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "registry imported",
		slog.Int64("actor_id", actorID),
		slog.String("dump_id", dump.DumpID.String()),
		slog.Int("items", len(dump.Items)),
	)

	return nil
}

// validateDump checks the whole dump for referential integrity and
// uniqueness before a single row is written.
func validateDump(dump *Dump) error {
	if dump == nil {
		return domain.NewValidationError("dump", "required")
	}

	var errs []domain.FieldError

	if dump.FormatVersion != DumpFormatVersion {
		errs = append(errs, domain.FieldError{
			Field:   "format_version",
			Message: fmt.Sprintf("unsupported version %d, want %d", dump.FormatVersion, DumpFormatVersion),
		})
	}

	typeIDs := make(map[int64]bool, len(dump.Types))
	typeNames := make(map[string]bool, len(dump.Types))
	for i, rec := range dump.Types {
		if rec.ID <= 0 {
			errs = append(errs, fieldErr("types", i, "id", "must be positive"))
		}
		if typeIDs[rec.ID] {
			errs = append(errs, fieldErr("types", i, "id", "duplicate"))
		}
		typeIDs[rec.ID] = true
		if rec.Name == "" {
			errs = append(errs, fieldErr("types", i, "name", "required"))
		}
		if typeNames[rec.Name] {
			errs = append(errs, fieldErr("types", i, "name", "duplicate"))
		}
		typeNames[rec.Name] = true
	}

	groupIDs := make(map[int64]bool, len(dump.Groups))
	groupNames := make(map[string]bool, len(dump.Groups))
	for i, rec := range dump.Groups {
		if rec.ID <= 0 {
			errs = append(errs, fieldErr("groups", i, "id", "must be positive"))
		}
		if groupIDs[rec.ID] {
			errs = append(errs, fieldErr("groups", i, "id", "duplicate"))
		}
		groupIDs[rec.ID] = true
		if rec.Name == "" {
			errs = append(errs, fieldErr("groups", i, "name", "required"))
		}
		if groupNames[rec.Name] {
			errs = append(errs, fieldErr("groups", i, "name", "duplicate"))
		}
		groupNames[rec.Name] = true
	}

	itemIDs := make(map[int64]bool, len(dump.Items))
	itemNames := make(map[string]bool, len(dump.Items))
	for i, rec := range dump.Items {
		if rec.ID <= 0 {
			errs = append(errs, fieldErr("items", i, "id", "must be positive"))
		}
		if itemIDs[rec.ID] {
			errs = append(errs, fieldErr("items", i, "id", "duplicate"))
		}
		itemIDs[rec.ID] = true
		if rec.Name == "" {
			errs = append(errs, fieldErr("items", i, "name", "required"))
		}
		if itemNames[rec.Name] {
			errs = append(errs, fieldErr("items", i, "name", "duplicate"))
		}
		itemNames[rec.Name] = true

		if !typeIDs[rec.TypeID] {
			errs = append(errs, fieldErr("items", i, "type_id", "references unknown type"))
		}
		if rec.GroupID != nil && !groupIDs[*rec.GroupID] {
			errs = append(errs, fieldErr("items", i, "group_id", "references unknown group"))
		}

		if !rec.State.IsValid() {
			errs = append(errs, fieldErr("items", i, "state", "unknown state"))
		}
		item := rec.toDomain()
		if rec.State.IsValid() && !item.OwnershipConsistent() {
			errs = append(errs, fieldErr("items", i, "owner_id", "owner must be set exactly when state is TAKEN"))
		}
	}

	subPairs := make(map[[2]int64]bool, len(dump.Subscriptions))
	for i, rec := range dump.Subscriptions {
		if rec.UserID <= 0 {
			errs = append(errs, fieldErr("subscriptions", i, "user_id", "must be positive"))
		}
		if !typeIDs[rec.TypeID] {
			errs = append(errs, fieldErr("subscriptions", i, "type_id", "references unknown type"))
		}
		pair := [2]int64{rec.UserID, rec.TypeID}
		if subPairs[pair] {
			errs = append(errs, fieldErr("subscriptions", i, "user_id", "duplicate subscription"))
		}
		subPairs[pair] = true
	}

	moderators := make(map[int64]bool, len(dump.Moderators))
	for i, userID := range dump.Moderators {
		if userID <= 0 {
			errs = append(errs, fieldErr("moderators", i, "user_id", "must be positive"))
		}
		if moderators[userID] {
			errs = append(errs, fieldErr("moderators", i, "user_id", "duplicate"))
		}
		moderators[userID] = true
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func fieldErr(section string, index int, field, message string) domain.FieldError {
	return domain.FieldError{
		Field:   fmt.Sprintf("%s[%d].%s", section, index, field),
		Message: message,
	}
}
