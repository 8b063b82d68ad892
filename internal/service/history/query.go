package history

import (
	"context"
	"fmt"
	"time"

	"github.com/allocbot/allocbot-backend/internal/domain"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

// QueryInput holds the filters for the full history view.
type QueryInput struct {
	ActorID *int64
	Action  *domain.HistoryAction
	ItemID  *int64
	From    *time.Time
	To      *time.Time
	Limit   int
	Offset  int
}

// Validate checks all fields and collects all errors.
func (i QueryInput) Validate() error {
	var errs []domain.FieldError

	if i.Action != nil && !i.Action.IsValid() {
		errs = append(errs, domain.FieldError{Field: "action", Message: "unknown action"})
	}
	if i.From != nil && i.To != nil && i.To.Before(*i.From) {
		errs = append(errs, domain.FieldError{Field: "time_range", Message: "to must not precede from"})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must not be negative"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func clampPaging(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// Query returns history entries matching the filters, ordered by timestamp
// ascending. Admin only: the full log exposes everyone's activity.
func (s *Service) Query(ctx context.Context, input QueryInput) ([]domain.HistoryEntry, error) {
	if _, err := actor(ctx, domain.ActionViewHistory); err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit, offset := clampPaging(input.Limit, input.Offset)

	entries, err := s.history.Query(ctx, domain.HistoryFilter{
		ActorID: input.ActorID,
		Action:  input.Action,
		ItemID:  input.ItemID,
		From:    input.From,
		To:      input.To,
		Limit:   limit,
		Offset:  offset,
	})
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}

	return entries, nil
}

// MyHistoryInput holds the paging for the personal history view.
type MyHistoryInput struct {
	Limit  int
	Offset int
}

// MyHistory returns the actor's own history entries, ordered by timestamp
// ascending. Available to every user.
func (s *Service) MyHistory(ctx context.Context, input MyHistoryInput) ([]domain.HistoryEntry, error) {
	actorID, err := actor(ctx, domain.ActionMyHistory)
	if err != nil {
		return nil, err
	}

	limit, offset := clampPaging(input.Limit, input.Offset)

	entries, err := s.history.Query(ctx, domain.HistoryFilter{
		ActorID: &actorID,
		Limit:   limit,
		Offset:  offset,
	})
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}

	return entries, nil
}
