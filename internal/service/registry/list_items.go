package registry

import (
	"context"
	"fmt"

	"github.com/allocbot/allocbot-backend/internal/domain"
)

// ItemPage is one page of the item listing.
type ItemPage struct {
	Items []domain.Item
	// Total is the number of items matching the filter ignoring paging, so
	// the caller can render "page x of y".
	Total int
}

// ListItems returns items matching the optional filters, ordered by name,
// paged by limit/offset. The ordering makes pages a restartable,
// deterministic sequence.
func (s *Service) ListItems(ctx context.Context, input ListItemsInput) (*ItemPage, error) {
	if _, err := actor(ctx, domain.ActionListItems); err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	filter := domain.ItemFilter{
		GroupID:  input.GroupID,
		TypeID:   input.TypeID,
		OwnerID:  input.OwnerID,
		OnlyFree: input.OnlyFree,
		Limit:    input.Limit,
		Offset:   input.Offset,
	}

	items, err := s.items.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}

	total, err := s.items.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count items: %w", err)
	}

	return &ItemPage{Items: items, Total: total}, nil
}
