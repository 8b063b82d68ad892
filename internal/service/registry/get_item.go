package registry

import (
	"context"
	"fmt"

	"github.com/allocbot/allocbot-backend/internal/domain"
)

// GetItem returns a single item by numeric ID or unique name.
func (s *Service) GetItem(ctx context.Context, input GetItemInput) (*domain.Item, error) {
	if _, err := actor(ctx, domain.ActionGetItem); err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	item, err := s.resolveItem(ctx, input.ItemRef)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}

	return item, nil
}
