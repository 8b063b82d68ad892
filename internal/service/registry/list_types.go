package registry

import (
	"context"
	"fmt"

	"github.com/allocbot/allocbot-backend/internal/domain"
)

// ListTypes returns all item types ordered by name.
func (s *Service) ListTypes(ctx context.Context) ([]domain.ItemType, error) {
	if _, err := actor(ctx, domain.ActionListTypes); err != nil {
		return nil, err
	}

	types, err := s.types.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list item_types: %w", err)
	}

	return types, nil
}

// ListGroups returns all groups ordered by name.
func (s *Service) ListGroups(ctx context.Context) ([]domain.Group, error) {
	if _, err := actor(ctx, domain.ActionListTypes); err != nil {
		return nil, err
	}

	groups, err := s.groups.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}

	return groups, nil
}
