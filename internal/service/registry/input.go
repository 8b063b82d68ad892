package registry

import (
	"strings"

	"github.com/allocbot/allocbot-backend/internal/domain"
)

const (
	maxNameLength        = 100
	maxDescriptionLength = 500
)

func validateName(field, name string) []domain.FieldError {
	var errs []domain.FieldError
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		errs = append(errs, domain.FieldError{Field: field, Message: "required"})
	}
	if len(trimmed) > maxNameLength {
		errs = append(errs, domain.FieldError{Field: field, Message: "max 100 characters"})
	}
	return errs
}

// CreateTypeInput holds the parameters for creating an item type.
type CreateTypeInput struct {
	Name             string
	RequiresApproval bool
}

// Validate checks all fields and collects all errors.
func (i CreateTypeInput) Validate() error {
	if errs := validateName("name", i.Name); len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DeleteTypeInput holds the parameters for deleting an item type.
type DeleteTypeInput struct {
	TypeID int64
}

// Validate checks all fields and collects all errors.
func (i DeleteTypeInput) Validate() error {
	if i.TypeID <= 0 {
		return domain.NewValidationError("type_id", "required")
	}
	return nil
}

// CreateGroupInput holds the parameters for creating a group.
type CreateGroupInput struct {
	Name string
}

// Validate checks all fields and collects all errors.
func (i CreateGroupInput) Validate() error {
	if errs := validateName("name", i.Name); len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DeleteGroupInput holds the parameters for deleting a group.
type DeleteGroupInput struct {
	GroupID int64
}

// Validate checks all fields and collects all errors.
func (i DeleteGroupInput) Validate() error {
	if i.GroupID <= 0 {
		return domain.NewValidationError("group_id", "required")
	}
	return nil
}

// CreateItemInput holds the parameters for creating an item.
type CreateItemInput struct {
	Name        string
	TypeID      int64
	GroupID     *int64
	Description *string
}

// Validate checks all fields and collects all errors.
func (i CreateItemInput) Validate() error {
	errs := validateName("name", i.Name)

	if i.TypeID <= 0 {
		errs = append(errs, domain.FieldError{Field: "type_id", Message: "required"})
	}
	if i.GroupID != nil && *i.GroupID <= 0 {
		errs = append(errs, domain.FieldError{Field: "group_id", Message: "must be positive"})
	}
	if i.Description != nil && len(strings.TrimSpace(*i.Description)) > maxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 500 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DeleteItemInput holds the parameters for deleting an item.
type DeleteItemInput struct {
	// ItemRef addresses the item by numeric ID or unique name.
	ItemRef string
}

// Validate checks all fields and collects all errors.
func (i DeleteItemInput) Validate() error {
	if strings.TrimSpace(i.ItemRef) == "" {
		return domain.NewValidationError("item", "required")
	}
	return nil
}

// AssignTypeGroupInput holds the parameters for re-assigning an item's type
// and/or group.
type AssignTypeGroupInput struct {
	ItemRef string
	TypeID  *int64
	// SetGroup selects whether GroupID applies: false keeps the current
	// group, true with GroupID nil detaches the item from its group.
	SetGroup bool
	GroupID  *int64
}

// Validate checks all fields and collects all errors.
func (i AssignTypeGroupInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.ItemRef) == "" {
		errs = append(errs, domain.FieldError{Field: "item", Message: "required"})
	}
	if i.TypeID == nil && !i.SetGroup {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one of type or group must be provided"})
	}
	if i.TypeID != nil && *i.TypeID <= 0 {
		errs = append(errs, domain.FieldError{Field: "type_id", Message: "must be positive"})
	}
	if i.GroupID != nil && *i.GroupID <= 0 {
		errs = append(errs, domain.FieldError{Field: "group_id", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// GetItemInput holds the parameters for fetching a single item.
type GetItemInput struct {
	ItemRef string
}

// Validate checks all fields and collects all errors.
func (i GetItemInput) Validate() error {
	if strings.TrimSpace(i.ItemRef) == "" {
		return domain.NewValidationError("item", "required")
	}
	return nil
}

// ListItemsInput holds the optional filters for listing items.
type ListItemsInput struct {
	GroupID  *int64
	TypeID   *int64
	OwnerID  *int64
	OnlyFree bool
	Limit    int
	Offset   int
}

// Validate checks all fields and collects all errors.
func (i ListItemsInput) Validate() error {
	var errs []domain.FieldError

	if i.GroupID != nil && *i.GroupID <= 0 {
		errs = append(errs, domain.FieldError{Field: "group_id", Message: "must be positive"})
	}
	if i.TypeID != nil && *i.TypeID <= 0 {
		errs = append(errs, domain.FieldError{Field: "type_id", Message: "must be positive"})
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
