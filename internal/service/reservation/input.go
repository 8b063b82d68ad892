package reservation

import (
	"strings"

	"github.com/allocbot/allocbot-backend/internal/domain"
)

const maxPurposeLength = 500

func validatePurpose(purpose string) []domain.FieldError {
	var errs []domain.FieldError
	trimmed := strings.TrimSpace(purpose)
	if trimmed == "" {
		errs = append(errs, domain.FieldError{Field: "purpose", Message: "required"})
	}
	if len(trimmed) > maxPurposeLength {
		errs = append(errs, domain.FieldError{Field: "purpose", Message: "max 500 characters"})
	}
	return errs
}

// TakeInput holds the parameters for taking an item.
type TakeInput struct {
	// ItemRef addresses the item by numeric ID or unique name.
	ItemRef string
	Purpose string
}

// Validate checks all fields and collects all errors.
func (i TakeInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.ItemRef) == "" {
		errs = append(errs, domain.FieldError{Field: "item", Message: "required"})
	}
	errs = append(errs, validatePurpose(i.Purpose)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// FreeInput holds the parameters for freeing an item.
type FreeInput struct {
	ItemRef string
}

// Validate checks all fields and collects all errors.
func (i FreeInput) Validate() error {
	if strings.TrimSpace(i.ItemRef) == "" {
		return domain.NewValidationError("item", "required")
	}
	return nil
}

// StealInput holds the parameters for stealing a taken item.
type StealInput struct {
	ItemRef string
	Purpose string
}

// Validate checks all fields and collects all errors.
func (i StealInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.ItemRef) == "" {
		errs = append(errs, domain.FieldError{Field: "item", Message: "required"})
	}
	errs = append(errs, validatePurpose(i.Purpose)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// AssignOwnerInput holds the parameters for a forced hand-over.
type AssignOwnerInput struct {
	ItemRef string
	OwnerID int64
	Purpose *string
}

// Validate checks all fields and collects all errors.
func (i AssignOwnerInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.ItemRef) == "" {
		errs = append(errs, domain.FieldError{Field: "item", Message: "required"})
	}
	if i.OwnerID <= 0 {
		errs = append(errs, domain.FieldError{Field: "owner_id", Message: "required"})
	}
	if i.Purpose != nil && len(strings.TrimSpace(*i.Purpose)) > maxPurposeLength {
		errs = append(errs, domain.FieldError{Field: "purpose", Message: "max 500 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
