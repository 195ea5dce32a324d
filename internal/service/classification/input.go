package classification

import (
	"strings"

	"github.com/heartmarshall/minervactl/internal/domain"
)

// CategoryNameInput holds the name typed for a new or renamed category.
type CategoryNameInput struct {
	ID   int64 // zero for a new category
	Name string
}

// Validate checks all fields and collects all errors.
func (i CategoryNameInput) Validate(requireID bool) error {
	var errs []domain.FieldError

	if requireID && i.ID <= 0 {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "nombre", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ClassifyInput holds a moderation decision for a link.
type ClassifyInput struct {
	LinkID      int64
	Status      domain.LinkStatus
	CategoryIDs []int64 // nil = keep current assignment, empty = clear
}

// Validate checks all fields and collects all errors.
func (i ClassifyInput) Validate() error {
	var errs []domain.FieldError

	if i.LinkID <= 0 {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "estado", Message: "must be one of pendiente, aprobado, descartado"})
	}
	for _, id := range i.CategoryIDs {
		if id <= 0 {
			errs = append(errs, domain.FieldError{Field: "categoria_ids", Message: "ids must be positive"})
			break
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
