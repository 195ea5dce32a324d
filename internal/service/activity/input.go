package activity

import (
	"strings"

	"github.com/heartmarshall/minervactl/internal/domain"
)

// ExportInput holds the parameters for downloading an activity report.
type ExportInput struct {
	Format domain.ExportFormat
	Dir    string
}

// Validate checks all fields and collects all errors.
func (i ExportInput) Validate() error {
	var errs []domain.FieldError

	if !i.Format.IsValid() {
		errs = append(errs, domain.FieldError{Field: "format", Message: "must be xlsx or pdf"})
	}
	if strings.TrimSpace(i.Dir) == "" {
		errs = append(errs, domain.FieldError{Field: "dir", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
