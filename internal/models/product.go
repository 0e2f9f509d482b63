package models

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Product represents a product in the catalog.
type Product struct {
	ID          int     `json:"id" gorm:"primaryKey"`
	Name        string  `json:"name" validate:"required,max=100"`
	Description string  `json:"description" validate:"omitempty,max=500"`
	Price       float64 `json:"price" validate:"gt=0"`
	Stock       int     `json:"stock" validate:"gte=0"`
}

// ValidationError describes a single field constraint violation.
type ValidationError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("field '%s' failed on the '%s' rule", e.Field, e.Rule)
}

// Validate checks the product against its field constraints. It returns a
// *ValidationError for the first offending field, or nil if the product is
// valid. The ID is not checked; the store assigns it.
func (p *Product) Validate() error {
	if err := validate.Struct(p); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		e := validationErrors[0]
		return &ValidationError{Field: e.Field(), Rule: e.Tag()}
	}
	return nil
}
