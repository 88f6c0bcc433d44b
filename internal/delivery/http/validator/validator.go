// Package validator adapts go-playground/validator to echo's Validator
// interface.
package validator

import (
	domainerrors "storefront/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// RequestValidator validates bound request payloads via struct tags.
type RequestValidator struct {
	validate *validator.Validate
}

// New is the constructor for RequestValidator.
func New() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// Validate implements echo.Validator. Failures surface as ErrInvalidInput
// with the validator's description in the details.
func (v *RequestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrInvalidInput.WithDetails(err.Error())
	}

	return nil
}
