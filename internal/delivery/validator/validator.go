// Package validator wires go-playground/validator as Echo's request validator.
package validator

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// customValidator adapts validator.Validate to echo.Validator.
type customValidator struct {
	validate *validator.Validate
}

// New creates the Echo validator used by both services.
func New() echo.Validator {
	return &customValidator{
		validate: validator.New(),
	}
}

// Validate checks the struct tags on a bound payload.
func (v *customValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return errors.Wrap(err, "payload validation failed")
	}

	return nil
}
