// Package validation adapts go-playground/validator to Echo's
// Validator interface so handlers can call c.Validate(dto) after
// binding request bodies.
package validation

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// EchoValidator wraps a validator instance for Echo.
type EchoValidator struct {
	validate *validator.Validate
}

// New returns an EchoValidator ready to be assigned to echo.Echo's
// Validator field.
func New() *EchoValidator {
	return &EchoValidator{validate: validator.New()}
}

// Validate implements echo.Validator.  Validation failures are turned
// into 400 responses carrying the validator's message so handlers can
// simply return the error.
func (v *EchoValidator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
