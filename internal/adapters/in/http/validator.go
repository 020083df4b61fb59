package http

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// RequestValidator plugs go-playground/validator into echo's Validate hook.
// Boundary DTOs carry `validate` tags; the core trusts input past this point.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator creates the validator used by the echo instance.
func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// Validate implements echo.Validator. Failures map to 400 with the
// validator's message so the client sees which field was rejected.
func (v *RequestValidator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
