package validator

import (
	"github.com/go-playground/validator/v10"
)

// shared is reused for both request binding (via echo) and config checks so
// custom rules only need to be registered once.
var shared = validator.New()

// CustomValidator implements echo.Validator using go-playground/validator
type CustomValidator struct {
	v *validator.Validate
}

// New creates a new CustomValidator instance
func New() *CustomValidator {
	return &CustomValidator{v: shared}
}

// Validate performs struct validation
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.v.Struct(i)
}

// Struct validates a struct against its validate tags.
func Struct(i interface{}) error {
	return shared.Struct(i)
}
