package validators

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// TagMacID validates a device or access-point id such as "40A6E8:6C:5B:05".
const TagMacID = "macid"

var macIDPattern = regexp.MustCompile(`^[0-9A-Fa-f]{6}(:[0-9A-Fa-f]{2}){3}$`)

// Validate is a type alias for validator.Validate.
type Validate = validator.Validate

// ValidationErrors is a type alias for validator.ValidationErrors.
type ValidationErrors = validator.ValidationErrors

// FieldError is a type alias for validator.FieldError.
type FieldError = validator.FieldError

// New creates a validator with the service's custom tags registered.
func New() *Validate {
	v := validator.New()
	_ = v.RegisterValidation(TagMacID, func(fl validator.FieldLevel) bool {
		return macIDPattern.MatchString(fl.Field().String())
	})
	return v
}
