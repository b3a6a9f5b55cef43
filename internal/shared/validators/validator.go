package validators

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Validate is a type alias for validator.Validate.
type Validate = validator.Validate

// ValidationErrors is a type alias for validator.ValidationErrors.
type ValidationErrors = validator.ValidationErrors

// FieldError is a type alias for validator.FieldError.
type FieldError = validator.FieldError

// TagDatePattern validates a regexp that captures an 8-digit date in a group named "date".
const TagDatePattern = "date_pattern"

// New creates a new validator instance with the app's custom tags registered.
func New() *Validate {
	v := validator.New()
	_ = v.RegisterValidation(TagDatePattern, validateDatePattern)
	return v
}

func validateDatePattern(fl validator.FieldLevel) bool {
	re, err := regexp.Compile(fl.Field().String())
	if err != nil {
		return false
	}
	return re.SubexpIndex("date") > 0
}
