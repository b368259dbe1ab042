package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/trivia-hub/trivia-service/internal/errors"
)

// Validator wraps struct-tag validation for request and model types.
type Validator struct {
	structValidator *validator.Validate
}

// New creates a new validator instance with all custom rules registered.
func New() *Validator {
	structValidator := validator.New()
	registerCustomValidators(structValidator)

	return &Validator{
		structValidator: structValidator,
	}
}

// ValidateStruct validates struct tags and returns the shared
// ValidationErrors type so callers can map it uniformly.
func (v *Validator) ValidateStruct(s interface{}) error {
	if err := v.structValidator.Struct(s); err != nil {
		if translated := apperrors.ToValidationErrors(err); len(translated) > 0 {
			return translated
		}
		return err
	}
	return nil
}

// registerCustomValidators registers all custom validation functions
func registerCustomValidators(validate *validator.Validate) {
	validate.RegisterValidation("difficulty_level", validateDifficultyLevel)

	// Custom tag name function for better error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// validateDifficultyLevel accepts integers in the inclusive range [1,5].
func validateDifficultyLevel(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() == reflect.Ptr {
		if field.IsNil() {
			return false
		}
		field = field.Elem()
	}
	switch field.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		value := field.Int()
		return value >= 1 && value <= 5
	default:
		return false
	}
}
