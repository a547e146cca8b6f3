// Package validation checks flow inputs and structured model outputs
// against their declared shapes. Shapes are Go structs annotated with
// `validate` tags; a violation is reported as a typed *Error naming the
// offending field and the violated rule.
package validation

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Error reports a value that failed its declared shape.
type Error struct {
	// Field is the name of the offending field.
	Field string

	// Rule is the violated constraint, e.g. "required", "min", "datauri".
	Rule string
}

func (e *Error) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("validation failed: %s", e.Rule)
	}
	return fmt.Sprintf("field %q failed on the %q rule", e.Field, e.Rule)
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Check validates v against its struct tags. It returns nil when v
// conforms, or a *Error describing the first violation. Values reaching
// the generation client must have passed Check; structured model outputs
// must pass Check again before being returned to the caller.
func Check(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return &Error{Field: fieldErrs[0].Field(), Rule: fieldErrs[0].Tag()}
	}

	// InvalidValidationError: v was not a struct at all.
	return &Error{Rule: err.Error()}
}
