// Package validation checks form-level field constraints for the GraphQL
// mutations. Inputs are structs tagged for go-playground/validator; failures
// are reported as domain.FieldError values, first error wins.
package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/inkwell/blog-backend/internal/core/domain"
)

// RegisterInput carries the registration form fields.
type RegisterInput struct {
	Username string `validate:"required"`
	Password string `validate:"min=5"`
}

// LoginInput carries the login form fields.
type LoginInput struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

// PostInput carries the create/update post form fields.
type PostInput struct {
	Title string `validate:"required"`
	Body  string `validate:"required"`
}

var validate = validator.New()

// Check validates an input struct and returns the first failure as a
// single-element field-error slice, or nil when the input is valid.
// Fields are checked in struct declaration order.
func Check(input any) []domain.FieldError {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) || len(ve) == 0 {
		// validator only returns InvalidValidationError for non-struct
		// input, which would be a programming error here.
		panic(fmt.Sprintf("validation: unexpected error: %v", err))
	}

	fe := ve[0]
	return []domain.FieldError{{
		Field:   strings.ToLower(fe.Field()),
		Message: message(fe),
	}}
}

// message converts a single ValidationError into the user-facing text for
// that field and rule.
func message(fe validator.FieldError) string {
	switch fe.Field() {
	case "Username":
		return "Please enter a username"
	case "Password":
		if fe.Tag() == "min" {
			return fmt.Sprintf("Password must be at least %s characters long", fe.Param())
		}
		return "Please enter a password"
	case "Title":
		return "Enter a title"
	case "Body":
		return "Body cannot be left empty"
	default:
		return fmt.Sprintf("%s failed validation (%s)", strings.ToLower(fe.Field()), fe.Tag())
	}
}
