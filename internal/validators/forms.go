// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GiveLink Contributors

package validators

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

type formValidator struct {
	validate *validator.Validate
}

// NewFormValidator constructs the [Validator] used by every form-backed
// flow (login, registration, donation submission, urgent needs, contact).
func NewFormValidator() Validator {
	return &formValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

func (f *formValidator) Validate(obj any) error {
	err := f.validate.Struct(obj)
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return fmt.Errorf("%w: unsupported value of type %T", ErrValidation, obj)
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %s", ErrValidation, describe(fieldErrs))
	}

	return fmt.Errorf("%w: %v", ErrValidation, err)
}

// describe turns validator's field errors into the short human-readable
// sentences the error overlay shows.
func describe(fieldErrs validator.ValidationErrors) string {
	reasons := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			reasons = append(reasons, field+" is required")
		case "email":
			reasons = append(reasons, field+" must be a valid email address")
		case "min":
			reasons = append(reasons, fmt.Sprintf("%s must be at least %s characters", field, fe.Param()))
		case "max":
			reasons = append(reasons, fmt.Sprintf("%s must be at most %s", field, fe.Param()))
		case "gt":
			reasons = append(reasons, fmt.Sprintf("%s must be greater than %s", field, fe.Param()))
		default:
			reasons = append(reasons, fmt.Sprintf("%s is invalid (%s)", field, fe.Tag()))
		}
	}
	return strings.Join(reasons, "; ")
}
