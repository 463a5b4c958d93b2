// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GiveLink Contributors

// Package validators performs client-side validation of request payloads
// before any network call is attempted. Rules are declared as `validate`
// struct tags on the models and enforced with go-playground/validator.
package validators

// Validator checks a request payload against its declared rules.
type Validator interface {
	// Validate returns nil when obj satisfies all of its `validate` tags,
	// or an error wrapping [ErrValidation] describing the first offending
	// fields otherwise.
	Validate(obj any) error
}
