// Package validator provides a custom Validator type for accumulating
// field-level validation errors and joining them into a single message.
package validator

import "strings"

// Validator collects validation error messages keyed by field name.
// A Validator with no recorded errors is considered valid.
//
// Messages are also kept in insertion order so Joined() produces a
// deterministic combined message for the submitting form.
type Validator struct {
	Errors   map[string]string
	messages []string
}

// New creates and returns a fresh, empty Validator.
func New() *Validator {
	return &Validator{Errors: make(map[string]string)}
}

// Valid returns true if no errors have been recorded.
func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

// AddError records key as failing with the given message.
// If key already has an error it is not overwritten, so the first
// failure for a field is always the one that is reported.
func (v *Validator) AddError(key, message string) {
	if _, exists := v.Errors[key]; !exists {
		v.Errors[key] = message
		v.messages = append(v.messages, message)
	}
}

// Check adds an error for key with message only when ok is false.
// Use this as a single-line guard:
//
//	v.Check(len(title) > 0, "title", "must be provided")
func (v *Validator) Check(ok bool, key, message string) {
	if !ok {
		v.AddError(key, message)
	}
}

// Joined returns every recorded message in the order it was added,
// separated by a single space. Returns "" when the Validator is valid.
func (v *Validator) Joined() string {
	return strings.Join(v.messages, " ")
}
