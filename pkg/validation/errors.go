package validation

import "errors"

var (
	// ErrPolicyFileUnreadable is returned when a policy file cannot be read.
	ErrPolicyFileUnreadable = errors.New("failed to read validation policy file")

	// ErrPolicyFileInvalid is returned when a policy file cannot be parsed
	// or carries out-of-range values.
	ErrPolicyFileInvalid = errors.New("invalid validation policy file")
)
