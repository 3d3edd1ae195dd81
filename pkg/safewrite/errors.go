package safewrite

import "errors"

var (
	// ErrUnsafeWrite is returned when validation refuses a write.
	ErrUnsafeWrite = errors.New("document failed pre-write validation")

	// ErrNothingToWrite is returned when sanitization stripped every field
	// of an update.
	ErrNothingToWrite = errors.New("no fields left to write after sanitization")

	// ErrInvalidFieldPath is returned for a malformed dotted field path in
	// a partial update.
	ErrInvalidFieldPath = errors.New("invalid field path")

	// ErrFailedToConnect is returned when the store is unreachable after
	// all retry attempts.
	ErrFailedToConnect = errors.New("failed to connect to document store")

	// ErrHealthcheckFailed is returned when the store ping fails.
	ErrHealthcheckFailed = errors.New("document store healthcheck failed")
)
