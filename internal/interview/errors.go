package interview

import "errors"

var (
	// ErrMissingSessionID reports a request without a session identifier.
	ErrMissingSessionID = errors.New("interview: session ID is required")

	// ErrSessionNotFound reports a non-start action against an unknown id.
	ErrSessionNotFound = errors.New("interview: session not found")

	// ErrInvalidAction reports an unrecognized action name.
	ErrInvalidAction = errors.New("interview: invalid action specified")
)
