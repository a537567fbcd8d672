package errors

import "errors"

// Sentinel errors shared by the service and API layers. Services wrap them
// with context; the API layer matches them with errors.Is to choose a status.

var (
	// ErrValidation marks input rejected at the API boundary (unknown element
	// kind, malformed body). Maps to 400 Bad Request.
	ErrValidation = errors.New("validation failed")

	// ErrInternal marks storage failures whose details stay out of the
	// response. Maps to 500.
	ErrInternal = errors.New("internal server error")
)
