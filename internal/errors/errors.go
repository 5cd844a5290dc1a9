package errors

import "errors"

// Sentinel errors shared by the catalog layers. Services and repositories wrap
// these with fmt.Errorf("%w: ...") and the API layer maps them to HTTP status
// codes with errors.Is.

var (
	// ErrNotFound is returned when a catalog entry or its parameters do not exist.
	// Mapped to 404 Not Found.
	ErrNotFound = errors.New("resource not found")

	// ErrValidation is returned when a schema shape fails construction, e.g. a
	// negative model_input_context_greater_than.
	// Mapped to 400 Bad Request.
	ErrValidation = errors.New("validation failed")

	// ErrConflict is returned when registering a model id that already exists.
	// Mapped to 409 Conflict.
	ErrConflict = errors.New("resource conflict")

	// ErrPermission is returned when the caller may not perform the action.
	// Mapped to 403 Forbidden.
	ErrPermission = errors.New("permission denied")

	// ErrInternal hides unexpected failures from clients.
	// Mapped to 500 Internal Server Error.
	ErrInternal = errors.New("internal server error")
)
