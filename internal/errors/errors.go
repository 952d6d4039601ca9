package errors

import "errors"

// This package defines the sentinel errors shared by the services of both
// servers. Services wrap them with fmt.Errorf("%w: ...") to add a client-facing
// detail, and the API layer uses errors.Is to map them to HTTP responses.
// Business code never deals in status codes.

var (
	// ErrNotFound signifies that a folder, file or user does not exist.
	// Mapped to 404 with a generic message; the wrapped detail is not shown.
	ErrNotFound = errors.New("resource not found")

	// ErrValidation is returned when client input fails a business rule,
	// such as an unsupported file extension or an empty search query.
	// Mapped to 400.
	ErrValidation = errors.New("validation failed")

	// ErrConflict signifies that a username or email is already registered.
	// The database UNIQUE constraints back this up when two registrations race.
	// Mapped to 409.
	ErrConflict = errors.New("resource conflict")

	// ErrPermission signifies that a resource exists but belongs to another
	// user. Mapped to 403 "Access denied" so ownership is never described.
	ErrPermission = errors.New("permission denied")

	// ErrUnauthorized is returned for a missing or unknown API key and for
	// bad login credentials. Mapped to 401.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrTooLarge is returned when an upload exceeds the configured size.
	// Mapped to 413.
	ErrTooLarge = errors.New("payload too large")

	// ErrInternal signifies an unexpected failure on the server, such as a
	// database or filesystem error. The cause is logged and the client only
	// sees a generic 500.
	ErrInternal = errors.New("internal server error")
)
