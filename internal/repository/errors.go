package repository

import "errors"

// ErrNotFound is returned when a lookup for a single row (user, folder, file)
// matches nothing. Services translate it into app_errors.ErrNotFound so the
// business layer never sees sql.ErrNoRows.
var ErrNotFound = errors.New("repository: not found")

// ErrDuplicate is returned when an insert or update violates a UNIQUE
// constraint, e.g. a username, email or API key already in use.
var ErrDuplicate = errors.New("repository: duplicate")
