package repository

import "errors"

// Storage outcomes reported in a driver-agnostic way. The service layer
// translates them into app_errors sentinels.

// ErrNotFound is returned when a model or its stored parameters do not exist.
var ErrNotFound = errors.New("repository: not found")

// ErrDuplicate is returned when a model id is already registered.
var ErrDuplicate = errors.New("repository: duplicate key")
