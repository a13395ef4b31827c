package repository

import "errors"

// ErrNotFound is returned when the requested row does not exist.
var ErrNotFound = errors.New("record not found")

// ErrConflict is returned when an insert or update violates a unique
// constraint (§4.3 "Key design decisions").
var ErrConflict = errors.New("record already exists")
