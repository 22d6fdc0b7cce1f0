package repository

import "errors"

// ErrNotFound is returned when a referenced record does not exist. Callers
// distinguish it from store failures with errors.Is.
var ErrNotFound = errors.New("record not found")
