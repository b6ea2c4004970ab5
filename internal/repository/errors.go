package repository

import "errors"

// ErrNotFound signals that a row does not exist. Callers use errors.Is to
// tell a definitive miss apart from a transient database failure; only the
// latter is worth retrying.
var ErrNotFound = errors.New("not found")
