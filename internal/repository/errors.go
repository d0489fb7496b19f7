package repository

import "errors"

// ErrNotFound is returned (wrapped) when a requested key does not exist.
var ErrNotFound = errors.New("not found")
