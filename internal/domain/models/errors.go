package models

import "errors"

// ErrNotFound indicates the requested record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrValidation indicates a request was rejected before reaching the store.
var ErrValidation = errors.New("validation failed")
