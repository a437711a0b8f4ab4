// Package repositories holds errors shared by every repository.
package repositories

import "errors"

var (
	ErrOperationNotSupported = errors.New("operation not supported")
	ErrNotFound              = errors.New("record not found")
)
