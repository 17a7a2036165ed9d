package repository

import (
	"errors"
	"fmt"
)

// ErrUnassignedID is wrapped in a StorageError when an operation needs a
// persisted entity but receives one without a key.
var ErrUnassignedID = errors.New("entity has no assigned id")

// ErrNilEntity is wrapped in a StorageError when Save or Delete receive nil.
var ErrNilEntity = errors.New("nil entity")

// StorageError reports that the relational engine rejected an operation.
type StorageError struct {
	Op     string // save, find_all, count, find_by_id, delete
	Entity string
	Err    error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s %s: %v", e.Op, e.Entity, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// NotFoundError reports that no row exists for the requested key.
type NotFoundError struct {
	Entity string
	ID     any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %v not found", e.Entity, e.ID)
}

// IsNotFound reports whether err is, or wraps, a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
