package common

import (
	"errors"
	"fmt"
)

type NotFoundError struct {
	Entity string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

func NewNotFound(entity string) error {
	return NotFoundError{Entity: entity}
}

func IsNotFound(err error) bool {
	var nf NotFoundError
	return errors.As(err, &nf)
}

// ConflictError reports a write that collides with existing state.
type ConflictError struct {
	Entity string
}

func (e ConflictError) Error() string {
	return fmt.Sprintf("%s already exists", e.Entity)
}

func NewConflict(entity string) error {
	return ConflictError{Entity: entity}
}

func IsConflict(err error) bool {
	var ce ConflictError
	return errors.As(err, &ce)
}

// UnavailableError reports a store that could not serve the call in time,
// e.g. an exhausted connection pool.
type UnavailableError struct {
	Cause error
}

func (e UnavailableError) Error() string {
	if e.Cause == nil {
		return "store unavailable"
	}
	return fmt.Sprintf("store unavailable: %v", e.Cause)
}

func (e UnavailableError) Unwrap() error { return e.Cause }

func NewUnavailable(cause error) error {
	return UnavailableError{Cause: cause}
}

func IsUnavailable(err error) bool {
	var ue UnavailableError
	return errors.As(err, &ue)
}
