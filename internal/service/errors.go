package service

import "fmt"

// ValidationError means the input was rejected before any store access.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func invalid(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// NotFoundError means a point lookup, update-only write or delete found no
// row for Key.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.Key)
}

// ConstraintError means the write would break referential integrity, for
// example a cleaning for an unknown room or deleting a room still in use.
type ConstraintError struct {
	Msg string
}

func (e *ConstraintError) Error() string { return e.Msg }

// StoreError wraps an unexpected failure of the relational store. Op and
// Key identify the operation for logging; the driver error is never shown
// to clients.
type StoreError struct {
	Op  string
	Key string
	Err error
}

func (e *StoreError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Key, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

func storeErr(op, key string, err error) error {
	return &StoreError{Op: op, Key: key, Err: err}
}
