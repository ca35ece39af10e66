// internal/util/errors.go
package util

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by services wraps exactly one of these,
// and the HTTP layer maps them to status codes.
var (
	ErrInvalidInput = errors.New("invalid input provided")
	ErrNotFound     = errors.New("resource not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrStore        = errors.New("store failure")
)

// Specific application errors, each tagged with a kind.
var (
	ErrPasswordMismatch   = tagged(ErrInvalidInput, "passwords don't match")
	ErrDuplicateEmail     = tagged(ErrInvalidInput, "email is already registered")
	ErrNegativeAmount     = tagged(ErrInvalidInput, "amount must not be negative")
	ErrNegativeScore      = tagged(ErrInvalidInput, "score must not be negative")
	ErrScoreTooLarge      = tagged(ErrInvalidInput, "score must be at most 2147483647")
	ErrGoalTooLong        = tagged(ErrInvalidInput, "days must be at most 36500")
	ErrSelfFriend         = tagged(ErrInvalidInput, "you cannot add yourself as a friend")
	ErrAlreadyFriends     = tagged(ErrInvalidInput, "users are already friends")
	ErrUserNotFound       = tagged(ErrNotFound, "user not found")
	ErrPurchaseNotFound   = tagged(ErrNotFound, "purchase not found")
	ErrInvalidCredentials = tagged(ErrUnauthorized, "invalid email or password")
)

type taggedError struct {
	kind error
	msg  string
}

func (e *taggedError) Error() string { return e.msg }
func (e *taggedError) Unwrap() error { return e.kind }

func tagged(kind error, msg string) error {
	return &taggedError{kind: kind, msg: msg}
}

// Invalid returns a validation error carrying msg.
func Invalid(msg string) error {
	return tagged(ErrInvalidInput, msg)
}

type storeError struct {
	op  string
	err error
}

func (e *storeError) Error() string   { return fmt.Sprintf("%s: %v", e.op, e.err) }
func (e *storeError) Unwrap() []error { return []error{ErrStore, e.err} }

// StoreError tags a persistence failure so it matches ErrStore while keeping
// the driver error reachable through errors.Is / errors.As.
func StoreError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &storeError{op: op, err: err}
}

// IsError reports whether any error in err's chain matches target.
func IsError(err, target error) bool {
	return errors.Is(err, target)
}
