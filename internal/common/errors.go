package common

import (
	"errors"
	"fmt"
)

// ErrNotFound signals that a lookup target does not exist. Callers are
// expected to translate it into a 404 rather than a generic failure.
var ErrNotFound = errors.New("not found")

// DataAccessError is returned when a storage operation fails. The
// underlying cause is kept for logging but the Error text stays opaque
// so storage internals never reach the end user.
type DataAccessError struct {
	Op  string // short description of what was being fetched or written
	Err error
}

func (e *DataAccessError) Error() string {
	return fmt.Sprintf("failed to fetch %s", e.Op)
}

func (e *DataAccessError) Unwrap() error { return e.Err }

// NewDataAccessError wraps a storage fault for the given operation.
func NewDataAccessError(op string, err error) *DataAccessError {
	return &DataAccessError{Op: op, Err: err}
}

// FormState is the structured result of a failed mutation: per-field
// error lists plus a generic message. A nil *FormState means the
// mutation succeeded.
type FormState struct {
	Errors  map[string][]string `json:"errors,omitempty"`
	Message string              `json:"message,omitempty"`
}

// Auth error classification, mirrored by the login handler's
// user-facing messages.
const (
	AuthErrorCredentials = "credentials" // email/password did not match
	AuthErrorBackend     = "backend"     // user lookup or hashing failed
)

// AuthError is a classified authentication failure. Unclassified errors
// (anything that is not an *AuthError) must be propagated untouched.
type AuthError struct {
	Type string
	Err  error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("auth error (%s): %v", e.Type, e.Err)
	}
	return fmt.Sprintf("auth error (%s)", e.Type)
}

func (e *AuthError) Unwrap() error { return e.Err }
