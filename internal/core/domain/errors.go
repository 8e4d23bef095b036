package domain

import (
	"errors"
	"sort"
	"strings"
)

// Error kinds. Every error returned by the core wraps exactly one of these,
// so adapters can map them with errors.Is.
var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("permission denied")
	ErrNotFound        = errors.New("not found")
	ErrValidation      = errors.New("validation failed")
	ErrState           = errors.New("invalid state")
	ErrConflict        = errors.New("conflict")
)

var (
	ErrPollNotFound          = newError(ErrNotFound, "poll not found")
	ErrUserNotFound          = newError(ErrNotFound, "user not found")
	ErrInvalidPollID         = newError(ErrValidation, "invalid poll id")
	ErrInvalidUserID         = newError(ErrValidation, "invalid user id")
	ErrInvalidOption         = newError(ErrValidation, "invalid option")
	ErrUnknownBatch          = newError(ErrValidation, "unknown batch")
	ErrInvalidRole           = newError(ErrValidation, "invalid role")
	ErrPollInactive          = newError(ErrState, "poll inactive")
	ErrPollExpired           = newError(ErrState, "poll expired")
	ErrAlreadyVoted          = newError(ErrConflict, "already voted")
	ErrOptionAlreadySelected = newError(ErrConflict, "option already selected")
	ErrPollHasResponses      = newError(ErrConflict, "poll already has responses")
	ErrNotPollOwner          = newError(ErrForbidden, "only the poll creator or an admin may do this")
	ErrRoleNotAllowed        = newError(ErrForbidden, "role not allowed to perform this action")
	ErrNotInBatch            = newError(ErrForbidden, "poll is restricted to another batch")
	ErrInvalidToken          = newError(ErrUnauthenticated, "invalid or expired token")
)

// Error is a concrete core error tied to one of the kinds above.
type Error struct {
	kind error
	msg  string
}

func newError(kind error, msg string) *Error {
	return &Error{kind: kind, msg: msg}
}

func (e *Error) Error() string { return e.msg }

func (e *Error) Unwrap() error { return e.kind }

// ValidationError reports malformed input, keyed by the JSON field name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidation.Error()
	}

	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewFieldError builds a ValidationError for a single field.
func NewFieldError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}
