// Package errs holds the failure taxonomy returned by the review rule engine.
package errs

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindNotFound    Kind = "NotFound"
	KindValidation  Kind = "ValidationError"
	KindConflict    Kind = "Conflict"
	KindRateLimited Kind = "RateLimited"
	KindInternal    Kind = "Internal"
)

// Sentinels for errors.Is matching against a kind.
var (
	ErrNotFound    = &Error{Kind: KindNotFound}
	ErrValidation  = &Error{Kind: KindValidation}
	ErrConflict    = &Error{Kind: KindConflict}
	ErrRateLimited = &Error{Kind: KindRateLimited}
	ErrInternal    = &Error{Kind: KindInternal}
)

type Error struct {
	Kind    Kind
	Message string
	// Field names the offending payload field of a validation failure.
	Field string
	// Context carries the entity that caused a conflict or rate limit.
	Context any
	cause   error
}

func (e *Error) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}

	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

func (e *Error) Is(target error) bool {
	var other *Error
	if !errors.As(target, &other) {
		return false
	}

	return other.Kind == e.Kind && (other.Message == "" || other.Message == e.Message)
}

func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func Validation(field string, message string) *Error {
	return &Error{Kind: KindValidation, Field: field, Message: message}
}

func Conflict(message string, context any) *Error {
	return &Error{Kind: KindConflict, Message: message, Context: context}
}

func RateLimited(message string, context any) *Error {
	return &Error{Kind: KindRateLimited, Message: message, Context: context}
}

func Internal(cause error) *Error {
	return &Error{Kind: KindInternal, Message: "internal error", cause: cause}
}

// KindOf returns the kind of the first *Error in the chain, or KindInternal.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}

	return KindInternal
}
