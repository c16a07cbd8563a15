package webshare

import (
	"errors"
	"fmt"
)

// Kind is the name a rejection carries on the web side.
type Kind string

const (
	KindType         Kind = "TypeError"
	KindNotAllowed   Kind = "NotAllowedError"
	KindInvalidState Kind = "InvalidStateError"
	KindAbort        Kind = "AbortError"
	KindUnknown      Kind = "UnknownError"
)

// Sentinels for errors.Is. Matching is by Kind only.
var (
	ErrType         = &Error{Kind: KindType}
	ErrNotAllowed   = &Error{Kind: KindNotAllowed}
	ErrInvalidState = &Error{Kind: KindInvalidState}
	ErrAbort        = &Error{Kind: KindAbort}
	ErrUnknown      = &Error{Kind: KindUnknown}
)

// Error is a share rejection.
type Error struct {
	Kind    Kind
	Field   string
	Message string
	// Code is the native error code for rejections coming from the bridge.
	Code Code
	Err  error
}

func (e *Error) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the Kind of a share error, or "" if err is not one.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

func typeError(field, format string, args ...any) *Error {
	return &Error{Kind: KindType, Field: field, Message: fmt.Sprintf(format, args...)}
}

// WireError is the JSON form of a rejection that the page-side polyfill
// rebuilds into a TypeError or DOMException.
type WireError struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

// ToWire converts any error; errors that are not share rejections become
// UnknownError.
func ToWire(err error) WireError {
	var e *Error
	if errors.As(err, &e) {
		return WireError{Name: string(e.Kind), Message: e.Message}
	}
	return WireError{Name: string(KindUnknown), Message: err.Error()}
}
