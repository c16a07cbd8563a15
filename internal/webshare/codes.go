package webshare

import "fmt"

// Code is an error code reported by the native share layer.
type Code string

const (
	CodeAlreadySharing Code = "AlreadySharing"
	CodeCancel         Code = "Cancel"
)

// Known reports whether the code has a defined translation.
func (c Code) Known() bool {
	switch c {
	case CodeAlreadySharing, CodeCancel:
		return true
	}
	return false
}

// Err translates the code into a rejection. Unrecognized codes become
// UnknownError so the caller's Result always settles.
func (c Code) Err() *Error {
	switch c {
	case CodeAlreadySharing:
		return &Error{Kind: KindInvalidState, Code: c, Message: "cannot share twice concurrently"}
	case CodeCancel:
		return &Error{Kind: KindAbort, Code: c, Message: "operation canceled by the user"}
	default:
		return &Error{Kind: KindUnknown, Code: c, Message: fmt.Sprintf("native share failed with code %q", string(c))}
	}
}
