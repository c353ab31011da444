package domain

import (
	"errors"
	"fmt"
)

type ErrorCode string

const (
	CodeValidation      ErrorCode = "VALIDATION_ERROR"
	CodeEventNotFound   ErrorCode = "EVENT_NOT_FOUND"
	CodeVendorNotFound  ErrorCode = "VENDOR_NOT_FOUND"
	CodeVenueNotFound   ErrorCode = "VENUE_NOT_FOUND"
	CodeBookingNotFound ErrorCode = "BOOKING_NOT_FOUND"
	CodeUnauthorized    ErrorCode = "UNAUTHORIZED"
	// Reserved for transition-rule enforcement; nothing raises it today.
	CodeConflict ErrorCode = "CONFLICT"
	CodeInternal ErrorCode = "INTERNAL_ERROR"
)

// Error is the discriminated failure every use case returns. The code is
// what crosses the wire; storage errors never do.
type Error struct {
	Code    ErrorCode
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

var (
	ErrEventNotFound   = &Error{Code: CodeEventNotFound, Message: "Event not found"}
	ErrVendorNotFound  = &Error{Code: CodeVendorNotFound, Message: "Vendor not found"}
	ErrVenueNotFound   = &Error{Code: CodeVenueNotFound, Message: "Venue not found"}
	ErrBookingNotFound = &Error{Code: CodeBookingNotFound, Message: "Booking not found"}
	ErrUnauthorized    = &Error{Code: CodeUnauthorized, Message: "Invalid or missing credentials"}
)

func NewValidationError(format string, args ...interface{}) *Error {
	return &Error{Code: CodeValidation, Message: fmt.Sprintf(format, args...)}
}

// AsError unwraps err into a *Error if one is in the chain.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
