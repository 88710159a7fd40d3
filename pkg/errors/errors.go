package errors

import (
	"fmt"
	"net/http"
)

const (
	CodeNotFound     = "NOT_FOUND"
	CodeValidation   = "VALIDATION_ERROR"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeConflict     = "CONFLICT"
	CodeInternal     = "INTERNAL_ERROR"
	CodeBadRequest   = "BAD_REQUEST"
	CodeUpstream     = "UPSTREAM_ERROR"
	CodeInvalidInput = "INVALID_INPUT"

	// Join failures carry their own codes so the UI can surface each
	// distinctly instead of collapsing them into a generic message.
	CodeSlotsFull     = "SLOTS_FULL"
	CodeAlreadyJoined = "ALREADY_JOINED"
	CodeBookingClosed = "BOOKING_CLOSED"
	CodeInvalidInvite = "INVALID_INVITE"
)

type AppError struct {
	Code       string         `json:"code"`
	Message    string         `json:"message"`
	HTTPStatus int            `json:"-"`
	Details    map[string]any `json:"details,omitempty"`
	Redirect   string         `json:"redirect,omitempty"`
	Err        error          `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) StatusCode() int {
	return e.HTTPStatus
}

func (e *AppError) WithDetails(details map[string]any) *AppError {
	e.Details = details
	return e
}

// WithRedirect attaches a navigation hint for the browser. Used by the
// global 401 rule so the failing response itself tells the client where
// to go, not just the one after it.
func (e *AppError) WithRedirect(path string) *AppError {
	e.Redirect = path
	return e
}

func New(code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

func Wrap(err error, code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

func NotFound(resource string) *AppError {
	return &AppError{
		Code:       CodeNotFound,
		Message:    fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
	}
}

func NotFoundWithID(resource, id string) *AppError {
	return &AppError{
		Code:       CodeNotFound,
		Message:    fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
		Details: map[string]any{
			"resource": resource,
			"id":       id,
		},
	}
}

func Validation(message string, details map[string]any) *AppError {
	return &AppError{
		Code:       CodeValidation,
		Message:    message,
		HTTPStatus: http.StatusUnprocessableEntity,
		Details:    details,
	}
}

func InvalidInput(message string) *AppError {
	return &AppError{
		Code:       CodeInvalidInput,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

func Unauthorized(message string) *AppError {
	return &AppError{
		Code:       CodeUnauthorized,
		Message:    message,
		HTTPStatus: http.StatusUnauthorized,
	}
}

func Forbidden(message string) *AppError {
	return &AppError{
		Code:       CodeForbidden,
		Message:    message,
		HTTPStatus: http.StatusForbidden,
	}
}

func Conflict(message string) *AppError {
	return &AppError{
		Code:       CodeConflict,
		Message:    message,
		HTTPStatus: http.StatusConflict,
	}
}

func Internal(message string, err error) *AppError {
	return &AppError{
		Code:       CodeInternal,
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func Upstream(message string, err error) *AppError {
	return &AppError{
		Code:       CodeUpstream,
		Message:    message,
		HTTPStatus: http.StatusBadGateway,
		Err:        err,
	}
}

func SlotsFull() *AppError {
	return &AppError{
		Code:       CodeSlotsFull,
		Message:    "no slots remaining on this booking",
		HTTPStatus: http.StatusConflict,
	}
}

func AlreadyJoined() *AppError {
	return &AppError{
		Code:       CodeAlreadyJoined,
		Message:    "you have already joined this booking",
		HTTPStatus: http.StatusConflict,
	}
}

func BookingClosed() *AppError {
	return &AppError{
		Code:       CodeBookingClosed,
		Message:    "this booking is no longer open for joining",
		HTTPStatus: http.StatusConflict,
	}
}

func InvalidInvite(code string) *AppError {
	return &AppError{
		Code:       CodeInvalidInvite,
		Message:    "invite code is invalid or has expired",
		HTTPStatus: http.StatusNotFound,
		Details: map[string]any{
			"invite_code": code,
		},
	}
}

func IsAppError(err error) bool {
	_, ok := err.(*AppError)
	return ok
}

// AsAppError returns err as an AppError, wrapping unknown errors as internal
// so raw errors never leak to a response body.
func AsAppError(err error) *AppError {
	if appErr, ok := err.(*AppError); ok {
		return appErr
	}
	return Internal("An unexpected error occurred", err)
}

// HasCode reports whether err is an AppError carrying the given code.
func HasCode(err error, code string) bool {
	appErr, ok := err.(*AppError)
	return ok && appErr.Code == code
}
