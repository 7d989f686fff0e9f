package apperror

import "net/http"

// AppError is the typed error carried from usecases to the HTTP boundary.
// Code doubles as the HTTP status; Err holds the underlying cause and is
// never serialized to clients.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// BadRequest covers validation failures (malformed input, bad dates).
func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, message, nil)
}

func Unauthorized(message string) *AppError {
	return New(http.StatusUnauthorized, message, nil)
}

func Forbidden(message string) *AppError {
	return New(http.StatusForbidden, message, nil)
}

func NotFound(message string) *AppError {
	return New(http.StatusNotFound, message, nil)
}

// Conflict surfaces uniqueness violations, e.g. a duplicate application
// for the same candidate and job offer.
func Conflict(message string) *AppError {
	return New(http.StatusConflict, message, nil)
}

// Internal wraps storage and other infrastructure failures behind a
// generic message so internals never leak to clients.
func Internal(err error) *AppError {
	return New(http.StatusInternalServerError, "Internal Server Error", err)
}
