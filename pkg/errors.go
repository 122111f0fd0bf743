package pkg

import "github.com/gin-gonic/gin"

// AppError is the error shape surfaced by HTTP handlers.
//
// Code is a stable machine-readable identifier, Message is the client-facing
// text, Details carries collected business-rule violations (never
// short-circuited) and Err holds the internal cause, which is logged but
// never returned to the caller.
type AppError struct {
	Code       string
	Message    string
	Details    []string
	Err        error
	HTTPStatus int
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Code + ": " + e.Message + ": " + e.Err.Error()
	}
	return e.Code + ": " + e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// NewValidationError carries the full list of violated rules back to the
// client in one response.
func NewValidationError(code, message string, details []string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Details: details, HTTPStatus: httpStatus}
}

// ToHTTPError renders the client-facing body. Err is intentionally omitted.
func (e *AppError) ToHTTPError() gin.H {
	body := gin.H{
		"code":  e.Code,
		"error": e.Message,
	}
	if len(e.Details) > 0 {
		body["details"] = e.Details
	}
	return body
}
