package pkg

import "fmt"

// AppError is the error shape returned to HTTP clients.
//
// Code is a stable machine-readable identifier, Message a human-readable summary.
// Err keeps the underlying cause for logging and is never serialized.
type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
}

// HTTPError is the JSON body written for an AppError.
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus, Err: err}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// WithDetails returns a copy carrying a client-safe detail string.
func (e *AppError) WithDetails(details string) *AppError {
	cp := *e
	cp.Err = detailError(details)
	return &cp
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) ToHTTPError() HTTPError {
	out := HTTPError{Code: e.Code, Message: e.Message}
	if d, ok := e.Err.(detailError); ok {
		out.Details = string(d)
	}
	return out
}

type detailError string

func (d detailError) Error() string { return string(d) }
