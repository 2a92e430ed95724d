package usecase

import (
	"errors"
	"fmt"
)

// ImportParseError reports a structurally malformed import file. The import is
// abandoned as a whole; nothing from the file is kept.
type ImportParseError struct {
	Line int
	Err  error
}

func (e *ImportParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("import parse error on line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("import parse error: %v", e.Err)
}

func (e *ImportParseError) Unwrap() error { return e.Err }

// ValidationError means the request was refused before any remote call was made.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "validation failed: " + e.Reason
	}
	return fmt.Sprintf("validation failed: %s: %s", e.Field, e.Reason)
}

// RemoteError wraps a failed call to the record store, the property data
// service or the upload archive. Local state is left as it was before the call.
type RemoteError struct {
	Op  string
	Err error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *RemoteError) Unwrap() error { return e.Err }

// NotFoundError is returned when the record an operation targets does not exist.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

// ErrMissingOwner is returned by every operation invoked without an owner identity.
var ErrMissingOwner = &ValidationError{Field: "owner_id", Reason: "no authenticated owner"}

func remoteErr(op string, err error) error {
	if err == nil {
		return nil
	}
	var re *RemoteError
	if errors.As(err, &re) {
		return err
	}
	return &RemoteError{Op: op, Err: err}
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsParse(err error) bool {
	var pe *ImportParseError
	return errors.As(err, &pe)
}

func IsRemote(err error) bool {
	var re *RemoteError
	return errors.As(err, &re)
}
