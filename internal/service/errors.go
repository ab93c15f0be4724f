package service

import (
	"errors"
	"fmt"
	"net/http"
)

// ValidationError indicates input rejected before any request was issued.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// RemoteError indicates a transport failure or non-2xx response.
// Op names the operation that failed; Status is zero for transport errors.
type RemoteError struct {
	Op     string
	Status int
	Err    error
}

func (e *RemoteError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: backend returned %d", e.Op, e.Status)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *RemoteError) Unwrap() error { return e.Err }

// NotFoundError indicates the targeted entity no longer exists,
// either locally or at the backend.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsNotFound reports whether err means the target entity is gone:
// a NotFoundError, or a RemoteError carrying a 404.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	if errors.As(err, &nf) {
		return true
	}
	var re *RemoteError
	return errors.As(err, &re) && re.Status == http.StatusNotFound
}
