package request

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidJSON        = errors.New("invalid json")
	ErrInvalidContentType = errors.New("invalid content type")
	ErrBodyTooLarge       = errors.New("body exceeded size limit")
	ErrBodyUnreadable     = errors.New("failed to read body")
)

// BodyError is returned by the body accessor when the request body
// cannot be parsed. Reason is one of the sentinel errors above.
type BodyError struct {
	Reason error
	Err    error
}

func newBodyError(reason, err error) *BodyError {
	return &BodyError{Reason: reason, Err: err}
}

func (e *BodyError) Error() string {
	if e.Err == nil {
		return e.Reason.Error()
	}

	return fmt.Sprintf("%s: %s", e.Reason, e.Err)
}

func (e *BodyError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Reason}
	}

	return []error{e.Reason, e.Err}
}
