package surveyfront

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedResponse signals a lookup body that is not valid JSON.
	ErrMalformedResponse = errors.New("malformed response")
	// ErrUnexpectedStatus signals a non-2xx export response.
	ErrUnexpectedStatus = errors.New("unexpected status")
)

// StatusError wraps ErrUnexpectedStatus with the response status and a body excerpt.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: %d", ErrUnexpectedStatus.Error(), e.StatusCode)
	}
	return fmt.Sprintf("%s: %d: %s", ErrUnexpectedStatus.Error(), e.StatusCode, e.Body)
}

func (e *StatusError) Unwrap() error { return ErrUnexpectedStatus }
