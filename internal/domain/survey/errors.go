package survey

import "errors"

var (
	// ErrMissingPath signals a record without a path to derive an export ID from.
	ErrMissingPath = errors.New("record has no path")
	// ErrMalformedPath signals a path without a non-empty third segment.
	ErrMalformedPath = errors.New("malformed survey path")
)
