package survey

// LookupResult is the outcome of a lookup: either a list of records or a
// failure message reported by the backend.
type LookupResult struct {
	records []Record
	list    bool
	failure string
}

// NewListResult creates a list-shaped result. A nil slice is an empty list.
func NewListResult(records []Record) LookupResult {
	return LookupResult{records: records, list: true}
}

// NewFailureResult creates a non-list result. An empty message falls back to FallbackError.
func NewFailureResult(message string) LookupResult {
	if message == "" {
		message = FallbackError
	}
	return LookupResult{failure: message}
}

// IsList reports whether the backend answered with a list.
func (r LookupResult) IsList() bool { return r.list }

// Records returns the records of a list result.
func (r LookupResult) Records() []Record { return r.records }

// Failure returns the message of a non-list result.
func (r LookupResult) Failure() string { return r.failure }
