package surveyfront

import "io"

// Record is one survey from a lookup. Empty fields were absent or falsy in the response.
type Record struct {
	Title string
	Path  string
	State string
}

// LookupResponse is a decoded lookup body.
type LookupResponse struct {
	// IsList reports whether the body was a JSON array.
	IsList  bool
	Records []Record
	// Error is the "error" field of a non-list body, "" when missing.
	Error string
}

// Download is an export response with its body still open.
// The caller must close Body.
type Download struct {
	SurveyID string
	// Filename is always survey_<id>.docx; any name the backend suggests is ignored.
	Filename    string
	ContentType string
	Size        int64 // -1 when unknown
	Body        io.ReadCloser
}
