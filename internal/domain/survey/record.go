// Package survey holds the front-end's view of surveys returned by the backend.
package survey

import (
	"fmt"
	"strings"
)

// Placeholder is displayed for every absent record field.
const Placeholder = "N/A"

// FallbackError is displayed when a non-list lookup response carries no error text.
const FallbackError = "Unexpected response format"

// Record is one survey returned by a lookup. Empty fields are absent.
type Record struct {
	title string
	path  string
	state string
}

// NewRecord creates a record. Pass "" for absent fields.
func NewRecord(title, path, state string) Record {
	return Record{title: title, path: path, state: state}
}

// Title returns the raw title ("" when absent).
func (r Record) Title() string { return r.title }

// Path returns the raw slash-delimited path ("" when absent).
func (r Record) Path() string { return r.path }

// State returns the raw state ("" when absent).
func (r Record) State() string { return r.state }

// Cells returns title, path and state with Placeholder substituted for absent values.
func (r Record) Cells() [3]string {
	return [3]string{orPlaceholder(r.title), orPlaceholder(r.path), orPlaceholder(r.state)}
}

// ExportID derives the export identifier from the record's path.
func (r Record) ExportID() (string, error) {
	return ParseID(r.path)
}

func orPlaceholder(v string) string {
	if v == "" {
		return Placeholder
	}
	return v
}

// ParseID returns the third slash-delimited segment of path.
// "a/b/surveyXYZ" and "a/b/surveyXYZ/extra" both yield "surveyXYZ".
func ParseID(path string) (string, error) {
	if path == "" {
		return "", ErrMissingPath
	}
	parts := strings.Split(path, "/")
	if len(parts) < 3 || parts[2] == "" {
		return "", fmt.Errorf("%w: %q", ErrMalformedPath, path)
	}
	return parts[2], nil
}

// Filename is the name a downloaded export is saved under.
func Filename(id string) string {
	return "survey_" + id + ".docx"
}
