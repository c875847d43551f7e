package survey

import "io"

// Artifact is an exported document in flight from the backend to a download sink.
// Body must be closed exactly once, right after the sink has consumed it.
type Artifact struct {
	ID          string
	Filename    string
	ContentType string
	Size        int64 // -1 when unknown
	Body        io.ReadCloser
}
