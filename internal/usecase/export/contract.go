package export

import (
	"context"

	"github.com/kailas-cloud/surveyfront/internal/domain/survey"
)

// Exporter fetches a rendered survey document from the backend.
type Exporter interface {
	Export(ctx context.Context, id string) (survey.Artifact, error)
}

// Sink delivers an artifact to the user: a file on disk, a browser download.
// Save reads a.Body but must not close it. It returns where the artifact went.
type Sink interface {
	Save(ctx context.Context, a survey.Artifact) (string, error)
}
