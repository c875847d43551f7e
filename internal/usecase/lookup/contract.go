package lookup

import (
	"context"

	"github.com/kailas-cloud/surveyfront/internal/domain/survey"
)

// Looker asks the backend for surveys matching a query.
type Looker interface {
	Lookup(ctx context.Context, query string) (survey.LookupResult, error)
}
