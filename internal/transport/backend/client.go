// Package backend adapts the public SDK client to the use-case contracts.
package backend

import (
	"context"
	"fmt"

	"github.com/kailas-cloud/surveyfront/internal/domain/survey"
	surveyfront "github.com/kailas-cloud/surveyfront/pkg/sdk"
)

// API is the subset of the SDK client used by the adapter.
type API interface {
	Lookup(ctx context.Context, surveyID string) (surveyfront.LookupResponse, error)
	Export(ctx context.Context, surveyID string) (*surveyfront.Download, error)
	Ping(ctx context.Context) error
}

// Client implements lookup.Looker, export.Exporter and health.BackendPinger.
type Client struct {
	api API
}

// New wraps an SDK client.
func New(api API) *Client {
	return &Client{api: api}
}

// Lookup implements lookup.Looker.
func (c *Client) Lookup(ctx context.Context, query string) (survey.LookupResult, error) {
	resp, err := c.api.Lookup(ctx, query)
	if err != nil {
		return survey.LookupResult{}, fmt.Errorf("backend lookup: %w", err)
	}
	if !resp.IsList {
		return survey.NewFailureResult(resp.Error), nil
	}
	recs := make([]survey.Record, len(resp.Records))
	for i, r := range resp.Records {
		recs[i] = survey.NewRecord(r.Title, r.Path, r.State)
	}
	return survey.NewListResult(recs), nil
}

// Export implements export.Exporter.
func (c *Client) Export(ctx context.Context, id string) (survey.Artifact, error) {
	dl, err := c.api.Export(ctx, id)
	if err != nil {
		return survey.Artifact{}, fmt.Errorf("backend export: %w", err)
	}
	return survey.Artifact{
		ID:          id,
		Filename:    dl.Filename,
		ContentType: dl.ContentType,
		Size:        dl.Size,
		Body:        dl.Body,
	}, nil
}

// Ping implements health.BackendPinger.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.api.Ping(ctx); err != nil {
		return fmt.Errorf("backend ping: %w", err)
	}
	return nil
}
