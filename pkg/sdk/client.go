package surveyfront

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	lookupPath = "/api/lookup"
	exportPath = "/api/export"

	// maxLookupBody caps how much of a lookup response is read.
	maxLookupBody = 16 << 20
	// maxErrorBody caps the excerpt kept in StatusError.
	maxErrorBody = 1024

	defaultUserAgent = "surveyfront-sdk"
)

// Client talks to the survey backend.
type Client struct {
	base      *url.URL
	http      *http.Client
	apiKey    string
	userAgent string
	obs       *observer
}

// New creates a Client for the backend at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("surveyfront: backend base URL required")
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("surveyfront: parse base URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("surveyfront: base URL must be http or https, got %q", baseURL)
	}

	cfg := &clientConfig{timeout: defaultTimeout, userAgent: defaultUserAgent}
	for _, o := range opts {
		o.apply(cfg)
	}

	hc := cfg.httpClient
	if hc == nil {
		hc = &http.Client{Timeout: cfg.timeout}
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	return &Client{
		base:      u,
		http:      hc,
		apiKey:    cfg.apiKey,
		userAgent: cfg.userAgent,
		obs:       obs,
	}, nil
}

// Lookup posts surveyID to the lookup endpoint and decodes the body by shape.
// Network failures and bodies that are not JSON are returned as errors; any
// HTTP status with a JSON body is a valid response.
func (c *Client) Lookup(ctx context.Context, surveyID string) (res LookupResponse, err error) {
	start := time.Now()
	reqID := requestIDFrom(ctx)
	defer func() { c.obs.observe("lookup", reqID, start, err) }()

	resp, err := c.post(ctx, lookupPath, surveyID, reqID, "application/json")
	if err != nil {
		return LookupResponse{}, err
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxLookupBody))
	if err != nil {
		return LookupResponse{}, fmt.Errorf("lookup: read body: %w", err)
	}

	res, err = decodeLookup(data)
	if err != nil {
		return LookupResponse{}, fmt.Errorf("lookup: %w", err)
	}
	return res, nil
}

// Export posts surveyID to the export endpoint and returns the open document body,
// named survey_<surveyID>.docx whatever the response headers say.
// Non-2xx responses return a *StatusError.
func (c *Client) Export(ctx context.Context, surveyID string) (dl *Download, err error) {
	start := time.Now()
	reqID := requestIDFrom(ctx)
	defer func() { c.obs.observe("export", reqID, start, err) }()

	resp, err := c.post(ctx, exportPath, surveyID, reqID, "*/*")
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		_ = resp.Body.Close()
		return nil, fmt.Errorf("export: %w", &StatusError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		})
	}

	return &Download{
		SurveyID:    surveyID,
		Filename:    "survey_" + surveyID + ".docx",
		ContentType: resp.Header.Get("Content-Type"),
		Size:        resp.ContentLength,
		Body:        resp.Body,
	}, nil
}

// Ping checks that the backend answers HTTP at all. Any status counts as reachable.
func (c *Client) Ping(ctx context.Context) (err error) {
	start := time.Now()
	reqID := requestIDFrom(ctx)
	defer func() { c.obs.observe("ping", reqID, start, err) }()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base.String(), http.NoBody)
	if err != nil {
		return fmt.Errorf("ping: new request: %w", err)
	}
	c.setHeaders(req, reqID)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))
	_ = resp.Body.Close()
	return nil
}

type surveyRequest struct {
	SurveyID string `json:"survey_id"`
}

func (c *Client) post(ctx context.Context, p, surveyID, reqID, accept string) (*http.Response, error) {
	body, err := json.Marshal(surveyRequest{SurveyID: surveyID})
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	u := c.base.JoinPath(p)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	c.setHeaders(req, reqID)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", accept)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s request: %w", p, err)
	}
	return resp, nil
}

func (c *Client) setHeaders(req *http.Request, reqID string) {
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", reqID)
	if c.apiKey != "" {
		req.Header.Set("x-apikey", c.apiKey)
	}
}

type requestIDKey struct{}

// ContextWithRequestID makes backend calls made with ctx carry id in X-Request-ID.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func requestIDFrom(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok && id != "" {
		return id
	}
	return uuid.NewString()
}

// decodeLookup classifies a lookup body: a JSON array is a list, any other
// JSON value is a failure carrying its "error" field when present.
func decodeLookup(data []byte) (LookupResponse, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return LookupResponse{}, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	switch v := raw.(type) {
	case []any:
		recs := make([]Record, len(v))
		for i, item := range v {
			obj, _ := item.(map[string]any)
			recs[i] = Record{
				Title: displayField(obj, "title"),
				Path:  displayField(obj, "path"),
				State: displayField(obj, "state"),
			}
		}
		return LookupResponse{IsList: true, Records: recs}, nil
	case map[string]any:
		return LookupResponse{Error: displayField(v, "error")}, nil
	default:
		return LookupResponse{}, nil
	}
}

// displayField returns obj[key] as display text. Falsy values (null, false,
// 0, "") are treated as absent and yield "".
func displayField(obj map[string]any, key string) string {
	switch x := obj[key].(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		if !x {
			return ""
		}
		return "true"
	case float64:
		if x == 0 || math.IsNaN(x) {
			return ""
		}
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		b, err := json.Marshal(x)
		if err != nil {
			return fmt.Sprint(x)
		}
		return string(b)
	}
}
