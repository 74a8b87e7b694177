package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	webberrors "github.com/webb-inc/webb/pkg/errors"
)

const (
	projectsEndpoint = "projects"
	apiKeyHeader     = "X-MICROCMS-API-KEY"
	tracerName       = "github.com/webb-inc/webb/internal/content"

	// DefaultLimit is the page size used when callers do not ask for one.
	DefaultLimit = 100
)

// ListQuery narrows a list request.
type ListQuery struct {
	Limit    int
	Offset   int
	Category Category
}

// Source is a read-only origin of project records.
type Source interface {
	List(ctx context.Context, q ListQuery) (*ListResponse, error)
	Get(ctx context.Context, id string) (*Project, error)
}

// Client talks to the headless content service over HTTPS.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	tracer  trace.Tracer
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient swaps the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithBaseURL points the client at an alternative API root.
func WithBaseURL(base string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(base, "/")
	}
}

// WithTracer sets the tracer used for request spans.
func WithTracer(t trace.Tracer) Option {
	return func(c *Client) {
		if t != nil {
			c.tracer = t
		}
	}
}

// NewClient builds a client for the given service domain and API key.
func NewClient(serviceDomain, apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL: fmt.Sprintf("https://%s.microcms.io/api/v1", serviceDomain),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 10 * time.Second},
		tracer:  otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// List fetches a page of projects.
func (c *Client) List(ctx context.Context, q ListQuery) (*ListResponse, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	ctx, span := c.tracer.Start(ctx, "content.list", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	span.SetAttributes(
		attribute.String("content.endpoint", projectsEndpoint),
		attribute.Int("content.limit", limit),
	)

	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))
	if q.Offset > 0 {
		params.Set("offset", strconv.Itoa(q.Offset))
	}
	if q.Category != "" {
		params.Set("filters", "category[contains]"+string(q.Category))
		span.SetAttributes(attribute.String("content.category", string(q.Category)))
	}

	var resp ListResponse
	if err := c.do(ctx, projectsEndpoint, params, &resp); err != nil {
		recordError(span, err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("content.count", len(resp.Contents)))
	return &resp, nil
}

// Get fetches a single project by id.
func (c *Client) Get(ctx context.Context, id string) (*Project, error) {
	endpoint := projectsEndpoint + "/" + url.PathEscape(id)

	ctx, span := c.tracer.Start(ctx, "content.get", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	span.SetAttributes(
		attribute.String("content.endpoint", projectsEndpoint),
		attribute.String("content.id", id),
	)

	var project Project
	if err := c.do(ctx, endpoint, nil, &project); err != nil {
		recordError(span, err)
		return nil, err
	}
	return &project, nil
}

func (c *Client) do(ctx context.Context, endpoint string, params url.Values, out any) error {
	target := c.baseURL + "/" + endpoint
	if len(params) > 0 {
		target += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return webberrors.NewRequestError(endpoint, 0, err)
	}
	req.Header.Set(apiKeyHeader, c.apiKey)
	req.Header.Set("Accept", "application/json")
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.http.Do(req)
	if err != nil {
		return webberrors.NewRequestError(endpoint, 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return webberrors.NewRequestError(endpoint, resp.StatusCode, errors.New(strings.TrimSpace(string(body))))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return webberrors.NewParseError(endpoint, 0, err)
	}
	return nil
}

func recordError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	var reqErr *webberrors.RequestError
	if errors.As(err, &reqErr) && reqErr.Status != 0 {
		span.SetAttributes(attribute.Int("http.status_code", reqErr.Status))
	}
}

var _ Source = (*Client)(nil)
