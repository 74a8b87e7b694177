package content

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	webberrors "github.com/webb-inc/webb/pkg/errors"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *tracetest.SpanRecorder) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	client := NewClient("studio", "secret",
		WithBaseURL(srv.URL+"/api/v1"),
		WithHTTPClient(srv.Client()),
		WithTracer(provider.Tracer("test")),
	)
	return client, recorder
}

func TestClientListSendsKeyAndFilters(t *testing.T) {
	client, recorder := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/projects", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("X-MICROCMS-API-KEY"))
		assert.Equal(t, "20", r.URL.Query().Get("limit"))
		assert.Equal(t, "category[contains]MV", r.URL.Query().Get("filters"))

		_ = json.NewEncoder(w).Encode(ListResponse{
			Contents:   []Project{{ID: "a", Title: "Night Drive", Category: []Category{CategoryMV}}},
			TotalCount: 1,
			Limit:      20,
		})
	})

	resp, err := client.List(context.Background(), ListQuery{Limit: 20, Category: CategoryMV})
	require.NoError(t, err)
	require.Len(t, resp.Contents, 1)
	assert.Equal(t, "Night Drive", resp.Contents[0].Title)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "content.list", spans[0].Name())
	assert.Equal(t, codes.Unset, spans[0].Status().Code)
}

func TestClientListDefaultsLimit(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "100", r.URL.Query().Get("limit"))
		assert.Empty(t, r.URL.Query().Get("filters"))
		_ = json.NewEncoder(w).Encode(ListResponse{})
	})

	resp, err := client.List(context.Background(), ListQuery{})
	require.NoError(t, err)
	assert.Empty(t, resp.Contents)
}

func TestClientReturnsRequestErrorOnBadStatus(t *testing.T) {
	client, recorder := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid api key", http.StatusUnauthorized)
	})

	_, err := client.List(context.Background(), ListQuery{Limit: 5})
	require.Error(t, err)

	var reqErr *webberrors.RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusUnauthorized, reqErr.Status)
	assert.Contains(t, err.Error(), "invalid api key")

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
}

func TestClientReturnsParseErrorOnMalformedBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{not json"))
	})

	_, err := client.List(context.Background(), ListQuery{})
	var parseErr *webberrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "projects", parseErr.Path)
}

func TestClientGetEscapesID(t *testing.T) {
	client, recorder := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/projects/abc", r.URL.Path)
		_ = json.NewEncoder(w).Encode(Project{ID: "abc", Title: "Aurora", Category: []Category{CategoryJamesWebb}})
	})

	project, err := client.Get(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, "Aurora", project.Title)
	assert.True(t, project.HasCategory(CategoryJamesWebb))

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "content.get", spans[0].Name())
}

func TestNewClientBuildsServiceURL(t *testing.T) {
	client := NewClient("webb", "key")
	assert.Equal(t, "https://webb.microcms.io/api/v1", client.baseURL)
}
