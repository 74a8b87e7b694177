package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("webb.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "webb.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "webb.yaml:12")
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("fallback_projects[0].category", "unknown category", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "fallback_projects[0].category", validationErr.Field)
	require.Contains(t, err.Error(), "unknown category")
}

func TestRequestErrorIncludesStatus(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("unauthorized")
	err := NewRequestError("projects", 401, underlying)

	var requestErr *RequestError
	require.ErrorAs(t, err, &requestErr)
	require.Equal(t, "projects", requestErr.Endpoint)
	require.False(t, requestErr.NotFound())
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "status 401")
}

func TestRequestErrorWithoutResponse(t *testing.T) {
	t.Parallel()

	err := NewRequestError("projects/abc", 0, stdErrors.New("dial tcp: refused"))
	require.Equal(t, "request error [projects/abc]: dial tcp: refused", err.Error())

	notFound := NewRequestError("projects/abc", 404, stdErrors.New("not found"))
	var requestErr *RequestError
	require.ErrorAs(t, notFound, &requestErr)
	require.True(t, requestErr.NotFound())
}
