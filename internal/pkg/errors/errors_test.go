package errors

import (
	stderrors "errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpstreamUnavailable(t *testing.T) {
	err := UpstreamUnavailable("https://example.test/Place/GetStop/1", 503, io.ErrUnexpectedEOF)

	assert.True(t, stderrors.Is(err, ErrUpstreamUnavailable))
	assert.True(t, stderrors.Is(err, io.ErrUnexpectedEOF))
	assert.False(t, stderrors.Is(err, ErrUpstreamMalformedResponse))
	assert.Equal(t, "https://example.test/Place/GetStop/1", err.Details["url"])
	assert.Equal(t, 503, err.Details["status"])
	assert.False(t, err.IsClientError())
}

func TestWithDetails_DoesNotMutateSentinel(t *testing.T) {
	_ = MalformedRecord("stop", "Name")

	assert.Empty(t, ErrMalformedUpstreamRecord.Details)
	assert.Nil(t, ErrMalformedUpstreamRecord.Err)
}

func TestAs(t *testing.T) {
	wrapped := fmt.Errorf("resolve stop: %w", ErrAmbiguousLocationInput)

	appErr, ok := As(wrapped)
	require.True(t, ok)
	assert.Equal(t, CodeAmbiguousLocationInput, appErr.Code)
	assert.True(t, appErr.IsClientError())

	_, ok = As(io.EOF)
	assert.False(t, ok)
}

func TestError(t *testing.T) {
	assert.Equal(t, "NOT_FOUND: Resource not found", ErrNotFound.Error())
	assert.Contains(t, UpstreamMalformedResponse("u", io.EOF).Error(), "EOF")
}

func TestExtensions(t *testing.T) {
	ext := MalformedRecord("Line", "Name").Extensions()
	assert.Equal(t, CodeMalformedUpstreamRecord, ext["code"])
	assert.Equal(t, map[string]interface{}{"record": "Line", "field": "Name"}, ext["details"])

	assert.NotContains(t, ErrNotFound.Extensions(), "details")
}
