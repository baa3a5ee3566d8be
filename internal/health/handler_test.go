package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studycoach/backend/internal/generation"
	"github.com/studycoach/backend/internal/ocr"
)

type fakeProber struct {
	err error
}

func (f *fakeProber) Ping(ctx context.Context) error { return f.err }

func checkServices(t *testing.T, h *Handler) map[string]interface{} {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	h.Check(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	services, ok := body["services"].(map[string]interface{})
	require.True(t, ok)
	return services
}

func TestCheck(t *testing.T) {
	t.Run("AllHealthy", func(t *testing.T) {
		h := NewHandler(&fakeProber{}, &fakeProber{})
		services := checkServices(t, h)
		assert.Equal(t, "healthy", services["llm"])
		assert.Equal(t, "healthy", services["ocr"])
	})

	t.Run("LLMUnreachable", func(t *testing.T) {
		llmErr := &generation.CompletionError{
			Class: generation.FailureUnreachable,
			Err:   errors.New("connect refused"),
		}
		h := NewHandler(&fakeProber{err: llmErr}, &fakeProber{})
		services := checkServices(t, h)
		assert.Equal(t, "unreachable", services["llm"])
		assert.Equal(t, "healthy", services["ocr"])
	})

	t.Run("LLMUnhealthy", func(t *testing.T) {
		llmErr := &generation.CompletionError{
			Class:  generation.FailureUpstream,
			Status: http.StatusInternalServerError,
			Err:    errors.New("internal error"),
		}
		h := NewHandler(&fakeProber{err: llmErr}, &fakeProber{})
		services := checkServices(t, h)
		assert.Equal(t, "unhealthy", services["llm"])
	})

	t.Run("OCRStatuses", func(t *testing.T) {
		h := NewHandler(&fakeProber{}, &fakeProber{err: ocr.ErrUnhealthy})
		services := checkServices(t, h)
		assert.Equal(t, "unhealthy", services["ocr"])

		h = NewHandler(&fakeProber{}, &fakeProber{err: ocr.ErrUnavailable})
		services = checkServices(t, h)
		assert.Equal(t, "unreachable", services["ocr"])
	})
}

func TestRoot(t *testing.T) {
	h := NewHandler(&fakeProber{}, &fakeProber{})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.Root(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
}
