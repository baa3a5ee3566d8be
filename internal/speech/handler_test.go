package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSynthesizer struct {
	audio string
	err   error
}

func (f *fakeSynthesizer) Synthesize(ctx context.Context, text string) (string, error) {
	return f.audio, f.err
}

type fakeTranscriber struct {
	text string
	err  error
}

func (f *fakeTranscriber) Transcribe(ctx context.Context, filename string, data []byte) (string, error) {
	return f.text, f.err
}

func TestTextToSpeech(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		h := NewHandler(&fakeSynthesizer{audio: "YXVkaW8="}, nil)
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"text":"hello"}`))
		rec := httptest.NewRecorder()
		h.TextToSpeech(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "YXVkaW8=", body["audio"])
	})

	t.Run("EmptyText", func(t *testing.T) {
		h := NewHandler(&fakeSynthesizer{}, nil)
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"text":""}`))
		rec := httptest.NewRecorder()
		h.TextToSpeech(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("ServiceUnavailable", func(t *testing.T) {
		h := NewHandler(&fakeSynthesizer{err: fmt.Errorf("%w: connect refused", ErrUnavailable)}, nil)
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"text":"hello"}`))
		rec := httptest.NewRecorder()
		h.TextToSpeech(rec, req)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("ServiceError", func(t *testing.T) {
		h := NewHandler(&fakeSynthesizer{err: errors.New("tts service returned status 500")}, nil)
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"text":"hello"}`))
		rec := httptest.NewRecorder()
		h.TextToSpeech(rec, req)
		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})
}

func TestProcessAudio(t *testing.T) {
	audioRequest := func(t *testing.T, field string) *http.Request {
		t.Helper()
		var body bytes.Buffer
		writer := multipart.NewWriter(&body)
		part, err := writer.CreateFormFile(field, "lecture.wav")
		require.NoError(t, err)
		_, err = part.Write([]byte("fake-wav"))
		require.NoError(t, err)
		require.NoError(t, writer.Close())

		req := httptest.NewRequest(http.MethodPost, "/", &body)
		req.Header.Set("Content-Type", writer.FormDataContentType())
		return req
	}

	t.Run("Success", func(t *testing.T) {
		h := NewHandler(nil, &fakeTranscriber{text: "transcribed words"})
		rec := httptest.NewRecorder()
		h.ProcessAudio(rec, audioRequest(t, "file"))

		require.Equal(t, http.StatusOK, rec.Code)
		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "transcribed words", body["text"])
	})

	t.Run("MissingFile", func(t *testing.T) {
		h := NewHandler(nil, &fakeTranscriber{})
		rec := httptest.NewRecorder()
		h.ProcessAudio(rec, audioRequest(t, "audio"))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("ServiceUnavailable", func(t *testing.T) {
		h := NewHandler(nil, &fakeTranscriber{err: ErrUnavailable})
		rec := httptest.NewRecorder()
		h.ProcessAudio(rec, audioRequest(t, "file"))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}
