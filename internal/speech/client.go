package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

// ErrUnavailable means a speech service could not be reached.
var ErrUnavailable = errors.New("speech service unavailable")

// Synthesizer converts text to audio via the external TTS service.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) (string, error)
}

// Transcriber converts recorded audio to text via the external
// speech-to-text service.
type Transcriber interface {
	Transcribe(ctx context.Context, filename string, data []byte) (string, error)
}

type ttsClient struct {
	url  string
	http *http.Client
}

func NewSynthesizer(url string, timeout time.Duration) Synthesizer {
	return &ttsClient{url: url, http: &http.Client{Timeout: timeout}}
}

// Synthesize returns base64-encoded audio for the given text. Pure
// pass-through; audio encoding is the TTS service's concern.
func (c *ttsClient) Synthesize(ctx context.Context, text string) (string, error) {
	payload, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return "", fmt.Errorf("failed to encode tts request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build tts request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("tts service returned status %d: %s", resp.StatusCode, string(detail))
	}

	var result struct {
		Audio string `json:"audio"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("invalid tts response body: %w", err)
	}
	return result.Audio, nil
}

type whisperClient struct {
	url  string
	http *http.Client
}

func NewTranscriber(url string, timeout time.Duration) Transcriber {
	return &whisperClient{url: url, http: &http.Client{Timeout: timeout}}
}

func (c *whisperClient) Transcribe(ctx context.Context, filename string, data []byte) (string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("failed to build multipart body: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return "", fmt.Errorf("failed to build multipart body: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to build multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, &body)
	if err != nil {
		return "", fmt.Errorf("failed to build transcription request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("transcription service returned status %d: %s", resp.StatusCode, string(detail))
	}

	var result struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("invalid transcription response body: %w", err)
	}
	return result.Text, nil
}
