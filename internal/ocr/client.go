package ocr

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

var (
	// ErrUnavailable means the OCR service could not be reached at all.
	ErrUnavailable = errors.New("ocr service unavailable")

	// ErrUnhealthy means the OCR service answered with a non-success status.
	ErrUnhealthy = errors.New("ocr service returned an error")
)

// Client is the narrow boundary to the OCR engine. The extracted text is
// treated purely as upstream input; no interpretation happens here.
type Client interface {
	ExtractText(ctx context.Context, filename, contentType string, data []byte) (string, error)
	Ping(ctx context.Context) error
}

type httpClient struct {
	baseURL      string
	http         *http.Client
	probeTimeout time.Duration
}

// NewClient builds an OCR client. Large or complex images can take a while,
// so extraction uses a long timeout while Ping keeps a short one.
func NewClient(baseURL string, timeout, probeTimeout time.Duration) Client {
	return &httpClient{
		baseURL:      baseURL,
		http:         &http.Client{Timeout: timeout},
		probeTimeout: probeTimeout,
	}
}

type extractResponse struct {
	Success bool   `json:"success"`
	Text    string `json:"text"`
}

func (c *httpClient) ExtractText(ctx context.Context, filename, contentType string, data []byte) (string, error) {
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

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/extract", &body)
	if err != nil {
		return "", fmt.Errorf("failed to build ocr request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("%w: status %d: %s", ErrUnhealthy, resp.StatusCode, string(detail))
	}

	var result extractResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("%w: invalid response body: %v", ErrUnhealthy, err)
	}
	if !result.Success {
		return "", fmt.Errorf("%w: extraction reported failure", ErrUnhealthy)
	}

	// The service answers with a "no text found" sentinel string instead of
	// an error when the image has no readable text; it is relayed as-is.
	return result.Text, nil
}

func (c *httpClient) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.probeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrUnhealthy, resp.StatusCode)
	}
	return nil
}
