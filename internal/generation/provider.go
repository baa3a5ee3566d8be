package generation

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ollama/ollama/api"
	"github.com/studycoach/backend/internal/config"
)

// FailureClass tags every way a completion call can fail.
type FailureClass string

const (
	FailureTimeout     FailureClass = "timeout"
	FailureUnreachable FailureClass = "connection-unreachable"
	FailureUpstream    FailureClass = "upstream-error"
	FailureEmpty       FailureClass = "empty-response"
)

// CompletionError classifies a failed completion call. Every underlying
// failure maps to exactly one FailureClass.
type CompletionError struct {
	Class  FailureClass
	Status int // HTTP status for FailureUpstream
	Err    error
}

func (e *CompletionError) Error() string {
	if e.Class == FailureUpstream && e.Status != 0 {
		return fmt.Sprintf("completion failed (%s, status %d): %v", e.Class, e.Status, e.Err)
	}
	return fmt.Sprintf("completion failed (%s): %v", e.Class, e.Err)
}

func (e *CompletionError) Unwrap() error { return e.Err }

// Provider performs a single completion exchange with the model backend.
// Implementations hold no per-call state and are safe to share across
// concurrent sub-tasks.
type Provider interface {
	Complete(ctx context.Context, prompt, system string) (string, error)
	Ping(ctx context.Context) error
}

type ollamaProvider struct {
	client          *api.Client
	model           string
	generateTimeout time.Duration
	probeTimeout    time.Duration
}

// NewOllamaProvider builds a Provider talking to a local Ollama instance.
func NewOllamaProvider(cfg *config.Config) (Provider, error) {
	base, err := url.Parse(cfg.OllamaURL)
	if err != nil {
		return nil, fmt.Errorf("invalid OLLAMA_URL %q: %w", cfg.OllamaURL, err)
	}

	return &ollamaProvider{
		client:          api.NewClient(base, http.DefaultClient),
		model:           cfg.OllamaModel,
		generateTimeout: cfg.GenerateTimeout,
		probeTimeout:    cfg.ProbeTimeout,
	}, nil
}

// Complete issues one generation call. Local inference latency grows with
// input and target length, so the deadline is the long generation timeout,
// not the short probe one. There is exactly one attempt; retrying is the
// caller's decision.
func (p *ollamaProvider) Complete(ctx context.Context, prompt, system string) (string, error) {
	log := config.WithContext(ctx)
	ctx, cancel := context.WithTimeout(ctx, p.generateTimeout)
	defer cancel()

	stream := false
	req := &api.GenerateRequest{
		Model:  p.model,
		Prompt: prompt,
		System: system,
		Stream: &stream,
	}

	log.WithField("model", p.model).WithField("prompt_chars", len(prompt)).Info("Calling model backend")

	var sb strings.Builder
	err := p.client.Generate(ctx, req, func(resp api.GenerateResponse) error {
		sb.WriteString(resp.Response)
		return nil
	})
	if err != nil {
		cerr := classify(err)
		log.WithError(cerr).Error("Completion call failed")
		return "", cerr
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		cerr := &CompletionError{Class: FailureEmpty, Err: errors.New("model returned an empty response")}
		log.WithError(cerr).Warn("Model returned empty response")
		return "", cerr
	}
	return text, nil
}

// Ping probes backend reachability with the short timeout.
func (p *ollamaProvider) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, p.probeTimeout)
	defer cancel()

	if _, err := p.client.Version(ctx); err != nil {
		return classify(err)
	}
	return nil
}

// classify maps an underlying call failure onto the closed FailureClass set.
func classify(err error) *CompletionError {
	if errors.Is(err, context.DeadlineExceeded) {
		return &CompletionError{Class: FailureTimeout, Err: err}
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &CompletionError{Class: FailureTimeout, Err: err}
	}

	var statusErr api.StatusError
	if errors.As(err, &statusErr) {
		return &CompletionError{Class: FailureUpstream, Status: statusErr.StatusCode, Err: err}
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return &CompletionError{Class: FailureUnreachable, Err: err}
	}

	// Anything left came out of the backend itself: the client surfaces
	// error payloads as plain errors without a status code.
	return &CompletionError{Class: FailureUpstream, Err: err}
}
