package generation

import "errors"

// Errors returned by the generation service.
var (
	// ErrInvalidRequest is returned for empty text or an unknown kind, before
	// any external call is made.
	ErrInvalidRequest = errors.New("invalid generation request")

	// ErrUpstreamUnavailable is returned when the model backend cannot be
	// reached or does not answer in time.
	ErrUpstreamUnavailable = errors.New("language model backend unavailable")

	// ErrUpstreamError is returned when the model backend answers with a
	// non-success status.
	ErrUpstreamError = errors.New("language model backend returned an error")

	// ErrEmptyGeneration is returned when the model responded but no usable
	// content could be extracted.
	ErrEmptyGeneration = errors.New("model produced no usable content")
)
