package llm

import "errors"

var (
	// ErrNotConfigured indicates the client is disabled or has no API key.
	ErrNotConfigured = errors.New("llm not configured")

	// ErrUnavailable indicates the completion endpoint could not be reached.
	ErrUnavailable = errors.New("llm service unavailable")

	// ErrTimeout indicates the LLM request exceeded the configured timeout.
	ErrTimeout = errors.New("llm request timed out")

	// ErrEmptyResponse indicates the service answered without any candidate text.
	ErrEmptyResponse = errors.New("llm returned no text")

	// ErrRetryExhausted indicates all retry attempts have been exhausted.
	ErrRetryExhausted = errors.New("llm retry attempts exhausted")
)
