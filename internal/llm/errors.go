package llm

import (
	"encoding/json"
	"fmt"
	"time"
)

// ErrRateLimit indicates the provider returned a rate limit error (429).
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrInvalidResponse indicates the model returned content that does not
// conform to the requested schema.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid model response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrProviderUnavailable indicates the provider is down or unreachable,
// including auth and quota failures reaching it.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("model provider unavailable: %v", e.Err)
	}
	return "model provider unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrEmptyResponse indicates the model returned no content at all.
// This is a distinct hard failure: a silently empty answer on a
// mutation-capable surface would be indistinguishable from a valid empty
// payload, so it is never coerced to an empty string.
type ErrEmptyResponse struct {
	Model string
}

func (e *ErrEmptyResponse) Error() string {
	if e.Model != "" {
		return fmt.Sprintf("model %s returned an empty response", e.Model)
	}
	return "model returned an empty response"
}

// ErrMaxTokensExceeded indicates the response was truncated because it
// hit the MaxTokens limit.
type ErrMaxTokensExceeded struct {
	Content json.RawMessage
}

func (e *ErrMaxTokensExceeded) Error() string {
	return "model response truncated: max tokens exceeded"
}
