package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	openai "github.com/sashabaranov/go-openai"

	"preinscription-chatbot/pkg/gemini"
)

var (
	// ErrAllProvidersFailed indicates all providers failed to generate content
	ErrAllProvidersFailed = errors.New("all providers failed")

	// ErrNoProvidersConfigured indicates no providers are enabled
	ErrNoProvidersConfigured = errors.New("no providers configured")

	// ErrInvalidRequest indicates the request is malformed
	ErrInvalidRequest = errors.New("invalid request")

	// ErrEmptyResponse indicates the provider answered without any text
	ErrEmptyResponse = errors.New("empty response")

	// ErrBlocked indicates the provider withheld the answer for safety reasons
	ErrBlocked = errors.New("response blocked")
)

// ProviderError wraps provider-specific errors
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// retryable reports whether sending the same request again to the same provider
// can succeed. Safety blocks, cancellations and client errors other than 429
// (bad key, unknown model) fail the same way every time.
func retryable(err error) bool {
	if errors.Is(err, ErrBlocked) || errors.Is(err, ErrInvalidRequest) || errors.Is(err, context.Canceled) {
		return false
	}

	status := 0
	var gErr *gemini.APIError
	var oErr *openai.APIError
	var rErr *openai.RequestError
	switch {
	case errors.As(err, &gErr):
		status = gErr.StatusCode
	case errors.As(err, &oErr):
		status = oErr.HTTPStatusCode
	case errors.As(err, &rErr):
		status = rErr.HTTPStatusCode
	}

	if status >= http.StatusBadRequest && status < http.StatusInternalServerError {
		return status == http.StatusTooManyRequests
	}
	return true
}
