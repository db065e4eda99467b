package seoplatform

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	// ErrUnauthorized indicates an invalid or missing API key.
	ErrUnauthorized = errors.New("seoplatform: unauthorized")

	// ErrRateLimited indicates the request was rate limited.
	ErrRateLimited = errors.New("seoplatform: rate limited")

	// ErrRealtimeDisabled indicates a realtime operation was attempted on a
	// client constructed without WithRealtime.
	ErrRealtimeDisabled = errors.New("seoplatform: realtime not enabled")

	// ErrRealtimeNotConnected indicates a realtime operation that requires an
	// active connection was attempted while disconnected.
	ErrRealtimeNotConnected = errors.New("seoplatform: realtime not connected")

	// ErrRealtimeAlreadyConnected indicates Connect was called on an already
	// connected channel.
	ErrRealtimeAlreadyConnected = errors.New("seoplatform: realtime already connected")
)

// AuthError represents an authentication failure (HTTP 401).
type AuthError struct {
	// Message is the human-readable error message.
	Message string
	// RequestID is the unique identifier for the request (for support).
	RequestID string
}

func (e *AuthError) Error() string {
	if e.RequestID != "" {
		return fmt.Sprintf("seoplatform: authentication failed: %s (request_id=%s)", e.Message, e.RequestID)
	}
	return fmt.Sprintf("seoplatform: authentication failed: %s", e.Message)
}

// Is implements errors.Is support for ErrUnauthorized.
func (e *AuthError) Is(target error) bool {
	return target == ErrUnauthorized
}

// RateLimitError represents a rate-limit failure (HTTP 429).
type RateLimitError struct {
	// RetryAfter is the value of the Retry-After response header,
	// or "unknown" when the server did not send one.
	RetryAfter string
	// RequestID is the unique identifier for the request.
	RequestID string
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("seoplatform: rate limit exceeded, retry after %s seconds", e.RetryAfter)
}

// Is implements errors.Is support for ErrRateLimited.
func (e *RateLimitError) Is(target error) bool {
	return target == ErrRateLimited
}

// APIError represents any other non-2xx response from the API.
type APIError struct {
	// HTTPStatus is the HTTP status code.
	HTTPStatus int
	// Code is the error code from the API, if the response carried one.
	Code string
	// Message is the human-readable error message.
	Message string
	// RequestID is the unique identifier for the request (for support).
	RequestID string
}

func (e *APIError) Error() string {
	if e.RequestID != "" {
		return fmt.Sprintf("seoplatform: %s (code=%s, status=%d, request_id=%s)",
			e.Message, e.Code, e.HTTPStatus, e.RequestID)
	}
	return fmt.Sprintf("seoplatform: %s (code=%s, status=%d)",
		e.Message, e.Code, e.HTTPStatus)
}

// NetworkError wraps network-related errors, including timeouts.
type NetworkError struct {
	Op  string // Operation that failed (e.g., "request", "dial")
	Err error  // Underlying error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("seoplatform: network error during %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ChannelError represents a misuse of the realtime channel, such as
// subscribing while disconnected or connecting twice.
type ChannelError struct {
	// Op is the attempted operation (e.g., "subscribe").
	Op string
	// Reason is the sentinel describing the channel state.
	Reason error
}

func (e *ChannelError) Error() string {
	return fmt.Sprintf("seoplatform: %s failed: %v", e.Op, e.Reason)
}

func (e *ChannelError) Unwrap() error {
	return e.Reason
}

// IsUnauthorized reports whether the error is an authentication error.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// IsRateLimited reports whether the error indicates rate limiting.
func IsRateLimited(err error) bool {
	return errors.Is(err, ErrRateLimited)
}

// IsNetworkError reports whether the error is a transport-level failure.
func IsNetworkError(err error) bool {
	var netErr *NetworkError
	return errors.As(err, &netErr)
}
