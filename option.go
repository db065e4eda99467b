package seoplatform

import (
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	defaultBaseURL    = "https://api.seo-platform.com"
	defaultAPIVersion = "v1"
	defaultTimeout    = 30 * time.Second
)

// Option configures the Client.
type Option func(*clientConfig) error

// clientConfig holds internal configuration.
type clientConfig struct {
	baseURL        string
	apiVersion     string
	timeout        time.Duration
	headers        map[string]string
	userAgent      string
	enableRealtime bool
	realtimeURL    string
	logger         *zap.Logger
}

// newDefaultConfig returns the default client configuration.
func newDefaultConfig() *clientConfig {
	return &clientConfig{
		baseURL:    defaultBaseURL,
		apiVersion: defaultAPIVersion,
		timeout:    defaultTimeout,
		logger:     zap.NewNop(),
	}
}

// WithBaseURL sets a custom API base URL.
// Default: "https://api.seo-platform.com"
func WithBaseURL(url string) Option {
	return func(c *clientConfig) error {
		if url == "" {
			return errors.New("base URL cannot be empty")
		}
		c.baseURL = strings.TrimSuffix(url, "/")
		return nil
	}
}

// WithAPIVersion sets the API version segment.
// Default: "v1"
func WithAPIVersion(version string) Option {
	return func(c *clientConfig) error {
		if version == "" {
			return errors.New("API version cannot be empty")
		}
		c.apiVersion = version
		return nil
	}
}

// WithTimeout sets the per-request timeout.
// Default: 30 seconds
func WithTimeout(d time.Duration) Option {
	return func(c *clientConfig) error {
		if d <= 0 {
			return errors.New("timeout must be positive")
		}
		c.timeout = d
		return nil
	}
}

// WithHeaders sets custom headers to include in every request.
func WithHeaders(headers map[string]string) Option {
	return func(c *clientConfig) error {
		if c.headers == nil {
			c.headers = make(map[string]string, len(headers))
		}
		for k, v := range headers {
			c.headers[k] = v
		}
		return nil
	}
}

// WithUserAgent sets a custom User-Agent suffix.
// The SDK will prepend its own identifier.
func WithUserAgent(ua string) Option {
	return func(c *clientConfig) error {
		c.userAgent = ua
		return nil
	}
}

// WithRealtime enables the realtime event channel. Without this option,
// Connect and SubscribeToProject return ErrRealtimeDisabled.
func WithRealtime() Option {
	return func(c *clientConfig) error {
		c.enableRealtime = true
		return nil
	}
}

// WithRealtimeURL sets the full websocket endpoint used by the realtime
// channel, for deployments where the push host differs from the API host.
// http/https values are converted to ws/wss; no path is appended. By default
// the endpoint is derived from the base URL ("/realtime" path, ws/wss scheme).
func WithRealtimeURL(url string) Option {
	return func(c *clientConfig) error {
		if url == "" {
			return errors.New("realtime URL cannot be empty")
		}
		c.realtimeURL = strings.TrimSuffix(url, "/")
		return nil
	}
}

// WithLogger sets a structured logger for the SDK.
// Default: a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *clientConfig) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		c.logger = logger
		return nil
	}
}
