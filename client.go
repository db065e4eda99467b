package seoplatform

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/seo-platform/seo-sdk-go/internal/transport"
)

// Client is the SEO Intelligence Platform SDK client.
type Client struct {
	transport  *transport.Transport
	httpClient *http.Client
	config     *clientConfig
	logger     *zap.Logger
	realtime   *Realtime // nil when realtime is disabled

	// Projects manages SEO projects.
	Projects *ProjectsService
	// Keywords manages keyword tracking.
	Keywords *KeywordsService
	// Rankings tracks search-engine rankings.
	Rankings *RankingsService
	// Audits manages site audits.
	Audits *AuditsService
	// Backlinks monitors and analyzes backlinks.
	Backlinks *BacklinksService
}

// NewClient creates a new SEO Intelligence Platform client.
func NewClient(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	config := newDefaultConfig()
	for _, opt := range opts {
		if err := opt(config); err != nil {
			return nil, fmt.Errorf("invalid option: %w", err)
		}
	}

	httpClient := &http.Client{
		Timeout: config.timeout,
	}

	userAgent := fmt.Sprintf("seo-platform-go/%s", Version)
	if config.userAgent != "" {
		userAgent = userAgent + " " + config.userAgent
	}

	client := &Client{
		transport: &transport.Transport{
			BaseURL:        config.baseURL,
			APIVersion:     config.apiVersion,
			HTTPClient:     httpClient,
			APIKey:         apiKey,
			UserAgent:      userAgent,
			DefaultHeaders: config.headers,
		},
		httpClient: httpClient,
		config:     config,
		logger:     config.logger,
	}

	client.Projects = &ProjectsService{client: client}
	client.Keywords = &KeywordsService{client: client}
	client.Rankings = &RankingsService{client: client}
	client.Audits = &AuditsService{client: client}
	client.Backlinks = &BacklinksService{client: client}

	if config.enableRealtime {
		client.realtime = newRealtime(realtimeEndpoint(config), apiKey, config.logger)
	}

	return client, nil
}

// realtimeEndpoint derives the websocket URL from the configuration: the
// realtime URL override verbatim, or the base URL with a "/realtime" path.
func realtimeEndpoint(config *clientConfig) string {
	if config.realtimeURL != "" {
		return wsScheme(config.realtimeURL)
	}
	return wsScheme(config.baseURL) + "/realtime"
}

// wsScheme converts an http/https URL to its ws/wss counterpart. Values
// already carrying a websocket scheme pass through unchanged.
func wsScheme(endpoint string) string {
	switch {
	case strings.HasPrefix(endpoint, "https://"):
		return "wss://" + strings.TrimPrefix(endpoint, "https://")
	case strings.HasPrefix(endpoint, "http://"):
		return "ws://" + strings.TrimPrefix(endpoint, "http://")
	}
	return endpoint
}

// do executes one API request and decodes the response into out.
// A nil out or an empty 2xx body leaves out untouched.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	resp, err := c.transport.Do(ctx, transport.Request{
		Method: method,
		Path:   path,
		Query:  query,
		Body:   body,
	})
	if err != nil {
		return &NetworkError{Op: "request", Err: err}
	}

	c.logger.Debug("api request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
	)

	if err := c.checkResponse(resp); err != nil {
		return err
	}

	if out == nil || len(resp.Body) == 0 {
		return nil
	}

	if err := json.Unmarshal(resp.Body, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

// checkResponse maps a non-2xx response to the SDK error taxonomy.
func (c *Client) checkResponse(resp *transport.Response) error {
	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		retryAfter := resp.Headers.Get("Retry-After")
		if retryAfter == "" {
			retryAfter = "unknown"
		}
		return &RateLimitError{RetryAfter: retryAfter, RequestID: resp.RequestID}

	case resp.StatusCode == http.StatusUnauthorized:
		message := "check your API key"
		if errResp := transport.ParseError(resp); errResp != nil && errResp.Error.Message != "" {
			message = errResp.Error.Message
		}
		return &AuthError{Message: message, RequestID: resp.RequestID}

	case resp.StatusCode >= 400:
		if errResp := transport.ParseError(resp); errResp != nil && errResp.Error.Message != "" {
			return &APIError{
				HTTPStatus: resp.StatusCode,
				Code:       errResp.Error.Code,
				Message:    errResp.Error.Message,
				RequestID:  resp.RequestID,
			}
		}
		return &APIError{
			HTTPStatus: resp.StatusCode,
			Code:       "unknown_error",
			Message:    fmt.Sprintf("HTTP %d: %s", resp.StatusCode, string(resp.Body)),
			RequestID:  resp.RequestID,
		}
	}
	return nil
}

// RateLimitStatus returns the caller's current rate-limit window.
func (c *Client) RateLimitStatus(ctx context.Context) (*RateLimitStatus, error) {
	var status RateLimitStatus
	if err := c.do(ctx, http.MethodGet, "/rate-limit/status", nil, nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// Connect opens the realtime channel. It fails with ErrRealtimeDisabled if
// the client was constructed without WithRealtime, and with
// ErrRealtimeAlreadyConnected if the channel is already open.
func (c *Client) Connect(ctx context.Context) error {
	if c.realtime == nil {
		return &ChannelError{Op: "connect", Reason: ErrRealtimeDisabled}
	}
	return c.realtime.Connect(ctx)
}

// Disconnect closes the realtime channel if open. It is a no-op when the
// channel is disabled or already closed.
func (c *Client) Disconnect() {
	if c.realtime != nil {
		c.realtime.Disconnect()
	}
}

// SubscribeToProject subscribes to a project's event stream.
func (c *Client) SubscribeToProject(ctx context.Context, projectID string) error {
	if c.realtime == nil {
		return &ChannelError{Op: "subscribe", Reason: ErrRealtimeDisabled}
	}
	return c.realtime.SubscribeToProject(ctx, projectID)
}

// UnsubscribeFromProject unsubscribes from a project's event stream.
// It is a no-op, not an error, when the channel is disabled or not connected.
func (c *Client) UnsubscribeFromProject(ctx context.Context, projectID string) error {
	if c.realtime == nil {
		return nil
	}
	return c.realtime.UnsubscribeFromProject(ctx, projectID)
}

// On registers a handler for a named realtime event and returns a handle
// that deregisters it. Handlers for the same event run in registration order.
func (c *Client) On(event string, handler EventHandler) (func(), error) {
	if c.realtime == nil {
		return nil, &ChannelError{Op: "register handler", Reason: ErrRealtimeDisabled}
	}
	return c.realtime.On(event, handler), nil
}

// Off removes all handlers registered for the named event.
func (c *Client) Off(event string) {
	if c.realtime != nil {
		c.realtime.Off(event)
	}
}

// Session runs fn inside a managed client session: the realtime channel is
// connected first when enabled, and the channel and idle HTTP connections
// are released when fn returns, whether or not it fails.
func (c *Client) Session(ctx context.Context, fn func(*Client) error) error {
	if c.realtime != nil {
		if err := c.realtime.Connect(ctx); err != nil {
			return err
		}
	}
	defer c.Close()

	return fn(c)
}

// Close shuts down the client, closing the realtime channel if open and
// releasing idle HTTP connections.
func (c *Client) Close() error {
	if c.realtime != nil {
		c.realtime.Disconnect()
	}
	c.httpClient.CloseIdleConnections()
	return nil
}
