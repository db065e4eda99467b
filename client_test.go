package seoplatform

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordedRequest captures what the SDK actually sent.
type recordedRequest struct {
	Method      string
	Path        string
	EscapedPath string
	Query       url.Values
	Header      http.Header
	Body        []byte
}

// bodyKeys returns the top-level JSON keys of the recorded body.
func (r recordedRequest) bodyKeys(t *testing.T) map[string]any {
	t.Helper()
	if len(r.Body) == 0 {
		return nil
	}
	var m map[string]any
	require.NoError(t, json.Unmarshal(r.Body, &m))
	return m
}

// newTestClient returns a client pointed at a stub server that records the
// last request and replies with status and body.
func newTestClient(t *testing.T, status int, body string, opts ...Option) (*Client, *recordedRequest) {
	t.Helper()

	var last recordedRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		last = recordedRequest{
			Method:      r.Method,
			Path:        r.URL.Path,
			EscapedPath: r.URL.EscapedPath(),
			Query:       r.URL.Query(),
			Header:      r.Header.Clone(),
			Body:        data,
		}
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	opts = append([]Option{WithBaseURL(server.URL)}, opts...)
	client, err := NewClient("test-api-key", opts...)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	return client, &last
}

func TestNewClient(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		apiKey  string
		opts    []Option
		wantErr bool
	}{
		{
			name:   "valid api key",
			apiKey: "test-key",
		},
		{
			name:    "empty api key",
			apiKey:  "",
			wantErr: true,
		},
		{
			name:   "with custom base URL",
			apiKey: "test-key",
			opts:   []Option{WithBaseURL("https://custom.example.com")},
		},
		{
			name:   "with timeout option",
			apiKey: "test-key",
			opts:   []Option{WithTimeout(5 * time.Second)},
		},
		{
			name:    "empty base URL rejected",
			apiKey:  "test-key",
			opts:    []Option{WithBaseURL("")},
			wantErr: true,
		},
		{
			name:    "non-positive timeout rejected",
			apiKey:  "test-key",
			opts:    []Option{WithTimeout(0)},
			wantErr: true,
		},
		{
			name:    "empty api version rejected",
			apiKey:  "test-key",
			opts:    []Option{WithAPIVersion("")},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client, err := NewClient(tt.apiKey, tt.opts...)

			if (err != nil) != tt.wantErr {
				t.Errorf("NewClient() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr && client == nil {
				t.Error("NewClient() returned nil client without error")
			}
		})
	}
}

func TestClient_SharedHeaders(t *testing.T) {
	t.Parallel()

	client, last := newTestClient(t, http.StatusOK, `{"data":[],"pagination":{"limit":50}}`,
		WithHeaders(map[string]string{"X-Team": "analytics"}),
		WithUserAgent("integration-suite"),
	)

	_, err := client.Projects.List(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, "Bearer test-api-key", last.Header.Get("Authorization"))
	assert.Equal(t, "application/json", last.Header.Get("Content-Type"))
	assert.Equal(t, "v1", last.Header.Get("X-API-Version"))
	assert.Equal(t, "analytics", last.Header.Get("X-Team"))
	assert.NotEmpty(t, last.Header.Get("X-Request-ID"))
	assert.Contains(t, last.Header.Get("User-Agent"), "seo-platform-go/"+Version)
	assert.Contains(t, last.Header.Get("User-Agent"), "integration-suite")
}

func TestClient_VersionedPath(t *testing.T) {
	t.Parallel()

	client, last := newTestClient(t, http.StatusOK, `{}`, WithAPIVersion("v2"))

	_, err := client.Projects.Get(context.Background(), "proj_1")
	require.NoError(t, err)

	assert.Equal(t, "/api/v2/projects/proj_1", last.Path)
}

func TestClient_Unauthorized(t *testing.T) {
	t.Parallel()

	// Any endpoint returning 401 surfaces as an authentication error.
	client, _ := newTestClient(t, http.StatusUnauthorized, `{"error":{"code":"unauthorized","message":"bad key"}}`)

	_, err := client.Audits.Latest(context.Background(), "proj_1")
	require.Error(t, err)

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "bad key", authErr.Message)
	assert.True(t, IsUnauthorized(err))
}

func TestClient_RateLimited(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "5")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	t.Cleanup(server.Close)

	client, err := NewClient("test-api-key", WithBaseURL(server.URL))
	require.NoError(t, err)

	_, err = client.Keywords.Get(context.Background(), "kw_1")
	require.Error(t, err)

	var rlErr *RateLimitError
	require.ErrorAs(t, err, &rlErr)
	assert.Equal(t, "5", rlErr.RetryAfter)
	assert.Contains(t, err.Error(), "5")
	assert.True(t, IsRateLimited(err))
}

func TestClient_RateLimitedWithoutHint(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, http.StatusTooManyRequests, "")

	_, err := client.Keywords.Get(context.Background(), "kw_1")
	require.Error(t, err)

	var rlErr *RateLimitError
	require.ErrorAs(t, err, &rlErr)
	assert.Equal(t, "unknown", rlErr.RetryAfter)
}

func TestClient_GenericAPIError(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, http.StatusNotFound, `{"error":{"code":"not_found","message":"no such project"}}`)

	_, err := client.Projects.Get(context.Background(), "missing")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.HTTPStatus)
	assert.Equal(t, "not_found", apiErr.Code)
	assert.Equal(t, "no such project", apiErr.Message)
}

func TestClient_GenericAPIError_UnparseableBody(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, http.StatusBadGateway, "upstream exploded")

	_, err := client.Projects.Get(context.Background(), "proj_1")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.HTTPStatus)
	assert.Contains(t, apiErr.Message, "upstream exploded")
}

func TestClient_EmptySuccessBody(t *testing.T) {
	t.Parallel()

	client, last := newTestClient(t, http.StatusNoContent, "")

	err := client.Projects.Delete(context.Background(), "proj_1")
	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, last.Method)
}

func TestClient_NetworkError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	client, err := NewClient("test-api-key", WithBaseURL(server.URL))
	require.NoError(t, err)

	_, err = client.Projects.List(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, IsNetworkError(err))
}

func TestClient_Timeout(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(server.Close)

	client, err := NewClient("test-api-key",
		WithBaseURL(server.URL),
		WithTimeout(20*time.Millisecond),
	)
	require.NoError(t, err)

	_, err = client.Projects.List(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, IsNetworkError(err))
}

func TestClient_RateLimitStatus(t *testing.T) {
	t.Parallel()

	client, last := newTestClient(t, http.StatusOK, `{"limit":1000,"remaining":997,"resetAt":"2026-08-26T10:00:00Z"}`)

	status, err := client.RateLimitStatus(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "/api/v1/rate-limit/status", last.Path)
	assert.Equal(t, 1000, status.Limit)
	assert.Equal(t, 997, status.Remaining)
}

func TestRealtimeEndpoint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		baseURL     string
		realtimeURL string
		want        string
	}{
		{
			name:    "derived from https base URL",
			baseURL: "https://api.example.com",
			want:    "wss://api.example.com/realtime",
		},
		{
			name:    "derived from http base URL",
			baseURL: "http://localhost:8080",
			want:    "ws://localhost:8080/realtime",
		},
		{
			name:        "override converts scheme, appends nothing",
			baseURL:     "https://api.example.com",
			realtimeURL: "https://push.example.com",
			want:        "wss://push.example.com",
		},
		{
			name:        "override with websocket scheme passes through",
			baseURL:     "https://api.example.com",
			realtimeURL: "wss://push.example.com/events",
			want:        "wss://push.example.com/events",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			config := newDefaultConfig()
			config.baseURL = tt.baseURL
			config.realtimeURL = tt.realtimeURL

			assert.Equal(t, tt.want, realtimeEndpoint(config))
		})
	}
}

func TestClient_Session_RealtimeDisabled(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, http.StatusOK, `{}`)

	var ran bool
	err := client.Session(context.Background(), func(c *Client) error {
		ran = true
		return nil
	})
	require.NoError(t, err)
	assert.True(t, ran)
}

func TestClient_Session_PropagatesError(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, http.StatusOK, `{}`)

	wantErr := assert.AnError
	err := client.Session(context.Background(), func(c *Client) error {
		return wantErr
	})
	assert.ErrorIs(t, err, wantErr)
}

func TestClient_RealtimeDisabledOperations(t *testing.T) {
	t.Parallel()

	client, err := NewClient("test-api-key")
	require.NoError(t, err)

	assert.ErrorIs(t, client.Connect(context.Background()), ErrRealtimeDisabled)
	assert.ErrorIs(t, client.SubscribeToProject(context.Background(), "proj_1"), ErrRealtimeDisabled)
	assert.NoError(t, client.UnsubscribeFromProject(context.Background(), "proj_1"))

	_, err = client.On("ranking:updated", func(json.RawMessage) {})
	assert.ErrorIs(t, err, ErrRealtimeDisabled)

	// No-ops rather than panics when disabled.
	client.Off("ranking:updated")
	client.Disconnect()
}
