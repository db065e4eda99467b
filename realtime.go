package seoplatform

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// EventHandler handles a realtime event payload. Handlers run on the
// channel's read loop: they must not block indefinitely, and they must not
// call Disconnect or Client.Close, which wait for the read loop to exit.
// Deregistering handlers from inside a handler is safe.
type EventHandler func(data json.RawMessage)

// eventEnvelope is the wire format for realtime frames in both directions.
type eventEnvelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// projectRef is the payload of subscribe/unsubscribe control messages.
type projectRef struct {
	ProjectID string `json:"projectId"`
}

// handlerEntry tracks one registered handler and its registration order.
type handlerEntry struct {
	id int
	fn EventHandler
}

// Realtime maintains one optional persistent websocket connection for push
// events, separate from the request/response transport. It performs no
// automatic reconnection.
type Realtime struct {
	url    string
	apiKey string
	logger *zap.Logger
	dialer *websocket.Dialer

	mu       sync.Mutex
	writeMu  sync.Mutex
	conn     *websocket.Conn
	done     chan struct{}
	nextID   int
	handlers map[string][]handlerEntry
}

// newRealtime creates a disconnected realtime channel.
func newRealtime(url, apiKey string, logger *zap.Logger) *Realtime {
	return &Realtime{
		url:      url,
		apiKey:   apiKey,
		logger:   logger,
		dialer:   websocket.DefaultDialer,
		handlers: make(map[string][]handlerEntry),
	}
}

// Connect dials the realtime endpoint, authenticating with the same bearer
// token as the HTTP transport. It fails if the channel is already connected.
func (r *Realtime) Connect(ctx context.Context) error {
	r.mu.Lock()
	if r.conn != nil {
		r.mu.Unlock()
		return &ChannelError{Op: "connect", Reason: ErrRealtimeAlreadyConnected}
	}
	r.mu.Unlock()

	header := http.Header{}
	header.Set("Authorization", "Bearer "+r.apiKey)

	conn, resp, err := r.dialer.DialContext(ctx, r.url, header)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusUnauthorized {
			return &AuthError{Message: "realtime handshake rejected"}
		}
		return &NetworkError{Op: "dial", Err: err}
	}

	done := make(chan struct{})

	r.mu.Lock()
	if r.conn != nil {
		// Lost a connect race; keep the existing connection.
		r.mu.Unlock()
		conn.Close()
		return &ChannelError{Op: "connect", Reason: ErrRealtimeAlreadyConnected}
	}
	r.conn = conn
	r.done = done
	r.mu.Unlock()

	r.logger.Debug("realtime connected", zap.String("url", r.url))

	go r.readLoop(conn, done)

	return nil
}

// readLoop delivers inbound events to registered handlers, serialized in
// arrival order. It exits when the connection closes.
func (r *Realtime) readLoop(conn *websocket.Conn, done chan struct{}) {
	defer func() {
		r.mu.Lock()
		if r.conn == conn {
			r.conn = nil
			r.done = nil
		}
		r.mu.Unlock()
		close(done)
	}()

	for {
		var envelope eventEnvelope
		if err := conn.ReadJSON(&envelope); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				r.logger.Debug("realtime read ended", zap.Error(err))
			}
			return
		}
		r.dispatch(envelope)
	}
}

// dispatch invokes the handlers registered for an event, in registration
// order. Handlers must not block indefinitely; they run on the read loop.
func (r *Realtime) dispatch(envelope eventEnvelope) {
	r.mu.Lock()
	entries := make([]handlerEntry, len(r.handlers[envelope.Event]))
	copy(entries, r.handlers[envelope.Event])
	r.mu.Unlock()

	for _, entry := range entries {
		entry.fn(envelope.Data)
	}
}

// On registers a handler for a named event and returns a handle that
// deregisters exactly that handler. Multiple handlers per event are allowed
// and run in registration order.
func (r *Realtime) On(event string, handler EventHandler) func() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	id := r.nextID
	r.handlers[event] = append(r.handlers[event], handlerEntry{id: id, fn: handler})

	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()

		entries := r.handlers[event]
		for i, entry := range entries {
			if entry.id == id {
				r.handlers[event] = append(entries[:i], entries[i+1:]...)
				break
			}
		}
		if len(r.handlers[event]) == 0 {
			delete(r.handlers, event)
		}
	}
}

// Off removes all handlers registered for the named event.
func (r *Realtime) Off(event string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.handlers, event)
}

// SubscribeToProject sends a subscribe:project control message. It fails
// with ErrRealtimeNotConnected if the channel is not connected.
func (r *Realtime) SubscribeToProject(ctx context.Context, projectID string) error {
	r.mu.Lock()
	conn := r.conn
	r.mu.Unlock()

	if conn == nil {
		return &ChannelError{Op: "subscribe", Reason: ErrRealtimeNotConnected}
	}
	return r.send(ctx, conn, "subscribe:project", projectID)
}

// UnsubscribeFromProject sends an unsubscribe:project control message.
// It is a no-op, not an error, when the channel is not connected.
func (r *Realtime) UnsubscribeFromProject(ctx context.Context, projectID string) error {
	r.mu.Lock()
	conn := r.conn
	r.mu.Unlock()

	if conn == nil {
		return nil
	}
	return r.send(ctx, conn, "unsubscribe:project", projectID)
}

// send writes one control message, honoring any context deadline.
func (r *Realtime) send(ctx context.Context, conn *websocket.Conn, event, projectID string) error {
	data, err := json.Marshal(projectRef{ProjectID: projectID})
	if err != nil {
		return &NetworkError{Op: "encode", Err: err}
	}

	r.writeMu.Lock()
	defer r.writeMu.Unlock()

	// A deadline sticks to the connection, so it must be reset for
	// deadline-free contexts or it would poison later control messages.
	if deadline, ok := ctx.Deadline(); ok {
		conn.SetWriteDeadline(deadline)
	} else {
		conn.SetWriteDeadline(time.Time{})
	}
	if err := conn.WriteJSON(eventEnvelope{Event: event, Data: data}); err != nil {
		return &NetworkError{Op: "write", Err: err}
	}

	r.logger.Debug("realtime control message sent",
		zap.String("event", event),
		zap.String("project_id", projectID),
	)
	return nil
}

// Disconnect closes the connection if open and waits for the read loop to
// exit. It is idempotent. It must not be called from an EventHandler, which
// runs on the read loop it waits for.
func (r *Realtime) Disconnect() {
	r.mu.Lock()
	conn := r.conn
	done := r.done
	r.conn = nil
	r.done = nil
	r.mu.Unlock()

	if conn == nil {
		return
	}

	r.writeMu.Lock()
	conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	r.writeMu.Unlock()

	conn.Close()
	if done != nil {
		<-done
	}

	r.logger.Debug("realtime disconnected")
}
