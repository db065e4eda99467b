// Package demoserver serves the static demo page over local HTTP. It is a
// development utility, not part of the SDK's API surface.
package demoserver

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// portAttempts is how many consecutive ports are tried when the requested
// one is taken.
const portAttempts = 10

// Config controls the demo server.
type Config struct {
	// Host to bind to (default "localhost").
	Host string
	// Port to start scanning from. Zero binds any free port.
	Port int
	// Dir is the directory containing the demo files.
	Dir string
	// Logger receives request logs. Defaults to a no-op logger.
	Logger *zap.Logger
}

// Server is a static-file HTTP server with permissive CORS and cache-disabling
// headers, for local demos.
type Server struct {
	config     Config
	logger     *zap.Logger
	httpServer *http.Server

	mu   sync.Mutex
	addr string
}

// New creates a demo server. Start binds the port.
func New(config Config) *Server {
	if config.Host == "" {
		config.Host = "localhost"
	}
	if config.Logger == nil {
		config.Logger = zap.NewNop()
	}

	return &Server{
		config: config,
		logger: config.Logger,
	}
}

// Handler returns the demo router: a file server wrapped in CORS and
// no-cache middleware.
func Handler(dir string, logger *zap.Logger) http.Handler {
	router := chi.NewRouter()
	router.Use(requestLogger(logger))
	router.Use(demoHeaders)
	router.Handle("/*", http.FileServer(http.Dir(dir)))
	return router
}

// demoHeaders adds permissive cross-origin headers and disables caching so
// the demo page always reflects the files on disk.
func demoHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requestLogger logs each request at debug level.
func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			logger.Debug("request served",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}

// listen binds the first free port at or after the configured one, or any
// free port when none was configured.
func (s *Server) listen() (net.Listener, error) {
	if s.config.Port == 0 {
		return net.Listen("tcp", net.JoinHostPort(s.config.Host, "0"))
	}
	for port := s.config.Port; port < s.config.Port+portAttempts; port++ {
		ln, err := net.Listen("tcp", net.JoinHostPort(s.config.Host, strconv.Itoa(port)))
		if err != nil {
			continue
		}
		if port != s.config.Port {
			s.logger.Warn("requested port taken, using another",
				zap.Int("requested", s.config.Port),
				zap.Int("port", port),
			)
		}
		return ln, nil
	}
	return nil, fmt.Errorf("no free port in range %d-%d", s.config.Port, s.config.Port+portAttempts-1)
}

// Start binds a port and serves until Shutdown is called. It blocks.
func (s *Server) Start() error {
	ln, err := s.listen()
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           Handler(s.config.Dir, s.logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	s.mu.Lock()
	s.httpServer = srv
	s.addr = ln.Addr().String()
	s.mu.Unlock()

	s.logger.Info("demo server started",
		zap.String("addr", s.Addr()),
		zap.String("dir", s.config.Dir),
	)

	if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Addr returns the bound address. Empty until Start has bound a port.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addr
}

// URL returns the server's base URL. Empty until Start has bound a port.
func (s *Server) URL() string {
	addr := s.Addr()
	if addr == "" {
		return ""
	}
	return "http://" + addr
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv := s.httpServer
	s.mu.Unlock()

	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}
