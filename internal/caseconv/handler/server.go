package handler

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	tberror "github.com/msto63/toolbox/foundation/core/error"
	"github.com/msto63/toolbox/internal/caseconv/metrics"
	"github.com/msto63/toolbox/internal/caseconv/service"
	"github.com/msto63/toolbox/pkg/core/health"
	"github.com/msto63/toolbox/pkg/core/logging"
)

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Handler      Config
}

// DefaultServerConfig returns default HTTP server configuration
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Host:         "0.0.0.0",
		Port:         8310,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		Handler:      DefaultConfig(),
	}
}

// Server is the HTTP front end of the case conversion service
type Server struct {
	httpServer *http.Server
	handler    *Handler
	ws         *WebSocketHandler
	logger     *logging.Logger
	config     ServerConfig

	mu       sync.Mutex
	listener net.Listener
}

// NewServer creates the HTTP server with the JSON API on /, the WebSocket
// endpoint on /ws and Prometheus metrics on /metrics. registry may be nil
func NewServer(cfg ServerConfig, svc *service.Service, registry *health.Registry) *Server {
	logger := logging.New("caseconv-http-server")

	h := NewHandler(svc, registry, cfg.Handler)
	wsHandler := NewWebSocketHandler(svc, cfg.Handler.CORS)

	mux := http.NewServeMux()
	mux.Handle("/ws", wsHandler)
	mux.Handle("/metrics", metrics.Handler())
	mux.Handle("/", h)

	return &Server{
		httpServer: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
			Handler:      loggingMiddleware(logger, mux),
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		handler: h,
		ws:      wsHandler,
		logger:  logger,
		config:  cfg,
	}
}

// loggingMiddleware adds request logging
func loggingMiddleware(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		observe := metrics.ObserveHTTP(r.Method)

		// Wrap response writer to capture status code
		wrapper := &responseWrapper{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapper, r)
		observe(wrapper.statusCode)

		logger.Info("HTTP request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", wrapper.statusCode,
			"request_id", wrapper.Header().Get(RequestIDHeader),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

// responseWrapper wraps http.ResponseWriter to capture status code
type responseWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (w *responseWrapper) WriteHeader(code int) {
	w.statusCode = code
	w.ResponseWriter.WriteHeader(code)
}

// Unwrap lets http.ResponseController and the WebSocket upgrader reach the
// underlying writer
func (w *responseWrapper) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// Hijack implements http.Hijacker for WebSocket upgrades
func (w *responseWrapper) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	return http.NewResponseController(w.ResponseWriter).Hijack()
}

// Handler returns the HTTP handler, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start listens on the configured address and serves until stopped
func (s *Server) Start() error {
	listener, err := s.listen()
	if err != nil {
		return err
	}
	return s.Serve(listener)
}

// StartAsync starts the server in a goroutine
func (s *Server) StartAsync() error {
	listener, err := s.listen()
	if err != nil {
		return err
	}

	go func() {
		if err := s.Serve(listener); err != nil {
			s.logger.Error("HTTP server error", "error", err)
		}
	}()
	return nil
}

// Serve serves on an existing listener. It returns nil after Stop
func (s *Server) Serve(listener net.Listener) error {
	s.setListener(listener)

	s.logger.Info("HTTP server listening", "address", listener.Addr().String())
	if err := s.httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) listen() (net.Listener, error) {
	listener, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return nil, tberror.Wrap(err, "failed to listen on "+s.httpServer.Addr).
			WithCode(tberror.CodeServiceUnavailable).
			WithDetail("address", s.httpServer.Addr)
	}
	s.setListener(listener)
	return listener, nil
}

func (s *Server) setListener(listener net.Listener) {
	s.mu.Lock()
	s.listener = listener
	s.mu.Unlock()
}

// Stop gracefully stops the server. Shutdown does not track hijacked
// connections, so open WebSockets are closed separately
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping HTTP server")
	err := s.httpServer.Shutdown(ctx)
	if wsErr := s.ws.CloseAll(ctx); err == nil {
		err = wsErr
	}
	return err
}

// Address returns the listen address
func (s *Server) Address() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.httpServer.Addr
}
