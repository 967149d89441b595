package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"runtime/debug"
	"sync"
	"time"

	"catalogqc/auditor/pkg/telemetry/health"
)

// Default timeouts.
const (
	DefaultShutdownTimeout   = 5 * time.Second
	DefaultReadHeaderTimeout = 5 * time.Second
)

// Config configures the status server.
type Config struct {
	// ListenAddress is host:port; port 0 picks a free port.
	ListenAddress string

	// MetricsPath is where the metrics handler is mounted.
	MetricsPath string

	// Version, Commit and BuildDate are reported on /version.
	Version   string
	Commit    string
	BuildDate string

	ShutdownTimeout   time.Duration
	ReadHeaderTimeout time.Duration
}

// Server is the HTTP status server of a watch session.
type Server struct {
	config     Config
	handler    http.Handler
	httpServer *http.Server
	logger     *slog.Logger

	mu       sync.Mutex
	listener net.Listener
}

// New creates a status server. A nil metrics handler leaves the metrics
// path unmounted; a nil checker leaves the probes unmounted.
func New(cfg Config, metrics http.Handler, checker *health.Checker, logger *slog.Logger) *Server {
	if cfg.ShutdownTimeout == 0 {
		cfg.ShutdownTimeout = DefaultShutdownTimeout
	}
	if cfg.ReadHeaderTimeout == 0 {
		cfg.ReadHeaderTimeout = DefaultReadHeaderTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{config: cfg, logger: logger}
	s.handler = s.setupRoutes(metrics, checker)
	s.httpServer = &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
	return s
}

// setupRoutes mounts the endpoints and wraps them in recovery and logging.
func (s *Server) setupRoutes(metrics http.Handler, checker *health.Checker) http.Handler {
	mux := http.NewServeMux()
	if metrics != nil && s.config.MetricsPath != "" {
		mux.Handle(s.config.MetricsPath, metrics)
	}
	if checker != nil {
		health.Register(mux, checker, s.config.Version, s.config.Commit, s.config.BuildDate)
	}

	var handler http.Handler = mux
	handler = s.loggingMiddleware(handler)
	handler = s.recoveryMiddleware(handler)
	return handler
}

// Handler returns the routed handler, for tests.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Listen binds the listen address.
func (s *Server) Listen() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener != nil {
		return errors.New("server is already listening")
	}
	ln, err := net.Listen("tcp", s.config.ListenAddress)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.config.ListenAddress, err)
	}
	s.listener = ln
	return nil
}

// Addr returns the bound address, or "" before Listen.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Serve serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context) error {
	s.mu.Lock()
	ln := s.listener
	s.mu.Unlock()
	if ln == nil {
		return errors.New("server is not listening")
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Info("Status server listening",
			"address", ln.Addr().String(),
			"metrics_path", s.config.MetricsPath,
		)
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("server error: %w", err)
		}
		close(errChan)
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}
	s.logger.Info("Status server stopped")
	return nil
}

// statusRecorder captures the response status code.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Debug("Status request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"latency_ms", time.Since(start).Milliseconds(),
		)
	})
}

func (s *Server) recoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				s.logger.Error("Panic in status handler",
					"error", err,
					"path", r.URL.Path,
					"stack", string(debug.Stack()),
				)
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
