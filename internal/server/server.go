package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// ErrServeDirNotFound is returned by New when the served directory is missing.
var ErrServeDirNotFound = errors.New("serve directory not found")

// Timeouts.
const (
	ReadHeaderTimeout = 10 * time.Second
	IdleTimeout       = 120 * time.Second
	ShutdownTimeout   = 5 * time.Second
)

// Config holds server configuration.
type Config struct {
	Dir      string      // directory to serve
	Host     string      // empty = all interfaces
	Port     int         // first port tried
	Attempts int         // consecutive ports tried
	Logger   *log.Logger // request and error log; nil = log.Default()
}

// Server serves a directory tree over HTTP.
type Server struct {
	cfg        Config
	router     chi.Router
	httpServer *http.Server
}

// New creates a Server for cfg.Dir.
func New(cfg Config) (*Server, error) {
	if cfg.Dir == "" {
		cfg.Dir = "."
	}
	if info, err := os.Stat(cfg.Dir); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrServeDirNotFound, cfg.Dir)
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}

	s := &Server{cfg: cfg}
	s.router = s.buildRouter()
	return s, nil
}

// buildRouter wires the middleware chain in front of the file server.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{
		Logger:  s.cfg.Logger,
		NoColor: true,
	}))
	r.Use(middleware.Recoverer)
	r.Use(DisconnectGuard)

	r.Handle("/*", http.FileServer(http.Dir(s.cfg.Dir)))

	return r
}

// Handler returns the HTTP handler of the server.
func (s *Server) Handler() http.Handler { return s.router }

// Listen binds the configured host on the first free port of the range.
func (s *Server) Listen(ctx context.Context) (net.Listener, error) {
	return Listen(ctx, s.cfg.Host, s.cfg.Port, s.cfg.Attempts)
}

// Serve handles connections on ln until ctx is cancelled, then shuts
// down and waits for in-flight requests.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.httpServer = &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: ReadHeaderTimeout,
		IdleTimeout:       IdleTimeout,
		ErrorLog:          QuietErrorLog(s.cfg.Logger.Writer()),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.httpServer.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
