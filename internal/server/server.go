// Package server exposes the solver over HTTP: POST /solve answers with the
// number of ticks, GET /replay streams a solved route over a websocket.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/matryer/way"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const (
	URISolve   = "/solve"
	URIReplay  = "/replay"
	URIHealthz = "/healthz"
)

// Config tunes request limits and the replay pace.
type Config struct {
	// MaxBodyBytes caps the size of a basin upload.
	MaxBodyBytes int64
	// MaxLegs caps the legs query parameter.
	MaxLegs int
	// FrameDelay is the pause between two replay frames.
	FrameDelay time.Duration
	// ShutdownTimeout bounds graceful shutdown in ListenAndServe.
	ShutdownTimeout time.Duration
}

// DefaultConfig returns limits suited to puzzle-sized basins.
func DefaultConfig() Config {
	return Config{
		MaxBodyBytes:    1 << 20,
		MaxLegs:         16,
		FrameDelay:      0,
		ShutdownTimeout: 5 * time.Second,
	}
}

// Server routes HTTP requests to the solver.
type Server struct {
	router   *way.Router
	upgrader *websocket.Upgrader
	log      log.FieldLogger
	cfg      Config
}

// New builds a Server. A nil logger falls back to the logrus standard logger.
func New(cfg Config, logger log.FieldLogger) *Server {
	if logger == nil {
		logger = log.StandardLogger()
	}
	s := &Server{
		upgrader: &websocket.Upgrader{},
		log:      logger,
		cfg:      cfg,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router = way.NewRouter()
	s.router.HandleFunc("GET", URIHealthz, s.handleHealthz())
	s.router.HandleFunc("POST", URISolve, s.handleSolve())
	s.router.HandleFunc("GET", URIReplay, s.handleReplay())
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully. It returns nil after a clean shutdown.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	hs := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 5 * time.Second,
	}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.log.WithField("addr", addr).Info("listening")
		if err := hs.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		s.log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()
		return hs.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
