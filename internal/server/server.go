// Package server exposes the rules engine over HTTP and live games over
// websockets. Each websocket room holds one authoritative game.
package server

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/lgbarn/bureaucrat-chess/internal/config"
	"github.com/lgbarn/bureaucrat-chess/internal/session"
)

// Server is the HTTP and websocket server.
type Server struct {
	cfg      *config.Config
	log      *config.Logger
	store    session.Store
	hub      *Hub
	handlers *Handlers
	version  string
}

// NewServer creates a server backed by store.
func NewServer(cfg *config.Config, store session.Store, version string) *Server {
	logger := cfg.Logger()
	hub := NewHub(store, logger)
	return &Server{
		cfg:      cfg,
		log:      logger,
		store:    store,
		hub:      hub,
		handlers: NewHandlers(store, hub, version),
		version:  version,
	}
}

// corsMiddleware adds CORS headers for browser access. With no configured
// origins any origin is allowed; otherwise only listed origins are echoed back.
func corsMiddleware(cfg *config.ServerConfig, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		switch {
		case len(cfg.AllowedOrigins) == 0:
			w.Header().Set("Access-Control-Allow-Origin", "*")
		case origin != "" && cfg.OriginAllowed(origin):
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Add("Vary", "Origin")
		}
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// loggingMiddleware logs all requests.
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.log.Enabled(config.Events) {
			next.ServeHTTP(w, r)
			return
		}
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Logf(config.Events, "%s %s %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// Handler returns the routed handler with middleware applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/health", s.handlers.Health)
	mux.HandleFunc("GET /api/initial", s.handlers.Initial)
	mux.HandleFunc("POST /api/legal-moves", s.handlers.LegalMoves)
	mux.HandleFunc("POST /api/move", s.handlers.Move)
	mux.HandleFunc("POST /api/check", s.handlers.Check)
	mux.HandleFunc("GET /api/rooms", s.handlers.ListRooms)
	mux.HandleFunc("POST /api/rooms", s.handlers.CreateRoom)
	mux.HandleFunc("GET /api/rooms/{id}", s.handlers.GetRoom)
	mux.HandleFunc("/ws", s.hub.ServeWS(s.cfg.Server))

	return corsMiddleware(s.cfg.Server, s.loggingMiddleware(mux))
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down
// gracefully within the configured shutdown timeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      s.Handler(),
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
		IdleTimeout:  s.cfg.Server.IdleTimeout,
	}

	errChan := make(chan error, 1)
	go func() {
		if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
		close(errChan)
	}()

	s.log.Logf(config.Lifecycle, "bureaucrat-chess %s listening on %s", s.version, ln.Addr())

	if timeout := s.cfg.Server.RoomIdleTimeout; timeout > 0 {
		sweepCtx, stopSweep := context.WithCancel(ctx)
		defer stopSweep()
		go s.hub.sweepIdleRooms(sweepCtx, timeout)
	}

	select {
	case err, ok := <-errChan:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
		s.log.Logf(config.Lifecycle, "shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()

	// Hijacked websocket connections are not closed by Shutdown.
	s.hub.CloseAll()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	s.log.Logf(config.Lifecycle, "server stopped gracefully")
	return nil
}

// ListenAndServe listens on the configured address and serves until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Server.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}
