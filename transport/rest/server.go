package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/rocketscienceinc/tictactoe-grid/internal/entity"
	"github.com/rocketscienceinc/tictactoe-grid/internal/usecase"
)

const shutdownTimeout = 5 * time.Second

type gameSession interface {
	PlaceMark(ctx context.Context, x, y int) (usecase.Snapshot, error)
	Restart(ctx context.Context) usecase.Snapshot
	Snapshot() usecase.Snapshot
	Players() []entity.Player
}

type Server struct {
	logger  *slog.Logger
	session gameSession
	router  chi.Router
}

// New builds the router. ws and metrics are mounted at /ws and /metrics when not nil.
func New(logger *slog.Logger, session gameSession, ws, metrics http.Handler) *Server {
	server := &Server{
		logger:  logger.With("component", "rest"),
		session: session,
		router:  chi.NewRouter(),
	}

	server.router.Use(middleware.Recoverer)

	server.router.Get("/ping", NewPingHandler().PingHandler)

	server.router.Route("/api/game", func(r chi.Router) {
		r.Get("/", server.getGame)
		r.Post("/marks", server.placeMark)
		r.Post("/restart", server.restart)
	})
	server.router.Get("/api/players", server.getPlayers)

	if metrics != nil {
		server.router.Method(http.MethodGet, "/metrics", metrics)
	}

	if ws != nil {
		server.router.Method(http.MethodGet, "/ws", ws)
	}

	return server
}

func (that *Server) Handler() http.Handler {
	return that.router
}

// Start serves on port until ctx is canceled, then shuts down gracefully.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}

		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	that.logger.Info("HTTP server stopped")

	return nil
}
