package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/muesli/termenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rocketscienceinc/tictactoe-grid/internal/config"
	"github.com/rocketscienceinc/tictactoe-grid/internal/entity"
	"github.com/rocketscienceinc/tictactoe-grid/internal/metrics"
	"github.com/rocketscienceinc/tictactoe-grid/internal/repository"
	"github.com/rocketscienceinc/tictactoe-grid/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-grid/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-grid/transport/console"
	"github.com/rocketscienceinc/tictactoe-grid/transport/rest"
	"github.com/rocketscienceinc/tictactoe-grid/transport/websocket"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	playerRepo, closeRepo, err := newPlayerRepository(ctx, conf)
	if err != nil {
		return err
	}

	defer func() {
		if closeErr := closeRepo(); closeErr != nil {
			log.Error("could not close redis storage", "error", closeErr)
		}
	}()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	session, err := usecase.NewSession(ctx, logger, playerRepo, metrics.New(registry),
		conf.Board.Width, conf.Board.Height, roster(conf.Players))
	if err != nil {
		return fmt.Errorf("could not start session: %w", err)
	}

	if conf.Frontend == config.FrontendConsole {
		log.Info("Starting console frontend")

		return console.New(logger, session, os.Stdin, termenv.NewOutput(os.Stdout)).Run(ctx)
	}

	wsServer := websocket.New(ctx, logger, session)
	metricsHandler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	httpServer := rest.New(logger, session, wsServer, metricsHandler)

	log.Info("Starting HTTP server", "port", conf.HTTPPort)

	if err = httpServer.Start(ctx, conf.HTTPPort); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	log.Info("Application context canceled, shutting down")

	return nil
}

// newPlayerRepository picks Redis when enabled, the in-memory store otherwise.
func newPlayerRepository(ctx context.Context, conf *config.Config) (repository.PlayerRepository, func() error, error) {
	if !conf.Redis.Enabled {
		return repository.NewMemoryPlayerRepository(), func() error { return nil }, nil
	}

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return nil, nil, ErrAddrNotFound
	}

	redisStorage, err := storage.New(ctx, redisAddrString, conf.Redis.Password, conf.Redis.DB)
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	return repository.NewPlayerRepository(redisStorage), redisStorage.Close, nil
}

func roster(players []config.Player) []*entity.Player {
	result := make([]*entity.Player, 0, len(players))
	for _, player := range players {
		name := player.Name
		if name == "" {
			name = player.Sign
		}

		result = append(result, entity.NewPlayer(player.ID, name, player.Sign))
	}

	return result
}
