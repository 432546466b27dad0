package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/tictactoe-grid/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-grid/internal/entity"
	"github.com/rocketscienceinc/tictactoe-grid/internal/metrics"
	"github.com/rocketscienceinc/tictactoe-grid/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-grid/internal/tictactoe"
)

const subscriberBuffer = 4

type playerRepo interface {
	CreateOrUpdate(ctx context.Context, player *entity.Player) error
	GetByID(ctx context.Context, id string) (*entity.Player, error)
}

type subscriber struct {
	ch        chan Snapshot
	closeOnce sync.Once
}

func (that *subscriber) close() {
	that.closeOnce.Do(func() { close(that.ch) })
}

// Session is the single hot-seat game shared by every frontend.
// All access to the engine goes through its mutex.
type Session struct {
	logger     *slog.Logger
	playerRepo playerRepo
	metrics    *metrics.Metrics

	mu          sync.Mutex
	game        *tictactoe.Game
	players     []*entity.Player
	subscribers map[*subscriber]struct{}
}

// NewSession loads every roster player from the repository, creating the missing ones,
// and starts the first game. metrics may be nil.
func NewSession(
	ctx context.Context,
	logger *slog.Logger,
	playerRepo playerRepo,
	metrics *metrics.Metrics,
	width, height int,
	roster []*entity.Player,
) (*Session, error) {
	session := &Session{
		logger:      logger.With("component", "session"),
		playerRepo:  playerRepo,
		metrics:     metrics,
		subscribers: make(map[*subscriber]struct{}),
	}

	players := make([]*entity.Player, 0, len(roster))
	for _, player := range roster {
		loaded, err := session.getOrCreatePlayer(ctx, player)
		if err != nil {
			return nil, fmt.Errorf("failed to load player: %w", err)
		}

		players = append(players, loaded)
	}

	game, err := tictactoe.NewGame(width, height, players)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	session.game = game
	session.players = players

	session.logger.Info("session started", "width", width, "height", height, "players", len(players))

	return session, nil
}

// getOrCreatePlayer keeps the configured name and sign and restores stored counters.
func (that *Session) getOrCreatePlayer(ctx context.Context, player *entity.Player) (*entity.Player, error) {
	loaded := *player
	if loaded.ID == "" {
		loaded.ID = pkg.GeneratePlayerID()
	}

	stored, err := that.playerRepo.GetByID(ctx, loaded.ID)
	switch {
	case errors.Is(err, apperror.ErrPlayerNotFound):
	case err != nil:
		return nil, fmt.Errorf("failed to get player %s: %w", loaded.ID, err)
	default:
		loaded.Wins = stored.Wins
		loaded.Losses = stored.Losses
	}

	if err = that.playerRepo.CreateOrUpdate(ctx, &loaded); err != nil {
		return nil, fmt.Errorf("failed to save player %s: %w", loaded.ID, err)
	}

	return &loaded, nil
}

// PlaceMark puts the current player's mark at column x, row y and evaluates the board.
// Rejected placements leave the state unchanged and are returned as wrapped engine errors.
func (that *Session) PlaceMark(ctx context.Context, x, y int) (Snapshot, error) {
	log := that.logger.With("method", "PlaceMark")

	that.mu.Lock()
	defer that.mu.Unlock()

	player := that.game.CurrentPlayer()

	if err := that.game.PlaceMark(x, y); err != nil {
		that.metrics.MarkRejected(rejectReason(err))
		log.Debug("mark rejected", "x", x, "y", y, "player", player.ID, "error", err)

		return Snapshot{}, fmt.Errorf("failed to place mark: %w", detachOwner(err))
	}

	that.metrics.MarkPlaced()

	result := that.game.Evaluate()
	if result.Outcome.IsTerminal() {
		that.metrics.GameFinished(result.Outcome.String())
		that.recordResult(ctx, result)

		log.Info("game finished", "outcome", result.Outcome.String(), "winner", winnerID(result))
	}

	snapshot := newSnapshot(that.game)
	that.publish(snapshot)

	return snapshot, nil
}

// Restart clears the board and gives the turn back to the first player. Counters are kept.
func (that *Session) Restart(_ context.Context) Snapshot {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.game.Restart()
	that.metrics.Restarted()

	that.logger.Info("game restarted")

	snapshot := newSnapshot(that.game)
	that.publish(snapshot)

	return snapshot
}

func (that *Session) Snapshot() Snapshot {
	that.mu.Lock()
	defer that.mu.Unlock()

	return newSnapshot(that.game)
}

func (that *Session) Players() []entity.Player {
	that.mu.Lock()
	defer that.mu.Unlock()

	return copyPlayers(that.players)
}

// Subscribe returns a channel receiving a snapshot after every change, and a func that
// unsubscribes and closes it. A subscriber that falls behind is dropped and its channel closed.
func (that *Session) Subscribe() (<-chan Snapshot, func()) {
	sub := &subscriber{ch: make(chan Snapshot, subscriberBuffer)}

	that.mu.Lock()
	that.subscribers[sub] = struct{}{}
	that.mu.Unlock()

	unsubscribe := func() {
		that.mu.Lock()
		delete(that.subscribers, sub)
		that.mu.Unlock()

		sub.close()
	}

	return sub.ch, unsubscribe
}

// publish must be called with mu held.
func (that *Session) publish(snapshot Snapshot) {
	for sub := range that.subscribers {
		select {
		case sub.ch <- snapshot:
		default:
			that.logger.Warn("dropping slow subscriber")
			delete(that.subscribers, sub)
			sub.close()
		}
	}
}

// recordResult must be called with mu held.
func (that *Session) recordResult(ctx context.Context, result tictactoe.Result) {
	if result.Outcome != tictactoe.OutcomeWon {
		return
	}

	log := that.logger.With("method", "recordResult")

	for _, player := range that.players {
		if player == result.Winner {
			player.RecordWin()
		} else {
			player.RecordLoss()
		}

		if err := that.playerRepo.CreateOrUpdate(ctx, player); err != nil {
			log.Error("failed to save player", "player", player.ID, "error", err)
		}
	}
}

// detachOwner copies the owner out of an OccupiedError so callers never see a live roster entry.
// Must be called with mu held.
func detachOwner(err error) error {
	var occupied *tictactoe.OccupiedError
	if !errors.As(err, &occupied) || occupied.Owner == nil {
		return err
	}

	owner := *occupied.Owner

	return &tictactoe.OccupiedError{X: occupied.X, Y: occupied.Y, Owner: &owner}
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, apperror.ErrCellOccupied):
		return "occupied"
	case errors.Is(err, apperror.ErrInvalidCoordinate):
		return "invalid_coordinate"
	case errors.Is(err, apperror.ErrGameFinished):
		return "game_finished"
	default:
		return "unknown"
	}
}

func winnerID(result tictactoe.Result) string {
	if result.Winner == nil {
		return ""
	}

	return result.Winner.ID
}
