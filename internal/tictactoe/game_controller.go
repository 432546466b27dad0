package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-grid/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-grid/internal/entity"
)

// OccupiedError is returned by PlaceMark when the target cell already has an owner.
type OccupiedError struct {
	X, Y  int
	Owner *entity.Player
}

func (that *OccupiedError) Error() string {
	return fmt.Sprintf("%s: (%d, %d) belongs to %s", apperror.ErrCellOccupied, that.X, that.Y, that.Owner.Name)
}

func (that *OccupiedError) Unwrap() error {
	return apperror.ErrCellOccupied
}

// Game is the turn and win-detection state machine for one board.
// It is not safe for concurrent use.
type Game struct {
	width   int
	height  int
	players []*entity.Player

	board    *entity.Board
	cursor   int
	gameOver bool
	result   Result
}

func NewGame(width, height int, players []*entity.Player) (*Game, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", apperror.ErrInvalidDimensions, width, height)
	}

	if len(players) == 0 {
		return nil, apperror.ErrEmptyRoster
	}

	for i, player := range players {
		if player == nil {
			return nil, fmt.Errorf("%w: #%d", apperror.ErrNilPlayer, i)
		}
	}

	game := &Game{
		width:   width,
		height:  height,
		players: players,
	}

	if err := game.Start(); err != nil {
		return nil, err
	}

	return game, nil
}

// Start replaces the board with an empty one and hands the turn to the first player.
func (that *Game) Start() error {
	board, err := entity.NewBoard(that.width, that.height)
	if err != nil {
		return fmt.Errorf("failed to create board: %w", err)
	}

	that.board = board
	that.cursor = 0
	that.gameOver = false
	that.result = Result{Outcome: OutcomeInProgress}

	return nil
}

// Restart starts a new round with the same dimensions and roster.
func (that *Game) Restart() {
	// dimensions were validated by NewGame
	_ = that.Start()
}

// PlaceMark claims the cell at (x, y) for the current player and passes the turn on.
// It does not evaluate the board; call Evaluate afterwards.
func (that *Game) PlaceMark(x, y int) error {
	if that.gameOver {
		return apperror.ErrGameFinished
	}

	cell, err := that.board.CellAt(x, y)
	if err != nil {
		return err
	}

	if cell.Occupied {
		return &OccupiedError{X: x, Y: y, Owner: cell.Owner}
	}

	cell.Claim(that.CurrentPlayer())
	that.advanceTurn()

	return nil
}

func (that *Game) advanceTurn() {
	that.cursor = (that.cursor + 1) % len(that.players)
}

func (that *Game) CurrentPlayer() *entity.Player {
	return that.players[that.cursor]
}

func (that *Game) TurnIndex() int {
	return that.cursor
}

func (that *Game) Players() []*entity.Player {
	return that.players
}

func (that *Game) Board() *entity.Board {
	return that.board
}

func (that *Game) GameOver() bool {
	return that.gameOver
}

// Result returns the outcome of the latest Evaluate call.
func (that *Game) Result() Result {
	return that.result
}
