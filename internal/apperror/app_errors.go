package apperror

import "errors"

var (
	ErrCellOccupied      = errors.New("cell is already occupied")
	ErrInvalidCoordinate = errors.New("coordinate is out of the board")
	ErrGameFinished      = errors.New("game is already finished")
	ErrInvalidDimensions = errors.New("board dimensions must be positive")
	ErrEmptyRoster       = errors.New("roster must contain at least one player")
	ErrNilPlayer         = errors.New("roster entry is nil")
	ErrPlayerNotFound    = errors.New("player not found")
)
