package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-grid/internal/apperror"
)

func TestNewBoard(t *testing.T) {
	t.Run("Creates an empty board of the requested size", func(t *testing.T) {
		// When: a 4x3 board is created
		board, err := NewBoard(4, 3)
		require.NoError(t, err)

		// Then: dimensions match and every cell is empty
		assert.Equal(t, 4, board.Width())
		assert.Equal(t, 3, board.Height())
		for _, row := range board.Rows() {
			require.Len(t, row, 4)
			for _, cell := range row {
				assert.False(t, cell.Occupied)
				assert.Nil(t, cell.Owner)
				assert.False(t, cell.Combo)
			}
		}
	})

	t.Run("Rejects non-positive dimensions", func(t *testing.T) {
		for _, dims := range [][2]int{{0, 3}, {3, 0}, {-1, 2}} {
			// When: the board is created with a bad size
			board, err := NewBoard(dims[0], dims[1])

			// Then: ErrInvalidDimensions is returned
			require.ErrorIs(t, err, apperror.ErrInvalidDimensions)
			assert.Nil(t, board)
		}
	})
}

func TestBoard_CellAt(t *testing.T) {
	board, err := NewBoard(3, 2)
	require.NoError(t, err)

	t.Run("Returns the same cell for the same coordinate", func(t *testing.T) {
		first, err := board.CellAt(2, 1)
		require.NoError(t, err)

		second, err := board.CellAt(2, 1)
		require.NoError(t, err)

		assert.Same(t, first, second)
	})

	t.Run("Maps x to column and y to row", func(t *testing.T) {
		cell, err := board.CellAt(2, 1)
		require.NoError(t, err)

		assert.Same(t, board.Rows()[1][2], cell)
		assert.Same(t, board.Columns()[2][1], cell)
	})

	t.Run("Rejects coordinates outside the board", func(t *testing.T) {
		for _, xy := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 2}, {10, 10}} {
			_, err := board.CellAt(xy[0], xy[1])
			assert.ErrorIs(t, err, apperror.ErrInvalidCoordinate, "coordinate %v", xy)
		}
	})
}

func TestBoard_Lines(t *testing.T) {
	t.Run("Columns are rows transposed", func(t *testing.T) {
		board, err := NewBoard(3, 2)
		require.NoError(t, err)

		rows := board.Rows()
		columns := board.Columns()

		require.Len(t, rows, 2)
		require.Len(t, columns, 3)
		for x, column := range columns {
			require.Len(t, column, 2)
			for y, cell := range column {
				assert.Same(t, rows[y][x], cell)
			}
		}
	})

	t.Run("Square board has both diagonals", func(t *testing.T) {
		board, err := NewBoard(3, 3)
		require.NoError(t, err)

		diagonals := board.Diagonals()
		require.Len(t, diagonals, 2)

		rows := board.Rows()
		assert.Equal(t, []*Cell{rows[0][0], rows[1][1], rows[2][2]}, diagonals[0])
		assert.Equal(t, []*Cell{rows[0][2], rows[1][1], rows[2][0]}, diagonals[1])
	})

	t.Run("Non-square board has no diagonals", func(t *testing.T) {
		board, err := NewBoard(3, 4)
		require.NoError(t, err)

		assert.Empty(t, board.Diagonals())
	})
}

func TestBoard_IsFull(t *testing.T) {
	board, err := NewBoard(2, 2)
	require.NoError(t, err)

	player := NewPlayer("1", "Alice", "X")

	assert.False(t, board.IsFull())

	for _, row := range board.Rows() {
		for _, cell := range row {
			cell.Claim(player)
		}
	}

	assert.True(t, board.IsFull())
}

func TestBoard_Clone(t *testing.T) {
	// Given: a board with one claimed cell
	board, err := NewBoard(2, 2)
	require.NoError(t, err)

	player := NewPlayer("1", "Alice", "X")
	cell, err := board.CellAt(0, 0)
	require.NoError(t, err)
	cell.Claim(player)

	// When: the board is cloned and the original changes
	clone := board.Clone()
	other, err := board.CellAt(1, 1)
	require.NoError(t, err)
	other.Claim(player)

	// Then: the clone keeps the old state
	clonedCell, err := clone.CellAt(0, 0)
	require.NoError(t, err)
	assert.True(t, clonedCell.IsOwnedBy(player))

	clonedOther, err := clone.CellAt(1, 1)
	require.NoError(t, err)
	assert.False(t, clonedOther.Occupied)
}

func TestPlayer_Counters(t *testing.T) {
	player := NewPlayer("1", "Alice", "X")

	player.RecordWin()
	player.RecordWin()
	player.RecordLoss()

	assert.Equal(t, 2, player.Wins)
	assert.Equal(t, 1, player.Losses)
}
