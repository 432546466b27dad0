package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-grid/internal/apperror"
)

// Board is a height x width grid of cells addressed by (x = column, y = row).
type Board struct {
	width  int
	height int
	cells  [][]*Cell
}

func NewBoard(width, height int) (*Board, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", apperror.ErrInvalidDimensions, width, height)
	}

	cells := make([][]*Cell, height)
	for y := range cells {
		cells[y] = make([]*Cell, width)
		for x := range cells[y] {
			cells[y][x] = &Cell{}
		}
	}

	return &Board{
		width:  width,
		height: height,
		cells:  cells,
	}, nil
}

func (that *Board) Width() int {
	return that.width
}

func (that *Board) Height() int {
	return that.height
}

func (that *Board) IsSquare() bool {
	return that.width == that.height
}

func (that *Board) Contains(x, y int) bool {
	return x >= 0 && x < that.width && y >= 0 && y < that.height
}

func (that *Board) CellAt(x, y int) (*Cell, error) {
	if !that.Contains(x, y) {
		return nil, fmt.Errorf("%w: (%d, %d) on %dx%d board", apperror.ErrInvalidCoordinate, x, y, that.width, that.height)
	}

	return that.cells[y][x], nil
}

// Rows returns every row ordered left to right.
func (that *Board) Rows() [][]*Cell {
	rows := make([][]*Cell, that.height)
	for y, row := range that.cells {
		rows[y] = append([]*Cell(nil), row...)
	}

	return rows
}

// Columns returns every column ordered top to bottom.
func (that *Board) Columns() [][]*Cell {
	columns := make([][]*Cell, that.width)
	for x := range columns {
		column := make([]*Cell, that.height)
		for y := range column {
			column[y] = that.cells[y][x]
		}
		columns[x] = column
	}

	return columns
}

// Diagonals returns the main and the anti diagonal, or nil when the board is not square.
func (that *Board) Diagonals() [][]*Cell {
	if !that.IsSquare() {
		return nil
	}

	size := that.height
	main := make([]*Cell, size)
	anti := make([]*Cell, size)
	for i := 0; i < size; i++ {
		main[i] = that.cells[i][i]
		anti[i] = that.cells[i][size-i-1]
	}

	return [][]*Cell{main, anti}
}

func (that *Board) IsFull() bool {
	for _, row := range that.cells {
		for _, cell := range row {
			if !cell.Occupied {
				return false
			}
		}
	}

	return true
}

// Clone copies cell state. Owners are shared, players are not copied.
func (that *Board) Clone() *Board {
	cells := make([][]*Cell, that.height)
	for y, row := range that.cells {
		cells[y] = make([]*Cell, that.width)
		for x, cell := range row {
			copied := *cell
			cells[y][x] = &copied
		}
	}

	return &Board{
		width:  that.width,
		height: that.height,
		cells:  cells,
	}
}
