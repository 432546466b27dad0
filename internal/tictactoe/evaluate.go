package tictactoe

import "github.com/rocketscienceinc/tictactoe-grid/internal/entity"

type Outcome int

const (
	OutcomeInProgress Outcome = iota
	OutcomeWon
	OutcomeDraw
)

func (that Outcome) String() string {
	switch that {
	case OutcomeInProgress:
		return "in_progress"
	case OutcomeWon:
		return "won"
	case OutcomeDraw:
		return "draw"
	default:
		return "unknown"
	}
}

func (that Outcome) IsTerminal() bool {
	return that == OutcomeWon || that == OutcomeDraw
}

// Result is what Evaluate reports. Winner is set only for OutcomeWon.
type Result struct {
	Outcome Outcome
	Winner  *entity.Player
}

// Evaluate scans rows, then columns, then (square boards only) diagonals.
// Every complete line is marked as combo; when several lines are complete the last one
// in scan order names the winner.
func (that *Game) Evaluate() Result {
	var winner *entity.Player

	for _, line := range that.lines() {
		if !isLineComplete(line) {
			continue
		}

		markCombo(line)
		winner = line[0].Owner
	}

	switch {
	case winner != nil:
		that.result = Result{Outcome: OutcomeWon, Winner: winner}
		that.gameOver = true
	case that.board.IsFull():
		that.result = Result{Outcome: OutcomeDraw}
		that.gameOver = true
	default:
		that.result = Result{Outcome: OutcomeInProgress}
	}

	return that.result
}

func (that *Game) lines() [][]*entity.Cell {
	lines := that.board.Rows()
	lines = append(lines, that.board.Columns()...)
	lines = append(lines, that.board.Diagonals()...)

	return lines
}

func isLineComplete(line []*entity.Cell) bool {
	if len(line) == 0 || !line[0].Occupied {
		return false
	}

	owner := line[0].Owner
	for _, cell := range line[1:] {
		if !cell.IsOwnedBy(owner) {
			return false
		}
	}

	return true
}

func markCombo(line []*entity.Cell) {
	for _, cell := range line {
		cell.Combo = true
	}
}
