package usecase

import (
	"github.com/rocketscienceinc/tictactoe-grid/internal/entity"
	"github.com/rocketscienceinc/tictactoe-grid/internal/tictactoe"
)

// CellView is a read-only copy of one cell. Owner holds the owning player's id.
type CellView struct {
	X        int    `json:"x"`
	Y        int    `json:"y"`
	Occupied bool   `json:"occupied"`
	Combo    bool   `json:"combo"`
	Owner    string `json:"owner,omitempty"`
	Sign     string `json:"sign,omitempty"`
}

// Snapshot is a detached view of the session state, safe to hand to other goroutines.
type Snapshot struct {
	Width         int             `json:"width"`
	Height        int             `json:"height"`
	Rows          [][]CellView    `json:"rows"`
	CurrentPlayer entity.Player   `json:"current_player"`
	Outcome       string          `json:"outcome"`
	Winner        *entity.Player  `json:"winner,omitempty"`
	GameOver      bool            `json:"game_over"`
	Players       []entity.Player `json:"players"`
}

func newSnapshot(game *tictactoe.Game) Snapshot {
	board := game.Board()

	rows := make([][]CellView, 0, board.Height())
	for y, row := range board.Rows() {
		views := make([]CellView, 0, len(row))
		for x, cell := range row {
			view := CellView{
				X:        x,
				Y:        y,
				Occupied: cell.Occupied,
				Combo:    cell.Combo,
			}
			if cell.Owner != nil {
				view.Owner = cell.Owner.ID
				view.Sign = cell.Owner.Sign
			}
			views = append(views, view)
		}
		rows = append(rows, views)
	}

	result := game.Result()

	snapshot := Snapshot{
		Width:         board.Width(),
		Height:        board.Height(),
		Rows:          rows,
		CurrentPlayer: *game.CurrentPlayer(),
		Outcome:       result.Outcome.String(),
		GameOver:      game.GameOver(),
		Players:       copyPlayers(game.Players()),
	}

	if result.Winner != nil {
		winner := *result.Winner
		snapshot.Winner = &winner
	}

	return snapshot
}

func copyPlayers(players []*entity.Player) []entity.Player {
	copied := make([]entity.Player, 0, len(players))
	for _, player := range players {
		copied = append(copied, *player)
	}

	return copied
}

// CellAt returns the view at column x, row y. ok is false when the point is off the board.
func (that Snapshot) CellAt(x, y int) (CellView, bool) {
	if y < 0 || y >= len(that.Rows) || x < 0 || x >= len(that.Rows[y]) {
		return CellView{}, false
	}

	return that.Rows[y][x], true
}
