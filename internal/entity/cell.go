package entity

// Cell is a single board square. Owner is nil while the cell is empty.
type Cell struct {
	Occupied bool
	Owner    *Player
	Combo    bool
}

// Claim marks the cell as taken by player. The caller checks occupancy first.
func (that *Cell) Claim(player *Player) {
	that.Occupied = true
	that.Owner = player
}

func (that *Cell) IsOwnedBy(player *Player) bool {
	return that.Occupied && that.Owner == player
}
