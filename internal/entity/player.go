package entity

// Player is a roster entry. Wins and Losses survive restarts of a game within a session.
type Player struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Sign   string `json:"sign"`
	Wins   int    `json:"wins"`
	Losses int    `json:"losses"`
}

func NewPlayer(id, name, sign string) *Player {
	return &Player{
		ID:   id,
		Name: name,
		Sign: sign,
	}
}

func (that *Player) RecordWin() {
	that.Wins++
}

func (that *Player) RecordLoss() {
	that.Losses++
}
