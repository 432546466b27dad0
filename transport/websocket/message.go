package websocket

import (
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-grid/internal/entity"
)

const (
	actionGameState   = "game:state"
	actionGameMark    = "game:mark"
	actionGameRestart = "game:restart"
	actionError       = "error"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type MarkPayload struct {
	X *int `json:"x"`
	Y *int `json:"y"`
}

type ErrorPayload struct {
	Action string         `json:"action,omitempty"`
	Error  string         `json:"error"`
	Owner  *entity.Player `json:"owner,omitempty"`
}

func newMessage(action string, payload any) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	message, err := json.Marshal(Message{Action: action, Payload: raw})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal message: %w", err)
	}

	return message, nil
}
