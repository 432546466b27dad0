package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-grid/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-grid/internal/tictactoe"
)

// handleMark applies a placement. Successful marks reach every client through the session feed.
func (that *Server) handleMark(ctx context.Context, client *connection, message *Message) error {
	var payload MarkPayload
	if err := json.Unmarshal(message.Payload, &payload); err != nil || payload.X == nil || payload.Y == nil {
		that.sendError(client, ErrorPayload{Action: message.Action, Error: "x and y are required"})
		return nil
	}

	if _, err := that.session.PlaceMark(ctx, *payload.X, *payload.Y); err != nil {
		response, known := markError(err)
		response.Action = message.Action
		that.sendError(client, response)

		if !known {
			return fmt.Errorf("failed to place mark: %w", err)
		}
	}

	return nil
}

func (that *Server) handleRestart(ctx context.Context, _ *connection, _ *Message) error {
	that.session.Restart(ctx)
	return nil
}

func markError(err error) (ErrorPayload, bool) {
	var occupied *tictactoe.OccupiedError

	switch {
	case errors.As(err, &occupied):
		payload := ErrorPayload{Error: apperror.ErrCellOccupied.Error()}
		if occupied.Owner != nil {
			owner := *occupied.Owner
			payload.Owner = &owner
		}

		return payload, true
	case errors.Is(err, apperror.ErrInvalidCoordinate):
		return ErrorPayload{Error: apperror.ErrInvalidCoordinate.Error()}, true
	case errors.Is(err, apperror.ErrGameFinished):
		return ErrorPayload{Error: apperror.ErrGameFinished.Error()}, true
	default:
		return ErrorPayload{Error: "internal error"}, false
	}
}
