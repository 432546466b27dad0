package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rocketscienceinc/tictactoe-grid/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-grid/internal/entity"
	"github.com/rocketscienceinc/tictactoe-grid/internal/tictactoe"
)

const maxBodyBytes = 1 << 10

var errMissingCoordinate = errors.New("x and y are required")

type markRequest struct {
	X *int `json:"x"`
	Y *int `json:"y"`
}

type errorResponse struct {
	Error string         `json:"error"`
	Owner *entity.Player `json:"owner,omitempty"`
}

func (that *Server) getGame(w http.ResponseWriter, _ *http.Request) {
	that.writeJSON(w, http.StatusOK, that.session.Snapshot())
}

func (that *Server) getPlayers(w http.ResponseWriter, _ *http.Request) {
	that.writeJSON(w, http.StatusOK, that.session.Players())
}

func (that *Server) placeMark(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "placeMark")

	var req markRequest

	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := decoder.Decode(&req); err != nil {
		log.Debug("failed to decode body", "error", err)
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})

		return
	}

	if req.X == nil || req.Y == nil {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: errMissingCoordinate.Error()})
		return
	}

	snapshot, err := that.session.PlaceMark(r.Context(), *req.X, *req.Y)
	if err != nil {
		status, body := errorToResponse(err)
		if status == http.StatusInternalServerError {
			log.Error("failed to place mark", "error", err)
		}

		that.writeJSON(w, status, body)

		return
	}

	that.writeJSON(w, http.StatusOK, snapshot)
}

func (that *Server) restart(w http.ResponseWriter, r *http.Request) {
	that.writeJSON(w, http.StatusOK, that.session.Restart(r.Context()))
}

func (that *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}

func errorToResponse(err error) (int, errorResponse) {
	var occupied *tictactoe.OccupiedError

	switch {
	case errors.As(err, &occupied):
		body := errorResponse{Error: apperror.ErrCellOccupied.Error()}
		if occupied.Owner != nil {
			owner := *occupied.Owner
			body.Owner = &owner
		}

		return http.StatusConflict, body
	case errors.Is(err, apperror.ErrGameFinished):
		return http.StatusConflict, errorResponse{Error: apperror.ErrGameFinished.Error()}
	case errors.Is(err, apperror.ErrInvalidCoordinate):
		return http.StatusBadRequest, errorResponse{Error: apperror.ErrInvalidCoordinate.Error()}
	default:
		return http.StatusInternalServerError, errorResponse{Error: "internal error"}
	}
}
