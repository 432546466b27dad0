package websocket

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-grid/internal/usecase"
)

type gameSession interface {
	PlaceMark(ctx context.Context, x, y int) (usecase.Snapshot, error)
	Restart(ctx context.Context) usecase.Snapshot
	Snapshot() usecase.Snapshot
	Subscribe() (<-chan usecase.Snapshot, func())
}

// Server streams the shared game to every connected client and applies their commands.
type Server struct {
	ctx      context.Context
	logger   *slog.Logger
	session  gameSession
	upgrader websocket.Upgrader

	handlers map[string]func(ctx context.Context, client *connection, message *Message) error
}

// New creates the handler. Open connections are closed when ctx is canceled.
func New(ctx context.Context, logger *slog.Logger, session gameSession) *Server {
	server := &Server{
		ctx:     ctx,
		logger:  logger.With("component", "websocket"),
		session: session,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},

		handlers: make(map[string]func(context.Context, *connection, *Message) error),
	}

	server.handlers[actionGameMark] = server.handleMark
	server.handlers[actionGameRestart] = server.handleRestart

	return server
}

func (that *Server) ServeHTTP(writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "ServeHTTP")

	conn, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		log.Debug("failed to upgrade connection", "error", err)
		return
	}

	client := newConnection(conn)

	updates, unsubscribe := that.session.Subscribe()
	defer func() {
		client.close()
		unsubscribe()
	}()

	go func() {
		if err := client.writePump(); err != nil {
			log.Debug("write failed", "error", err)
		}
		client.close()
	}()

	log.Info("WebSocket connection established", "remote", req.RemoteAddr)

	that.sendState(client, that.session.Snapshot())

	go that.forwardUpdates(client, updates)

	that.handleMessages(client)

	log.Info("WebSocket connection closed", "remote", req.RemoteAddr)
}

// forwardUpdates pushes every session change to the client until either side goes away.
func (that *Server) forwardUpdates(client *connection, updates <-chan usecase.Snapshot) {
	for {
		select {
		case snapshot, ok := <-updates:
			if !ok {
				if client.isClosed() {
					return
				}

				that.logger.Warn("client fell behind, closing connection")
				client.close()

				return
			}

			if !that.sendState(client, snapshot) {
				return
			}
		case <-that.ctx.Done():
			client.close()
			return
		case <-client.done:
			return
		}
	}
}

// handleMessages - processes messages from the client until the connection fails.
func (that *Server) handleMessages(client *connection) {
	log := that.logger.With("method", "handleMessages")

	client.prepareRead()

	for {
		_, data, err := client.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn("error reading message", "error", err)
			}

			return
		}

		var message Message
		if err = json.Unmarshal(data, &message); err != nil {
			log.Debug("failed to unmarshal message", "error", err)
			that.sendError(client, ErrorPayload{Error: "invalid message"})

			continue
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			that.sendError(client, ErrorPayload{Action: message.Action, Error: "unknown action"})
			continue
		}

		if err = handler(that.ctx, client, &message); err != nil {
			log.Error("error processing message", "action", message.Action, "error", err)
		}
	}
}

func (that *Server) sendState(client *connection, snapshot usecase.Snapshot) bool {
	message, err := newMessage(actionGameState, snapshot)
	if err != nil {
		that.logger.Error("failed to build state message", "error", err)
		return true
	}

	return client.enqueue(message)
}

func (that *Server) sendError(client *connection, payload ErrorPayload) {
	message, err := newMessage(actionError, payload)
	if err != nil {
		that.logger.Error("failed to build error message", "error", err)
		return
	}

	client.enqueue(message)
}
