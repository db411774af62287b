package websocket

import (
	"context"
	"net/http"
	"time"

	"github.com/drujensen/taskapi/internal/domain/entities"
	"github.com/drujensen/taskapi/internal/domain/events"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const writeWait = 5 * time.Second

// TaskMessage is the frame pushed to every connected client.
type TaskMessage struct {
	Type string         `json:"type"`
	Task *entities.Task `json:"task,omitempty"`
}

// TaskHub fans task change events out to websocket clients. All connection
// bookkeeping and writes happen on the Run goroutine.
type TaskHub struct {
	logger     *zap.Logger
	upgrader   websocket.Upgrader
	clients    map[*websocket.Conn]bool
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	broadcast  chan events.TaskEventData
	done       chan struct{}
}

func NewTaskHub(logger *zap.Logger) *TaskHub {
	return &TaskHub{
		logger: logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		clients:    make(map[*websocket.Conn]bool),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		broadcast:  make(chan events.TaskEventData, 64),
		done:       make(chan struct{}),
	}
}

// Run subscribes to task events and serves the hub until ctx is cancelled.
func (h *TaskHub) Run(ctx context.Context) {
	cancel := events.SubscribeToTaskEvents(func(data events.TaskEventData) {
		select {
		case h.broadcast <- data:
		case <-h.done:
		}
	})
	defer cancel()
	defer close(h.done)

	for {
		select {
		case conn := <-h.register:
			h.clients[conn] = true
			h.send(conn, TaskMessage{Type: "connected"})
			h.logger.Info("WebSocket client connected", zap.Int("clients", len(h.clients)))
		case conn := <-h.unregister:
			if h.clients[conn] {
				delete(h.clients, conn)
				conn.Close()
				h.logger.Info("WebSocket client disconnected", zap.Int("clients", len(h.clients)))
			}
		case data := <-h.broadcast:
			message := TaskMessage{Type: "task_" + string(data.Kind), Task: data.Task}
			for conn := range h.clients {
				h.send(conn, message)
			}
		case <-ctx.Done():
			for conn := range h.clients {
				conn.Close()
				delete(h.clients, conn)
			}
			return
		}
	}
}

// send writes one frame, dropping the client when the write fails.
func (h *TaskHub) send(conn *websocket.Conn, message TaskMessage) {
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteJSON(message); err != nil {
		h.logger.Warn("Failed to send WebSocket message to client, removing from clients", zap.Error(err))
		delete(h.clients, conn)
		conn.Close()
	}
}

// Handle upgrades the request and keeps the connection registered until the
// client goes away. Incoming frames are ignored.
func (h *TaskHub) Handle(c echo.Context) error {
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		h.logger.Error("Failed to upgrade WebSocket connection", zap.Error(err))
		return nil
	}

	select {
	case h.register <- conn:
	case <-h.done:
		conn.Close()
		return nil
	}

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	select {
	case h.unregister <- conn:
	case <-h.done:
	}
	return nil
}
