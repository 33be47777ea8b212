package notify

import (
	"encoding/json"
	"sync"

	"recruit-console/internal/pkg/logger"
)

const (
	LevelSuccess = "success"
	LevelError   = "error"
	LevelInfo    = "info"
)

// Toast is one transient status message pushed to the console shell.
type Toast struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// Hub fans toasts out to every connected console tab. Single-operator
// deployment, so there is no per-user routing; every client gets every
// toast.
type Hub struct {
	clients map[*Client]bool

	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex

	logger logger.ILogger
}

func NewHub(log logger.ILogger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		logger:     log,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			h.logger.Info("Hub", "Toast client connected", map[string]interface{}{
				"clients": h.clientCount(),
			})

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
			}
			h.mu.Unlock()
			h.logger.Info("Hub", "Toast client disconnected", map[string]interface{}{
				"clients": h.clientCount(),
			})
		}
	}
}

func (h *Hub) clientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Broadcast pushes one toast to all connected tabs. Slow consumers are
// dropped rather than allowed to back-pressure the rest.
func (h *Hub) Broadcast(toast Toast) {
	data, err := json.Marshal(map[string]interface{}{
		"type": "toast",
		"data": toast,
	})
	if err != nil {
		h.logger.Error("Hub", "Failed serializing toast", map[string]interface{}{"error": err.Error()})
		return
	}

	h.mu.RLock()
	for client := range h.clients {
		select {
		case client.Send <- data:
		default:
			go func(c *Client) { h.unregister <- c }(client)
		}
	}
	h.mu.RUnlock()
}

func (h *Hub) Success(message string) { h.Broadcast(Toast{Level: LevelSuccess, Message: message}) }
func (h *Hub) Error(message string)   { h.Broadcast(Toast{Level: LevelError, Message: message}) }
func (h *Hub) Info(message string)    { h.Broadcast(Toast{Level: LevelInfo, Message: message}) }
