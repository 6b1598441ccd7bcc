package events

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"clientportal/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Event actions
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
)

// Event is one entity lifecycle notification pushed to connected portal clients
type Event struct {
	Action string      `json:"action"` // created, updated
	Entity string      `json:"entity"` // request, task, document, invoice
	Data   interface{} `json:"data"`
	At     time.Time   `json:"at"`
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Allow all origins for dev simplicity
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Client represents a single connected WebSocket client
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

// Hub maintains the set of active clients and broadcasts entity events to them
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	mu         sync.Mutex
}

// NewHub initializes a new event Hub instance
func NewHub() *Hub {
	return &Hub{
		broadcast:  make(chan []byte),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
	}
}

// Publish broadcasts one entity event to all connected clients. Best effort:
// a marshal failure is logged and dropped, never surfaced to the operation
// that triggered it.
func (h *Hub) Publish(action, entity string, data interface{}) {
	payload, err := json.Marshal(Event{
		Action: action,
		Entity: entity,
		Data:   data,
		At:     time.Now(),
	})
	if err != nil {
		zap.L().Warn("failed to marshal event", zap.String("entity", entity), zap.Error(err))
		return
	}
	h.broadcast <- payload
}

// Run starts the core dispatch loop for WebSocket events
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			zap.L().Info("websocket client connected")
		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				zap.L().Info("websocket client disconnected")
			}
			h.mu.Unlock()
		case message := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					close(client.send)
					delete(h.clients, client)
				}
			}
			h.mu.Unlock()
		}
	}
}

// writePump handles writing messages from the Hub to the WebSocket connection
func (c *Client) writePump() {
	defer func() {
		_ = c.conn.Close()
	}()
	for message := range c.send {
		w, err := c.conn.NextWriter(websocket.TextMessage)
		if err != nil {
			return
		}
		_, _ = w.Write(message)

		// Fast track writing queued messages
		n := len(c.send)
		for i := 0; i < n; i++ {
			_, _ = w.Write([]byte{'\n'})
			_, _ = w.Write(<-c.send)
		}

		if err := w.Close(); err != nil {
			return
		}
	}
	_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}

// readPump pumps messages from the WebSocket connection to the hub
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		_ = c.conn.Close()
	}()
	for {
		// Reading only to detect disconnects; clients do not send
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				zap.L().Warn("websocket read error", zap.Error(err))
			}
			break
		}
	}
}

// ServeWs authenticates the peer via a token query param and registers it with the hub
func ServeWs(hub *Hub, c *gin.Context, secret []byte) {
	tokenString := c.Query("token")
	if tokenString == "" {
		zap.L().Warn("websocket connection rejected: missing token")
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		zap.L().Warn("websocket connection rejected: invalid token", zap.Error(err))
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		zap.L().Warn("websocket connection rejected: invalid claims")
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	role, _ := claims["role"].(string)
	if !model.ValidUserRole(role) || role == model.RoleGuest {
		zap.L().Warn("websocket connection rejected: inadequate role", zap.String("role", role))
		c.AbortWithStatus(http.StatusForbidden)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		zap.L().Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	client := &Client{hub: hub, conn: conn, send: make(chan []byte, 256)}
	client.hub.register <- client

	go client.writePump()
	go client.readPump()
}
