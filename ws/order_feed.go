package ws

import (
	"context"
	"net/http"
	"sync"
	"time"

	"storefront/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait   = 10 * time.Second
	feedBacklog = 64
)

// OrderFeedHub pushes placed orders to connected admin websocket clients.
type OrderFeedHub struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan *services.OrderView
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	done       chan struct{}
	mu         sync.Mutex
	log        *zap.Logger
}

func NewOrderFeedHub(log *zap.Logger) *OrderFeedHub {
	return &OrderFeedHub{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan *services.OrderView, feedBacklog),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		done:       make(chan struct{}),
		log:        log.Named("order_feed"),
	}
}

// Publish never blocks checkout; when the backlog is full the order is dropped
// from the feed.
func (h *OrderFeedHub) Publish(order *services.OrderView) {
	select {
	case h.broadcast <- order:
	default:
		h.log.Warn("order feed backlog full, dropping", zap.Uint("order_id", order.ID))
	}
}

// Run serves register, unregister and broadcast until ctx is done.
func (h *OrderFeedHub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for conn := range h.clients {
				conn.Close()
				delete(h.clients, conn)
			}
			h.mu.Unlock()
			return

		case conn := <-h.register:
			h.mu.Lock()
			h.clients[conn] = true
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mu.Unlock()

		case order := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients {
				_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
				if err := conn.WriteJSON(order); err != nil {
					h.log.Info("ws write failed", zap.Error(err))
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

func (h *OrderFeedHub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// HandleWebSocket serves GET /admin/ws/orders. Auth is done by the ws auth
// middleware.
func (h *OrderFeedHub) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Info("ws upgrade failed", zap.Error(err))
		return
	}
	select {
	case h.register <- conn:
		go h.drain(conn)
	case <-h.done:
		conn.Close()
	}
}

// drain reads until the client goes away; the feed is one way.
func (h *OrderFeedHub) drain(conn *websocket.Conn) {
	defer func() {
		select {
		case h.unregister <- conn:
		case <-h.done:
		}
	}()
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
