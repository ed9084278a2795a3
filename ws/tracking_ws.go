package ws

import (
	"log"
	"net/http"
	"strconv"
	"sync"

	"foodhub/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// TrackingHub push สถานะ/ตำแหน่งคนขับของออเดอร์ให้คนที่เปิดหน้า tracking อยู่
// แทนที่ polling — client subscribe ด้วย order id แล้วรอ event
type TrackingHub struct {
	clients    map[uint]map[*websocket.Conn]bool // orderID -> set of clients
	broadcast  chan services.OrderUpdate
	register   chan Subscription
	unregister chan Subscription
	mu         sync.Mutex
}

// Subscription = หนึ่ง connection ต่อหนึ่งออเดอร์
type Subscription struct {
	Conn    *websocket.Conn
	OrderID uint
	UserID  uint
}

func NewTrackingHub() *TrackingHub {
	return &TrackingHub{
		clients:    make(map[uint]map[*websocket.Conn]bool),
		broadcast:  make(chan services.OrderUpdate, 16),
		register:   make(chan Subscription),
		unregister: make(chan Subscription),
	}
}

// PublishOrderUpdate ให้ OrderService เรียกหลัง transition สำเร็จ
// (implements services.OrderPublisher)
func (h *TrackingHub) PublishOrderUpdate(u services.OrderUpdate) {
	select {
	case h.broadcast <- u:
	default:
		// hub ตามไม่ทันก็ทิ้ง event — client ได้อันถัดไปอยู่ดี
	}
}

// คอยฟัง register/unregister/broadcast ตลอดเวลา
func (h *TrackingHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.OrderID] == nil {
				h.clients[sub.OrderID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.OrderID][sub.Conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.OrderID][sub.Conn]; ok {
				delete(h.clients[sub.OrderID], sub.Conn)
				sub.Conn.Close()
			}
			h.mu.Unlock()

		case u := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients[u.OrderID] {
				if err := conn.WriteJSON(u); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients[u.OrderID], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

var upgrader = websocket.Upgrader{
	// ฝั่ง HTTP มี CORS คุมแล้ว ที่นี่ปล่อยผ่าน
	CheckOrigin: func(r *http.Request) bool { return true },
}

// GET /ws/orders/:id (ผ่าน WSAuthMiddleware มาแล้ว)
func (h *TrackingHub) HandleWS(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}
	orderID := uint(id)

	v, _ := c.Get("userId")
	userID, _ := v.(uint)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	sub := Subscription{Conn: conn, OrderID: orderID, UserID: userID}
	h.register <- sub

	// อ่านทิ้งไปเรื่อย ๆ จนกว่า client จะหลุด (hub นี้ push อย่างเดียว)
	go func() {
		defer func() { h.unregister <- sub }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
