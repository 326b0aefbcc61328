package ws

import (
	"context"
	"encoding/json"
	"log"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/zaqqye/facetrack_backend/internal/models"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	sendBufferSize = 256
)

const (
	EventAttendanceRecorded = "attendance_recorded"
	EventStudentRegistered  = "student_registered"
	EventSpoofDetected      = "spoof_detected"
	EventDatabaseReset      = "database_reset"
	EventDatabaseCleared    = "database_cleared"
)

// Event is pushed to every dashboard listening on the live feed.
type Event struct {
	Type        string                      `json:"type"`
	Student     *models.Student             `json:"student,omitempty"`
	Log         *models.AttendanceLog       `json:"log,omitempty"`
	Recognition *models.RecognitionResponse `json:"recognition,omitempty"`
	At          time.Time                   `json:"at"`
}

// FeedHub fans attendance activity out to websocket clients.
type FeedHub struct {
	register   chan *feedClient
	unregister chan *feedClient
	broadcast  chan []byte
	clients    map[*feedClient]struct{}
	connected  atomic.Int64
	done       chan struct{}
}

func NewFeedHub() *FeedHub {
	return &FeedHub{
		register:   make(chan *feedClient),
		unregister: make(chan *feedClient),
		broadcast:  make(chan []byte, 256),
		clients:    make(map[*feedClient]struct{}),
		done:       make(chan struct{}),
	}
}

// Run owns the client set until ctx is cancelled.
func (h *FeedHub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			for client := range h.clients {
				h.drop(client)
			}
			return
		case client := <-h.register:
			h.clients[client] = struct{}{}
			h.connected.Store(int64(len(h.clients)))
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				h.drop(client)
			}
		case msg := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- msg:
				default:
					h.drop(client)
				}
			}
		}
	}
}

func (h *FeedHub) drop(client *feedClient) {
	delete(h.clients, client)
	close(client.send)
	client.conn.Close()
	h.connected.Store(int64(len(h.clients)))
}

// Connected is the number of registered clients.
func (h *FeedHub) Connected() int {
	if h == nil {
		return 0
	}
	return int(h.connected.Load())
}

// Publish queues an event. It never blocks; events are dropped when the hub is saturated.
func (h *FeedHub) Publish(ev Event) {
	if h == nil {
		return
	}
	if ev.At.IsZero() {
		ev.At = time.Now().UTC()
	}
	data, err := json.Marshal(ev)
	if err != nil {
		log.Printf("ws: failed to marshal event: %v", err)
		return
	}
	select {
	case h.broadcast <- data:
	default:
		log.Printf("ws: feed saturated, dropping %s", ev.Type)
	}
}

type feedClient struct {
	hub  *FeedHub
	conn *websocket.Conn
	send chan []byte
}

func newFeedClient(hub *FeedHub, conn *websocket.Conn) *feedClient {
	return &feedClient{
		hub:  hub,
		conn: conn,
		send: make(chan []byte, sendBufferSize),
	}
}

// readPump only drains control frames; dashboards never send data.
func (c *feedClient) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
	}()
	c.conn.SetReadLimit(512)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (c *feedClient) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
