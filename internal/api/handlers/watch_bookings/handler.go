package watch_bookings

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 54 * time.Second // must be shorter than pongWait
)

type Handler struct {
	snapshots SnapshotProvider
	hub       Hub
	upgrader  websocket.Upgrader
	logger    Logger
}

func NewHandler(snapshots SnapshotProvider, hub Hub, allowedOrigins []string, logger Logger) *Handler {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	allowAll := false
	for _, origin := range allowedOrigins {
		if origin == "*" {
			allowAll = true
		}
		allowed[origin] = struct{}{}
	}

	return &Handler{
		snapshots: snapshots,
		hub:       hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin: func(r *http.Request) bool {
				if allowAll {
					return true
				}
				_, ok := allowed[r.Header.Get("Origin")]
				return ok
			},
		},
		logger: logger,
	}
}

// Handle GET /ws/bookings
//
// Each connected dashboard receives the full booking snapshot on
// connect and again after every mutation. Clients never send data;
// the read loop only watches for disconnects.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("GET /ws/bookings - Upgrade failed: %v", err)
		return
	}

	h.logger.Info("GET /ws/bookings - Client connected: remote=%s", conn.RemoteAddr())

	snapshots, unsubscribe := h.hub.Subscribe()
	done := make(chan struct{})

	// Initial state so the dashboard renders without waiting for a
	// mutation. Written before the write loop starts; the connection
	// allows a single concurrent writer.
	if initial, err := h.snapshots.SnapshotJSON(r.Context()); err != nil {
		h.logger.Error("GET /ws/bookings - Initial snapshot failed: %v", err)
	} else {
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteMessage(websocket.TextMessage, initial); err != nil {
			h.logger.Warn("GET /ws/bookings - Initial write failed: %v", err)
		}
	}

	go h.writeLoop(conn, snapshots, done)

	h.readLoop(conn)

	close(done)
	unsubscribe()
	conn.Close()
	h.logger.Info("GET /ws/bookings - Client disconnected: remote=%s", conn.RemoteAddr())
}

func (h *Handler) writeLoop(conn *websocket.Conn, snapshots <-chan []byte, done <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case snapshot, ok := <-snapshots:
			if !ok {
				return
			}
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.TextMessage, snapshot); err != nil {
				return
			}

		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-done:
			return
		}
	}
}

func (h *Handler) readLoop(conn *websocket.Conn) {
	conn.SetReadLimit(512)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
