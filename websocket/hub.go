package websocket

import (
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Event is pushed to a connected user when an application is decided or
// an invoice is created. Delivery is best-effort: offline users miss
// events.
type Event struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Payload any    `json:"payload,omitempty"`
}

const (
	EventApplicationAccepted = "application_accepted"
	EventApplicationRejected = "application_rejected"
	EventReportApproved      = "report_approved"
	EventReportRejected      = "report_rejected"
	EventInvoiceCreated      = "invoice_created"
)

type Hub struct {
	mu    sync.RWMutex
	conns map[uint][]*websocket.Conn
}

func NewHub() *Hub {
	return &Hub{conns: make(map[uint][]*websocket.Conn)}
}

// Subscribe upgrades the request and registers the connection under the
// user id. It blocks reading until the client goes away.
func (h *Hub) Subscribe(w http.ResponseWriter, r *http.Request, userID uint) error {
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	h.mu.Lock()
	h.conns[userID] = append(h.conns[userID], ws)
	h.mu.Unlock()

	defer h.remove(userID, ws)
	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			return nil
		}
	}
}

func (h *Hub) remove(userID uint, ws *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	conns := h.conns[userID]
	for i, c := range conns {
		if c == ws {
			h.conns[userID] = append(conns[:i], conns[i+1:]...)
			break
		}
	}
	if len(h.conns[userID]) == 0 {
		delete(h.conns, userID)
	}
	ws.Close()
}

// Notify pushes an event to every open connection of the user.
func (h *Hub) Notify(userID uint, event Event) {
	h.mu.RLock()
	conns := append([]*websocket.Conn(nil), h.conns[userID]...)
	h.mu.RUnlock()

	for _, ws := range conns {
		if err := ws.WriteJSON(event); err != nil {
			log.Printf("websocket push to user %d failed: %v", userID, err)
		}
	}
}
