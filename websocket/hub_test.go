package websocket

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

func dialHub(t *testing.T, hub *Hub, userID uint) *websocket.Conn {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = hub.Subscribe(w, r, userID)
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { ws.Close() })
	return ws
}

func TestNotifyDeliversToSubscriber(t *testing.T) {
	hub := NewHub()
	ws := dialHub(t, hub, 5)

	// Subscribe registers asynchronously on the server side
	require.Eventually(t, func() bool {
		hub.mu.RLock()
		defer hub.mu.RUnlock()
		return len(hub.conns[5]) == 1
	}, time.Second, 10*time.Millisecond)

	hub.Notify(5, Event{Type: EventInvoiceCreated, Message: "Invoice raised"})

	ws.SetReadDeadline(time.Now().Add(time.Second))
	var event Event
	require.NoError(t, ws.ReadJSON(&event))
	require.Equal(t, EventInvoiceCreated, event.Type)
	require.Equal(t, "Invoice raised", event.Message)
}

func TestNotifyUnknownUserIsNoop(t *testing.T) {
	hub := NewHub()
	hub.Notify(42, Event{Type: EventReportApproved})
}

func TestNotifyTargetsOnlyTheUser(t *testing.T) {
	hub := NewHub()
	wsA := dialHub(t, hub, 1)
	wsB := dialHub(t, hub, 2)

	require.Eventually(t, func() bool {
		hub.mu.RLock()
		defer hub.mu.RUnlock()
		return len(hub.conns[1]) == 1 && len(hub.conns[2]) == 1
	}, time.Second, 10*time.Millisecond)

	hub.Notify(1, Event{Type: EventApplicationAccepted})

	wsA.SetReadDeadline(time.Now().Add(time.Second))
	var event Event
	require.NoError(t, wsA.ReadJSON(&event))
	require.Equal(t, EventApplicationAccepted, event.Type)

	wsB.SetReadDeadline(time.Now().Add(100 * time.Millisecond))
	_, _, err := wsB.ReadMessage()
	require.Error(t, err)
}
