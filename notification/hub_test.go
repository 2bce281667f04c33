package notification_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"

	"github.com/tutolink/tutolink-api/notification"
	"github.com/tutolink/tutolink-api/schema"
)

var upgrader = websocket.Upgrader{}

func dialClient(t *testing.T, hub *notification.Hub, userID, role string) *websocket.Conn {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Fatal(err)
		}
		hub.Register(conn, userID, role)
	}))
	t.Cleanup(server.Close)

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { conn.Close() })

	// Registration happens in the handler goroutine after the
	// handshake; give it a beat before events are pushed.
	time.Sleep(50 * time.Millisecond)

	return conn
}

func readEnvelope(t *testing.T, conn *websocket.Conn) notification.Envelope {
	var env notification.Envelope
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	if err := conn.ReadJSON(&env); err != nil {
		t.Fatal(err)
	}
	return env
}

func TestHubNotifyUser(t *testing.T) {
	hub := notification.NewHub()
	rookie := dialClient(t, hub, "rookie-1", schema.ROLE_ROOKIE)
	tuto := dialClient(t, hub, "tuto-1", schema.ROLE_TUTO)

	err := hub.NotifyUser("rookie-1", notification.EventRequestAccepted, map[string]interface{}{
		"session_id": "abc",
	})
	assert.NoError(t, err)

	env := readEnvelope(t, rookie)
	assert.Equal(t, notification.EventRequestAccepted, env.Event)
	assert.Equal(t, "abc", env.Payload["session_id"])

	// The tuto got nothing.
	_ = tuto.SetReadDeadline(time.Now().Add(200 * time.Millisecond))
	var unused notification.Envelope
	assert.Error(t, tuto.ReadJSON(&unused))
}

func TestHubNotifyRole(t *testing.T) {
	hub := notification.NewHub()
	tutoA := dialClient(t, hub, "tuto-a", schema.ROLE_TUTO)
	tutoB := dialClient(t, hub, "tuto-b", schema.ROLE_TUTO)
	rookie := dialClient(t, hub, "rookie-1", schema.ROLE_ROOKIE)

	err := hub.NotifyRole(schema.ROLE_TUTO, notification.EventNewRequest, nil)
	assert.NoError(t, err)

	assert.Equal(t, notification.EventNewRequest, readEnvelope(t, tutoA).Event)
	assert.Equal(t, notification.EventNewRequest, readEnvelope(t, tutoB).Event)

	_ = rookie.SetReadDeadline(time.Now().Add(200 * time.Millisecond))
	var unused notification.Envelope
	assert.Error(t, rookie.ReadJSON(&unused))
}

func TestHubNotifySession(t *testing.T) {
	hub := notification.NewHub()
	rookie := dialClient(t, hub, "rookie-1", schema.ROLE_ROOKIE)
	tuto := dialClient(t, hub, "tuto-1", schema.ROLE_TUTO)

	tutoID := "tuto-1"
	session := &schema.Session{RookieID: "rookie-1", TutoID: &tutoID}

	err := hub.NotifySession(session, notification.EventSessionStarted, nil)
	assert.NoError(t, err)

	assert.Equal(t, notification.EventSessionStarted, readEnvelope(t, rookie).Event)
	assert.Equal(t, notification.EventSessionStarted, readEnvelope(t, tuto).Event)
}

func TestHubNotifyDisconnectedUser(t *testing.T) {
	hub := notification.NewHub()

	assert.NoError(t, hub.NotifyUser("nobody", notification.EventNewRequest, nil))
}
