package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/tutolink/tutolink-api/schema"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// presenceMessage is the only inbound frame clients send: whether they
// are currently in the video call of a session.
type presenceMessage struct {
	SessionID string `json:"session_id"`
	InCall    bool   `json:"in_call"`
}

// wsConnect attaches the caller to the notification hub. The read side
// stays open for call presence updates until the client disconnects.
func (s *Server) wsConnect(c *gin.Context) {
	actor, ok := c.MustGet("actor").(schema.Actor)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.WithError(err).Warn("websocket upgrade")
		return
	}

	client := s.hub.Register(conn, actor.ID, actor.Role)
	defer client.Close()

	for {
		var msg presenceMessage
		if err := conn.ReadJSON(&msg); err != nil {
			return
		}
		if msg.SessionID == "" {
			continue
		}

		if err := s.store.SetCallPresence(msg.SessionID, actor.ID, msg.InCall); err != nil {
			log.WithError(err).WithField("session_id", msg.SessionID).Warn("set call presence")
		}
	}
}
