package notification

import (
	"time"

	"github.com/tutolink/tutolink-api/schema"
)

const (
	EventNewRequest       = "new_request"
	EventRequestWithdrawn = "request_withdrawn"
	EventRequestAccepted  = "request_accepted"
	EventRequestRejected  = "request_rejected"
	EventSessionStarted   = "session_started"
	EventSessionEnded     = "session_ended"
	EventSessionExpired   = "session_expired"
	EventFeedbackReceived = "feedback_received"
)

// Envelope is the wire format of one pushed event.
type Envelope struct {
	Event     string                 `json:"event"`
	Payload   map[string]interface{} `json:"payload"`
	Timestamp time.Time              `json:"timestamp"`
}

// Notifier fans out events to interested parties. Implementations are
// best-effort: a slow or absent listener never blocks a transition.
type Notifier interface {
	NotifyUser(userID, event string, payload map[string]interface{}) error
	NotifyRole(role, event string, payload map[string]interface{}) error
	NotifySession(session *schema.Session, event string, payload map[string]interface{}) error
}

// SessionPayload is the common payload for session-scoped events.
func SessionPayload(session *schema.Session) map[string]interface{} {
	payload := map[string]interface{}{
		"session_id": session.ID.String(),
		"status":     session.Status,
		"subject":    session.Subject,
	}
	if session.CourseID != nil {
		payload["course_id"] = *session.CourseID
	}
	return payload
}
