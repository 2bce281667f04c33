package background

import (
	"time"

	"github.com/tutolink/tutolink-api/notification"
	"github.com/tutolink/tutolink-api/schema"
)

// Sweep applies both terminal corrections in one pass: acceptances
// whose grace period lapsed are released back to the request pool, and
// in-progress sessions past the maximum duration are completed.
func (m *BackgroundManager) Sweep() {
	m.sweepExpired()
	m.sweepOverrun()
}

func (m *BackgroundManager) sweepExpired() {
	sessions, err := m.store.ListExpiredAcceptances()
	if err != nil {
		log.Error("listing expired acceptances: ", err)
		return
	}

	now := time.Now()
	for i := range sessions {
		session := sessions[i]
		if !session.GraceExpired(now) {
			continue
		}

		expired, err := m.store.ExpireSession(session.ID.String())
		if err != nil {
			log.WithField("session", session.ID).Error("expiring session: ", err)
			continue
		}
		if !expired {
			// A racing start already moved the session on.
			continue
		}

		payload := notification.SessionPayload(&session)
		payload["status"] = schema.SESSION_EXPIRED

		if err := m.notifier.NotifyUser(session.RookieID, notification.EventSessionExpired, payload); err != nil {
			log.WithField("session", session.ID).Warn("notifying rookie: ", err)
		}
		if session.TutoID != nil {
			if err := m.notifier.NotifyUser(*session.TutoID, notification.EventSessionExpired, payload); err != nil {
				log.WithField("session", session.ID).Warn("notifying tuto: ", err)
			}
		}
	}
}

func (m *BackgroundManager) sweepOverrun() {
	sessions, err := m.store.ListOverrunSessions()
	if err != nil {
		log.Error("listing overrun sessions: ", err)
		return
	}

	now := time.Now()
	for i := range sessions {
		session := sessions[i]
		if !session.Overrun(now) {
			continue
		}

		completed, err := m.store.CompleteOverrunSession(session.ID.String())
		if err != nil {
			log.WithField("session", session.ID).Error("completing overrun session: ", err)
			continue
		}
		if completed == nil {
			continue
		}

		if err := m.notifier.NotifySession(completed, notification.EventSessionEnded, notification.SessionPayload(completed)); err != nil {
			log.WithField("session", session.ID).Warn("notifying parties: ", err)
		}
	}
}
