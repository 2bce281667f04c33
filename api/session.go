package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tutolink/tutolink-api/notification"
	"github.com/tutolink/tutolink-api/schema"
	"github.com/tutolink/tutolink-api/store"
)

const defaultPageLimit = 20

// createSessionRequest is the API for a rookie asking for help
func (s *Server) createSessionRequest(c *gin.Context) {
	requester := c.GetString("requester")

	var params schema.SessionRequestParams
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if params.Urgency != "" && !schema.ValidUrgency(params.Urgency) {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	if params.CourseID != nil {
		if _, err := s.store.GetCourse(*params.CourseID); err != nil {
			if err == store.ErrCourseNotFound {
				abortWithEncoding(c, http.StatusBadRequest, errorCourseNotFound, err)
			} else {
				abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
			}
			return
		}
	}

	session, err := s.store.CreateSessionRequest(requester, params)
	if err != nil {
		if err == store.ErrDuplicatePendingRequest {
			abortWithEncoding(c, http.StatusConflict, errorDuplicatePendingRequest, err)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	if err := s.notifier.NotifyRole(schema.ROLE_TUTO, notification.EventNewRequest,
		notification.SessionPayload(session)); err != nil {
		log.WithError(err).Warn("broadcast new request")
	}

	c.JSON(http.StatusOK, gin.H{"result": session})
}

// listOpenRequests is the API returning the ranked candidate pool for
// the calling tuto
func (s *Server) listOpenRequests(c *gin.Context) {
	requester := c.GetString("requester")

	limit := defaultPageLimit
	if l, err := strconv.Atoi(c.Query("limit")); err == nil && l > 0 {
		limit = l
	}
	offset := 0
	if o, err := strconv.Atoi(c.Query("offset")); err == nil && o > 0 {
		offset = o
	}

	ranked, err := s.ranker.RankForTutor(requester, limit, offset)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": ranked})
}

// acceptSession is the API for a tuto claiming an open request
func (s *Server) acceptSession(c *gin.Context) {
	id := c.Param("sessionID")
	requester := c.GetString("requester")

	session, err := s.store.AcceptSession(id, requester)
	if err != nil {
		switch err {
		case store.ErrSessionNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorSessionNotFound, err)
		case store.ErrRequestTaken:
			abortWithEncoding(c, http.StatusConflict, errorRequestTaken, err)
		case store.ErrOwnRequest:
			abortWithEncoding(c, http.StatusForbidden, errorOwnRequest, err)
		case store.ErrDuplicateActiveSession:
			abortWithEncoding(c, http.StatusConflict, errorDuplicateActiveSession, err)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	// room provisioning happens after the committed transition and its
	// failure never rolls the acceptance back
	s.provisionRoom(session)

	if err := s.notifier.NotifyUser(session.RookieID, notification.EventRequestAccepted,
		notification.SessionPayload(session)); err != nil {
		log.WithError(err).Warn("notify acceptance")
	}

	c.JSON(http.StatusOK, gin.H{"result": session})
}

// rejectSession is the API for a tuto hiding a request from their pool
func (s *Server) rejectSession(c *gin.Context) {
	id := c.Param("sessionID")
	requester := c.GetString("requester")

	session, err := s.store.RejectSession(id, requester)
	if err != nil {
		switch err {
		case store.ErrSessionNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorSessionNotFound, err)
		case store.ErrInvalidTransition:
			abortWithEncoding(c, http.StatusConflict, errorInvalidTransition, err)
		case store.ErrAlreadyRejected:
			abortWithEncoding(c, http.StatusConflict, errorAlreadyRejected, err)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	if err := s.notifier.NotifyUser(session.RookieID, notification.EventRequestRejected,
		notification.SessionPayload(session)); err != nil {
		log.WithError(err).Warn("notify rejection")
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

// unrejectSession restores a previously rejected request
func (s *Server) unrejectSession(c *gin.Context) {
	id := c.Param("sessionID")
	requester := c.GetString("requester")

	if err := s.store.UnrejectSession(id, requester); err != nil {
		if err == store.ErrRejectionNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorRejectionNotFound, err)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

// startSession is the API moving an accepted session into progress.
// Either party may start within the grace period.
func (s *Server) startSession(c *gin.Context) {
	id := c.Param("sessionID")
	requester := c.GetString("requester")

	session, err := s.store.StartSession(id, requester)
	if err != nil {
		switch err {
		case store.ErrSessionNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorSessionNotFound, err)
		case store.ErrNotSessionParty:
			abortWithEncoding(c, http.StatusForbidden, errorNotSessionParty, err)
		case store.ErrGracePeriodExpired:
			abortWithEncoding(c, http.StatusConflict, errorGracePeriodExpired, err)
		case store.ErrInvalidTransition:
			abortWithEncoding(c, http.StatusConflict, errorInvalidTransition, err)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	if err := s.notifier.NotifySession(session, notification.EventSessionStarted,
		notification.SessionPayload(session)); err != nil {
		log.WithError(err).Warn("notify session start")
	}

	c.JSON(http.StatusOK, gin.H{"result": session})
}

// endSession is the API completing an in-progress session
func (s *Server) endSession(c *gin.Context) {
	id := c.Param("sessionID")
	requester := c.GetString("requester")

	session, err := s.store.EndSession(id, requester)
	if err != nil {
		switch err {
		case store.ErrSessionNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorSessionNotFound, err)
		case store.ErrNotSessionParty:
			abortWithEncoding(c, http.StatusForbidden, errorNotSessionParty, err)
		case store.ErrInvalidTransition:
			abortWithEncoding(c, http.StatusConflict, errorInvalidTransition, err)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	if s.rooms != nil && session.DailyRoomName != "" {
		if err := s.rooms.DeleteRoom(session.DailyRoomName); err != nil {
			log.WithError(err).Warn("delete video room")
		}
	}

	if err := s.notifier.NotifySession(session, notification.EventSessionEnded,
		notification.SessionPayload(session)); err != nil {
		log.WithError(err).Warn("notify session end")
	}

	c.JSON(http.StatusOK, gin.H{"result": session})
}

// withdrawSession is the API for a rookie removing their own open request
func (s *Server) withdrawSession(c *gin.Context) {
	id := c.Param("sessionID")
	requester := c.GetString("requester")

	if err := s.store.WithdrawSession(id, requester); err != nil {
		switch err {
		case store.ErrSessionNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorSessionNotFound, err)
		case store.ErrNotSessionParty:
			abortWithEncoding(c, http.StatusForbidden, errorNotSessionParty, err)
		case store.ErrInvalidTransition:
			abortWithEncoding(c, http.StatusConflict, errorInvalidTransition, err)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	if err := s.notifier.NotifyRole(schema.ROLE_TUTO, notification.EventRequestWithdrawn,
		map[string]interface{}{"session_id": id}); err != nil {
		log.WithError(err).Warn("broadcast withdrawal")
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

// listSessions returns the caller's sessions. The default scope is the
// active ones; `scope=history` pages through completed sessions, newest
// first.
func (s *Server) listSessions(c *gin.Context) {
	requester := c.GetString("requester")

	switch c.DefaultQuery("scope", "active") {
	case "active":
		sessions, err := s.store.ListActiveSessions(requester)
		if shouldInterupt(err, c) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"result": sessions})

	case "history":
		limit := defaultPageLimit
		if l, err := strconv.Atoi(c.Query("limit")); err == nil && l > 0 {
			limit = l
		}
		offset := 0
		if o, err := strconv.Atoi(c.Query("offset")); err == nil && o > 0 {
			offset = o
		}

		sessions, err := s.store.ListSessionHistory(requester, limit, offset)
		if shouldInterupt(err, c) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"result": sessions})

	default:
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
	}
}

// submitFeedback is the API for rating the counterparty of a completed
// session
func (s *Server) submitFeedback(c *gin.Context) {
	id := c.Param("sessionID")
	requester := c.GetString("requester")

	var params struct {
		Rating    int    `json:"rating"`
		Feedback  string `json:"feedback"`
		Anonymous bool   `json:"anonymous"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if params.Rating < 1 || params.Rating > 5 {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	session, err := s.store.SubmitFeedback(id, requester, params.Rating, params.Feedback, params.Anonymous)
	if err != nil {
		switch err {
		case store.ErrSessionNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorSessionNotFound, err)
		case store.ErrNotSessionParty:
			abortWithEncoding(c, http.StatusForbidden, errorNotSessionParty, err)
		case store.ErrSessionNotCompleted:
			abortWithEncoding(c, http.StatusConflict, errorSessionNotCompleted, err)
		case store.ErrFeedbackAlreadyGiven:
			abortWithEncoding(c, http.StatusConflict, errorFeedbackAlreadyGiven, err)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	counterparty := session.RookieID
	if session.RookieID == requester && session.TutoID != nil {
		counterparty = *session.TutoID
	}
	if err := s.notifier.NotifyUser(counterparty, notification.EventFeedbackReceived,
		notification.SessionPayload(session)); err != nil {
		log.WithError(err).Warn("notify feedback")
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

// sessionRoom returns the video room of a session, provisioning it
// lazily when the accept-time attempt failed
func (s *Server) sessionRoom(c *gin.Context) {
	id := c.Param("sessionID")
	requester := c.GetString("requester")

	session, err := s.store.GetSession(id)
	if err != nil {
		if err == store.ErrSessionNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorSessionNotFound, err)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	if !session.IsParty(requester) {
		abortWithEncoding(c, http.StatusForbidden, errorNotSessionParty)
		return
	}

	if !session.Active() {
		abortWithEncoding(c, http.StatusConflict, errorInvalidTransition)
		return
	}

	if session.DailyRoomURL == "" {
		s.provisionRoom(session)
		if session.DailyRoomURL == "" {
			abortWithEncoding(c, http.StatusServiceUnavailable, errorInternalServer)
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"result": gin.H{
			"room_name": session.DailyRoomName,
			"room_url":  session.DailyRoomURL,
		},
	})
}

// provisionRoom creates a video room for the session and records it.
// Failures are logged only; the caller retries through sessionRoom.
func (s *Server) provisionRoom(session *schema.Session) {
	if s.rooms == nil || session.DailyRoomURL != "" {
		return
	}

	room, err := s.rooms.CreateRoom(session.ID.String())
	if err != nil {
		log.WithError(err).WithField("session_id", session.ID).Warn("provision video room")
		return
	}

	if err := s.store.UpdateSessionRoom(session.ID.String(), room.Name, room.URL); err != nil {
		log.WithError(err).WithField("session_id", session.ID).Warn("record video room")
		return
	}

	session.DailyRoomName = room.Name
	session.DailyRoomURL = room.URL
}
