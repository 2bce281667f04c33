package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
	"github.com/lib/pq"

	"github.com/tutolink/tutolink-api/schema"
)

var (
	ErrSessionNotFound         = fmt.Errorf("session not found")
	ErrRequestTaken            = fmt.Errorf("session request is no longer available")
	ErrDuplicatePendingRequest = fmt.Errorf("an open request from you already exists")
	ErrDuplicateActiveSession  = fmt.Errorf("an active session with this rookie already exists")
	ErrOwnRequest              = fmt.Errorf("cannot accept your own request")
	ErrGracePeriodExpired      = fmt.Errorf("grace period expired")
	ErrNotSessionParty         = fmt.Errorf("not a party to this session")
	ErrInvalidTransition       = fmt.Errorf("session is not open for this operation")
	ErrSessionNotCompleted     = fmt.Errorf("session is not completed yet")
	ErrFeedbackAlreadyGiven    = fmt.Errorf("feedback has already been submitted")
)

// CreateSessionRequest creates a REQUESTED session for a rookie. A
// rookie may not hold two open requests within the duplicate window.
func (s *TutoriaStore) CreateSessionRequest(rookieID string, params schema.SessionRequestParams) (*schema.Session, error) {
	now := time.Now()

	var count int
	if err := s.ormDB.Model(schema.Session{}).
		Where("rookie_id = ? AND status = ? AND start_time > ?",
			rookieID, schema.SESSION_REQUESTED, now.Add(-schema.DuplicateRequestWindow)).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicatePendingRequest
	}

	urgency := params.Urgency
	if urgency == "" {
		urgency = schema.URGENCY_MEDIUM
	}

	session := schema.Session{
		ID:          uuid.New(),
		RookieID:    rookieID,
		CourseID:    params.CourseID,
		Subject:     params.Subject,
		Topic:       params.Topic,
		Description: params.Description,
		Urgency:     urgency,
		SearchText:  schema.BuildSearchText(params.Subject, params.Topic, params.Description),
		Status:      schema.SESSION_REQUESTED,
		StartTime:   now,
	}

	if err := s.ormDB.Create(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *TutoriaStore) GetSession(id string) (*schema.Session, error) {
	var session schema.Session

	if err := s.ormDB.Where("id = ?", id).First(&session).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	return &session, nil
}

// ListOpenRequests returns the candidate pool for one tutor: open
// requests not rejected by this tutor which hit the tutor's courses,
// departments or department keywords. The scoring engine re-validates
// quality; this filter only trims the pool.
func (s *TutoriaStore) ListOpenRequests(tutoID string, courseIDs, departments, keywords []string) ([]schema.Session, error) {
	sessions := []schema.Session{}

	match := "FALSE"
	args := []interface{}{}
	if len(courseIDs) > 0 {
		match += " OR course_id IN (?)"
		args = append(args, courseIDs)
	}
	if len(departments) > 0 {
		match += " OR course_id IN (SELECT id FROM courses WHERE department IN (?))"
		args = append(args, departments)
	}
	for _, kw := range keywords {
		match += " OR search_text LIKE ?"
		args = append(args, "%"+kw+"%")
	}

	if err := s.ormDB.
		Where("status = ? AND tuto_id IS NULL AND rookie_id != ?", schema.SESSION_REQUESTED, tutoID).
		Where("NOT EXISTS (SELECT 1 FROM rejected_requests r WHERE r.session_id = sessions.id AND r.tuto_id = ?)", tutoID).
		Where("("+match+")", args...).
		Order("start_time desc").
		Find(&sessions).Error; err != nil {
		return nil, err
	}

	return sessions, nil
}

// AcceptSession assigns a tutor to a REQUESTED session and stamps the
// grace-period deadline. The whole precondition set is checked inside
// one conditional UPDATE so concurrent accepts of the same request
// cannot both win. The subquery alone cannot stop two accepts of two
// different requests from the same rookie (each statement snapshot
// predates the other's write), so the partial unique index on active
// (tuto_id, rookie_id) pairs backs it and surfaces here as 23505.
func (s *TutoriaStore) AcceptSession(sessionID, tutoID string) (*schema.Session, error) {
	now := time.Now()
	graceEnd := now.Add(schema.GracePeriod)

	result := s.ormDB.Model(schema.Session{}).
		Where(`id = ? AND status = ? AND tuto_id IS NULL AND rookie_id != ?
			AND NOT EXISTS (
				SELECT 1 FROM sessions active
				WHERE active.tuto_id = ? AND active.rookie_id = sessions.rookie_id
				AND active.status IN (?, ?))`,
			sessionID, schema.SESSION_REQUESTED, tutoID,
			tutoID, schema.SESSION_ACCEPTED, schema.SESSION_IN_PROGRESS).
		Updates(map[string]interface{}{
			"status":           schema.SESSION_ACCEPTED,
			"tuto_id":          tutoID,
			"accepted_at":      now,
			"grace_period_end": graceEnd,
		})
	if result.Error != nil {
		return nil, translateAcceptError(result.Error)
	}

	if result.RowsAffected == 0 {
		return nil, s.classifyAcceptFailure(sessionID, tutoID)
	}

	return s.GetSession(sessionID)
}

// translateAcceptError maps a unique violation on the active-pair
// index to the duplicate-session conflict.
func translateAcceptError(err error) error {
	if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
		return ErrDuplicateActiveSession
	}
	return err
}

// classifyAcceptFailure re-reads the record to turn a missed
// conditional update into the precise precondition that failed.
func (s *TutoriaStore) classifyAcceptFailure(sessionID, tutoID string) error {
	session, err := s.GetSession(sessionID)
	if err != nil {
		return err
	}
	if session.RookieID == tutoID {
		return ErrOwnRequest
	}
	if session.Status != schema.SESSION_REQUESTED || session.TutoID != nil {
		return ErrRequestTaken
	}
	return ErrDuplicateActiveSession
}

// StartSession moves an accepted session in progress. Start is only
// valid within the grace period; a sweep that already fired makes the
// deadline guard fail here.
func (s *TutoriaStore) StartSession(sessionID, actorID string) (*schema.Session, error) {
	now := time.Now()

	result := s.ormDB.Model(schema.Session{}).
		Where("id = ? AND status = ? AND (tuto_id = ? OR rookie_id = ?) AND grace_period_end >= ?",
			sessionID, schema.SESSION_ACCEPTED, actorID, actorID, now).
		Updates(map[string]interface{}{
			"status":          schema.SESSION_IN_PROGRESS,
			"start_time":      now,
			"call_active":     true,
			"call_start_time": now,
		})
	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		session, err := s.GetSession(sessionID)
		if err != nil {
			return nil, err
		}
		// A sweep that won the race cleared the tuto assignment, so
		// the expiry check comes before the party check.
		if session.Status == schema.SESSION_EXPIRED {
			return nil, ErrGracePeriodExpired
		}
		if !session.IsParty(actorID) {
			return nil, ErrNotSessionParty
		}
		if session.Status == schema.SESSION_ACCEPTED && !session.WithinGracePeriod(now) {
			return nil, ErrGracePeriodExpired
		}
		return nil, ErrInvalidTransition
	}

	return s.GetSession(sessionID)
}

// EndSession completes an active session, records the duration in
// minutes and bumps both parties' completed-session counters.
func (s *TutoriaStore) EndSession(sessionID, actorID string) (*schema.Session, error) {
	session, err := s.GetSession(sessionID)
	if err != nil {
		return nil, err
	}
	if !session.IsParty(actorID) {
		return nil, ErrNotSessionParty
	}
	if !session.Active() {
		return nil, ErrInvalidTransition
	}

	now := time.Now()

	// duration is derived from the row's own start_time inside the
	// statement: a start racing in between would make a value computed
	// from the earlier read measure from the request time instead
	result := s.ormDB.Model(schema.Session{}).
		Where("id = ? AND status IN (?, ?)",
			sessionID, schema.SESSION_ACCEPTED, schema.SESSION_IN_PROGRESS).
		Updates(map[string]interface{}{
			"status":         schema.SESSION_COMPLETED,
			"end_time":       now,
			"duration":       gorm.Expr("ROUND(EXTRACT(EPOCH FROM (?::timestamptz - start_time)) / 60)", now),
			"call_active":    false,
			"call_end_time":  now,
			"tuto_in_call":   false,
			"rookie_in_call": false,
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrInvalidTransition
	}

	parties := []string{session.RookieID}
	if session.TutoID != nil {
		parties = append(parties, *session.TutoID)
	}
	if err := s.ormDB.Model(schema.Account{}).
		Where("id IN (?)", parties).
		Update("sessions_completed", gorm.Expr("sessions_completed + 1")).Error; err != nil {
		return nil, err
	}

	return s.GetSession(sessionID)
}

// WithdrawSession hard-deletes a request that has not been accepted.
// Only the owning rookie may withdraw.
func (s *TutoriaStore) WithdrawSession(sessionID, rookieID string) error {
	result := s.ormDB.
		Where("id = ? AND rookie_id = ? AND status = ?",
			sessionID, rookieID, schema.SESSION_REQUESTED).
		Delete(schema.Session{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		session, err := s.GetSession(sessionID)
		if err != nil {
			return err
		}
		if session.RookieID != rookieID {
			return ErrNotSessionParty
		}
		return ErrInvalidTransition
	}

	return nil
}

func (s *TutoriaStore) ListActiveSessions(userID string) ([]schema.Session, error) {
	sessions := []schema.Session{}

	if err := s.ormDB.
		Where("(rookie_id = ? OR tuto_id = ?) AND status IN (?, ?)",
			userID, userID, schema.SESSION_ACCEPTED, schema.SESSION_IN_PROGRESS).
		Order("start_time desc").
		Find(&sessions).Error; err != nil {
		return nil, err
	}

	return sessions, nil
}

func (s *TutoriaStore) ListSessionHistory(userID string, limit, offset int) ([]schema.Session, error) {
	sessions := []schema.Session{}

	scope := s.ormDB.
		Where("(rookie_id = ? OR tuto_id = ?) AND status = ?",
			userID, userID, schema.SESSION_COMPLETED).
		Order("end_time desc").
		Offset(offset)
	if limit > 0 {
		scope = scope.Limit(limit)
	}

	if err := scope.Find(&sessions).Error; err != nil {
		return nil, err
	}

	return sessions, nil
}

// SubmitFeedback attaches a rating to a completed session. Each party
// rates the other and may do so once.
func (s *TutoriaStore) SubmitFeedback(sessionID, actorID string, rating int, feedback string, anonymous bool) (*schema.Session, error) {
	session, err := s.GetSession(sessionID)
	if err != nil {
		return nil, err
	}
	if !session.IsParty(actorID) {
		return nil, ErrNotSessionParty
	}
	if session.Status != schema.SESSION_COMPLETED {
		return nil, ErrSessionNotCompleted
	}

	// The rookie rates the tuto and vice versa.
	var guard string
	updates := map[string]interface{}{}
	if session.RookieID == actorID {
		guard = "tuto_rating = 0"
		updates["tuto_rating"] = rating
		updates["tuto_feedback"] = feedback
		updates["tuto_anonymous"] = anonymous
	} else {
		guard = "rookie_rating = 0"
		updates["rookie_rating"] = rating
		updates["rookie_feedback"] = feedback
		updates["rookie_anonymous"] = anonymous
	}

	result := s.ormDB.Model(schema.Session{}).
		Where("id = ? AND "+guard, sessionID).
		Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrFeedbackAlreadyGiven
	}

	return s.GetSession(sessionID)
}

// UpdateSessionRoom records the provisioned call room on a session.
func (s *TutoriaStore) UpdateSessionRoom(sessionID, roomName, roomURL string) error {
	return s.ormDB.Model(schema.Session{}).
		Where("id = ?", sessionID).
		Updates(map[string]interface{}{
			"daily_room_name": roomName,
			"daily_room_url":  roomURL,
		}).Error
}

// SetCallPresence flips the in-call flag of one party.
func (s *TutoriaStore) SetCallPresence(sessionID, userID string, inCall bool) error {
	result := s.ormDB.Model(schema.Session{}).
		Where("id = ? AND rookie_id = ?", sessionID, userID).
		Update("rookie_in_call", inCall)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}

	result = s.ormDB.Model(schema.Session{}).
		Where("id = ? AND tuto_id = ?", sessionID, userID).
		Update("tuto_in_call", inCall)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotSessionParty
	}
	return nil
}

// ListExpiredAcceptances returns sessions whose grace period lapsed
// without a start.
func (s *TutoriaStore) ListExpiredAcceptances() ([]schema.Session, error) {
	sessions := []schema.Session{}

	if err := s.ormDB.
		Where("status IN (?, ?) AND grace_period_end IS NOT NULL AND grace_period_end < ?",
			schema.SESSION_ACCEPTED, schema.SESSION_PENDING_CONFIRMATION, time.Now()).
		Find(&sessions).Error; err != nil {
		return nil, err
	}

	return sessions, nil
}

// ExpireSession releases a lapsed acceptance back to the request pool.
// The deadline guard makes a second sweep of the same session a no-op,
// and a start that won the race flips the status first so the guard
// fails cleanly.
func (s *TutoriaStore) ExpireSession(sessionID string) (bool, error) {
	result := s.ormDB.Model(schema.Session{}).
		Where("id = ? AND status IN (?, ?) AND grace_period_end IS NOT NULL AND grace_period_end < ?",
			sessionID, schema.SESSION_ACCEPTED, schema.SESSION_PENDING_CONFIRMATION, time.Now()).
		Updates(map[string]interface{}{
			"status":           schema.SESSION_EXPIRED,
			"tuto_id":          nil,
			"accepted_at":      nil,
			"grace_period_end": nil,
		})
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

// ListOverrunSessions returns in-progress sessions that ran past the
// maximum session duration.
func (s *TutoriaStore) ListOverrunSessions() ([]schema.Session, error) {
	sessions := []schema.Session{}

	if err := s.ormDB.
		Where("status = ? AND start_time < ?",
			schema.SESSION_IN_PROGRESS, time.Now().Add(-schema.MaxSessionDuration)).
		Find(&sessions).Error; err != nil {
		return nil, err
	}

	return sessions, nil
}

// CompleteOverrunSession force-completes an overrun session. It
// returns nil without error when another transition won the race.
func (s *TutoriaStore) CompleteOverrunSession(sessionID string) (*schema.Session, error) {
	session, err := s.GetSession(sessionID)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	result := s.ormDB.Model(schema.Session{}).
		Where("id = ? AND status = ? AND start_time < ?",
			sessionID, schema.SESSION_IN_PROGRESS, now.Add(-schema.MaxSessionDuration)).
		Updates(map[string]interface{}{
			"status":        schema.SESSION_COMPLETED,
			"end_time":      now,
			"duration":      gorm.Expr("ROUND(EXTRACT(EPOCH FROM (?::timestamptz - start_time)) / 60)", now),
			"call_active":   false,
			"call_end_time": now,
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	parties := []string{session.RookieID}
	if session.TutoID != nil {
		parties = append(parties, *session.TutoID)
	}
	if err := s.ormDB.Model(schema.Account{}).
		Where("id IN (?)", parties).
		Update("sessions_completed", gorm.Expr("sessions_completed + 1")).Error; err != nil {
		return nil, err
	}

	return s.GetSession(sessionID)
}
