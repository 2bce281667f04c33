package store

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/tutolink/tutolink-api/schema"
)

var (
	ErrAlreadyRejected   = fmt.Errorf("request has already been rejected")
	ErrRejectionNotFound = fmt.Errorf("no rejection to remove")
)

// RejectSession hides an open request from one tutor's queue and
// returns the rejected session. The unique (session, tuto) index makes
// a repeated reject a conflict.
func (s *TutoriaStore) RejectSession(sessionID, tutoID string) (*schema.Session, error) {
	session, err := s.GetSession(sessionID)
	if err != nil {
		return nil, err
	}
	if session.Status != schema.SESSION_REQUESTED {
		return nil, ErrInvalidTransition
	}

	rejection := schema.RejectedRequest{
		ID:        uuid.New(),
		SessionID: session.ID,
		TutoID:    tutoID,
	}
	if err := s.ormDB.Create(&rejection).Error; err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return nil, ErrAlreadyRejected
		}
		return nil, err
	}

	return session, nil
}

// UnrejectSession restores a hidden request to the tutor's queue.
func (s *TutoriaStore) UnrejectSession(sessionID, tutoID string) error {
	result := s.ormDB.
		Where("session_id = ? AND tuto_id = ?", sessionID, tutoID).
		Delete(schema.RejectedRequest{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRejectionNotFound
	}

	return nil
}
