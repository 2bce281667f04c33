package schema

import (
	"time"

	"github.com/google/uuid"
)

// RejectedRequest marks that one tutor hid one request from their own
// queue. It never affects other tutors' visibility.
type RejectedRequest struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	SessionID uuid.UUID `json:"session_id" gorm:"type:uuid;not null;unique_index:idx_rejection_pair"`
	TutoID    string    `json:"tuto_id" gorm:"not null;unique_index:idx_rejection_pair"`
	CreatedAt time.Time `json:"created_at"`
}
