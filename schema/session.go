package schema

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	SESSION_REQUESTED            = "REQUESTED"
	SESSION_ACCEPTED             = "ACCEPTED"
	SESSION_IN_PROGRESS          = "IN_PROGRESS"
	SESSION_PENDING_CONFIRMATION = "PENDING_CONFIRMATION"
	SESSION_EXPIRED              = "EXPIRED_PENDING_REASSIGNMENT"
	SESSION_COMPLETED            = "COMPLETED"
)

const (
	URGENCY_LOW    = "LOW"
	URGENCY_MEDIUM = "MEDIUM"
	URGENCY_HIGH   = "HIGH"
)

// GracePeriod is the window after acceptance during which the session
// must be started before it is released back to the request pool.
const GracePeriod = 5 * time.Minute

// MaxSessionDuration is the elapsed time after which an in-progress
// session is force-completed by the sweeper.
const MaxSessionDuration = 60 * time.Minute

// DuplicateRequestWindow is the minimum gap between two open requests
// from the same rookie.
const DuplicateRequestWindow = 5 * time.Minute

// Session is the central entity. A help request is a session in the
// REQUESTED state; acceptance and start move it along the lifecycle.
type Session struct {
	ID       uuid.UUID `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	RookieID string    `json:"rookie_id" gorm:"not null;index"`
	TutoID   *string   `json:"tuto_id" gorm:"index"`

	CourseID    *string `json:"course_id"`
	Subject     string  `json:"subject"`
	Topic       string  `json:"topic"`
	Description string  `json:"description"`
	Urgency     string  `json:"urgency" sql:"default:'MEDIUM'"`
	SearchText  string  `json:"-"`

	Status string `json:"status" sql:"default:'REQUESTED'"`

	// StartTime holds the request time until the start transition
	// overwrites it with the actual session start.
	StartTime      time.Time  `json:"start_time"`
	AcceptedAt     *time.Time `json:"accepted_at"`
	GracePeriodEnd *time.Time `json:"grace_period_end"`
	EndTime        *time.Time `json:"end_time"`
	Duration       int        `json:"duration"`

	DailyRoomName string     `json:"daily_room_name"`
	DailyRoomURL  string     `json:"daily_room_url"`
	CallActive    bool       `json:"call_active"`
	TutoInCall    bool       `json:"tuto_in_call"`
	RookieInCall  bool       `json:"rookie_in_call"`
	CallStartTime *time.Time `json:"call_start_time"`
	CallEndTime   *time.Time `json:"call_end_time"`

	// Feedback about the tuto is written by the rookie and vice versa.
	TutoRating      int    `json:"tuto_rating"`
	TutoFeedback    string `json:"tuto_feedback"`
	TutoAnonymous   bool   `json:"tuto_anonymous"`
	RookieRating    int    `json:"rookie_rating"`
	RookieFeedback  string `json:"rookie_feedback"`
	RookieAnonymous bool   `json:"rookie_anonymous"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SessionRequestParams carries the structured request metadata
// submitted by a rookie.
type SessionRequestParams struct {
	CourseID    *string `json:"course_id"`
	Subject     string  `json:"subject" binding:"required"`
	Topic       string  `json:"topic"`
	Description string  `json:"description"`
	Urgency     string  `json:"urgency"`
}

// ValidUrgency reports whether u is one of the accepted urgency levels.
func ValidUrgency(u string) bool {
	switch u {
	case URGENCY_LOW, URGENCY_MEDIUM, URGENCY_HIGH:
		return true
	}
	return false
}

// BuildSearchText derives the lowercased text view used for keyword
// matching from the structured request fields.
func BuildSearchText(subject, topic, description string) string {
	return strings.ToLower(strings.TrimSpace(strings.Join([]string{subject, topic, description}, " ")))
}

// IsParty reports whether userID is the rookie or the assigned tuto of
// the session.
func (s *Session) IsParty(userID string) bool {
	if s.RookieID == userID {
		return true
	}
	return s.TutoID != nil && *s.TutoID == userID
}

// Active reports whether the session currently binds the pair.
func (s *Session) Active() bool {
	return s.Status == SESSION_ACCEPTED || s.Status == SESSION_IN_PROGRESS
}

// WithinGracePeriod reports whether the start transition is still
// allowed at the given instant.
func (s *Session) WithinGracePeriod(now time.Time) bool {
	if s.Status != SESSION_ACCEPTED || s.GracePeriodEnd == nil {
		return false
	}
	return !now.After(*s.GracePeriodEnd)
}

// GraceExpired reports whether the acceptance lapsed without a start.
func (s *Session) GraceExpired(now time.Time) bool {
	if s.GracePeriodEnd == nil {
		return false
	}
	switch s.Status {
	case SESSION_ACCEPTED, SESSION_PENDING_CONFIRMATION:
		return now.After(*s.GracePeriodEnd)
	}
	return false
}

// Overrun reports whether an in-progress session exceeded the maximum
// session duration.
func (s *Session) Overrun(now time.Time) bool {
	return s.Status == SESSION_IN_PROGRESS && now.Sub(s.StartTime) > MaxSessionDuration
}
