package store

import (
	"github.com/jinzhu/gorm"

	"github.com/tutolink/tutolink-api/schema"
)

// tutolink main datastore
type TutoriaCore interface {
	Ping() error

	// Account
	CreateAccount(id, name, role string) (*schema.Account, error)
	GetAccount(id string) (*schema.Account, error)

	// Course
	GetCourse(id string) (*schema.Course, error)
	ListCourses() ([]schema.Course, error)
	GetCourseIndex(ids []string) (map[string]schema.Course, error)

	// Expertise
	ListExpertise(userID string) ([]schema.ExpertiseEntry, error)
	AddExpertise(userID, courseID string, proficiency schema.Proficiency, semester string, year int) (*schema.ExpertiseEntry, error)
	RemoveExpertise(userID, entryID string) error

	// Session lifecycle
	CreateSessionRequest(rookieID string, params schema.SessionRequestParams) (*schema.Session, error)
	GetSession(id string) (*schema.Session, error)
	ListOpenRequests(tutoID string, courseIDs, departments, keywords []string) ([]schema.Session, error)
	AcceptSession(sessionID, tutoID string) (*schema.Session, error)
	StartSession(sessionID, actorID string) (*schema.Session, error)
	EndSession(sessionID, actorID string) (*schema.Session, error)
	WithdrawSession(sessionID, rookieID string) error
	RejectSession(sessionID, tutoID string) (*schema.Session, error)
	UnrejectSession(sessionID, tutoID string) error
	ListActiveSessions(userID string) ([]schema.Session, error)
	ListSessionHistory(userID string, limit, offset int) ([]schema.Session, error)
	SubmitFeedback(sessionID, actorID string, rating int, feedback string, anonymous bool) (*schema.Session, error)
	UpdateSessionRoom(sessionID, roomName, roomURL string) error
	SetCallPresence(sessionID, userID string, inCall bool) error

	// Sweeper
	ListExpiredAcceptances() ([]schema.Session, error)
	ExpireSession(sessionID string) (bool, error)
	ListOverrunSessions() ([]schema.Session, error)
	CompleteOverrunSession(sessionID string) (*schema.Session, error)
}

// TutoriaStore is an implementation of TutoriaCore
type TutoriaStore struct {
	ormDB *gorm.DB
}

func NewTutoriaStore(ormDB *gorm.DB) *TutoriaStore {
	return &TutoriaStore{
		ormDB: ormDB,
	}
}

// Ping is to check the storage health status
func (s *TutoriaStore) Ping() error {
	return s.ormDB.DB().Ping()
}
