package background_test

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/tutolink/tutolink-api/background"
	"github.com/tutolink/tutolink-api/notification"
	"github.com/tutolink/tutolink-api/schema"
	"github.com/tutolink/tutolink-api/store/mocks"
)

type recordedEvent struct {
	UserID string
	Event  string
}

// recordingNotifier captures fan-out calls; failures are injectable to
// check the sweeper swallows them.
type recordingNotifier struct {
	mu     sync.Mutex
	events []recordedEvent
	err    error
}

func (r *recordingNotifier) NotifyUser(userID, event string, payload map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, recordedEvent{UserID: userID, Event: event})
	return r.err
}

func (r *recordingNotifier) NotifyRole(role, event string, payload map[string]interface{}) error {
	return r.NotifyUser("role:"+role, event, payload)
}

func (r *recordingNotifier) NotifySession(session *schema.Session, event string, payload map[string]interface{}) error {
	if err := r.NotifyUser(session.RookieID, event, payload); err != nil {
		return err
	}
	if session.TutoID != nil {
		return r.NotifyUser(*session.TutoID, event, payload)
	}
	return nil
}

func (r *recordingNotifier) recorded() []recordedEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]recordedEvent{}, r.events...)
}

func acceptedSession(rookieID, tutoID string, graceEnd time.Time) schema.Session {
	return schema.Session{
		ID:             uuid.New(),
		RookieID:       rookieID,
		TutoID:         &tutoID,
		Status:         schema.SESSION_ACCEPTED,
		GracePeriodEnd: &graceEnd,
	}
}

func TestSweepExpiresLapsedAcceptances(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	lapsed := acceptedSession("rookie-1", "tuto-1", time.Now().Add(-time.Minute))

	s := mocks.NewMockTutoriaCore(ctl)
	s.EXPECT().ListExpiredAcceptances().Return([]schema.Session{lapsed}, nil).Times(1)
	s.EXPECT().ExpireSession(lapsed.ID.String()).Return(true, nil).Times(1)
	s.EXPECT().ListOverrunSessions().Return(nil, nil).Times(1)

	n := &recordingNotifier{}
	background.New(s, n).Sweep()

	events := n.recorded()
	assert.Len(t, events, 2)
	assert.Equal(t, recordedEvent{"rookie-1", notification.EventSessionExpired}, events[0])
	assert.Equal(t, recordedEvent{"tuto-1", notification.EventSessionExpired}, events[1])
}

// A session that lost the expire race produces no notification.
func TestSweepSkipsAlreadyConvergedSessions(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	lapsed := acceptedSession("rookie-1", "tuto-1", time.Now().Add(-time.Minute))

	s := mocks.NewMockTutoriaCore(ctl)
	s.EXPECT().ListExpiredAcceptances().Return([]schema.Session{lapsed}, nil).Times(1)
	s.EXPECT().ExpireSession(lapsed.ID.String()).Return(false, nil).Times(1)
	s.EXPECT().ListOverrunSessions().Return(nil, nil).Times(1)

	n := &recordingNotifier{}
	background.New(s, n).Sweep()

	assert.Empty(t, n.recorded())
}

// One failing record must not halt the sweep of the rest of the pool.
func TestSweepIsolatesPerSessionFailures(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	bad := acceptedSession("rookie-1", "tuto-1", time.Now().Add(-time.Minute))
	good := acceptedSession("rookie-2", "tuto-2", time.Now().Add(-time.Minute))

	s := mocks.NewMockTutoriaCore(ctl)
	s.EXPECT().ListExpiredAcceptances().Return([]schema.Session{bad, good}, nil).Times(1)
	s.EXPECT().ExpireSession(bad.ID.String()).Return(false, fmt.Errorf("deadlock")).Times(1)
	s.EXPECT().ExpireSession(good.ID.String()).Return(true, nil).Times(1)
	s.EXPECT().ListOverrunSessions().Return(nil, nil).Times(1)

	n := &recordingNotifier{}
	background.New(s, n).Sweep()

	events := n.recorded()
	assert.Len(t, events, 2)
	assert.Equal(t, "rookie-2", events[0].UserID)
}

func TestSweepCompletesOverrunSessions(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	tutoID := "tuto-1"
	overrun := schema.Session{
		ID:        uuid.New(),
		RookieID:  "rookie-1",
		TutoID:    &tutoID,
		Status:    schema.SESSION_IN_PROGRESS,
		StartTime: time.Now().Add(-2 * time.Hour),
	}
	completed := overrun
	completed.Status = schema.SESSION_COMPLETED

	s := mocks.NewMockTutoriaCore(ctl)
	s.EXPECT().ListExpiredAcceptances().Return(nil, nil).Times(1)
	s.EXPECT().ListOverrunSessions().Return([]schema.Session{overrun}, nil).Times(1)
	s.EXPECT().CompleteOverrunSession(overrun.ID.String()).Return(&completed, nil).Times(1)

	n := &recordingNotifier{}
	background.New(s, n).Sweep()

	events := n.recorded()
	assert.Len(t, events, 2)
	assert.Equal(t, notification.EventSessionEnded, events[0].Event)
}

func TestSweepSwallowsNotifierFailures(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	lapsed := acceptedSession("rookie-1", "tuto-1", time.Now().Add(-time.Minute))

	s := mocks.NewMockTutoriaCore(ctl)
	s.EXPECT().ListExpiredAcceptances().Return([]schema.Session{lapsed}, nil).Times(1)
	s.EXPECT().ExpireSession(lapsed.ID.String()).Return(true, nil).Times(1)
	s.EXPECT().ListOverrunSessions().Return(nil, nil).Times(1)

	n := &recordingNotifier{err: fmt.Errorf("push backend down")}
	assert.NotPanics(t, func() {
		background.New(s, n).Sweep()
	})
}

func TestManagerStartsOnce(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := mocks.NewMockTutoriaCore(ctl)

	m := background.New(s, &recordingNotifier{})
	assert.NoError(t, m.Start(time.Hour))
	defer m.Stop()

	assert.Error(t, m.Start(time.Hour))
}
