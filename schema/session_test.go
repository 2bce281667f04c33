package schema_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/tutolink/tutolink-api/schema"
)

func TestWithinGracePeriodBoundary(t *testing.T) {
	deadline := time.Now().Add(schema.GracePeriod)
	session := schema.Session{
		ID:             uuid.New(),
		RookieID:       "rookie-1",
		Status:         schema.SESSION_ACCEPTED,
		GracePeriodEnd: &deadline,
	}

	// start is allowed up to and including the deadline itself
	assert.True(t, session.WithinGracePeriod(deadline.Add(-time.Second)))
	assert.True(t, session.WithinGracePeriod(deadline))
	assert.False(t, session.WithinGracePeriod(deadline.Add(time.Second)))

	session.Status = schema.SESSION_IN_PROGRESS
	assert.False(t, session.WithinGracePeriod(deadline))

	session.Status = schema.SESSION_ACCEPTED
	session.GracePeriodEnd = nil
	assert.False(t, session.WithinGracePeriod(deadline))
}

func TestGraceExpiredBoundary(t *testing.T) {
	deadline := time.Now()
	session := schema.Session{
		ID:             uuid.New(),
		RookieID:       "rookie-1",
		Status:         schema.SESSION_ACCEPTED,
		GracePeriodEnd: &deadline,
	}

	assert.False(t, session.GraceExpired(deadline))
	assert.True(t, session.GraceExpired(deadline.Add(time.Second)))

	session.Status = schema.SESSION_PENDING_CONFIRMATION
	assert.True(t, session.GraceExpired(deadline.Add(time.Second)))

	session.Status = schema.SESSION_IN_PROGRESS
	assert.False(t, session.GraceExpired(deadline.Add(time.Second)))

	session.Status = schema.SESSION_ACCEPTED
	session.GracePeriodEnd = nil
	assert.False(t, session.GraceExpired(deadline.Add(time.Hour)))
}

func TestOverrunBoundary(t *testing.T) {
	start := time.Now()
	session := schema.Session{
		ID:        uuid.New(),
		RookieID:  "rookie-1",
		Status:    schema.SESSION_IN_PROGRESS,
		StartTime: start,
	}

	assert.False(t, session.Overrun(start.Add(schema.MaxSessionDuration)))
	assert.True(t, session.Overrun(start.Add(schema.MaxSessionDuration+time.Second)))

	session.Status = schema.SESSION_ACCEPTED
	assert.False(t, session.Overrun(start.Add(2*schema.MaxSessionDuration)))
}

func TestIsPartyAndActive(t *testing.T) {
	tutoID := "tuto-1"
	session := schema.Session{
		ID:       uuid.New(),
		RookieID: "rookie-1",
		TutoID:   &tutoID,
		Status:   schema.SESSION_ACCEPTED,
	}

	assert.True(t, session.IsParty("rookie-1"))
	assert.True(t, session.IsParty("tuto-1"))
	assert.False(t, session.IsParty("tuto-2"))
	assert.True(t, session.Active())

	session.TutoID = nil
	session.Status = schema.SESSION_REQUESTED
	assert.False(t, session.IsParty("tuto-1"))
	assert.False(t, session.Active())
}
