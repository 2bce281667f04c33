package matching_test

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/tutolink/tutolink-api/matching"
	"github.com/tutolink/tutolink-api/schema"
	"github.com/tutolink/tutolink-api/score"
	"github.com/tutolink/tutolink-api/store/mocks"
)

var rankerCourses = map[string]schema.Course{
	"CS150": {ID: "CS150", Title: "Intro to Programming", Department: "COMP"},
}

func openRequest(courseID *string, subject string, age time.Duration) schema.Session {
	return schema.Session{
		ID:         uuid.New(),
		RookieID:   "rookie-1",
		CourseID:   courseID,
		Subject:    subject,
		SearchText: schema.BuildSearchText(subject, "", ""),
		Status:     schema.SESSION_REQUESTED,
		StartTime:  time.Now().Add(-age),
	}
}

func expertiseSet(n int) []schema.ExpertiseEntry {
	entries := []schema.ExpertiseEntry{
		{UserID: "tuto-1", CourseID: "CS150", Proficiency: schema.PROFICIENCY_GOT_A, Active: true},
	}
	for len(entries) < n {
		entries = append(entries, schema.ExpertiseEntry{
			UserID:      "tuto-1",
			CourseID:    "CS150",
			Proficiency: schema.PROFICIENCY_TOOK_COURSE,
			Active:      true,
		})
	}
	return entries
}

func TestRankForTutorNoExpertise(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := mocks.NewMockTutoriaCore(ctl)
	s.EXPECT().ListExpertise("tuto-1").Return(nil, nil).Times(1)

	ranked, err := matching.NewRanker(s).RankForTutor("tuto-1", 0, 0)

	assert.NoError(t, err)
	assert.Empty(t, ranked)
}

func TestRankForTutorOrdersByScore(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	cs150 := "CS150"
	direct := openRequest(&cs150, "recursion", time.Minute)
	keywordOnly := openRequest(nil, "intro programming question", 2*time.Minute)

	s := mocks.NewMockTutoriaCore(ctl)
	s.EXPECT().ListExpertise("tuto-1").Return(expertiseSet(1), nil).Times(1)
	s.EXPECT().GetCourseIndex([]string{"CS150"}).Return(rankerCourses, nil).Times(1)
	s.EXPECT().ListOpenRequests("tuto-1", gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]schema.Session{keywordOnly, direct}, nil).Times(1)

	ranked, err := matching.NewRanker(s).RankForTutor("tuto-1", 0, 0)

	assert.NoError(t, err)
	assert.Len(t, ranked, 2)
	assert.Equal(t, direct.ID, ranked[0].Session.ID)
	assert.Equal(t, 1.0, ranked[0].Score)
	assert.Equal(t, score.LabelPerfectMatch, ranked[0].Label)
	assert.True(t, ranked[1].Score < ranked[0].Score)
}

func TestRankForTutorHidesLowScores(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	unrelated := openRequest(nil, "medieval european history essay", time.Minute)

	s := mocks.NewMockTutoriaCore(ctl)
	s.EXPECT().ListExpertise("tuto-1").Return(expertiseSet(5), nil).Times(1)
	s.EXPECT().GetCourseIndex(gomock.Any()).Return(rankerCourses, nil).Times(1)
	s.EXPECT().ListOpenRequests("tuto-1", gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]schema.Session{unrelated}, nil).Times(1)

	ranked, err := matching.NewRanker(s).RankForTutor("tuto-1", 0, 0)

	assert.NoError(t, err)
	assert.Empty(t, ranked)
}

// A generalist still sees low-confidence requests, at a fixed
// low-visibility score.
func TestRankForTutorGeneralistFallback(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	unrelated := openRequest(nil, "medieval european history essay", time.Minute)

	s := mocks.NewMockTutoriaCore(ctl)
	s.EXPECT().ListExpertise("tuto-1").Return(expertiseSet(6), nil).Times(1)
	s.EXPECT().GetCourseIndex(gomock.Any()).Return(rankerCourses, nil).Times(1)
	s.EXPECT().ListOpenRequests("tuto-1", gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]schema.Session{unrelated}, nil).Times(1)

	ranked, err := matching.NewRanker(s).RankForTutor("tuto-1", 0, 0)

	assert.NoError(t, err)
	assert.Len(t, ranked, 1)
	assert.Equal(t, score.FallbackScore, ranked[0].Score)
	assert.Equal(t, score.LabelFallback, ranked[0].Label)
}

func TestRankForTutorFetchesRequestCourses(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	cs101 := "CS101"
	related := openRequest(&cs101, "recursion assignment", time.Minute)

	s := mocks.NewMockTutoriaCore(ctl)
	s.EXPECT().ListExpertise("tuto-1").Return(expertiseSet(1), nil).Times(1)
	s.EXPECT().GetCourseIndex([]string{"CS150"}).Return(rankerCourses, nil).Times(1)
	s.EXPECT().ListOpenRequests("tuto-1", gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]schema.Session{related}, nil).Times(1)
	s.EXPECT().GetCourseIndex([]string{"CS101"}).Return(map[string]schema.Course{
		"CS101": {ID: "CS101", Title: "Introduction to Computer Science", Department: "COMP"},
	}, nil).Times(1)

	ranked, err := matching.NewRanker(s).RankForTutor("tuto-1", 0, 0)

	assert.NoError(t, err)
	assert.Len(t, ranked, 1)
	assert.True(t, ranked[0].Score > 0)
	assert.True(t, ranked[0].Score < 1)
}

func TestRankForTutorPagination(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	cs150 := "CS150"
	first := openRequest(&cs150, "loops", time.Minute)
	second := openRequest(&cs150, "slices", 2*time.Minute)
	third := openRequest(&cs150, "maps", 3*time.Minute)

	s := mocks.NewMockTutoriaCore(ctl)
	s.EXPECT().ListExpertise("tuto-1").Return(expertiseSet(1), nil).Times(1)
	s.EXPECT().GetCourseIndex(gomock.Any()).Return(rankerCourses, nil).Times(1)
	s.EXPECT().ListOpenRequests("tuto-1", gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]schema.Session{first, second, third}, nil).Times(1)

	ranked, err := matching.NewRanker(s).RankForTutor("tuto-1", 1, 1)

	assert.NoError(t, err)
	assert.Len(t, ranked, 1)
	// All three tie on score, so creation order decides.
	assert.Equal(t, second.ID, ranked[0].Session.ID)
}
