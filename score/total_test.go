package score_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tutolink/tutolink-api/schema"
	"github.com/tutolink/tutolink-api/score"
)

var testCourses = map[string]schema.Course{
	"CS101":   {ID: "CS101", Title: "Introduction to Computer Science", Department: "COMP"},
	"CS150":   {ID: "CS150", Title: "Intro to Programming", Department: "COMP"},
	"CS305":   {ID: "CS305", Title: "Computer Ethics", Department: "COMP"},
	"MATH201": {ID: "MATH201", Title: "Linear Algebra", Department: "MATH"},
	"CHEM110": {ID: "CHEM110", Title: "Organic Chemistry", Department: "CHEM"},
}

func courseID(id string) *string {
	return &id
}

func request(courseID *string, subject, topic, description string) *schema.Session {
	return &schema.Session{
		CourseID:    courseID,
		Subject:     subject,
		Topic:       topic,
		Description: description,
		SearchText:  schema.BuildSearchText(subject, topic, description),
	}
}

func entry(course string, p schema.Proficiency) schema.ExpertiseEntry {
	return schema.ExpertiseEntry{UserID: "tuto", CourseID: course, Proficiency: p, Active: true}
}

func TestMatchEmptyExpertise(t *testing.T) {
	req := request(courseID("CS101"), "recursion", "", "")

	result := score.Match(req, nil, testCourses, time.Now())

	assert.Equal(t, 0.0, result.Score)
	assert.Equal(t, score.LabelFallback, result.Label)
}

func TestMatchEmptyRequest(t *testing.T) {
	req := request(nil, "", "", "")
	expertise := []schema.ExpertiseEntry{entry("CS101", schema.PROFICIENCY_TAED)}

	result := score.Match(req, expertise, testCourses, time.Now())

	assert.Equal(t, 0.0, result.Score)
}

// A direct course match at GOT_A saturates the score.
func TestMatchDirectCourse(t *testing.T) {
	req := request(courseID("CS101"), "CS101", "", "")
	expertise := []schema.ExpertiseEntry{entry("CS101", schema.PROFICIENCY_GOT_A)}

	result := score.Match(req, expertise, testCourses, time.Now())

	assert.Equal(t, 1.0, result.Score)
	assert.Equal(t, score.LabelPerfectMatch, result.Label)
	assert.Equal(t, 1.3, result.Course)
}

// A same-department tutor with a related title scores strictly between
// zero and a direct match.
func TestMatchDepartmentOnly(t *testing.T) {
	req := request(courseID("CS101"), "Struggling with recursion", "", "assignment due friday")
	expertise := []schema.ExpertiseEntry{entry("CS150", schema.PROFICIENCY_TOOK_COURSE)}

	result := score.Match(req, expertise, testCourses, time.Now())

	assert.True(t, result.Score > 0, "expected a positive score")
	assert.True(t, result.Score < 1, "expected less than a perfect score")
	assert.Equal(t, 0.0, result.Course)
	assert.InDelta(t, 0.9*0.4082, result.Department, 1e-3)
}

func TestMatchDepartmentRejectsUnrelatedTitle(t *testing.T) {
	req := request(courseID("MATH201"), "matrices", "", "")
	// Same department as nothing; CHEM entry shares no department and
	// a COMP entry must not leak in through proficiency alone.
	expertise := []schema.ExpertiseEntry{
		entry("CHEM110", schema.PROFICIENCY_TAED),
		entry("CS305", schema.PROFICIENCY_TAED),
	}

	result := score.Match(req, expertise, testCourses, time.Now())

	assert.Equal(t, 0.0, result.Department)
}

func TestDepartmentScoreDiscardsLowSimilarity(t *testing.T) {
	// "Computer Ethics" shares COMP with CS101 but the titles barely
	// overlap, so the department match is discarded even at TAED.
	req := request(courseID("CS150"), "", "", "")
	expertise := []schema.ExpertiseEntry{entry("CS305", schema.PROFICIENCY_TAED)}

	s := score.DepartmentScore(req, expertise, testCourses)

	assert.Equal(t, 0.0, s)
}

func TestKeywordScoreCapsAndBonus(t *testing.T) {
	req := request(nil, "programming", "algebra", "chemistry ethics computer")
	expertise := []schema.ExpertiseEntry{
		entry("CS150", schema.PROFICIENCY_TOOK_COURSE),
		entry("MATH201", schema.PROFICIENCY_TOOK_COURSE),
		entry("CHEM110", schema.PROFICIENCY_TOOK_COURSE),
		entry("CS305", schema.PROFICIENCY_TOOK_COURSE),
	}

	// Five keyword hits: base capped at 0.5, three-plus bonus lifts to
	// the hard cap.
	s := score.KeywordScore(req, expertise, testCourses)

	assert.Equal(t, 0.6, s)
}

func TestKeywordScoreSingleHit(t *testing.T) {
	req := request(nil, "programming", "", "")
	expertise := []schema.ExpertiseEntry{entry("CS150", schema.PROFICIENCY_TOOK_COURSE)}

	assert.InDelta(t, 0.15, score.KeywordScore(req, expertise, testCourses), 1e-9)
}

func TestRecencyScoreDecay(t *testing.T) {
	now := time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC)

	sameTerm := entry("CS101", schema.PROFICIENCY_GOT_A)
	sameTerm.Semester = schema.SEMESTER_FALL
	sameTerm.Year = 2026

	threeYears := sameTerm
	threeYears.Year = 2023

	tooOld := sameTerm
	tooOld.Year = 2022

	assert.InDelta(t, 0.3, score.RecencyScore(&sameTerm, now), 1e-9)
	assert.InDelta(t, 0.1, score.RecencyScore(&threeYears, now), 1e-9)
	assert.Equal(t, 0.0, score.RecencyScore(&tooOld, now))
	assert.Equal(t, 0.0, score.RecencyScore(nil, now))
}

func TestLabelThresholds(t *testing.T) {
	cases := map[float64]string{
		1.0:  score.LabelPerfectMatch,
		0.99: score.LabelExcellentFit,
		0.8:  score.LabelExcellentFit,
		0.6:  score.LabelGoodMatch,
		0.4:  score.LabelRelatedTopic,
		0.2:  score.LabelGeneralMatch,
		0.19: score.LabelFallback,
		0.0:  score.LabelFallback,
	}

	for s, expected := range cases {
		assert.Equal(t, expected, score.Label(s), "wrong label for %f", s)
	}
}

func TestMatchScoreAlwaysInRange(t *testing.T) {
	req := request(courseID("CS101"), "computer science programming", "comp", "algorithms data structures comp")
	expertise := []schema.ExpertiseEntry{
		entry("CS101", schema.PROFICIENCY_TAED),
		entry("CS150", schema.PROFICIENCY_TAED),
		entry("CS305", schema.PROFICIENCY_TAED),
	}
	expertise[0].Semester = schema.SEMESTER_FALL
	expertise[0].Year = time.Now().Year()

	result := score.Match(req, expertise, testCourses, time.Now())

	assert.True(t, result.Score >= 0 && result.Score <= 1)
	assert.Equal(t, score.LabelPerfectMatch, result.Label)
}
