package score

import (
	"time"

	"github.com/tutolink/tutolink-api/schema"
)

const (
	// FallbackThreshold is the combined score below which a request is
	// hidden from a tutor's queue.
	FallbackThreshold = 0.3

	// FallbackScore is the low-visibility score a generalist tutor
	// receives instead of having the request hidden.
	FallbackScore = 0.1

	// GeneralistMinCourses is the expertise-set size above which a
	// tutor is treated as a generalist.
	GeneralistMinCourses = 5
)

const (
	LabelPerfectMatch = "Perfect Match"
	LabelExcellentFit = "Excellent Fit"
	LabelGoodMatch    = "Good Match"
	LabelRelatedTopic = "Related Topic"
	LabelGeneralMatch = "General Match"
	LabelFallback     = "Fallback Match"
)

// Result is the full breakdown of one (request, tutor) evaluation.
type Result struct {
	Score      float64 `json:"score"`
	Label      string  `json:"label"`
	Course     float64 `json:"course_score"`
	Department float64 `json:"department_score"`
	Keyword    float64 `json:"keyword_score"`
	Recency    float64 `json:"recency_score"`
}

// Match computes the match quality of a request against a tutor's
// expertise set. The course dimension dominates, department and
// keyword matches fill in when there is no direct hit, and recency
// nudges fresh knowledge up. The combined score is clamped to [0, 1].
func Match(request *schema.Session, expertise []schema.ExpertiseEntry, courses map[string]schema.Course, now time.Time) Result {
	if len(expertise) == 0 {
		return Result{Label: LabelFallback}
	}

	courseScore, bestEntry := CourseScore(request, expertise, courses)
	departmentScore := DepartmentScore(request, expertise, courses)
	keywordScore := KeywordScore(request, expertise, courses)
	recencyScore := RecencyScore(bestEntry, now)

	total := clamp01(courseScore + departmentScore + keywordScore + recencyScore)

	return Result{
		Score:      total,
		Label:      Label(total),
		Course:     courseScore,
		Department: departmentScore,
		Keyword:    keywordScore,
		Recency:    recencyScore,
	}
}

// Label maps a combined score to its human-readable quality label.
func Label(s float64) string {
	switch {
	case s >= 1.0:
		return LabelPerfectMatch
	case s >= 0.8:
		return LabelExcellentFit
	case s >= 0.6:
		return LabelGoodMatch
	case s >= 0.4:
		return LabelRelatedTopic
	case s >= 0.2:
		return LabelGeneralMatch
	default:
		return LabelFallback
	}
}
