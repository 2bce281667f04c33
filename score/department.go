package score

import (
	"math"

	"github.com/tutolink/tutolink-api/schema"
)

const (
	departmentBase = 0.7

	// MinTitleSimilarity rejects same-department matches whose course
	// titles have nothing in common, so a "COMP" ethics seminar does
	// not score well against a data-structures request.
	MinTitleSimilarity = 0.4
)

// DepartmentScore scores the department dimension. It only applies
// when the request names a course: the strongest same-department entry
// is validated by title similarity before it may contribute.
func DepartmentScore(request *schema.Session, expertise []schema.ExpertiseEntry, courses map[string]schema.Course) float64 {
	if request.CourseID == nil {
		return 0
	}
	requestCourse, ok := courses[*request.CourseID]
	if !ok || requestCourse.Department == "" {
		return 0
	}

	var best *schema.ExpertiseEntry
	for i := range expertise {
		e := &expertise[i]
		course, ok := courses[e.CourseID]
		if !ok || course.Department != requestCourse.Department {
			continue
		}
		if best == nil || e.Bonus() > best.Bonus() {
			best = e
		}
	}
	if best == nil {
		return 0
	}

	similarity := CosineSimilarity(requestCourse.Title, courses[best.CourseID].Title)
	if similarity < MinTitleSimilarity {
		return 0
	}

	return (departmentBase + best.Bonus()) * math.Max(MinTitleSimilarity, similarity)
}
