package score

import (
	"strings"

	"github.com/tutolink/tutolink-api/schema"
)

const (
	directMatchBase    = 1.0
	departmentTextBase = 0.8
)

// CourseScore scores the direct course dimension of a request. An
// exact course-id match yields the full base; failing that, a
// department name appearing inside the request text yields a reduced
// base. Either base is boosted by the proficiency of the best matching
// entry. It returns the score together with the entry that produced
// it, which the recency dimension reuses.
func CourseScore(request *schema.Session, expertise []schema.ExpertiseEntry, courses map[string]schema.Course) (float64, *schema.ExpertiseEntry) {
	var best *schema.ExpertiseEntry

	if request.CourseID != nil {
		for i := range expertise {
			e := &expertise[i]
			if e.CourseID != *request.CourseID {
				continue
			}
			if best == nil || e.Bonus() > best.Bonus() {
				best = e
			}
		}
		if best != nil {
			return directMatchBase + best.Bonus(), best
		}
	}

	text := strings.ToLower(request.SearchText)
	if text == "" {
		return 0, nil
	}

	for i := range expertise {
		e := &expertise[i]
		course, ok := courses[e.CourseID]
		if !ok || course.Department == "" {
			continue
		}
		if !strings.Contains(text, strings.ToLower(course.Department)) {
			continue
		}
		if best == nil || e.Bonus() > best.Bonus() {
			best = e
		}
	}
	if best != nil {
		return departmentTextBase + best.Bonus(), best
	}

	return 0, nil
}
