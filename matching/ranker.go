package matching

import (
	"sort"
	"time"

	"github.com/tutolink/tutolink-api/schema"
	"github.com/tutolink/tutolink-api/score"
	"github.com/tutolink/tutolink-api/store"
)

// RankedRequest is one open request scored for one tutor.
type RankedRequest struct {
	Session schema.Session `json:"session"`
	Score   float64        `json:"score"`
	Label   string         `json:"label"`
}

// Ranker surfaces open help requests to a tutor ordered by match
// quality.
type Ranker struct {
	store store.TutoriaCore
}

func NewRanker(s store.TutoriaCore) *Ranker {
	return &Ranker{store: s}
}

// RankForTutor scores the candidate pool against the tutor's expertise
// set and returns it ordered by score, the most recent request first
// among ties. Requests below the visibility threshold are hidden,
// unless the tutor is a generalist, who instead sees them at a fixed
// low score. A non-positive limit returns the whole list.
func (r *Ranker) RankForTutor(tutoID string, limit, offset int) ([]RankedRequest, error) {
	expertise, err := r.store.ListExpertise(tutoID)
	if err != nil {
		return nil, err
	}
	if len(expertise) == 0 {
		return []RankedRequest{}, nil
	}

	courseIDs := make([]string, 0, len(expertise))
	seen := map[string]struct{}{}
	for _, e := range expertise {
		if _, ok := seen[e.CourseID]; ok {
			continue
		}
		seen[e.CourseID] = struct{}{}
		courseIDs = append(courseIDs, e.CourseID)
	}

	index, err := r.store.GetCourseIndex(courseIDs)
	if err != nil {
		return nil, err
	}

	departments := []string{}
	deptSeen := map[string]struct{}{}
	for _, c := range index {
		if _, ok := deptSeen[c.Department]; ok {
			continue
		}
		deptSeen[c.Department] = struct{}{}
		departments = append(departments, c.Department)
	}
	sort.Strings(departments)

	pool, err := r.store.ListOpenRequests(tutoID, courseIDs, departments, KeywordsForDepartments(departments))
	if err != nil {
		return nil, err
	}

	// Request courses outside the tutor's own set still need metadata
	// for the department validation step.
	missing := []string{}
	for _, s := range pool {
		if s.CourseID == nil {
			continue
		}
		if _, ok := index[*s.CourseID]; !ok {
			missing = append(missing, *s.CourseID)
		}
	}
	if len(missing) > 0 {
		extra, err := r.store.GetCourseIndex(missing)
		if err != nil {
			return nil, err
		}
		for id, c := range extra {
			index[id] = c
		}
	}

	now := time.Now()
	generalist := len(expertise) > score.GeneralistMinCourses

	ranked := []RankedRequest{}
	for i := range pool {
		result := score.Match(&pool[i], expertise, index, now)
		if result.Score < score.FallbackThreshold {
			if !generalist {
				continue
			}
			result.Score = score.FallbackScore
			result.Label = score.LabelFallback
		}
		ranked = append(ranked, RankedRequest{
			Session: pool[i],
			Score:   result.Score,
			Label:   result.Label,
		})
	}

	// The pool arrives newest-first, so a stable sort keeps the
	// required tie-break.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if offset > 0 {
		if offset >= len(ranked) {
			return []RankedRequest{}, nil
		}
		ranked = ranked[offset:]
	}
	if limit > 0 && limit < len(ranked) {
		ranked = ranked[:limit]
	}

	return ranked, nil
}
