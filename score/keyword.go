package score

import (
	"strings"

	"github.com/tutolink/tutolink-api/schema"
)

const (
	keywordHitValue   = 0.15
	keywordBaseCap    = 0.5
	keywordBonusValue = 0.1
	keywordBonusCap   = 0.6
	keywordBonusMin   = 3
)

// KeywordScore counts request keywords that appear somewhere in the
// tutor's course titles, codes or departments. Each hit is worth a
// fixed slice, capped, with a small bonus when several keywords land.
func KeywordScore(request *schema.Session, expertise []schema.ExpertiseEntry, courses map[string]schema.Course) float64 {
	tokens := Tokenize(request.SearchText)
	if len(tokens) == 0 {
		return 0
	}

	haystacks := make([]string, 0, len(expertise)*3)
	for _, e := range expertise {
		haystacks = append(haystacks, strings.ToLower(e.CourseID))
		if course, ok := courses[e.CourseID]; ok {
			haystacks = append(haystacks,
				strings.ToLower(course.Title),
				strings.ToLower(course.Department))
		}
	}

	matched := 0
	for _, token := range tokens {
		for _, h := range haystacks {
			if h != "" && strings.Contains(h, token) {
				matched++
				break
			}
		}
	}
	if matched == 0 {
		return 0
	}

	s := keywordHitValue * float64(matched)
	if s > keywordBaseCap {
		s = keywordBaseCap
	}
	if matched >= keywordBonusMin {
		s += keywordBonusValue
		if s > keywordBonusCap {
			s = keywordBonusCap
		}
	}
	return s
}
