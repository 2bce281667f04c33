package score

import (
	"time"

	"github.com/tutolink/tutolink-api/schema"
)

const (
	recencyMaxBoost = 0.3
	recencyMinBoost = 0.1
	recencyMaxYears = 3.0
	termsPerYear    = 3
)

func semesterOrdinal(semester string) int {
	switch semester {
	case schema.SEMESTER_SPRING:
		return 0
	case schema.SEMESTER_SUMMER:
		return 1
	default:
		return 2
	}
}

func currentTermIndex(now time.Time) int {
	var ord int
	switch m := now.Month(); {
	case m <= time.May:
		ord = 0
	case m <= time.August:
		ord = 1
	default:
		ord = 2
	}
	return now.Year()*termsPerYear + ord
}

// RecencyScore boosts entries studied recently: the full boost for the
// current term, decaying linearly to the minimum at three years back,
// nothing beyond that.
func RecencyScore(entry *schema.ExpertiseEntry, now time.Time) float64 {
	if entry == nil || !entry.HasTermMarker() {
		return 0
	}

	entryIndex := entry.Year*termsPerYear + semesterOrdinal(entry.Semester)
	diff := currentTermIndex(now) - entryIndex
	if diff < 0 {
		diff = 0
	}

	yearsAgo := float64(diff) / termsPerYear
	if yearsAgo > recencyMaxYears {
		return 0
	}

	return recencyMaxBoost - yearsAgo*(recencyMaxBoost-recencyMinBoost)/recencyMaxYears
}
