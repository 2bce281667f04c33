package schema

import (
	"time"

	"github.com/google/uuid"
)

// Proficiency is an ordinal strength scale for a tutor's relation to a
// course.
type Proficiency string

const (
	PROFICIENCY_CURRENTLY_TAKING Proficiency = "CURRENTLY_TAKING"
	PROFICIENCY_TOOK_COURSE      Proficiency = "TOOK_COURSE"
	PROFICIENCY_GOT_A            Proficiency = "GOT_A"
	PROFICIENCY_TUTORED_BEFORE   Proficiency = "TUTORED_BEFORE"
	PROFICIENCY_TAED             Proficiency = "TAED"
)

// ProficiencyBonus maps each level to the additive score boost it
// grants during matching.
var ProficiencyBonus = map[Proficiency]float64{
	PROFICIENCY_CURRENTLY_TAKING: 0.1,
	PROFICIENCY_TOOK_COURSE:      0.2,
	PROFICIENCY_GOT_A:            0.3,
	PROFICIENCY_TUTORED_BEFORE:   0.4,
	PROFICIENCY_TAED:             0.5,
}

// ValidProficiency reports whether p is a known level.
func ValidProficiency(p Proficiency) bool {
	_, ok := ProficiencyBonus[p]
	return ok
}

const (
	SEMESTER_SPRING = "SPRING"
	SEMESTER_SUMMER = "SUMMER"
	SEMESTER_FALL   = "FALL"
)

// ExpertiseEntry declares a tutor's proficiency in a specific course,
// with an optional (semester, year) marker of when it was last studied.
type ExpertiseEntry struct {
	ID          uuid.UUID   `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	UserID      string      `json:"user_id" gorm:"not null;index"`
	CourseID    string      `json:"course_id" gorm:"not null"`
	Proficiency Proficiency `json:"proficiency" gorm:"not null"`
	Semester    string      `json:"semester"`
	Year        int         `json:"year"`
	Active      bool        `json:"active" sql:"default:true"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// TableName keeps the legacy table name for tutor expertise rows.
func (ExpertiseEntry) TableName() string {
	return "user_courses"
}

// Bonus returns the proficiency boost of the entry.
func (e ExpertiseEntry) Bonus() float64 {
	return ProficiencyBonus[e.Proficiency]
}

// HasTermMarker reports whether the entry carries a usable
// last-studied marker.
func (e ExpertiseEntry) HasTermMarker() bool {
	return e.Year > 0 && e.Semester != ""
}
