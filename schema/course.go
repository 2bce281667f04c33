package schema

import "time"

// Course is a catalog entry. The ID is the course code (e.g. "CS101")
// and Department is the department code (e.g. "COMP").
type Course struct {
	ID          string    `json:"id" gorm:"primary_key"`
	Title       string    `json:"title" gorm:"not null"`
	Department  string    `json:"department" gorm:"not null;index"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
