package schema

import (
	"time"
)

const (
	ROLE_ROOKIE = "ROOKIE"
	ROLE_TUTO   = "TUTO"
)

// Account is the minimum identity surface the engine needs: a verified
// id, a role gating which transitions the holder may invoke, and a
// completed-session counter bumped by the end transition.
type Account struct {
	ID                string    `json:"id" gorm:"primary_key"`
	Name              string    `json:"name"`
	Role              string    `json:"role" gorm:"not null"`
	SessionsCompleted int       `json:"sessions_completed" sql:"default:0"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// ValidRole reports whether r is a known account role.
func ValidRole(r string) bool {
	return r == ROLE_ROOKIE || r == ROLE_TUTO
}

// Actor is the verified identity attached to every inbound operation.
type Actor struct {
	ID   string
	Role string
}
