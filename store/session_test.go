package store

import (
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

// A unique violation raised by the active-pair index on the accept
// UPDATE must surface as the duplicate-session conflict.
func TestTranslateAcceptError(t *testing.T) {
	assert.Equal(t, ErrDuplicateActiveSession,
		translateAcceptError(&pq.Error{Code: "23505", Constraint: "sessions_active_pair_unique"}))

	deadlock := &pq.Error{Code: "40P01"}
	assert.Equal(t, error(deadlock), translateAcceptError(deadlock))

	plain := fmt.Errorf("connection reset")
	assert.Equal(t, plain, translateAcceptError(plain))
}
