package store

import (
	"testing"

	"hotelhub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession(t *testing.T) {
	s := NewSession()

	_, ok := s.Current()
	assert.False(t, ok)

	s.SetCurrent(models.User{ID: "user-1", Role: models.RoleUser})
	u, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, "user-1", u.ID)

	// A second sign-in replaces the first.
	s.SetCurrent(models.User{ID: "admin-1", Role: models.RoleAdmin})
	u, ok = s.Current()
	require.True(t, ok)
	assert.Equal(t, "admin-1", u.ID)

	s.Clear()
	_, ok = s.Current()
	assert.False(t, ok)

	// Clearing an empty session is harmless.
	s.Clear()
}
