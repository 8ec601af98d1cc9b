package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkurbatovs/pulse/internal/client/models"
)

func TestSessionStore_EmptyByDefault(t *testing.T) {
	s := NewSessionStore()

	_, ok := s.Current()
	assert.False(t, ok)

	_, ok = s.Token()
	assert.False(t, ok)
}

func TestSessionStore_SetAndCurrent(t *testing.T) {
	s := NewSessionStore()
	s.Set(models.Session{
		User:  models.UserRecord{ID: "u1", FirstName: "Jane"},
		Token: "t1",
	})

	sess, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, "u1", sess.User.ID)

	token, ok := s.Token()
	require.True(t, ok)
	assert.Equal(t, "t1", token)
}

func TestSessionStore_SetReplacesWholesale(t *testing.T) {
	s := NewSessionStore()
	s.Set(models.Session{User: models.UserRecord{ID: "u1"}, Token: "t1"})
	s.Set(models.Session{User: models.UserRecord{ID: "u2"}, Token: "t2"})

	sess, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, "u2", sess.User.ID)
	assert.Equal(t, "t2", sess.Token)
}

func TestSessionStore_Clear(t *testing.T) {
	s := NewSessionStore()
	s.Set(models.Session{Token: "t1"})
	s.Clear()

	_, ok := s.Token()
	assert.False(t, ok)
}
