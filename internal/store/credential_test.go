package store

import (
	"testing"
	"tund/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndAuthenticate(t *testing.T) {
	db := testDB(t)
	creds := NewCredentialStore(db)

	user, err := creds.Register("alice", "pw1")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.NotEqual(t, "pw1", user.Password, "password must be stored hashed")

	got, err := creds.Authenticate("alice", "pw1")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = creds.Authenticate("alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	db := testDB(t)
	creds := NewCredentialStore(db)

	first, err := creds.Register("alice", "pw1")
	require.NoError(t, err)

	_, err = creds.Register("alice", "other")
	assert.ErrorIs(t, err, ErrUsernameTaken)

	// The original row is untouched
	var stored models.User
	require.NoError(t, db.First(&stored, first.ID).Error)
	assert.Equal(t, first.Password, stored.Password)

	var count int64
	db.Model(&models.User{}).Where("username = ?", "alice").Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestAuthenticateUnknownUserSameError(t *testing.T) {
	db := testDB(t)
	creds := NewCredentialStore(db)

	_, err := creds.Register("alice", "pw1")
	require.NoError(t, err)

	// Wrong password and unknown username are indistinguishable
	_, wrongPass := creds.Authenticate("alice", "nope")
	_, unknownUser := creds.Authenticate("nobody", "nope")
	assert.ErrorIs(t, wrongPass, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownUser, ErrInvalidCredentials)
}

func TestRegisterIsCaseSensitive(t *testing.T) {
	db := testDB(t)
	creds := NewCredentialStore(db)

	_, err := creds.Register("alice", "pw1")
	require.NoError(t, err)

	_, err = creds.Register("Alice", "pw2")
	require.NoError(t, err, "usernames differ by case, both must be allowed")
}
