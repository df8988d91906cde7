package pg

import (
	"testing"

	internal_errors "github.com/quill-dev/quill/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUser(t *testing.T) {
	user, err := storage.CreateUser("create_user", "hash")
	require.NoError(t, err, "CreateUser should not return an error")
	assert.Greater(t, user.Id, int64(0), "Expected ID > 0")
	assert.Equal(t, "create_user", user.Username)
	assert.Equal(t, "hash", user.PassHash)
	assert.False(t, user.CreatedAt.IsZero(), "Expected created timestamp to be set")

	_, err = storage.CreateUser("create_user", "hash")
	assert.Error(t, err, "Creating the same username twice should return an error")
}

func TestGetUserByUsername(t *testing.T) {
	created, err := storage.CreateUser("get_user", "hash")
	require.NoError(t, err)

	user, err := storage.GetUserByUsername("get_user")
	require.NoError(t, err)
	assert.Equal(t, created.Id, user.Id)
	assert.Equal(t, "get_user", user.Username)
	assert.Equal(t, "hash", user.PassHash)

	_, err = storage.GetUserByUsername("nonexistent")
	require.Error(t, err, "Expected error for nonexistent user")
	e, ok := err.(*internal_errors.ErrorWithStatusCode)
	require.True(t, ok, "Expected ErrorWithStatusCode")
	assert.Equal(t, 404, e.StatusCode)
}
