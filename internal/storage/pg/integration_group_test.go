package pg

import (
	"testing"

	internal_errors "github.com/quill-dev/quill/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateGroup(t *testing.T) {
	group, err := storage.CreateGroup("Create group", "create-group", "description")
	require.NoError(t, err, "CreateGroup should not return an error")
	assert.Greater(t, group.Id, int64(0), "Expected ID > 0")
	assert.Equal(t, "Create group", group.Title)
	assert.Equal(t, "create-group", group.Slug)
	assert.Equal(t, "description", group.Description)

	_, err = storage.CreateGroup("Other title", "create-group", "description")
	assert.Error(t, err, "Creating the same slug twice should return an error")
}

func TestGetGroup(t *testing.T) {
	created, err := storage.CreateGroup("Get group", "get-group", "description")
	require.NoError(t, err)

	group, err := storage.GetGroup(created.Id)
	require.NoError(t, err)
	assert.Equal(t, created, group)

	_, err = storage.GetGroup(99999)
	require.Error(t, err, "Expected error for nonexistent group")
	e, ok := err.(*internal_errors.ErrorWithStatusCode)
	require.True(t, ok, "Expected ErrorWithStatusCode")
	assert.Equal(t, 404, e.StatusCode)
}

func TestGetGroupBySlug(t *testing.T) {
	created, err := storage.CreateGroup("Get group by slug", "get-group-by-slug", "description")
	require.NoError(t, err)

	group, err := storage.GetGroupBySlug("get-group-by-slug")
	require.NoError(t, err)
	assert.Equal(t, created, group)

	_, err = storage.GetGroupBySlug("nonexistent")
	require.Error(t, err, "Expected error for nonexistent slug")
	e, ok := err.(*internal_errors.ErrorWithStatusCode)
	require.True(t, ok, "Expected ErrorWithStatusCode")
	assert.Equal(t, 404, e.StatusCode)
}

func TestListGroups(t *testing.T) {
	_, err := storage.CreateGroup("Bravo list", "list-groups-b", "description")
	require.NoError(t, err)
	_, err = storage.CreateGroup("Alpha list", "list-groups-a", "description")
	require.NoError(t, err)

	groups, err := storage.ListGroups()
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(groups), 2)

	var alphaIdx, bravoIdx int = -1, -1
	for i, group := range groups {
		switch group.Slug {
		case "list-groups-a":
			alphaIdx = i
		case "list-groups-b":
			bravoIdx = i
		}
	}
	require.NotEqual(t, -1, alphaIdx)
	require.NotEqual(t, -1, bravoIdx)
	assert.Less(t, alphaIdx, bravoIdx, "Groups should be ordered by title")
}
