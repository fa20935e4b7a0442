package identity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elitecards/admin-console/internal/platform"
	"github.com/elitecards/admin-console/internal/types"
)

func listing() []types.Profile {
	return []types.Profile{
		{ID: "profile-1", UserID: types.NewUserRef("user-1"), Name: "Ada"},
		{ID: "profile-2", UserID: types.NewEmbeddedUserRef("user-2", "b@cards.dev"), Name: "Ben"},
		{ID: "profile-3", Name: "Cleo"}, // never given a user reference
	}
}

func TestResolveByProfileID(t *testing.T) {
	p, err := Resolve("profile-1", listing())
	require.NoError(t, err)
	assert.Equal(t, "Ada", p.Name)
}

func TestResolveByBareUserID(t *testing.T) {
	p, err := Resolve("user-1", listing())
	require.NoError(t, err)
	assert.Equal(t, "profile-1", p.ID)
}

func TestResolveByEmbeddedUserID(t *testing.T) {
	p, err := Resolve("user-2", listing())
	require.NoError(t, err)
	assert.Equal(t, "profile-2", p.ID)
}

func TestResolveMissYieldsNotFound(t *testing.T) {
	_, err := Resolve("nope", listing())
	assert.True(t, errors.Is(err, platform.ErrNotFound))

	_, err = Resolve("", listing())
	assert.True(t, errors.Is(err, platform.ErrNotFound))
}

func TestResolveDuplicateMatchesFirstWins(t *testing.T) {
	dupes := []types.Profile{
		{ID: "profile-a", UserID: types.NewUserRef("user-9"), Name: "First"},
		{ID: "profile-b", UserID: types.NewUserRef("user-9"), Name: "Second"},
	}
	p, err := Resolve("user-9", dupes)
	require.NoError(t, err)
	assert.Equal(t, "First", p.Name)
}

func TestCanonicalUserIDPrecedence(t *testing.T) {
	// Recorded reference wins over the route id.
	assert.Equal(t, "user-2", CanonicalUserID(listing()[1], "profile-2"))
	assert.Equal(t, "user-1", CanonicalUserID(listing()[0], "profile-1"))
	// Profiles with no recorded reference fall back to the route id.
	assert.Equal(t, "profile-3", CanonicalUserID(listing()[2], "profile-3"))
}

func TestCreateThenResolve(t *testing.T) {
	// A first-time profile completion must be findable by the account id
	// it was created for.
	created := types.Profile{ID: "profile-9", UserID: types.NewUserRef("user-9"), Name: "A"}
	profiles := append(listing(), created)

	p, err := Resolve("user-9", profiles)
	require.NoError(t, err)
	assert.Equal(t, "A", p.Name)
	assert.Equal(t, "user-9", CanonicalUserID(p, "user-9"))
}
