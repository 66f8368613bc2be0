package rooms_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mira/puzzleacademy/internal/models"
	"github.com/mira/puzzleacademy/internal/rooms"
)

func TestCreate_HostAutoJoins(t *testing.T) {
	store := rooms.NewStore()

	room, err := store.Create("friday night", "ada", 3, 2, "mathematics")

	require.NoError(t, err)
	assert.NotEmpty(t, room.ID)
	assert.Equal(t, "ada", room.Host)
	assert.Equal(t, []string{"ada"}, room.Players)
	assert.Equal(t, models.RoomWaiting, room.Status)
}

func TestCreate_Validation(t *testing.T) {
	store := rooms.NewStore()

	_, err := store.Create("", "ada", 2, 1, "")
	assert.Error(t, err)

	_, err = store.Create("room", "", 2, 1, "")
	assert.Error(t, err)
}

func TestCreate_DefaultMaxPlayers(t *testing.T) {
	store := rooms.NewStore()

	room, err := store.Create("room", "ada", 0, 1, "")

	require.NoError(t, err)
	assert.Equal(t, rooms.DefaultMaxPlayers, room.MaxPlayers)
}

func TestJoin_RejectsFullAndDuplicate(t *testing.T) {
	store := rooms.NewStore()
	room, err := store.Create("room", "ada", 2, 1, "")
	require.NoError(t, err)

	_, err = store.Join(room.ID, "ada")
	assert.Error(t, err, "host is already in the room")

	joined, err := store.Join(room.ID, "bob")
	require.NoError(t, err)
	assert.Equal(t, []string{"ada", "bob"}, joined.Players)

	_, err = store.Join(room.ID, "carol")
	assert.Error(t, err, "room holds two players at most")
}

func TestJoin_UnknownRoom(t *testing.T) {
	store := rooms.NewStore()

	_, err := store.Join("nope", "ada")
	assert.Error(t, err)
}

func TestLeave_PromotesNextHost(t *testing.T) {
	store := rooms.NewStore()
	room, err := store.Create("room", "ada", 3, 1, "")
	require.NoError(t, err)
	_, err = store.Join(room.ID, "bob")
	require.NoError(t, err)

	require.NoError(t, store.Leave(room.ID, "ada"))

	got := store.Get(room.ID)
	require.NotNil(t, got)
	assert.Equal(t, "bob", got.Host)
	assert.Equal(t, []string{"bob"}, got.Players)
}

func TestLeave_LastPlayerRemovesRoom(t *testing.T) {
	store := rooms.NewStore()
	room, err := store.Create("room", "ada", 3, 1, "")
	require.NoError(t, err)

	require.NoError(t, store.Leave(room.ID, "ada"))

	assert.Nil(t, store.Get(room.ID))
	assert.Empty(t, store.List())
}

func TestLeave_PlayerNotInRoom(t *testing.T) {
	store := rooms.NewStore()
	room, err := store.Create("room", "ada", 3, 1, "")
	require.NoError(t, err)

	assert.Error(t, store.Leave(room.ID, "ghost"))
}

func TestList_SnapshotsAreIsolated(t *testing.T) {
	store := rooms.NewStore()
	room, err := store.Create("room", "ada", 3, 1, "")
	require.NoError(t, err)

	list := store.List()
	require.Len(t, list, 1)
	list[0].Players[0] = "mallory"

	assert.Equal(t, "ada", store.Get(room.ID).Players[0],
		"mutating a listed room must not touch the store")
}
