package reservation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalog(t *testing.T) {
	c, err := NewCatalog(DefaultRooms())
	require.NoError(t, err)
	assert.Equal(t, 5, c.Len())

	room, ok := c.Lookup(103)
	require.True(t, ok)
	assert.Equal(t, Room{Number: 103, Type: "Suite", Rate: 250}, room)
	assert.Equal(t, "Room 103 - Suite - $250", room.String())

	_, ok = c.Lookup(10)
	assert.False(t, ok)
}

func TestNewCatalogRejectsBadRooms(t *testing.T) {
	_, err := NewCatalog([]Room{{Number: 1, Type: "Single"}, {Number: 1, Type: "Double"}})
	assert.ErrorIs(t, err, ErrDuplicateRoom)

	_, err = NewCatalog([]Room{{Number: 1, Type: "Single", Rate: -1}})
	assert.ErrorIs(t, err, ErrInvalidRate)
}

func TestCatalogRoomsIsCopy(t *testing.T) {
	c := DefaultCatalog()
	rooms := c.Rooms()
	rooms[0].Rate = 1

	again := c.Rooms()
	assert.Equal(t, 100.0, again[0].Rate)
	assert.Equal(t, 101, again[0].Number)
}
