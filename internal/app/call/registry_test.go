package call

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistry_AddReturnsExistingMembers(t *testing.T) {
	reg := NewRegistry()
	a, b, c := &Participant{ID: "a"}, &Participant{ID: "b"}, &Participant{ID: "c"}

	require.Empty(t, reg.Add("room", a))
	require.Equal(t, []*Participant{a}, reg.Add("room", b))
	require.Equal(t, []*Participant{a, b}, reg.Add("room", c))
	require.Equal(t, []*Participant{a, b, c}, reg.Members("room"))

	// adding twice keeps a single entry
	require.Equal(t, []*Participant{b, c}, reg.Add("room", a))
	require.Equal(t, 3, reg.MemberCount())
}

func TestRegistry_RemoveDropsEmptyRoom(t *testing.T) {
	reg := NewRegistry()
	a, b := &Participant{ID: "a"}, &Participant{ID: "b"}

	reg.Add("room", a)
	reg.Add("room", b)

	remaining, removed := reg.Remove("room", a)
	require.True(t, removed)
	require.Equal(t, []*Participant{b}, remaining)
	require.Equal(t, 1, reg.RoomCount())

	_, removed = reg.Remove("room", a)
	require.False(t, removed)

	remaining, removed = reg.Remove("room", b)
	require.True(t, removed)
	require.Empty(t, remaining)
	require.Zero(t, reg.RoomCount())

	_, removed = reg.Remove("missing", b)
	require.False(t, removed)
}

func TestRegistry_RoomsAreIsolated(t *testing.T) {
	reg := NewRegistry()
	a, b := &Participant{ID: "a"}, &Participant{ID: "b"}

	reg.Add("one", a)
	require.Empty(t, reg.Add("two", b))
	require.Equal(t, 2, reg.RoomCount())
	require.Equal(t, []*Participant{a}, reg.Members("one"))

	reg.Clear()
	require.Zero(t, reg.RoomCount())
	require.Empty(t, reg.Members("one"))
}

func TestRegistry_MembersIsACopy(t *testing.T) {
	reg := NewRegistry()
	a, b := &Participant{ID: "a"}, &Participant{ID: "b"}
	reg.Add("room", a)

	members := reg.Members("room")
	members[0] = b

	require.Equal(t, []*Participant{a}, reg.Members("room"))
}
