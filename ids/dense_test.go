package ids

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDenseMapRemovalScenario(t *testing.T) {
	in, err := New()
	require.NoError(t, err)
	defer in.Close()

	m := NewDenseMap[int, UID, uint8]()
	m.Set(in.ID("a"), 1)
	m.Set(in.ID("b"), 2)
	m.Set(in.ID("c"), 3)
	m.Set(in.ID("d"), 4)
	assert.Equal(t, []int{1, 2, 3, 4}, m.Values())

	require.True(t, m.Remove(in.ID("b"), true))
	assert.Equal(t, []int{1, 3, 4}, m.Values())

	m.Set(in.ID("e"), 5)
	assert.Equal(t, []int{1, 3, 4, 5}, m.Values())

	// Order-agnostic removal swaps the last value into the freed slot.
	require.True(t, m.Remove(in.ID("a"), false))
	assert.Equal(t, []int{5, 3, 4}, m.Values())

	// Every survivor is still reachable through its identifier.
	assert.Equal(t, 3, m.Get(in.ID("c")))
	assert.Equal(t, 4, m.Get(in.ID("d")))
	assert.Equal(t, 5, m.Get(in.ID("e")))
	assert.Nil(t, m.Ptr(in.ID("a")))
	assert.Nil(t, m.Ptr(in.ID("b")))
}

func TestDenseMapContiguity(t *testing.T) {
	in, err := New()
	require.NoError(t, err)
	defer in.Close()

	m := NewDenseMap[int, UID, uint16]()
	names := []string{"q", "w", "e", "r", "t", "y", "u", "i"}
	for i, name := range names {
		m.Set(in.ID(name), i*10)
	}

	m.Remove(in.ID("e"), false)
	m.Remove(in.ID("q"), true)
	m.Remove(in.ID("u"), false)

	live := map[string]int{"w": 10, "r": 30, "t": 40, "y": 50, "i": 70}
	assert.Equal(t, len(live), m.Len())
	assert.Len(t, m.Values(), len(live))
	for name, want := range live {
		p := m.Ptr(in.ID(name))
		require.NotNil(t, p, "%q must stay reachable", name)
		assert.Equal(t, want, *p)
	}

	// The packed slice holds exactly the live values, no gaps.
	got := map[int]bool{}
	for _, v := range m.Values() {
		got[v] = true
	}
	for _, want := range live {
		assert.True(t, got[want])
	}
}

func TestDenseMapUpdateInPlace(t *testing.T) {
	in, err := New()
	require.NoError(t, err)
	defer in.Close()

	m := NewDenseMap[string, UID, uint8]()
	m.Set(in.ID("a"), "Apple")
	m.Set(in.ID("b"), "Banana")
	m.Set(in.ID("a"), "Actually")
	m.Set(in.ID("c"), "Corn")

	assert.Equal(t, []string{"Actually", "Banana", "Corn"}, m.Values())
	assert.Equal(t, 3, m.Len())
}

func TestDenseMapGetDefaults(t *testing.T) {
	in, err := New()
	require.NoError(t, err)
	defer in.Close()

	m := NewDenseMap[int, UID, uint8]()
	assert.Equal(t, 0, m.Get(in.ID("nothing")))
	assert.Nil(t, m.Ptr(in.ID("nothing")))
	assert.False(t, m.Remove(in.ID("nothing"), true))
	assert.Equal(t, 0, m.Len())
}

func TestDenseMapSharedArea(t *testing.T) {
	in, err := New()
	require.NoError(t, err)
	defer in.Close()

	area := NewArea[UID, uint8](0)
	pos := NewDenseMap[int, uint8, uint8]().WithArea(area)
	vel := NewDenseMap[int, uint8, uint8]().WithArea(area)

	a := in.ID("alpha")
	b := in.ID("beta")
	pos.Set(a, 1)
	pos.Set(b, 2)
	vel.Set(a, 10)

	assert.Equal(t, 2, area.Len())
	assert.Equal(t, 1, pos.Get(a))
	assert.Equal(t, 10, vel.Get(a))
	assert.Nil(t, vel.Ptr(b))
	assert.False(t, vel.Remove(in.ID("gamma"), false), "uid unknown to the shared area")
}

func TestDenseMapClear(t *testing.T) {
	in, err := New()
	require.NoError(t, err)
	defer in.Close()

	m := NewDenseMap[int, UID, uint8]()
	m.Set(in.ID("a"), 1)
	m.Clear()

	assert.Equal(t, 0, m.Len())
	assert.Nil(t, m.Ptr(in.ID("a")))

	// Reusable after clear.
	m.Set(in.ID("a"), 9)
	assert.Equal(t, []int{9}, m.Values())
}

func TestDenseKeyMapParallelKeys(t *testing.T) {
	in, err := New()
	require.NoError(t, err)
	defer in.Close()

	m := NewDenseKeyMap[int, UID, uint8]()
	m.Set(in.ID("a"), 1)
	m.Set(in.ID("b"), 2)
	m.Set(in.ID("c"), 3)
	m.Set(in.ID("d"), 4)

	keyNames := func() []string {
		var names []string
		for _, k := range m.Keys() {
			names = append(names, k.String())
		}
		return names
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, keyNames())

	require.True(t, m.Remove(in.ID("b"), true))
	assert.Equal(t, []string{"a", "c", "d"}, keyNames())
	assert.Equal(t, []int{1, 3, 4}, m.Values())

	require.True(t, m.Remove(in.ID("a"), false))
	assert.Equal(t, []string{"d", "c"}, keyNames())
	assert.Equal(t, []int{4, 3}, m.Values())

	// keys[i] and values[i] stay the same logical entry.
	for i, k := range m.Keys() {
		assert.Equal(t, m.Values()[i], m.Get(k))
	}
}

func TestDenseKeyMapAll(t *testing.T) {
	in, err := New()
	require.NoError(t, err)
	defer in.Close()

	m := NewDenseKeyMap[int, UID, uint16]()
	m.Set(in.ID("one"), 1)
	m.Set(in.ID("two"), 2)

	got := map[string]int{}
	for k, v := range m.All() {
		got[k.String()] = v
	}
	assert.Equal(t, map[string]int{"one": 1, "two": 2}, got)
}

func TestDenseMapOverflowPanics(t *testing.T) {
	in, err := New()
	require.NoError(t, err)
	defer in.Close()

	m := NewDenseMap[int, UID, uint8]()
	for i := 0; i < 255; i++ {
		m.Set(in.ID(string(rune('א'+i))), i)
	}
	assert.Panics(t, func() {
		m.Set(in.ID("one too many"), 255)
	})
}
