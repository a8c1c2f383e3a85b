package indexmap

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap_Basic(t *testing.T) {
	m := New[string, int]()

	_, existed := m.Insert("foo", 42)
	require.False(t, existed)

	v, ok := m.Get("foo")
	require.True(t, ok)
	assert.Equal(t, 42, v)

	prev, existed := m.Insert("foo", 100)
	require.True(t, existed)
	assert.Equal(t, 42, prev)

	v, ok = m.Get("foo")
	require.True(t, ok)
	assert.Equal(t, 100, v)

	_, ok = m.Get("bar")
	assert.False(t, ok)

	v, ok = m.SwapRemove("foo")
	require.True(t, ok)
	assert.Equal(t, 100, v)

	_, ok = m.Get("foo")
	assert.False(t, ok)

	_, ok = m.SwapRemove("foo")
	assert.False(t, ok)

	assert.Equal(t, 0, m.Len())
	assert.True(t, m.IsEmpty())
}

func TestMap_PreservesInsertionOrder(t *testing.T) {
	m := New[int, string]()

	for i := range 100 {
		m.Insert(i, fmt.Sprintf("v%d", i))
	}

	require.Equal(t, 100, m.Len())

	i := 0
	for k, v := range m.All() {
		require.Equal(t, i, k)
		require.Equal(t, fmt.Sprintf("v%d", i), v)
		i++
	}
	require.Equal(t, 100, i)
}

func TestMap_OverwriteKeepsPosition(t *testing.T) {
	m := New[string, int]()

	m.Insert("a", 1)
	m.Insert("b", 2)
	m.Insert("c", 3)

	i, prev, existed := m.InsertFull("b", 20)
	require.True(t, existed)
	assert.Equal(t, 1, i)
	assert.Equal(t, 2, prev)
	assert.Equal(t, 3, m.Len())

	k, v, ok := m.GetIndex(1)
	require.True(t, ok)
	assert.Equal(t, "b", k)
	assert.Equal(t, 20, v)
}

func TestMap_SwapRemoveMovesLastEntry(t *testing.T) {
	m := New[string, int]()

	m.Insert("a", 1)
	m.Insert("b", 2)
	m.Insert("c", 3)
	m.Insert("d", 4)

	i, k, v, ok := m.SwapRemoveFull("b")
	require.True(t, ok)
	assert.Equal(t, 1, i)
	assert.Equal(t, "b", k)
	assert.Equal(t, 2, v)

	// "d" took b's position and its index entry must follow.
	k2, v2, ok := m.GetIndex(1)
	require.True(t, ok)
	assert.Equal(t, "d", k2)
	assert.Equal(t, 4, v2)

	pos, ok := m.IndexOf("d")
	require.True(t, ok)
	assert.Equal(t, 1, pos)

	assert.Equal(t, 3, m.Len())
}

func TestMap_SwapRemoveLastEntry(t *testing.T) {
	m := New[string, int]()

	m.Insert("a", 1)
	m.Insert("b", 2)

	i, k, v, ok := m.SwapRemoveFull("b")
	require.True(t, ok)
	assert.Equal(t, 1, i)
	assert.Equal(t, "b", k)
	assert.Equal(t, 2, v)

	k2, v2, ok := m.GetIndex(0)
	require.True(t, ok)
	assert.Equal(t, "a", k2)
	assert.Equal(t, 1, v2)
}

func TestMap_GrowsPastInitialCapacity(t *testing.T) {
	m := WithCapacity[int, int](4)

	for i := range 10_000 {
		m.Insert(i, i*10)
	}

	require.Equal(t, 10_000, m.Len())

	for i := range 10_000 {
		v, ok := m.Get(i)
		require.Truef(t, ok, "lost key %d after growth", i)
		require.Equal(t, i*10, v)
	}
}

func TestMap_GrowthAfterManyDeletes(t *testing.T) {
	// Deleting leaves tombstones in the index; further inserts must still
	// find a home by triggering a rebuild.
	m := WithCapacity[int, int](16)

	for i := range 14 {
		m.Insert(i, i)
	}
	for i := range 13 {
		m.SwapRemove(i)
	}
	for i := 100; i < 160; i++ {
		m.Insert(i, i)
	}

	require.Equal(t, 61, m.Len())
	for i := 100; i < 160; i++ {
		v, ok := m.Get(i)
		require.True(t, ok)
		require.Equal(t, i, v)
	}
}

func TestMap_GetIndexOutOfRange(t *testing.T) {
	m := New[string, int]()
	m.Insert("a", 1)

	_, _, ok := m.GetIndex(-1)
	assert.False(t, ok)

	_, _, ok = m.GetIndex(1)
	assert.False(t, ok)
}

func TestMap_GetMut(t *testing.T) {
	m := New[string, int]()
	m.Insert("a", 1)

	p := m.GetMut("a")
	require.NotNil(t, p)
	*p = 5

	v, _ := m.Get("a")
	assert.Equal(t, 5, v)

	assert.Nil(t, m.GetMut("missing"))
}

func TestMap_Clear(t *testing.T) {
	m := New[string, int]()
	m.Insert("a", 1)
	m.Insert("b", 2)

	m.Clear()

	assert.Equal(t, 0, m.Len())
	assert.False(t, m.ContainsKey("a"))

	m.Insert("c", 3)
	v, ok := m.Get("c")
	require.True(t, ok)
	assert.Equal(t, 3, v)
}

func TestMap_KeysAndValues(t *testing.T) {
	m := New[string, int]()
	m.Insert("a", 1)
	m.Insert("b", 2)
	m.Insert("c", 3)

	var keys []string
	for k := range m.Keys() {
		keys = append(keys, k)
	}
	assert.Equal(t, []string{"a", "b", "c"}, keys)

	var values []int
	for v := range m.Values() {
		values = append(values, v)
	}
	assert.Equal(t, []int{1, 2, 3}, values)
}
