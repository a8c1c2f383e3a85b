package multimap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetMultimap_InsertIgnoresDuplicates(t *testing.T) {
	m := NewSet[int, string]()
	assert.Equal(t, 0, m.Len())

	require.True(t, m.Insert(0, "A"))
	assert.Equal(t, 1, m.Len())
	assert.True(t, m.Contains(0, "A"))

	require.False(t, m.Insert(0, "A"))
	assert.Equal(t, 1, m.Len())
	assert.True(t, m.Contains(0, "A"))
}

func TestSetMultimap_RemoveRemovesKeyWhenNeeded(t *testing.T) {
	m := NewSet[int, string]()
	m.Insert(0, "A1")
	m.Insert(0, "A2")

	assert.Equal(t, 2, m.Len())
	assert.Equal(t, 1, m.KeysLen())
	assert.False(t, m.IsEmpty())

	require.True(t, m.Remove(0, "A2"))
	assert.False(t, m.Contains(0, "A2"))
	assert.Equal(t, 1, m.Len())
	assert.Equal(t, 1, m.KeysLen())

	values, ok := m.Get(0)
	require.True(t, ok)
	assert.Equal(t, []string{"A1"}, values)

	require.True(t, m.Remove(0, "A1"))
	assert.Equal(t, 0, m.Len())
	assert.Equal(t, 0, m.KeysLen())
	assert.True(t, m.IsEmpty())

	_, ok = m.Get(0)
	assert.False(t, ok)
}

func TestSetMultimap_RemoveKeyReturnsEntireGroup(t *testing.T) {
	m := NewSet[int, string]()
	m.Insert(0, "A1")
	m.Insert(0, "A2")

	values, ok := m.RemoveKey(0)
	require.True(t, ok)
	assert.Equal(t, []string{"A1", "A2"}, values)
	assert.Equal(t, 0, m.Len())
	assert.Equal(t, 0, m.KeysLen())

	_, ok = m.RemoveKey(0)
	assert.False(t, ok)
}

func TestSetMultimap_RemoveIsNoopWhenPairAbsent(t *testing.T) {
	m := NewSet[int, string]()
	m.Insert(0, "A1")
	m.Insert(0, "A2")

	require.False(t, m.Remove(0, "A3"))
	require.False(t, m.Remove(9, "A1"))
	assert.Equal(t, 2, m.Len())
	assert.Equal(t, 1, m.KeysLen())
}

func TestSetMultimap_LenIsConsistent(t *testing.T) {
	data := []struct {
		k int
		v string
	}{
		{0, "A"},
		{1, "B"},
		{2, "C"},
		{3, "D"},
		{4, "E"},
		{4, "E2"},
		{0, "A2"},
	}

	m := NewSet[int, string]()
	for i, pair := range data {
		assert.Equal(t, i, m.Len())
		m.Insert(pair.k, pair.v)
	}

	assert.Equal(t, 7, m.Len())
	assert.Equal(t, 5, m.KeysLen())
}

func TestSetMultimap_AllGroupsByKeyInsertionOrder(t *testing.T) {
	m := NewSet[int, int]()
	m.Insert(0, 1)
	m.Insert(2, 2)
	m.Insert(0, 2)
	m.Insert(1, 3)
	m.Insert(0, 3)

	type pair struct{ k, v int }
	var got []pair
	for k, v := range m.All() {
		got = append(got, pair{k, v})
	}

	want := []pair{{0, 1}, {0, 2}, {0, 3}, {2, 2}, {1, 3}}
	assert.Equal(t, want, got)
}

func TestSetMultimap_Equal(t *testing.T) {
	a := NewSet[int, int]()
	a.Insert(0, 1)
	a.Insert(0, 0)
	a.Insert(1, 2)
	a.Insert(1, 3)

	// Same pairs, inverse value order per key.
	b := NewSet[int, int]()
	b.Insert(1, 3)
	b.Insert(1, 2)
	b.Insert(0, 0)
	b.Insert(0, 1)

	assert.True(t, a.Equal(b))

	c := NewSet[int, int]()
	c.Insert(0, 1)
	assert.False(t, a.Equal(c))

	// Same total length, distinct pair distribution.
	d := NewSet[int, int]()
	d.Insert(0, 1)
	d.Insert(0, 0)
	d.Insert(1, 2)
	d.Insert(2, 3)
	assert.False(t, a.Equal(d))
}

func TestVecMultimap_KeepsDuplicates(t *testing.T) {
	m := NewVec[int, string]()

	m.Insert(0, "A")
	m.Insert(0, "A")

	assert.Equal(t, 2, m.Len())
	assert.Equal(t, 1, m.KeysLen())

	values, ok := m.Get(0)
	require.True(t, ok)
	assert.Equal(t, []string{"A", "A"}, values)
}

func TestVecMultimap_RemoveFirstOccurrence(t *testing.T) {
	m := NewVec[int, string]()
	m.Insert(0, "A")
	m.Insert(0, "B")
	m.Insert(0, "A")

	require.True(t, m.Remove(0, "A"))
	assert.Equal(t, 2, m.Len())

	values, _ := m.Get(0)
	assert.Equal(t, []string{"B", "A"}, values)

	require.True(t, m.Remove(0, "A"))
	require.True(t, m.Remove(0, "B"))
	assert.False(t, m.ContainsKey(0))
	assert.True(t, m.IsEmpty())
}

func TestVecMultimap_RemoveKey(t *testing.T) {
	m := NewVec[int, string]()
	m.Insert(0, "A")
	m.Insert(0, "B")
	m.Insert(1, "C")

	values, ok := m.RemoveKey(0)
	require.True(t, ok)
	assert.Equal(t, []string{"A", "B"}, values)
	assert.Equal(t, 1, m.Len())
	assert.Equal(t, 1, m.KeysLen())

	_, ok = m.RemoveKey(0)
	assert.False(t, ok)
}

func TestVecMultimap_Contains(t *testing.T) {
	m := NewVec[int, string]()
	m.Insert(0, "A")

	assert.True(t, m.Contains(0, "A"))
	assert.False(t, m.Contains(0, "B"))
	assert.False(t, m.Contains(1, "A"))
	assert.True(t, m.ContainsKey(0))
	assert.False(t, m.ContainsKey(1))
}

func TestVecMultimap_All(t *testing.T) {
	m := NewVec[string, int]()
	m.Insert("a", 0)
	m.Insert("b", 2)
	m.Insert("a", 1)

	type pair struct {
		k string
		v int
	}
	var got []pair
	for k, v := range m.All() {
		got = append(got, pair{k, v})
	}

	assert.Equal(t, []pair{{"a", 0}, {"a", 1}, {"b", 2}}, got)
}
