package enumlike

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_PreservesInsertionOrder(t *testing.T) {
	tbl := New(P("c", 3), P("a", 1), P("b", 2))

	assert.Equal(t, []string{"c", "a", "b"}, tbl.keys)
	assert.Equal(t, []int{3, 1, 2}, tbl.values)
	assert.Equal(t, 3, tbl.Len())
}

func TestNew_DuplicateKeyLastWriteWins(t *testing.T) {
	tbl := New(P("a", 1), P("b", 2), P("a", 3))

	require.Equal(t, 2, tbl.Len())
	assert.Equal(t, P("a", 3), tbl.At(0))
	assert.Equal(t, P("b", 2), tbl.At(1))
}

func TestNew_Empty(t *testing.T) {
	tbl := New[string, int]()

	assert.Equal(t, 0, tbl.Len())
	assert.Equal(t, "{}", tbl.String())
}

func TestFromMap(t *testing.T) {
	m := map[string]int{"one": 1, "two": 2, "three": 3}

	tbl := FromMap(m, []string{"three", "missing", "one"})

	require.Equal(t, 3, tbl.Len())
	assert.Equal(t, P("three", 3), tbl.At(0))
	assert.Equal(t, P("one", 1), tbl.At(1))
	assert.Equal(t, P("two", 2), tbl.At(2))
}

func TestTable_Get(t *testing.T) {
	tbl := New(P("a", "first"), P("b", "second"))

	v, ok := tbl.Get("b")
	assert.True(t, ok)
	assert.Equal(t, "second", v)

	v, ok = tbl.Get("z")
	assert.False(t, ok)
	assert.Empty(t, v)

	assert.Equal(t, "first", tbl.Value("a"))
	assert.Empty(t, tbl.Value("z"))

	assert.True(t, tbl.Has("a"))
	assert.False(t, tbl.Has("z"))
}

func TestTable_NilIsEmpty(t *testing.T) {
	var tbl *Table[string, int]

	assert.Equal(t, 0, tbl.Len())
	assert.False(t, tbl.Has("a"))

	_, ok := tbl.Get("a")
	assert.False(t, ok)

	for range tbl.All() {
		t.Fatal("nil table yielded an entry")
	}
}

func TestTable_AllStopsEarly(t *testing.T) {
	tbl := New(P("a", 1), P("b", 2), P("c", 3))

	var seen []string

	for k := range tbl.All() {
		seen = append(seen, k)
		if k == "b" {
			break
		}
	}

	assert.Equal(t, []string{"a", "b"}, seen)
}

func TestTable_String(t *testing.T) {
	tbl := New(P("a", "first"), P("b", "second"))

	assert.Equal(t, "{a: first, b: second}", tbl.String())
}

func TestTable_AtOutOfRangePanics(t *testing.T) {
	tbl := New(P("a", 1))

	assert.Panics(t, func() { tbl.At(1) })
}
