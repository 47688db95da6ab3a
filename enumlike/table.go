package enumlike

import (
	"fmt"
	"iter"
	"strings"
)

// Pair is a single table entry.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// P is shorthand for building a Pair in table literals.
func P[K comparable, V any](key K, value V) Pair[K, V] {
	return Pair[K, V]{Key: key, Value: value}
}

// Table is an insertion-ordered mapping with unique keys.
// A Table is not modified after construction, so it is safe for concurrent use.
type Table[K comparable, V any] struct {
	keys   []K
	values []V
	index  map[K]int
}

// New builds a table from pairs in the given order.
// A repeated key overwrites the earlier value but keeps its original position.
func New[K comparable, V any](pairs ...Pair[K, V]) *Table[K, V] {
	t := newTable[K, V](len(pairs))
	for _, p := range pairs {
		t.put(p.Key, p.Value)
	}

	return t
}

// FromMap builds a table from m using order for iteration.
// Keys listed in order but missing from m are skipped; keys of m that
// are not listed are appended in no particular order.
func FromMap[K comparable, V any](m map[K]V, order []K) *Table[K, V] {
	t := newTable[K, V](len(m))

	for _, k := range order {
		if v, ok := m[k]; ok {
			t.put(k, v)
		}
	}

	for k, v := range m {
		if !t.Has(k) {
			t.put(k, v)
		}
	}

	return t
}

func newTable[K comparable, V any](size int) *Table[K, V] {
	return &Table[K, V]{
		keys:   make([]K, 0, size),
		values: make([]V, 0, size),
		index:  make(map[K]int, size),
	}
}

// put inserts or overwrites; only used while a table is being built.
func (t *Table[K, V]) put(key K, value V) {
	if i, ok := t.index[key]; ok {
		t.values[i] = value
		return
	}

	t.index[key] = len(t.keys)
	t.keys = append(t.keys, key)
	t.values = append(t.values, value)
}

// Len returns the number of entries.
func (t *Table[K, V]) Len() int {
	if t == nil {
		return 0
	}

	return len(t.keys)
}

// Get returns the value bound to key.
func (t *Table[K, V]) Get(key K) (V, bool) {
	if t == nil {
		var zero V
		return zero, false
	}

	i, ok := t.index[key]
	if !ok {
		var zero V
		return zero, false
	}

	return t.values[i], true
}

// Value returns the value bound to key, or the zero value.
func (t *Table[K, V]) Value(key K) V {
	v, _ := t.Get(key)
	return v
}

// Has reports whether key is present.
func (t *Table[K, V]) Has(key K) bool {
	if t == nil {
		return false
	}

	_, ok := t.index[key]

	return ok
}

// At returns the i-th entry in table order. It panics if i is out of range.
func (t *Table[K, V]) At(i int) Pair[K, V] {
	return Pair[K, V]{Key: t.keys[i], Value: t.values[i]}
}

// All iterates over the entries in table order.
func (t *Table[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := range t.Len() {
			if !yield(t.keys[i], t.values[i]) {
				return
			}
		}
	}
}

// String renders the table as {k1: v1, k2: v2}.
func (t *Table[K, V]) String() string {
	var b strings.Builder

	b.WriteByte('{')

	for i := range t.Len() {
		if i > 0 {
			b.WriteString(", ")
		}

		fmt.Fprintf(&b, "%v: %v", t.keys[i], t.values[i])
	}

	b.WriteByte('}')

	return b.String()
}
