package enumlike

import "slices"

// Pairs returns every entry in table order.
func Pairs[K comparable, V any](t *Table[K, V]) []Pair[K, V] {
	pairs := make([]Pair[K, V], 0, t.Len())
	for k, v := range t.All() {
		pairs = append(pairs, Pair[K, V]{Key: k, Value: v})
	}

	return pairs
}

// Keys returns the keys in table order.
func Keys[K comparable, V any](t *Table[K, V]) []K {
	if t == nil {
		return []K{}
	}

	return slices.Clone(t.keys)
}

// Values returns the values in table order.
func Values[K comparable, V any](t *Table[K, V]) []V {
	if t == nil {
		return []V{}
	}

	return slices.Clone(t.values)
}

// KeyIdentity returns a table mapping every key to itself.
func KeyIdentity[K comparable, V any](t *Table[K, V]) *Table[K, K] {
	out := newTable[K, K](t.Len())
	for k := range t.All() {
		out.put(k, k)
	}

	return out
}

// Reverse returns the inverse value -> key table of a flat table.
// Values are expected to be unique; on duplicates the last key wins.
func Reverse[K comparable, V comparable](t *Table[K, V]) *Table[V, K] {
	out := newTable[V, K](t.Len())
	for k, v := range t.All() {
		out.put(v, k)
	}

	return out
}
