package enumlike

import (
	"enumkit/internal/common"
)

// Remap builds a table whose keys are selected by in and whose values are
// selected by out, one entry per source entry, in source order.
//
// Keys selected by in should be unique. On duplicates the last source entry
// wins and the derived key keeps the position of its first occurrence.
func Remap[K comparable, V any, I comparable, O any](
	t *Table[K, V], in Selector[K, V, I], out Selector[K, V, O],
) *Table[I, O] {
	res := newTable[I, O](t.Len())
	for k, v := range t.All() {
		res.put(in.Select(k, v), out.Select(k, v))
	}

	return res
}

// RemapStrict is Remap that refuses to overwrite. It returns a
// *DuplicateKeyError for the first derived key produced twice.
func RemapStrict[K comparable, V any, I comparable, O any](
	t *Table[K, V], in Selector[K, V, I], out Selector[K, V, O],
) (*Table[I, O], error) {
	res := newTable[I, O](t.Len())
	owners := make(map[I]K, t.Len())

	for k, v := range t.All() {
		derived := in.Select(k, v)
		if first, seen := owners[derived]; seen {
			return nil, &DuplicateKeyError{
				Key:      derived,
				First:    first,
				Second:   k,
				Selector: in.String(),
			}
		}

		owners[derived] = k
		res.put(derived, out.Select(k, v))
	}

	return res, nil
}

// Collision lists the source keys that derive the same key.
type Collision[K comparable, I comparable] struct {
	// Key is the derived key.
	Key I
	// Sources are the colliding source keys in table order; the last one wins in Remap.
	Sources []K
}

// Collisions returns every key derived by sel from more than one entry,
// ordered by first occurrence.
func Collisions[K comparable, V any, I comparable](t *Table[K, V], sel Selector[K, V, I]) []Collision[K, I] {
	groups := newTable[I, []K](t.Len())
	for k, v := range t.All() {
		derived := sel.Select(k, v)
		groups.put(derived, append(groups.Value(derived), k))
	}

	var res []Collision[K, I]

	for derived, sources := range groups.All() {
		if common.IsMultiple(sources) {
			res = append(res, Collision[K, I]{Key: derived, Sources: sources})
		}
	}

	return res
}
