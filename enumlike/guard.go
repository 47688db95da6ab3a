package enumlike

import "reflect"

// Guard returns a predicate reporting whether x is one of the table's values.
// x must have the dynamic type V to be a member; anything else yields false.
// That includes a named string type with the same text, and a number of
// another Go type with the same value: a guard over float64 values is false
// for the int 1. Non-comparable inputs such as maps or slices yield false.
// The value set is captured when Guard is called.
func Guard[K comparable, V comparable](t *Table[K, V]) func(x any) bool {
	is := GuardOf(t)

	return func(x any) bool {
		v, ok := x.(V)
		return ok && is(v)
	}
}

// GuardOf is the typed form of Guard. Stored values that cannot be hashed
// are never members.
func GuardOf[K comparable, V comparable](t *Table[K, V]) func(v V) bool {
	members := make(map[V]struct{}, t.Len())
	for _, v := range t.All() {
		if hashable(v) {
			members[v] = struct{}{}
		}
	}

	return func(v V) bool {
		if !hashable(v) {
			return false
		}

		_, ok := members[v]

		return ok
	}
}

// hashable reports whether v can be used as a map key without panicking.
// Only interface-typed V, or structs and arrays with interface fields, can
// hold a non-comparable dynamic value.
func hashable(v any) bool {
	if v == nil {
		return true
	}

	return reflect.ValueOf(v).Comparable()
}

// Assert returns a check that fails with a *NotAMemberError when x is not
// one of the table's values.
func Assert[K comparable, V comparable](t *Table[K, V]) func(x any) error {
	is := Guard(t)

	return func(x any) error {
		if !is(x) {
			return &NotAMemberError{Value: x}
		}

		return nil
	}
}

// MustAssert is like Assert but panics with the *NotAMemberError.
func MustAssert[K comparable, V comparable](t *Table[K, V]) func(x any) {
	check := Assert(t)

	return func(x any) {
		if err := check(x); err != nil {
			panic(err)
		}
	}
}
