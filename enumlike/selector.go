package enumlike

//go:generate go tool stringer -type=SelectorKind -trimprefix=Select -output=selectorkind_string.go

// SelectorKind tells which part of an entry a Selector reads.
type SelectorKind int

const (
	_ SelectorKind = iota // zero value is an unset selector

	SelectKey   // the entry's own key
	SelectValue // the whole value
	SelectField // one field of a compound record value
)

// Selector picks a T out of a table entry. Build one with KeySelector,
// ValueSelector or FieldSelector; the zero Selector is invalid.
type Selector[K comparable, V any, T any] struct {
	kind SelectorKind
	name string
	pick func(K, V) T
}

// KeySelector selects the entry's key.
func KeySelector[K comparable, V any]() Selector[K, V, K] {
	return Selector[K, V, K]{
		kind: SelectKey,
		name: "key",
		pick: func(k K, _ V) K { return k },
	}
}

// ValueSelector selects the entry's whole value.
func ValueSelector[K comparable, V any]() Selector[K, V, V] {
	return Selector[K, V, V]{
		kind: SelectValue,
		name: "value",
		pick: func(_ K, v V) V { return v },
	}
}

// FieldSelector selects one field of a compound record. name is used in
// diagnostics only and never compared with keys.
func FieldSelector[K comparable, V any, T any](name string, get func(V) T) Selector[K, V, T] {
	return Selector[K, V, T]{
		kind: SelectField,
		name: name,
		pick: func(_ K, v V) T { return get(v) },
	}
}

// Kind returns the selector's kind.
func (s Selector[K, V, T]) Kind() SelectorKind {
	return s.kind
}

// Name returns "key", "value" or the field name.
func (s Selector[K, V, T]) Name() string {
	return s.name
}

// Valid reports whether the selector was built by one of the constructors.
func (s Selector[K, V, T]) Valid() bool {
	return s.kind != 0 && s.pick != nil
}

// Select applies the selector to one entry.
func (s Selector[K, V, T]) Select(key K, value V) T {
	if !s.Valid() {
		panic("enumlike: use of zero Selector")
	}

	return s.pick(key, value)
}

// String returns Kind(name), e.g. Field(isoCode).
func (s Selector[K, V, T]) String() string {
	return s.kind.String() + "(" + s.name + ")"
}
