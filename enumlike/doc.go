// Package enumlike provides ordered, immutable enum-like tables and the
// helpers that derive views from them.
//
// A Table is a fixed set of named constants: unique keys, each bound to a
// value that is either flat (a string or a number) or a compound record
// (a struct). Tables are built once, usually in a package-level var block,
// and never change afterwards.
//
// # Derived views
//
//   - Pairs, Keys, Values: ordered slices in insertion order
//   - Guard, GuardOf: membership predicates over the value set
//   - Assert, MustAssert: membership checks that fail with ErrNotAMember
//   - Reverse: value -> key for flat tables
//   - KeyIdentity: key -> key
//   - Remap, RemapStrict: arbitrary key/field cross references
//
// # Selectors
//
// Remap picks the derived key and the derived value independently with a
// Selector. A selector is either the entry's own key (KeySelector), the
// whole value (ValueSelector), or one field of a compound record
// (FieldSelector):
//
//	isoToMeta := enumlike.Remap(languages,
//		enumlike.FieldSelector[string]("isoCode", func(l Language) string { return l.IsoCode }),
//		enumlike.FieldSelector[string]("meta", func(l Language) string { return l.Meta }),
//	)
//
// # Duplicates
//
// Reverse and Remap assume the selected input values are unique. When they
// are not, the last entry in table order wins and the derived key keeps the
// position of its first occurrence. Use Collisions to report such keys or
// RemapStrict to reject them.
package enumlike
