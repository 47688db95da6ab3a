package enumlike

import (
	"errors"
	"fmt"
)

var (
	// ErrNotAMember is matched by every error returned from an Assert check.
	ErrNotAMember = errors.New("not a member")
	// ErrDuplicateKey is matched by every error returned from RemapStrict.
	ErrDuplicateKey = errors.New("duplicate key")
)

// NotAMemberError carries the rejected value.
type NotAMemberError struct {
	Value any
}

func (e *NotAMemberError) Error() string {
	return fmt.Sprintf("%v is not element of enumerable", e.Value)
}

func (e *NotAMemberError) Is(target error) bool {
	return target == ErrNotAMember
}

// DuplicateKeyError reports two source entries that derive the same key.
type DuplicateKeyError struct {
	// Key is the derived key both entries produced.
	Key any
	// First and Second are the source keys, in table order.
	First  any
	Second any
	// Selector names the selector that derived Key.
	Selector string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("%s %v is shared by %v and %v", e.Selector, e.Key, e.First, e.Second)
}

func (e *DuplicateKeyError) Is(target error) bool {
	return target == ErrDuplicateKey
}
