package eval

import (
	"fmt"
)

type (
	// Kind is the representation tag of a Value. The iteration layer dispatches on it to select
	// a fast path for the built-in sequences.
	Kind int

	Value interface {
		fmt.Stringer

		// Kind returns the representation tag of the value
		Kind() Kind

		// Equals compares the receiver to other by content
		Equals(other interface{}) bool
	}

	// Indexed is implemented by values that support direct offset access
	Indexed interface {
		Value

		// Len returns the current number of elements. Mutable containers may return a different
		// value between calls.
		Len() int

		// At returns the element at the given index. The index must be less than Len()
		At(index int) Value
	}

	SizedValue interface {
		Value
		Len() int
		IsEmpty() bool
	}

	// Consumer is called once for each element of an iteration
	Consumer func(value Value)

	// Predicate returns true when the value matches
	Predicate func(value Value) bool

	// Mapper transforms one value into another
	Mapper func(value Value) Value

	// BiMapper combines two values into one, typically an accumulator and an element
	BiMapper func(a Value, b Value) Value
)

const (
	KindUndef = Kind(iota)
	KindBoolean
	KindInteger
	KindString
	KindList
	KindTuple
	KindDict
	KindSet
	KindIterator
	KindObject
)

var kindNames = [...]string{
	KindUndef:    `undef`,
	KindBoolean:  `bool`,
	KindInteger:  `int`,
	KindString:   `str`,
	KindList:     `list`,
	KindTuple:    `tuple`,
	KindDict:     `dict`,
	KindSet:      `set`,
	KindIterator: `iterator`,
	KindObject:   `object`,
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf(`kind(%d)`, int(k))
}

// IsSequence returns true for the kinds that the iteration layer accesses by index
func (k Kind) IsSequence() bool {
	return k == KindList || k == KindTuple || k == KindString
}

// Equals returns true if a and b are equal. Two nil values are equal.
func Equals(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equals(b)
}

// KindOf returns the kind of the given value or KindUndef for nil
func KindOf(v Value) Kind {
	if v == nil {
		return KindUndef
	}
	return v.Kind()
}
