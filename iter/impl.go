// Package iter bridges the containers of the object model into one uniform iteration interface.
//
// GetRange inspects the representation of a container once and selects either an indexed fast
// path (List, Tuple, String) or the generic adapter that drives the container's own iterator. The
// returned Range is positioned on the first element:
//
//	r, err := iter.GetRange(container)
//	if err != nil {
//		return err
//	}
//	for h := r.Begin(); !h.Equals(r.End()); {
//		use(h.Current())
//		if err = h.Advance(); err != nil {
//			return err
//		}
//	}
package iter

import (
	"reflect"

	"github.com/lyraproj/boxiter/eval"
)

// Variant identifies an implementation of an iterator. Handles of different variants never compare
// equal.
type Variant int

const (
	VariantGeneric = Variant(iota)
	VariantList
	VariantTuple
	VariantString

	variantCount
)

var variantNames = [...]string{
	VariantGeneric: `generic`,
	VariantList:    `list`,
	VariantTuple:   `tuple`,
	VariantString:  `str`,
}

func (v Variant) String() string {
	return variantNames[v]
}

// Impl is the closed set of iterator implementations. It is only implemented within this package.
type Impl interface {
	eval.Traceable

	// advance moves to the next element or to the exhausted state. It is a no-op when the
	// receiver is already exhausted.
	advance() error

	// current returns the element at the present position. Must not be called when exhausted.
	current() eval.Value

	// exhausted returns true when the receiver is in its terminal state
	exhausted() bool

	// same compares the receiver to another implementation of the same variant by content
	same(other Impl) bool

	variant() Variant
}

// sameRef compares two references by identity without panicking on incomparable dynamic types
func sameRef(a, b interface{}) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) {
		return false
	}
	if ta.Comparable() {
		return a == b
	}
	switch ta.Kind() {
	case reflect.Map, reflect.Slice, reflect.Func:
		return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
	}
	return false
}
