package iter

import (
	"github.com/lyraproj/boxiter/eval"
	"github.com/lyraproj/boxiter/types"
)

// sequence is the set of containers served by the indexed fast path. Len is re-read on every step
// so that a List that changes during the iteration is observed as it is now.
type sequence interface {
	*types.List | *types.Tuple | *types.String

	Len() int
	At(index int) eval.Value
}

// indexed is the fast path over a built-in sequence. The exhausted state is the zero value.
type indexed[S sequence] struct {
	obj   S
	index int
	kind  Variant
}

func newIndexed[S sequence](obj S, kind Variant) *indexed[S] {
	it := &indexed[S]{obj: obj, kind: kind}
	it.clamp()
	return it
}

// clamp moves the instance to the terminal state when the cursor is at or past the current bound.
// A List that shrinks below the cursor between two steps is caught here, and the instance stays
// exhausted even if the List grows again.
func (it *indexed[S]) clamp() {
	var zero S
	if it.obj != zero && it.index >= it.obj.Len() {
		it.setEnd()
	}
}

func (it *indexed[S]) setEnd() {
	var zero S
	it.obj = zero
	it.index = 0
}

func (it *indexed[S]) advance() error {
	if it.exhausted() {
		return nil
	}
	it.index++
	it.clamp()
	return nil
}

func (it *indexed[S]) current() eval.Value {
	return it.obj.At(it.index)
}

func (it *indexed[S]) exhausted() bool {
	it.clamp()
	var zero S
	return it.obj == zero
}

func (it *indexed[S]) same(other Impl) bool {
	o, ok := other.(*indexed[S])
	if !ok {
		return false
	}
	// exhausted instances are equal whatever container they came from
	ie, oe := it.exhausted(), o.exhausted()
	if ie || oe {
		return ie && oe
	}
	return it.obj == o.obj && it.index == o.index
}

func (it *indexed[S]) variant() Variant {
	return it.kind
}

func (it *indexed[S]) Trace(v eval.Visitor) {
	if !it.exhausted() {
		v.VisitPotential(it.obj)
	}
}
