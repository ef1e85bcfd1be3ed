package types

import (
	"fmt"

	"github.com/lyraproj/boxiter/errors"
	"github.com/lyraproj/boxiter/eval"
	"github.com/lyraproj/boxiter/hash"
)

type (
	// sequenceIterator is the protocol level iterator of the built-in sequences. It exposes
	// HasNext so that generic consumers can use the predicate strategy.
	sequenceIterator struct {
		seq eval.Indexed
		pos int
	}

	// hashIterator iterates the keys or the values of a Dict or a Set. It signals exhaustion
	// with errors.StopIteration only.
	hashIterator struct {
		entries *hash.StringHash
		pos     int
		keys    bool
	}

	// FuncIterator is an iterator whose Next is provided by a function. The function signals
	// exhaustion by returning errors.Done (or any other *errors.StopIteration).
	FuncIterator struct {
		next func() (eval.Value, error)
	}

	// PeekingIterator is a FuncIterator that also exposes a HasNext predicate
	PeekingIterator struct {
		FuncIterator
		hasNext func() (bool, error)
	}

	// Object is a user defined iterable. Its iteration capability is a function that produces a
	// fresh iterator. An Object created without that function is not iterable.
	Object struct {
		name string
		iter func() eval.Iterator
		refs []eval.Value
	}
)

func newSequenceIterator(seq eval.Indexed) *sequenceIterator {
	return &sequenceIterator{seq: seq}
}

func (it *sequenceIterator) Equals(o interface{}) bool {
	return it == o
}

func (it *sequenceIterator) HasNext() (bool, error) {
	return it.pos < it.seq.Len(), nil
}

func (it *sequenceIterator) Iter() (eval.Iterator, bool) {
	return it, true
}

func (it *sequenceIterator) Kind() eval.Kind {
	return eval.KindIterator
}

func (it *sequenceIterator) Next() (eval.Value, error) {
	if it.pos >= it.seq.Len() {
		return nil, errors.Done
	}
	v := it.seq.At(it.pos)
	it.pos++
	return v, nil
}

func (it *sequenceIterator) String() string {
	return fmt.Sprintf(`<%s iterator>`, it.seq.Kind())
}

func (it *sequenceIterator) Trace(v eval.Visitor) {
	v.VisitPotential(it.seq)
}

func (it *hashIterator) Equals(o interface{}) bool {
	return it == o
}

func (it *hashIterator) Iter() (eval.Iterator, bool) {
	return it, true
}

func (it *hashIterator) Kind() eval.Kind {
	return eval.KindIterator
}

func (it *hashIterator) Next() (eval.Value, error) {
	if it.pos >= it.entries.Len() {
		return nil, errors.Done
	}
	k := it.entries.KeyAt(it.pos)
	it.pos++
	if it.keys {
		return WrapString(k), nil
	}
	v, _ := it.entries.Get(k)
	return v, nil
}

func (it *hashIterator) String() string {
	if it.keys {
		return `<dict_keyiterator>`
	}
	return `<set_iterator>`
}

func (it *hashIterator) Trace(v eval.Visitor) {
	it.entries.EachValue(func(e eval.Value) { v.VisitPotential(e) })
}

// NewIterator returns an iterator that calls next to obtain each element
func NewIterator(next func() (eval.Value, error)) *FuncIterator {
	return &FuncIterator{next}
}

// NewPeekingIterator returns an iterator that consults hasNext before every call to next
func NewPeekingIterator(hasNext func() (bool, error), next func() (eval.Value, error)) *PeekingIterator {
	return &PeekingIterator{FuncIterator{next}, hasNext}
}

func (it *FuncIterator) Equals(o interface{}) bool {
	return it == o
}

func (it *FuncIterator) Iter() (eval.Iterator, bool) {
	return it, true
}

func (it *FuncIterator) Kind() eval.Kind {
	return eval.KindIterator
}

func (it *FuncIterator) Next() (eval.Value, error) {
	return it.next()
}

func (it *FuncIterator) String() string {
	return `<iterator>`
}

func (it *PeekingIterator) HasNext() (bool, error) {
	return it.hasNext()
}

func (it *PeekingIterator) Iter() (eval.Iterator, bool) {
	return it, true
}

// NewObject creates a user defined object. The iter function may be nil in which case the object
// is not iterable. The refs are values that the object keeps alive.
func NewObject(name string, iter func() eval.Iterator, refs ...eval.Value) *Object {
	return &Object{name, iter, refs}
}

func (o *Object) Equals(other interface{}) bool {
	return o == other
}

func (o *Object) Iter() (eval.Iterator, bool) {
	if o.iter == nil {
		return nil, false
	}
	it := o.iter()
	return it, it != nil
}

func (o *Object) Kind() eval.Kind {
	return eval.KindObject
}

func (o *Object) String() string {
	return fmt.Sprintf(`<%s object>`, o.name)
}

func (o *Object) Trace(v eval.Visitor) {
	traceElements(v, o.refs)
}
