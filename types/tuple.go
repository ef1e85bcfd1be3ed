package types

import (
	"bytes"

	"github.com/lyraproj/boxiter/eval"
)

// Tuple is the immutable sequence. Its length is fixed when it is created.
type Tuple struct {
	elements []eval.Value
}

var EmptyTuple = &Tuple{[]eval.Value{}}

func NewTuple(elements ...eval.Value) *Tuple {
	if len(elements) == 0 {
		return EmptyTuple
	}
	el := make([]eval.Value, len(elements))
	copy(el, elements)
	return &Tuple{el}
}

func (tv *Tuple) At(i int) eval.Value {
	return tv.elements[i]
}

func (tv *Tuple) Equals(o interface{}) bool {
	if ov, ok := o.(*Tuple); ok {
		return equalElements(tv.elements, ov.elements)
	}
	return false
}

func (tv *Tuple) IsEmpty() bool {
	return len(tv.elements) == 0
}

func (tv *Tuple) Iter() (eval.Iterator, bool) {
	return newSequenceIterator(tv), true
}

func (tv *Tuple) Kind() eval.Kind {
	return eval.KindTuple
}

func (tv *Tuple) Len() int {
	return len(tv.elements)
}

func (tv *Tuple) String() string {
	b := bytes.NewBufferString(``)
	if len(tv.elements) == 1 {
		writeElements(b, `(`, `,)`, tv.elements)
	} else {
		writeElements(b, `(`, `)`, tv.elements)
	}
	return b.String()
}

func (tv *Tuple) Trace(v eval.Visitor) {
	traceElements(v, tv.elements)
}
