package types

import (
	"bytes"

	"github.com/lyraproj/boxiter/eval"
)

// List is the mutable array-backed sequence. Iterators over a List read its bounds on every step so
// changes made during an iteration are visible to it.
type List struct {
	elements []eval.Value
}

func NewList(elements ...eval.Value) *List {
	return WrapList(elements)
}

// WrapList returns a List that uses the given slice as its storage
func WrapList(elements []eval.Value) *List {
	return &List{elements: elements}
}

func (lv *List) Append(v eval.Value) {
	lv.elements = append(lv.elements, v)
}

func (lv *List) At(i int) eval.Value {
	return lv.elements[i]
}

// Delete removes the element at index i
func (lv *List) Delete(i int) eval.Value {
	v := lv.elements[i]
	copy(lv.elements[i:], lv.elements[i+1:])
	lv.elements[len(lv.elements)-1] = nil
	lv.elements = lv.elements[:len(lv.elements)-1]
	return v
}

// Elements returns a copy of the elements
func (lv *List) Elements() []eval.Value {
	el := make([]eval.Value, len(lv.elements))
	copy(el, lv.elements)
	return el
}

func (lv *List) Equals(o interface{}) bool {
	if ov, ok := o.(*List); ok {
		return equalElements(lv.elements, ov.elements)
	}
	return false
}

func (lv *List) IsEmpty() bool {
	return len(lv.elements) == 0
}

func (lv *List) Iter() (eval.Iterator, bool) {
	return newSequenceIterator(lv), true
}

func (lv *List) Kind() eval.Kind {
	return eval.KindList
}

func (lv *List) Len() int {
	return len(lv.elements)
}

// Pop removes and returns the last element. It returns nil if the list is empty
func (lv *List) Pop() eval.Value {
	n := len(lv.elements)
	if n == 0 {
		return nil
	}
	return lv.Delete(n - 1)
}

func (lv *List) Set(i int, v eval.Value) {
	lv.elements[i] = v
}

func (lv *List) String() string {
	b := bytes.NewBufferString(``)
	writeElements(b, `[`, `]`, lv.elements)
	return b.String()
}

func (lv *List) Trace(v eval.Visitor) {
	traceElements(v, lv.elements)
}
