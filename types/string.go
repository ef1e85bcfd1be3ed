package types

import (
	"github.com/lyraproj/boxiter/eval"
)

// String is the text sequence. It is immutable and indexed by rune.
type String struct {
	s     string
	runes []rune
}

var EmptyString = WrapString(``)

func WrapString(str string) *String {
	return &String{s: str, runes: []rune(str)}
}

// At returns a new one character String for the rune at index i
func (sv *String) At(i int) eval.Value {
	return WrapString(string(sv.runes[i]))
}

func (sv *String) Equals(o interface{}) bool {
	if ov, ok := o.(*String); ok {
		return sv.s == ov.s
	}
	return false
}

func (sv *String) IsEmpty() bool {
	return len(sv.runes) == 0
}

func (sv *String) Iter() (eval.Iterator, bool) {
	return newSequenceIterator(sv), true
}

func (sv *String) Kind() eval.Kind {
	return eval.KindString
}

// Len returns the number of runes in the string
func (sv *String) Len() int {
	return len(sv.runes)
}

func (sv *String) String() string {
	return sv.s
}
