package types

import (
	"bytes"
	"strconv"

	"github.com/lyraproj/boxiter/eval"
	"github.com/lyraproj/boxiter/hash"
)

type (
	// Dict is an insertion ordered mapping from string keys to values. Iterating a Dict yields
	// its keys.
	Dict struct {
		entries *hash.StringHash
	}

	// Set is an insertion ordered set of values. Membership is determined by the kind and the
	// string representation of the value.
	Set struct {
		entries *hash.StringHash
	}
)

func NewDict() *Dict {
	return &Dict{hash.NewStringHash(8)}
}

func (dv *Dict) Delete(key string) eval.Value {
	return dv.entries.Delete(key)
}

func (dv *Dict) Equals(o interface{}) bool {
	if ov, ok := o.(*Dict); ok {
		return dv.entries.Equals(ov.entries)
	}
	return false
}

func (dv *Dict) Get(key string) (eval.Value, bool) {
	return dv.entries.Get(key)
}

func (dv *Dict) Iter() (eval.Iterator, bool) {
	return &hashIterator{entries: dv.entries, keys: true}, true
}

// Keys returns the keys in insertion order
func (dv *Dict) Keys() []string {
	return dv.entries.Keys()
}

func (dv *Dict) Kind() eval.Kind {
	return eval.KindDict
}

func (dv *Dict) Len() int {
	return dv.entries.Len()
}

func (dv *Dict) IsEmpty() bool {
	return dv.entries.IsEmpty()
}

func (dv *Dict) Put(key string, value eval.Value) {
	dv.entries.Put(key, value)
}

func (dv *Dict) String() string {
	b := bytes.NewBufferString(`{`)
	first := true
	dv.entries.EachPair(func(k string, v eval.Value) {
		if first {
			first = false
		} else {
			b.WriteString(`, `)
		}
		b.WriteString(strconv.Quote(k))
		b.WriteString(`: `)
		ToString(v, b)
	})
	b.WriteString(`}`)
	return b.String()
}

func (dv *Dict) Trace(v eval.Visitor) {
	dv.entries.EachValue(func(e eval.Value) { v.VisitPotential(e) })
}

func NewSet(elements ...eval.Value) *Set {
	s := &Set{hash.NewStringHash(len(elements))}
	for _, e := range elements {
		s.Add(e)
	}
	return s
}

// Add adds the value to the set. It returns false if an equal value was already present
func (sv *Set) Add(v eval.Value) bool {
	k := setKey(v)
	if sv.entries.Includes(k) {
		return false
	}
	sv.entries.Put(k, v)
	return true
}

func (sv *Set) Contains(v eval.Value) bool {
	return sv.entries.Includes(setKey(v))
}

func (sv *Set) Equals(o interface{}) bool {
	if ov, ok := o.(*Set); ok {
		return sv.entries.Equals(ov.entries)
	}
	return false
}

func (sv *Set) Iter() (eval.Iterator, bool) {
	return &hashIterator{entries: sv.entries}, true
}

func (sv *Set) Kind() eval.Kind {
	return eval.KindSet
}

func (sv *Set) Len() int {
	return sv.entries.Len()
}

func (sv *Set) IsEmpty() bool {
	return sv.entries.IsEmpty()
}

func (sv *Set) Remove(v eval.Value) bool {
	return sv.entries.Delete(setKey(v)) != nil
}

func (sv *Set) String() string {
	b := bytes.NewBufferString(``)
	writeElements(b, `{`, `}`, sv.entries.Values())
	return b.String()
}

func (sv *Set) Trace(v eval.Visitor) {
	sv.entries.EachValue(func(e eval.Value) { v.VisitPotential(e) })
}

func setKey(v eval.Value) string {
	return eval.KindOf(v).String() + `:` + v.String()
}
