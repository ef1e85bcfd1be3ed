package types

import (
	"strconv"

	"github.com/lyraproj/boxiter/eval"
)

type (
	UndefValue struct{}

	Boolean struct {
		value bool
	}

	Integer struct {
		value int64
	}
)

var Undef = &UndefValue{}

var (
	BooleanFalse = &Boolean{false}
	BooleanTrue  = &Boolean{true}
)

func (uv *UndefValue) Equals(o interface{}) bool {
	_, ok := o.(*UndefValue)
	return ok
}

func (uv *UndefValue) Kind() eval.Kind {
	return eval.KindUndef
}

func (uv *UndefValue) String() string {
	return `undef`
}

func WrapBoolean(val bool) *Boolean {
	if val {
		return BooleanTrue
	}
	return BooleanFalse
}

func (bv *Boolean) Bool() bool {
	return bv.value
}

func (bv *Boolean) Equals(o interface{}) bool {
	if ov, ok := o.(*Boolean); ok {
		return bv.value == ov.value
	}
	return false
}

func (bv *Boolean) Kind() eval.Kind {
	return eval.KindBoolean
}

func (bv *Boolean) String() string {
	return strconv.FormatBool(bv.value)
}

func WrapInteger(val int64) *Integer {
	return &Integer{val}
}

func (iv *Integer) Equals(o interface{}) bool {
	if ov, ok := o.(*Integer); ok {
		return iv.value == ov.value
	}
	return false
}

func (iv *Integer) Int() int64 {
	return iv.value
}

func (iv *Integer) Kind() eval.Kind {
	return eval.KindInteger
}

func (iv *Integer) String() string {
	return strconv.FormatInt(iv.value, 10)
}
