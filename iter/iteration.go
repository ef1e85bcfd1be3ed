package iter

import (
	"fmt"

	"github.com/lyraproj/boxiter/eval"
	"github.com/lyraproj/boxiter/types"
	"github.com/lyraproj/issue/issue"
)

// walk calls f for each element of the range until f returns false or the range is exhausted.
// A failure from the underlying iterator stops the walk and is returned unchanged.
func (r *Range) walk(f func(eval.Value) bool) error {
	h := r.Begin()
	for !h.Equals(r.End()) {
		if !f(h.Current()) {
			return nil
		}
		if err := h.Advance(); err != nil {
			return err
		}
	}
	return nil
}

// Each calls consumer once for each element of container
func Each(container eval.Value, consumer eval.Consumer, opts ...Option) error {
	r, err := GetRange(container, opts...)
	if err != nil {
		return err
	}
	return r.walk(func(v eval.Value) bool {
		consumer(v)
		return true
	})
}

// AsList collects all elements of container into a new List
func AsList(container eval.Value, opts ...Option) (*types.List, error) {
	r, err := GetRange(container, opts...)
	if err != nil {
		return nil, err
	}
	el := make([]eval.Value, 0, 16)
	if err = r.walk(func(v eval.Value) bool {
		el = append(el, v)
		return true
	}); err != nil {
		return nil, err
	}
	return types.WrapList(el), nil
}

// Map returns a List with the result of calling mapper for each element of container
func Map(container eval.Value, mapper eval.Mapper, opts ...Option) (*types.List, error) {
	r, err := GetRange(container, opts...)
	if err != nil {
		return nil, err
	}
	el := make([]eval.Value, 0, 16)
	if err = r.walk(func(v eval.Value) bool {
		el = append(el, mapper(v))
		return true
	}); err != nil {
		return nil, err
	}
	return types.WrapList(el), nil
}

// Filter returns a List with the elements of container for which predicate returns true
func Filter(container eval.Value, predicate eval.Predicate, opts ...Option) (*types.List, error) {
	r, err := GetRange(container, opts...)
	if err != nil {
		return nil, err
	}
	el := make([]eval.Value, 0, 16)
	if err = r.walk(func(v eval.Value) bool {
		if predicate(v) {
			el = append(el, v)
		}
		return true
	}); err != nil {
		return nil, err
	}
	return types.WrapList(el), nil
}

// All returns true if predicate returns true for every element. It stops at the first element
// for which predicate returns false. All returns true for an empty container.
func All(container eval.Value, predicate eval.Predicate, opts ...Option) (result bool, err error) {
	r, err := GetRange(container, opts...)
	if err != nil {
		return false, err
	}
	result = true
	err = r.walk(func(v eval.Value) bool {
		if !predicate(v) {
			result = false
		}
		return result
	})
	return
}

// Any returns true if predicate returns true for at least one element. It stops at the first
// element for which predicate returns true.
func Any(container eval.Value, predicate eval.Predicate, opts ...Option) (result bool, err error) {
	r, err := GetRange(container, opts...)
	if err != nil {
		return false, err
	}
	err = r.walk(func(v eval.Value) bool {
		result = predicate(v)
		return !result
	})
	return
}

// Find returns the first element for which predicate returns true. The boolean is false when no
// such element exists.
func Find(container eval.Value, predicate eval.Predicate, opts ...Option) (found eval.Value, ok bool, err error) {
	r, err := GetRange(container, opts...)
	if err != nil {
		return nil, false, err
	}
	err = r.walk(func(v eval.Value) bool {
		if predicate(v) {
			found, ok = v, true
		}
		return !ok
	})
	return
}

// Reduce combines the elements of container, starting with initial, using redactor
func Reduce(container eval.Value, initial eval.Value, redactor eval.BiMapper, opts ...Option) (result eval.Value, err error) {
	r, err := GetRange(container, opts...)
	if err != nil {
		return nil, err
	}
	result = initial
	err = r.walk(func(v eval.Value) bool {
		result = redactor(result, v)
		return true
	})
	return
}

// Unpack returns the n elements of container. An ITER_ILLEGAL_UNPACK_SIZE issue is returned if
// the container does not have exactly n elements. Iteration stops as soon as a surplus element
// is seen.
func Unpack(container eval.Value, n int, opts ...Option) ([]eval.Value, error) {
	r, err := GetRange(container, opts...)
	if err != nil {
		return nil, err
	}
	el := make([]eval.Value, 0, n)
	surplus := false
	if err = r.walk(func(v eval.Value) bool {
		if len(el) == n {
			surplus = true
			return false
		}
		el = append(el, v)
		return true
	}); err != nil {
		return nil, err
	}
	if surplus || len(el) != n {
		var actual interface{} = len(el)
		if surplus {
			actual = fmt.Sprintf(`more than %d`, n)
		}
		return nil, eval.Error(eval.IterIllegalUnpackSize, issue.H{`expected`: n, `actual`: actual})
	}
	return el, nil
}
