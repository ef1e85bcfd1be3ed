package iter

import (
	"github.com/lyraproj/boxiter/errors"
	"github.com/lyraproj/boxiter/eval"
)

type (
	// generic drives the iterator obtained from an eval.Iterable. The exhausted state is when
	// both iterator and value are nil.
	generic struct {
		iterator eval.Iterator
		value    eval.Value

		// hasNext is non nil when the predicate strategy was chosen at construction
		hasNext eval.HasNexter
	}

	fetchState int

	// fetchResult is the classified outcome of one call to Next
	fetchResult struct {
		state fetchState
		value eval.Value
		err   error
	}
)

const (
	fetchValue = fetchState(iota)
	fetchExhausted
	fetchFailure
)

// newGeneric creates an adapter that is positioned on the first element of the given iterator.
// An error from the first fetch is returned together with the adapter.
func newGeneric(iterator eval.Iterator) (*generic, error) {
	it := &generic{iterator: iterator}
	if hn, ok := iterator.(eval.HasNexter); ok {
		it.hasNext = hn
	}
	return it, it.advance()
}

// fetch calls Next and classifies the outcome. A panic with the exhaustion signal is recovered,
// any other panic continues unchanged.
func fetch(iterator eval.Iterator) (r fetchResult) {
	defer func() {
		if e := recover(); e != nil {
			if !errors.IsStopIteration(e) {
				panic(e)
			}
			r = fetchResult{state: fetchExhausted}
		}
	}()

	v, err := iterator.Next()
	switch {
	case err == nil:
		return fetchResult{state: fetchValue, value: v}
	case errors.IsStopIteration(err):
		return fetchResult{state: fetchExhausted}
	default:
		return fetchResult{state: fetchFailure, err: err}
	}
}

func (it *generic) setEnd() {
	it.iterator = nil
	it.value = nil
	it.hasNext = nil
}

func (it *generic) advance() error {
	if it.exhausted() {
		return nil
	}
	if it.hasNext != nil {
		more, err := it.hasNext.HasNext()
		if err != nil {
			if errors.IsStopIteration(err) {
				it.setEnd()
				return nil
			}
			return err
		}
		if !more {
			it.setEnd()
			return nil
		}
	}

	r := fetch(it.iterator)
	switch r.state {
	case fetchValue:
		it.value = r.value
	case fetchExhausted:
		it.setEnd()
	default:
		return r.err
	}
	return nil
}

func (it *generic) current() eval.Value {
	return it.value
}

func (it *generic) exhausted() bool {
	return it.iterator == nil
}

func (it *generic) same(other Impl) bool {
	if o, ok := other.(*generic); ok {
		return sameRef(it.iterator, o.iterator) && sameRef(it.value, o.value)
	}
	return false
}

func (it *generic) variant() Variant {
	return VariantGeneric
}

func (it *generic) Trace(v eval.Visitor) {
	if it.iterator != nil {
		v.VisitPotential(it.iterator)
	}
	if it.value != nil {
		v.VisitPotential(it.value)
	}
}
