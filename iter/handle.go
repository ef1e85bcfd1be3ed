package iter

import (
	"sync"

	"github.com/lyraproj/boxiter/eval"
	"github.com/lyraproj/boxiter/gc"
	"github.com/lyraproj/boxiter/types"
	"github.com/lyraproj/issue/issue"
)

type (
	// Handle is a value type that shares one implementation. Copies of a Handle observe the same
	// position. The zero Handle is exhausted and equals End(VariantGeneric).
	Handle struct {
		impl Impl
	}

	// Range pairs a begin handle, positioned on the first element, with the end sentinel of its
	// variant.
	Range struct {
		begin Handle
		end   Handle
	}
)

var (
	endsOnce sync.Once
	ends     [variantCount]Handle
)

// End returns the canonical end sentinel of the given variant. The sentinels are created on first
// use and never change.
func End(v Variant) Handle {
	endsOnce.Do(func() {
		ends[VariantGeneric] = Handle{&generic{}}
		ends[VariantList] = Handle{&indexed[*types.List]{kind: VariantList}}
		ends[VariantTuple] = Handle{&indexed[*types.Tuple]{kind: VariantTuple}}
		ends[VariantString] = Handle{&indexed[*types.String]{kind: VariantString}}
	})
	return ends[v]
}

// get returns the implementation of the handle. The zero Handle behaves as the exhausted generic
// handle.
func (h Handle) get() Impl {
	if h.impl == nil {
		return End(VariantGeneric).impl
	}
	return h.impl
}

// Advance moves the handle to the next element, or to the state that equals the end sentinel.
// A failure from a wrapped iterator is returned unchanged. Advancing an exhausted handle does
// nothing.
func (h Handle) Advance() error {
	return h.get().advance()
}

// Current returns the element at the present position. It panics with an ITER_EXHAUSTED issue when
// the handle is exhausted.
func (h Handle) Current() eval.Value {
	impl := h.get()
	if impl.exhausted() {
		panic(eval.Error(eval.IterExhausted, issue.H{`kind`: impl.variant().String()}))
	}
	return impl.current()
}

// Equals compares the two handles by content. Any exhausted handle equals the end sentinel of its
// variant.
func (h Handle) Equals(other Handle) bool {
	a, b := h.get(), other.get()
	if a == b {
		return true
	}
	return a.variant() == b.variant() && a.same(b)
}

// Exhausted returns true when the handle equals the end sentinel of its variant
func (h Handle) Exhausted() bool {
	return h.get().exhausted()
}

// Trace reports the references held at the present position to v. An exhausted handle reports
// nothing.
func (h Handle) Trace(v eval.Visitor) {
	h.get().Trace(v)
}

// Variant returns the implementation variant that GetRange selected for the container
func (h Handle) Variant() Variant {
	return h.get().variant()
}

// Begin returns the handle positioned on the first element. All copies share its position, so
// iterating Begin() twice does not restart the iteration.
func (r *Range) Begin() Handle {
	return r.begin
}

// End returns the end sentinel of the range's variant
func (r *Range) End() Handle {
	return r.end
}

// Trace reports the references held by the begin handle. The end sentinel holds none.
func (r *Range) Trace(v eval.Visitor) {
	r.begin.Trace(v)
}

// Track registers the range with the collector so that the references it holds are reported on
// every collection pass. The returned function unregisters it.
func (r *Range) Track(c *gc.Collector) (release func()) {
	return c.Register(r)
}

func (r *Range) Variant() Variant {
	return r.begin.Variant()
}
