package iter

import (
	"github.com/lyraproj/boxiter/eval"
	"github.com/lyraproj/boxiter/logger"
	"github.com/lyraproj/boxiter/types"
	"github.com/lyraproj/issue/issue"
)

type (
	// NotIterablePolicy decides what GetRange does with a container that has no iteration
	// capability
	NotIterablePolicy int

	options struct {
		policy NotIterablePolicy
		logger logger.Logger
	}

	Option func(*options)
)

const (
	// Strict makes GetRange fail with an ITER_NOT_ITERABLE issue
	Strict = NotIterablePolicy(iota)

	// Empty makes GetRange return an empty generic range
	Empty
)

var policyNames = [...]string{Strict: `strict`, Empty: `empty`}

func (p NotIterablePolicy) String() string {
	return policyNames[p]
}

// ParsePolicy converts the name of a policy into a NotIterablePolicy
func ParsePolicy(name string) (NotIterablePolicy, bool) {
	for i, n := range policyNames {
		if n == name {
			return NotIterablePolicy(i), true
		}
	}
	return Strict, false
}

// WithPolicy selects the policy applied to containers that are not iterable
func WithPolicy(p NotIterablePolicy) Option {
	return func(o *options) {
		o.policy = p
	}
}

// SilentEmpty treats a container that is not iterable as an empty one
func SilentEmpty() Option {
	return WithPolicy(Empty)
}

// WithLogger sets the logger that receives debug output about policy decisions
func WithLogger(l logger.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// GetRange returns a Range over the given container. List, Tuple, and String containers are
// iterated by index, everything else through the container's own iterator. The begin handle of
// the returned range is positioned on the first element. An error is returned when the container
// is not iterable and the policy is Strict, or when the first fetch from a wrapped iterator fails.
func GetRange(container eval.Value, opts ...Option) (*Range, error) {
	o := options{policy: Strict, logger: logger.Discard}
	for _, opt := range opts {
		opt(&o)
	}

	switch eval.KindOf(container) {
	case eval.KindList:
		if c, ok := container.(*types.List); ok {
			return newRange(newIndexed(c, VariantList)), nil
		}
	case eval.KindTuple:
		if c, ok := container.(*types.Tuple); ok {
			return newRange(newIndexed(c, VariantTuple)), nil
		}
	case eval.KindString:
		if c, ok := container.(*types.String); ok {
			return newRange(newIndexed(c, VariantString)), nil
		}
	}
	return genericRange(container, &o)
}

// MustRange is like GetRange but panics instead of returning an error
func MustRange(container eval.Value, opts ...Option) *Range {
	r, err := GetRange(container, opts...)
	if err != nil {
		panic(err)
	}
	return r
}

func genericRange(container eval.Value, o *options) (*Range, error) {
	var iterator eval.Iterator
	ok := false
	if ic, isIterable := container.(eval.Iterable); isIterable {
		iterator, ok = ic.Iter()
	}
	if !ok || iterator == nil {
		kind := eval.KindOf(container).String()
		if o.policy == Strict {
			return nil, eval.Error(eval.IterNotIterable, issue.H{`kind`: kind})
		}
		logger.Debug(o.logger, `treating non iterable %s object as empty`, kind)
		return newRange(&generic{}), nil
	}

	it, err := newGeneric(iterator)
	if err != nil {
		return nil, err
	}
	return newRange(it), nil
}

func newRange(impl Impl) *Range {
	return &Range{begin: Handle{impl}, end: End(impl.variant())}
}
