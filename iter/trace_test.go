package iter_test

import (
	"testing"

	"github.com/lyraproj/boxiter/eval"
	"github.com/lyraproj/boxiter/gc"
	"github.com/lyraproj/boxiter/iter"
	"github.com/lyraproj/boxiter/types"
)

func TestTrackedIndexedRangeKeepsContainerAlive(t *testing.T) {
	one := types.WrapInteger(1)
	l := types.NewList(one, types.WrapInteger(2))
	r := iter.MustRange(l)

	c := gc.NewCollector()
	release := r.Track(c)
	marks := c.Collect()
	if !marks.IsMarked(l) {
		t.Error(`list not reported by its iterator`)
	}
	if !marks.IsMarked(one) {
		t.Error(`list element not reached through the list`)
	}

	release()
	release()
	if c.Roots() != 0 {
		t.Errorf(`expected no roots after release, got %d`, c.Roots())
	}
	if c.Collect().IsMarked(l) {
		t.Error(`released range still reports the list`)
	}
	if c.Passes() != 2 {
		t.Errorf(`expected 2 passes, got %d`, c.Passes())
	}
}

func TestTrackedGenericRangeReportsIteratorAndValue(t *testing.T) {
	payload := types.NewList(types.WrapString(`payload`))
	values := []eval.Value{payload, types.WrapInteger(2)}
	it := counting(values...)
	r := iter.MustRange(it)

	c := gc.NewCollector()
	defer r.Track(c)()
	marks := c.Collect()
	if !marks.IsMarked(it) {
		t.Error(`iterator not reported`)
	}
	if !marks.IsMarked(payload) {
		t.Error(`cached value not reported`)
	}

	h := r.Begin()
	if err := h.Advance(); err != nil {
		t.Fatal(err)
	}
	if c.Collect().IsMarked(payload) {
		t.Error(`previous value still reported after advance`)
	}
}

func TestExhaustedRangeReportsNothing(t *testing.T) {
	for _, container := range []eval.Value{types.NewList(types.WrapInteger(1)), counting(types.WrapInteger(1))} {
		r := iter.MustRange(container)
		if err := r.Begin().Advance(); err != nil {
			t.Fatal(err)
		}
		c := gc.NewCollector()
		r.Track(c)
		if n := c.Collect().Count(); n != 0 {
			t.Errorf(`exhausted %s range reported %d references`, r.Variant(), n)
		}
	}
}

func TestEndSentinelReportsNothing(t *testing.T) {
	c := gc.NewCollector()
	for _, v := range []iter.Variant{iter.VariantGeneric, iter.VariantList, iter.VariantTuple, iter.VariantString} {
		c.Register(iter.End(v))
	}
	if n := c.Collect().Count(); n != 0 {
		t.Errorf(`end sentinels reported %d references`, n)
	}
}

func TestObjectReferencesReachedThroughIterator(t *testing.T) {
	ref := types.WrapString(`kept`)
	it := types.NewObject(`Holder`, func() eval.Iterator { return counting(types.WrapInteger(1)) }, ref)
	r := iter.MustRange(types.NewList(it))
	c := gc.NewCollector()
	r.Track(c)
	if !c.Collect().IsMarked(ref) {
		t.Error(`reference held by an element was not reached`)
	}
}
