package gc_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/lyraproj/boxiter/eval"
	"github.com/lyraproj/boxiter/gc"
	"github.com/lyraproj/boxiter/types"
)

func ExampleCollector_Collect() {
	inner := types.NewList(types.WrapString(`leaf`))
	outer := types.NewTuple(inner, types.WrapInteger(1))

	c := gc.NewCollector()
	release := c.Register(outer)
	fmt.Println(c.Collect().Count())
	release()
	fmt.Println(c.Collect().Count())
	// Output:
	// 3
	// 0
}

func TestCollectFollowsCycles(t *testing.T) {
	a := types.NewList()
	b := types.NewList(a)
	a.Append(b)

	c := gc.NewCollector()
	c.Register(a)
	marks := c.Collect()
	if !marks.IsMarked(b) || !marks.IsMarked(a) {
		t.Error(`cycle not fully marked`)
	}
	if marks.Count() != 2 {
		t.Errorf(`expected 2 marks, got %d`, marks.Count())
	}
}

func TestUnreachableIsNotMarked(t *testing.T) {
	kept := types.WrapString(`kept`)
	lost := types.WrapString(`lost`)
	c := gc.NewCollector()
	c.Register(types.NewList(kept))
	marks := c.Collect()
	if !marks.IsMarked(kept) || marks.IsMarked(lost) {
		t.Error(`unexpected marks`)
	}
}

func TestVisitorFuncRoot(t *testing.T) {
	d := types.NewDict()
	v := types.WrapInteger(7)
	d.Put(`seven`, v)
	c := gc.NewCollector()
	c.Register(d)
	if !c.Collect().IsMarked(v) {
		t.Error(`dict value not marked`)
	}

	var seen []interface{}
	d.Trace(eval.VisitorFunc(func(ref interface{}) { seen = append(seen, ref) }))
	if len(seen) != 1 || seen[0] != v {
		t.Errorf(`unexpected trace %v`, seen)
	}
}

func TestConcurrentRegistration(t *testing.T) {
	c := gc.NewCollector()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int64) {
			defer wg.Done()
			release := c.Register(types.NewList(types.WrapInteger(n)))
			c.Collect()
			release()
		}(int64(i))
	}
	wg.Wait()
	if c.Roots() != 0 {
		t.Errorf(`expected no roots, got %d`, c.Roots())
	}
	if c.Passes() != 16 {
		t.Errorf(`expected 16 passes, got %d`, c.Passes())
	}
}
