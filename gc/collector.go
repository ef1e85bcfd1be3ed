// Package gc contains a marking collector that drives the eval.Visitor contract. It does not sweep;
// it answers which references are reachable from the registered roots.
package gc

import (
	"sync"

	"github.com/lyraproj/boxiter/eval"
	"github.com/lyraproj/boxiter/utils"
)

type (
	Collector struct {
		lock   sync.Mutex
		nextID int
		roots  map[int]eval.Traceable
		passes int
	}

	// MarkSet is the result of one collection pass
	MarkSet struct {
		marked utils.IdentitySet
		count  int
	}

	marker struct {
		marks *MarkSet
		stack []interface{}
	}
)

func NewCollector() *Collector {
	return &Collector{roots: make(map[int]eval.Traceable)}
}

// Register adds root to the set of roots that are traced on every pass. The returned function
// removes it again. Calling the function more than once is harmless.
func (c *Collector) Register(root eval.Traceable) (release func()) {
	c.lock.Lock()
	id := c.nextID
	c.nextID++
	c.roots[id] = root
	c.lock.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.lock.Lock()
			delete(c.roots, id)
			c.lock.Unlock()
		})
	}
}

// Roots returns the number of registered roots
func (c *Collector) Roots() int {
	c.lock.Lock()
	defer c.lock.Unlock()
	return len(c.roots)
}

// Passes returns the number of completed collection passes
func (c *Collector) Passes() int {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.passes
}

// Collect performs one marking pass. Every registered root is asked to trace its references and
// everything reported that is itself Traceable is traced in turn.
func (c *Collector) Collect() *MarkSet {
	c.lock.Lock()
	roots := make([]eval.Traceable, 0, len(c.roots))
	for _, r := range c.roots {
		roots = append(roots, r)
	}
	c.passes++
	c.lock.Unlock()

	m := &marker{marks: &MarkSet{marked: make(utils.IdentitySet)}}
	for _, r := range roots {
		r.Trace(m)
		m.drain()
	}
	return m.marks
}

func (m *marker) VisitPotential(ref interface{}) {
	if ref == nil {
		return
	}
	if m.marks.marked.Add(ref) {
		m.marks.count++
		m.stack = append(m.stack, ref)
	}
}

func (m *marker) drain() {
	for n := len(m.stack); n > 0; n = len(m.stack) {
		ref := m.stack[n-1]
		m.stack = m.stack[:n-1]
		if t, ok := ref.(eval.Traceable); ok {
			t.Trace(m)
		}
	}
}

// Count returns the number of distinct references that were marked
func (s *MarkSet) Count() int {
	return s.count
}

// IsMarked returns true if ref was reported as potentially live during the pass
func (s *MarkSet) IsMarked(ref interface{}) bool {
	return s.marked.Include(ref)
}
