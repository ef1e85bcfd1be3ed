package eval

type (
	// A Visitor receives "this reference may be live" notifications from Traceable values
	// during a collection pass.
	Visitor interface {
		VisitPotential(ref interface{})
	}

	// Traceable is implemented by everything that holds references that must be kept alive
	// by the collector.
	Traceable interface {
		Trace(v Visitor)
	}
)

// VisitorFunc adapts an ordinary function to the Visitor interface
type VisitorFunc func(ref interface{})

func (f VisitorFunc) VisitPotential(ref interface{}) {
	f(ref)
}
