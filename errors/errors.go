package errors

import (
	"fmt"

	"github.com/lyraproj/issue/issue"
)

type (
	// Breaker is the common part of errors that alter the flow of an iteration rather than
	// report a problem.
	Breaker struct {
		location issue.Location
	}

	// StopIteration is the canonical exhaustion signal. An eval.Iterator returns it (or panics
	// with it) from Next when there are no more elements.
	StopIteration struct {
		Breaker
	}

	GenericError string
)

// Done is a StopIteration without location, suitable for iterators that have no source position
var Done = &StopIteration{}

func (e GenericError) Error() string {
	return string(e)
}

func (e *Breaker) Location() issue.Location {
	return e.location
}

func NewStopIteration(location issue.Location) *StopIteration {
	return &StopIteration{Breaker{location}}
}

func (e *StopIteration) Error() string {
	if e.location != nil {
		return fmt.Sprintf(`stop iteration at %s:%d`, e.location.File(), e.location.Line())
	}
	return `stop iteration`
}

// IsStopIteration returns true if the given value, typically an error or a recovered panic, is
// the canonical exhaustion signal.
func IsStopIteration(v interface{}) bool {
	_, ok := v.(*StopIteration)
	return ok
}
