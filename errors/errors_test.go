package errors_test

import (
	"fmt"
	"testing"

	"github.com/lyraproj/boxiter/errors"
	"github.com/lyraproj/issue/issue"
)

func ExampleStopIteration_Error() {
	fmt.Println(errors.Done)
	// Output: stop iteration
}

func TestIsStopIteration(t *testing.T) {
	if !errors.IsStopIteration(errors.Done) {
		t.Error(`Done is not a stop iteration`)
	}
	if !errors.IsStopIteration(errors.NewStopIteration(issue.NewLocation(`x.yaml`, 3, 1))) {
		t.Error(`located StopIteration not recognized`)
	}
	for _, v := range []interface{}{nil, errors.GenericError(`stop iteration`), fmt.Errorf(`stop iteration`), `stop`} {
		if errors.IsStopIteration(v) {
			t.Errorf(`%#v recognized as a stop iteration`, v)
		}
	}
}

func TestLocatedMessage(t *testing.T) {
	err := errors.NewStopIteration(issue.NewLocation(`x.yaml`, 3, 1))
	if err.Error() != `stop iteration at x.yaml:3` {
		t.Errorf(`unexpected message %q`, err.Error())
	}
}
