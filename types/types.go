package types

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/lyraproj/boxiter/eval"
)

// ToString writes a representation of the given value to b. Strings nested in containers are
// quoted.
func ToString(v eval.Value, b io.Writer) {
	switch v := v.(type) {
	case nil:
		io.WriteString(b, `undef`)
	case *String:
		io.WriteString(b, strconv.Quote(v.s))
	default:
		io.WriteString(b, v.String())
	}
}

func writeElements(b *bytes.Buffer, open, close string, elements []eval.Value) {
	b.WriteString(open)
	for i, e := range elements {
		if i > 0 {
			b.WriteString(`, `)
		}
		ToString(e, b)
	}
	b.WriteString(close)
}

func equalElements(a, b []eval.Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i, e := range a {
		if !eval.Equals(e, b[i]) {
			return false
		}
	}
	return true
}

func traceElements(v eval.Visitor, elements []eval.Value) {
	for _, e := range elements {
		v.VisitPotential(e)
	}
}

// Wrap converts a native Go value into an eval.Value. Slices become a List, maps with string keys
// become a Dict. Values that already are an eval.Value are returned unchanged.
func Wrap(v interface{}) eval.Value {
	switch v := v.(type) {
	case nil:
		return Undef
	case eval.Value:
		return v
	case bool:
		return WrapBoolean(v)
	case int:
		return WrapInteger(int64(v))
	case int64:
		return WrapInteger(v)
	case string:
		return WrapString(v)
	case []eval.Value:
		return WrapList(v)
	case []interface{}:
		el := make([]eval.Value, len(v))
		for i, e := range v {
			el[i] = Wrap(e)
		}
		return WrapList(el)
	case []int:
		el := make([]eval.Value, len(v))
		for i, e := range v {
			el[i] = WrapInteger(int64(e))
		}
		return WrapList(el)
	case []string:
		el := make([]eval.Value, len(v))
		for i, e := range v {
			el[i] = WrapString(e)
		}
		return WrapList(el)
	case map[string]interface{}:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		d := NewDict()
		for _, k := range keys {
			d.Put(k, Wrap(v[k]))
		}
		return d
	}
	panic(fmt.Errorf(`unable to wrap a %T`, v))
}
