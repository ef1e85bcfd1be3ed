package yaml

import (
	"fmt"
	"sort"

	"github.com/lyraproj/boxiter/eval"
	"github.com/lyraproj/boxiter/types"
	"github.com/lyraproj/issue/issue"
	ym "gopkg.in/yaml.v2"
)

// Unmarshal parses the YAML document in data into a value. Mappings become a Dict, sequences become
// a List. Mappings keep the order of the document unless they are nested in a top level sequence,
// in which case their keys are sorted. An empty document yields Undef.
func Unmarshal(data []byte) (eval.Value, error) {
	var itm interface{}
	if err := ym.Unmarshal(data, &itm); err != nil {
		return nil, parseError(err)
	}
	if _, ok := itm.(map[interface{}]interface{}); !ok {
		return wrapValue(itm)
	}

	// decode again to get the mapping in document order
	ms := make(ym.MapSlice, 0)
	if err := ym.Unmarshal(data, &ms); err != nil {
		return nil, parseError(err)
	}
	return wrapSlice(ms)
}

func parseError(err error) error {
	return eval.Error(eval.ParseError, issue.H{`language`: `YAML`, `detail`: err.Error()})
}

func wrapSlice(ms ym.MapSlice) (eval.Value, error) {
	d := types.NewDict()
	for _, me := range ms {
		v, err := wrapValue(me.Value)
		if err != nil {
			return nil, err
		}
		d.Put(fmt.Sprint(me.Key), v)
	}
	return d, nil
}

func wrapValue(v interface{}) (eval.Value, error) {
	switch v := v.(type) {
	case nil:
		return types.Undef, nil
	case ym.MapSlice:
		return wrapSlice(v)
	case map[interface{}]interface{}:
		// mappings nested in a document that is not itself a mapping
		keys := make([]string, 0, len(v))
		byKey := make(map[string]interface{}, len(v))
		for k, e := range v {
			ks := fmt.Sprint(k)
			keys = append(keys, ks)
			byKey[ks] = e
		}
		sort.Strings(keys)
		ms := make(ym.MapSlice, len(keys))
		for i, k := range keys {
			ms[i] = ym.MapItem{Key: k, Value: byKey[k]}
		}
		return wrapSlice(ms)
	case []interface{}:
		vs := make([]eval.Value, len(v))
		for i, y := range v {
			wv, err := wrapValue(y)
			if err != nil {
				return nil, err
			}
			vs[i] = wv
		}
		return types.WrapList(vs), nil
	case int:
		return types.WrapInteger(int64(v)), nil
	case int64:
		return types.WrapInteger(v), nil
	case uint64:
		return types.WrapInteger(int64(v)), nil
	case bool:
		return types.WrapBoolean(v), nil
	case string:
		return types.WrapString(v), nil
	default:
		// floats and timestamps have no counterpart in the object model
		return types.WrapString(fmt.Sprint(v)), nil
	}
}
