package eval

import (
	"github.com/jacklang/jack/internal/ast"
	"github.com/jacklang/jack/internal/errors"
	"github.com/jacklang/jack/internal/serialize"
)

// DeepForce recursively forces every thunk reachable from v — the bridge
// between the evaluator's weak-head values and the serializer, which needs
// a fully-realized tree. It is called once on the top-level program result
// before serialization, and on both operands of == and != (valuesEqual).
//
// DeepForce returns a plain tree of nil, bool, float64, string,
// []interface{}, and *OrderedMap values (the shapes serialize.ToJSON
// accepts), or an error if a *Closure is encountered — functions are not
// serializable.
func DeepForce(ev *Evaluator, v Value) (interface{}, error) {
	switch val := v.(type) {
	case *Null:
		return nil, nil
	case *Bool:
		return val.Value, nil
	case *Number:
		return val.Value, nil
	case *String:
		return val.Value, nil

	case *Array:
		out := make([]interface{}, len(val.Items))
		for i, th := range val.Items {
			elem, err := th.Force(ev)
			if err != nil {
				return nil, err
			}
			forced, err := DeepForce(ev, elem)
			if err != nil {
				return nil, err
			}
			out[i] = forced
		}
		return out, nil

	case *Object:
		out := NewOrderedMap()
		for _, k := range val.Keys {
			th := val.Fields[k]
			fv, err := th.Force(ev)
			if err != nil {
				return nil, err
			}
			forced, err := DeepForce(ev, fv)
			if err != nil {
				return nil, err
			}
			out.Set(k, forced)
		}
		return out, nil

	case *Closure:
		return nil, errors.NotSerializable(ast.Pos{})

	default:
		return nil, errors.NotSerializable(ast.Pos{})
	}
}

// OrderedMap is a string-keyed map that preserves insertion order, used to
// carry deep-forced Objects to the serializer without losing field order
// (a plain Go map would not).
type OrderedMap struct {
	Keys   []string
	Values map[string]interface{}
}

// NewOrderedMap creates an empty OrderedMap.
func NewOrderedMap() *OrderedMap {
	return &OrderedMap{Values: make(map[string]interface{})}
}

// Set appends key/value, preserving insertion order (callers are
// responsible for not setting the same key twice; Jack objects already
// reject duplicate keys at construction time).
func (m *OrderedMap) Set(key string, value interface{}) {
	m.Keys = append(m.Keys, key)
	m.Values[key] = value
}

// Pairs satisfies serialize.OrderedObject, letting the serializer walk an
// OrderedMap's fields in insertion order without importing internal/eval.
func (m *OrderedMap) Pairs() []serialize.KV {
	pairs := make([]serialize.KV, len(m.Keys))
	for i, k := range m.Keys {
		pairs[i] = serialize.KV{Key: k, Value: m.Values[k]}
	}
	return pairs
}
