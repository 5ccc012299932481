package eval

import "github.com/jacklang/jack/internal/ast"

// valuesEqual implements == and != per §4.2: both operands are deep-forced
// first, then compared structurally. Arrays compare elementwise in order;
// objects compare by key set and per-key value, ignoring declaration order.
// Functions are never equal to anything, including another function.
func (ev *Evaluator) valuesEqual(pos ast.Pos, a, b Value) (bool, error) {
	if _, ok := a.(*Closure); ok {
		return false, nil
	}
	if _, ok := b.(*Closure); ok {
		return false, nil
	}
	fa, err := DeepForce(ev, a)
	if err != nil {
		return false, err
	}
	fb, err := DeepForce(ev, b)
	if err != nil {
		return false, err
	}
	return deepEqual(fa, fb), nil
}

func deepEqual(a, b interface{}) bool {
	switch av := a.(type) {
	case nil:
		return b == nil
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case []interface{}:
		bv, ok := b.([]interface{})
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !deepEqual(av[i], bv[i]) {
				return false
			}
		}
		return true
	case *OrderedMap:
		bv, ok := b.(*OrderedMap)
		if !ok || len(av.Keys) != len(bv.Keys) {
			return false
		}
		for _, k := range av.Keys {
			bVal, ok := bv.Values[k]
			if !ok || !deepEqual(av.Values[k], bVal) {
				return false
			}
		}
		return true
	default:
		// Closures (and anything else DeepForce would have rejected already
		// reaching here) are never equal to anything.
		return false
	}
}
