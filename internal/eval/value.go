// Package eval implements Jack's evaluator: the value domain, the
// environment/closure model, call-by-need thunking, and the deep-forcer
// that bridges evaluated values to the JSON serializer.
package eval

import "github.com/jacklang/jack/internal/ast"

// Value is the closed set of runtime values. Array and Object carry
// unforced *Thunk elements: eval returns weak-head values, and only the
// deep-forcer (DeepForce) recursively forces everything reachable from a
// result.
type Value interface {
	isValue()
}

// Null is the JSON null value.
type Null struct{}

// Bool is a JSON boolean.
type Bool struct{ Value bool }

// Number is a JSON number, represented as float64 throughout.
type Number struct{ Value float64 }

// String is a JSON string.
type String struct{ Value string }

// Array is a JSON array whose elements are thunked.
type Array struct {
	Items []*Thunk
}

// Object is a JSON object. Keys preserves declaration/insertion order for
// deterministic serialization; Fields maps each key to its thunk.
type Object struct {
	Keys   []string
	Fields map[string]*Thunk
}

// Get returns the thunk bound to name, if present.
func (o *Object) Get(name string) (*Thunk, bool) {
	th, ok := o.Fields[name]
	return th, ok
}

// NewObject builds an Object from entries in order. A repeated key keeps
// its first thunk and is listed in the returned slice of duplicates, which
// the evaluator turns into a DuplicateKey error.
func NewObject(keys []string, thunks []*Thunk) (*Object, []string) {
	obj := &Object{Fields: make(map[string]*Thunk, len(keys))}
	var dups []string
	for i, k := range keys {
		if _, exists := obj.Fields[k]; exists {
			dups = append(dups, k)
			continue
		}
		obj.Fields[k] = thunks[i]
		obj.Keys = append(obj.Keys, k)
	}
	return obj, dups
}

// Closure is a function value: parameters, an unevaluated body, and the
// environment captured at the point the function literal was evaluated.
// Closures carry no name — recursion is expressed entirely through
// self-referential `local` bindings, not named functions.
type Closure struct {
	Params []string
	Body   ast.Expr
	Env    *Env
}

func (*Null) isValue()    {}
func (*Bool) isValue()    {}
func (*Number) isValue()  {}
func (*String) isValue()  {}
func (*Array) isValue()   {}
func (*Object) isValue()  {}
func (*Closure) isValue() {}

// TypeName returns a short, stable name for error messages.
func TypeName(v Value) string {
	switch v.(type) {
	case *Null:
		return "null"
	case *Bool:
		return "bool"
	case *Number:
		return "number"
	case *String:
		return "string"
	case *Array:
		return "array"
	case *Object:
		return "object"
	case *Closure:
		return "function"
	default:
		return "unknown"
	}
}
