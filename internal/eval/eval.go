package eval

import (
	"github.com/jacklang/jack/internal/ast"
	"github.com/jacklang/jack/internal/errors"
)

// DefaultMaxDepth bounds the evaluator's recursive call depth. It exists
// purely as a resource guard against pathological, non-terminating
// recursion (the spec requires graceful failure, not a crash); it is not
// part of the language's semantics and has no observable effect on any
// program that actually terminates within it.
const DefaultMaxDepth = 100000

// Evaluator reduces ast.Expr nodes to weak-head Values under an Env. It
// holds no state beyond the recursion-depth counter: evaluation is a pure,
// single-threaded, synchronous function of (expr, env).
type Evaluator struct {
	maxDepth int
	depth    int
}

// New creates an Evaluator with the default recursion-depth ceiling.
func New() *Evaluator {
	return &Evaluator{maxDepth: DefaultMaxDepth}
}

// NewWithMaxDepth creates an Evaluator with a caller-supplied recursion
// ceiling (wired from internal/config).
func NewWithMaxDepth(maxDepth int) *Evaluator {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &Evaluator{maxDepth: maxDepth}
}

// Eval reduces expr to a weak-head Value under env: arrays and objects are
// returned with their element thunks unforced.
func (ev *Evaluator) Eval(expr ast.Expr, env *Env) (Value, error) {
	ev.depth++
	defer func() { ev.depth-- }()
	if ev.depth > ev.maxDepth {
		return nil, errors.StackOverflow()
	}

	switch n := expr.(type) {
	case *ast.Null:
		return &Null{}, nil
	case *ast.Bool:
		return &Bool{Value: n.Value}, nil
	case *ast.Number:
		return &Number{Value: n.Value}, nil
	case *ast.String:
		return &String{Value: n.Value}, nil

	case *ast.Array:
		items := make([]*Thunk, len(n.Items))
		for i, item := range n.Items {
			items[i] = NewThunk(item, env)
		}
		return &Array{Items: items}, nil

	case *ast.Dict:
		keys := make([]string, len(n.Entries))
		thunks := make([]*Thunk, len(n.Entries))
		for i, entry := range n.Entries {
			keys[i] = entry.Key
			thunks[i] = NewThunk(entry.Value, env)
		}
		obj, dups := NewObject(keys, thunks)
		if len(dups) > 0 {
			return nil, errors.DuplicateKey(n.Pos, dups[0])
		}
		return obj, nil

	case *ast.Variable:
		th, ok := Lookup(env, n.Name)
		if !ok {
			return nil, errors.UnboundName(n.Pos, n.Name)
		}
		return th.Force(ev)

	case *ast.UnaryOp:
		return ev.evalUnaryOp(n, env)

	case *ast.BinaryOp:
		return ev.evalBinaryOp(n, env)

	case *ast.If:
		cond, err := ev.Eval(n.Cond, env)
		if err != nil {
			return nil, err
		}
		b, ok := cond.(*Bool)
		if !ok {
			return nil, errors.TypeMismatch(n.Pos, "if condition must be a bool, got %s", TypeName(cond))
		}
		if b.Value {
			return ev.Eval(n.Then, env)
		}
		return ev.Eval(n.Else, env)

	case *ast.Local:
		// The thunk for Bound captures the NEW frame, so Name is in scope
		// inside its own definition — the sole mechanism for recursion.
		th := NewNamedThunk(n.Name, n.Bound, nil)
		newEnv := Extend(env, n.Name, th)
		th.env = newEnv
		return ev.Eval(n.Body, newEnv)

	case *ast.Function:
		return &Closure{Params: n.Params, Body: n.Body, Env: env}, nil

	case *ast.FunctionCall:
		return ev.evalCall(n, env)

	case *ast.FieldAccess:
		target, err := ev.Eval(n.Target, env)
		if err != nil {
			return nil, err
		}
		obj, ok := target.(*Object)
		if !ok {
			return nil, errors.TypeMismatch(n.Pos, "field access requires an object, got %s", TypeName(target))
		}
		th, ok := obj.Get(n.Name)
		if !ok {
			return nil, errors.MissingField(n.Pos, n.Name)
		}
		return th.Force(ev)

	case *ast.IndexAccess:
		return ev.evalIndexAccess(n, env)

	default:
		return nil, errors.TypeMismatch(expr.Position(), "unknown expression node %T", expr)
	}
}

func (ev *Evaluator) evalCall(n *ast.FunctionCall, env *Env) (Value, error) {
	calleeVal, err := ev.Eval(n.Callee, env)
	if err != nil {
		return nil, err
	}
	closure, ok := calleeVal.(*Closure)
	if !ok {
		return nil, errors.TypeMismatch(n.Pos, "cannot call a non-function value (%s)", TypeName(calleeVal))
	}
	if len(n.Args) != len(closure.Params) {
		return nil, errors.Arity(n.Pos, len(closure.Params), len(n.Args))
	}

	// Arguments are call-by-need under the CALLER's environment.
	argThunks := make([]*Thunk, len(n.Args))
	for i, arg := range n.Args {
		argThunks[i] = NewThunk(arg, env)
	}
	callEnv := ExtendMany(closure.Env, closure.Params, argThunks)
	return ev.Eval(closure.Body, callEnv)
}

func (ev *Evaluator) evalIndexAccess(n *ast.IndexAccess, env *Env) (Value, error) {
	target, err := ev.Eval(n.Target, env)
	if err != nil {
		return nil, err
	}
	idx, err := ev.Eval(n.Index, env)
	if err != nil {
		return nil, err
	}

	switch t := target.(type) {
	case *Array:
		num, ok := idx.(*Number)
		if !ok {
			return nil, errors.TypeMismatch(n.Pos, "array index must be a number, got %s", TypeName(idx))
		}
		i, ok := intIndex(num.Value)
		if !ok || i < 0 || i >= len(t.Items) {
			return nil, errors.IndexOutOfRange(n.Pos, "array index %v out of range (length %d)", num.Value, len(t.Items))
		}
		return t.Items[i].Force(ev)

	case *Object:
		s, ok := idx.(*String)
		if !ok {
			return nil, errors.TypeMismatch(n.Pos, "object index must be a string, got %s", TypeName(idx))
		}
		th, ok := t.Get(s.Value)
		if !ok {
			return nil, errors.MissingField(n.Pos, s.Value)
		}
		return th.Force(ev)

	case *String:
		num, ok := idx.(*Number)
		if !ok {
			return nil, errors.TypeMismatch(n.Pos, "string index must be a number, got %s", TypeName(idx))
		}
		runes := []rune(t.Value)
		i, ok := intIndex(num.Value)
		if !ok || i < 0 || i >= len(runes) {
			return nil, errors.IndexOutOfRange(n.Pos, "string index %v out of range (length %d)", num.Value, len(runes))
		}
		return &String{Value: string(runes[i])}, nil

	default:
		return nil, errors.TypeMismatch(n.Pos, "cannot index a %s", TypeName(target))
	}
}

// intIndex reports whether f is an integer that survives conversion to
// int, returning its value. The sign and upper bound are checked by the
// callers.
func intIndex(f float64) (int, bool) {
	i := int(f)
	if float64(i) != f {
		return 0, false
	}
	return i, true
}
