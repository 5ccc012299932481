package eval

import (
	"github.com/jacklang/jack/internal/ast"
	"github.com/jacklang/jack/internal/errors"
)

type thunkState int

const (
	unevaluated thunkState = iota
	evaluating
	evaluated
)

// Thunk is a suspended computation with a memoized result: the unit of
// laziness that makes self-referential `local` bindings terminate under
// finite demand (see the language spec's discussion of `mugen`).
//
// A Thunk moves unevaluated -> evaluating -> evaluated at most once. Once
// evaluated its Value is immutable and every reference to the Thunk
// observes the same cached result.
type Thunk struct {
	state thunkState
	expr  ast.Expr
	env   *Env
	value Value
	// name, if set, is the bound identifier this thunk represents — used
	// only to make NonProductiveRecursion messages readable.
	name string
}

// NewThunk wraps expr/env into a fresh, unevaluated Thunk.
func NewThunk(expr ast.Expr, env *Env) *Thunk {
	return &Thunk{state: unevaluated, expr: expr, env: env}
}

// NewNamedThunk is NewThunk with a name attached for error messages (used
// for `local` bindings, the one place a thunk's own expression can refer
// back to the thunk itself).
func NewNamedThunk(name string, expr ast.Expr, env *Env) *Thunk {
	return &Thunk{state: unevaluated, expr: expr, env: env, name: name}
}

// Ready wraps an already-computed Value as an already-evaluated Thunk;
// forcing it returns v without any evaluation.
func Ready(v Value) *Thunk {
	return &Thunk{state: evaluated, value: v}
}

// Force reduces the thunk to its value, memoizing the result. Re-entering
// a thunk that is already being forced (state == evaluating) means the
// recursion is not productive — nothing lies between the self-reference
// and the current force — and is reported as NonProductiveRecursion
// rather than looping or overflowing the stack.
func (t *Thunk) Force(ev *Evaluator) (Value, error) {
	switch t.state {
	case evaluated:
		return t.value, nil
	case evaluating:
		return nil, errors.NonProductiveRecursion(t.expr.Position(), t.name)
	}

	t.state = evaluating
	v, err := ev.Eval(t.expr, t.env)
	if err != nil {
		// Reset the thunk to `unevaluated`: a failed force is not memoized,
		// and re-forcing it (e.g. a second reference after the first
		// raised an error) re-attempts evaluation rather than replaying
		// a stale NonProductiveRecursion error.
		t.state = unevaluated
		return nil, err
	}
	t.state = evaluated
	t.value = v
	t.expr = nil
	t.env = nil
	return v, nil
}
