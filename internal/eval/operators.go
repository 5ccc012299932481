package eval

import (
	"math"

	"github.com/jacklang/jack/internal/ast"
	"github.com/jacklang/jack/internal/errors"
	"github.com/jacklang/jack/internal/serialize"
)

func (ev *Evaluator) evalUnaryOp(n *ast.UnaryOp, env *Env) (Value, error) {
	operand, err := ev.Eval(n.Operand, env)
	if err != nil {
		return nil, err
	}
	switch n.Op {
	case ast.Neg:
		num, ok := operand.(*Number)
		if !ok {
			return nil, errors.TypeMismatch(n.Pos, "unary - requires a number, got %s", TypeName(operand))
		}
		return &Number{Value: -num.Value}, nil
	case ast.Not:
		b, ok := operand.(*Bool)
		if !ok {
			return nil, errors.TypeMismatch(n.Pos, "unary ! requires a bool, got %s", TypeName(operand))
		}
		return &Bool{Value: !b.Value}, nil
	default:
		return nil, errors.TypeMismatch(n.Pos, "unknown unary operator")
	}
}

// evalBinaryOp implements §4.2: && and || short-circuit without evaluating
// their right operand; every other operator forces both operands first.
func (ev *Evaluator) evalBinaryOp(n *ast.BinaryOp, env *Env) (Value, error) {
	switch n.Op {
	case ast.And:
		left, err := ev.Eval(n.Left, env)
		if err != nil {
			return nil, err
		}
		lb, ok := left.(*Bool)
		if !ok {
			return nil, errors.TypeMismatch(n.Pos, "&& requires bool operands, got %s", TypeName(left))
		}
		if !lb.Value {
			return &Bool{Value: false}, nil
		}
		right, err := ev.Eval(n.Right, env)
		if err != nil {
			return nil, err
		}
		rb, ok := right.(*Bool)
		if !ok {
			return nil, errors.TypeMismatch(n.Pos, "&& requires bool operands, got %s", TypeName(right))
		}
		return &Bool{Value: rb.Value}, nil

	case ast.Or:
		left, err := ev.Eval(n.Left, env)
		if err != nil {
			return nil, err
		}
		lb, ok := left.(*Bool)
		if !ok {
			return nil, errors.TypeMismatch(n.Pos, "|| requires bool operands, got %s", TypeName(left))
		}
		if lb.Value {
			return &Bool{Value: true}, nil
		}
		right, err := ev.Eval(n.Right, env)
		if err != nil {
			return nil, err
		}
		rb, ok := right.(*Bool)
		if !ok {
			return nil, errors.TypeMismatch(n.Pos, "|| requires bool operands, got %s", TypeName(right))
		}
		return &Bool{Value: rb.Value}, nil
	}

	left, err := ev.Eval(n.Left, env)
	if err != nil {
		return nil, err
	}
	right, err := ev.Eval(n.Right, env)
	if err != nil {
		return nil, err
	}

	switch n.Op {
	case ast.Add:
		return evalAdd(n.Pos, left, right)
	case ast.Sub:
		return numericOp(n.Pos, "-", left, right, func(a, b float64) (float64, error) { return a - b, nil })
	case ast.Mul:
		return numericOp(n.Pos, "*", left, right, func(a, b float64) (float64, error) { return a * b, nil })
	case ast.Div:
		return numericOp(n.Pos, "/", left, right, func(a, b float64) (float64, error) {
			if b == 0 {
				return 0, errors.DivisionByZero(n.Pos, "division")
			}
			return a / b, nil
		})
	case ast.Mod:
		return numericOp(n.Pos, "%", left, right, func(a, b float64) (float64, error) {
			if b == 0 {
				return 0, errors.DivisionByZero(n.Pos, "modulo")
			}
			return math.Mod(a, b), nil
		})
	case ast.Eq:
		eq, err := ev.valuesEqual(n.Pos, left, right)
		if err != nil {
			return nil, err
		}
		return &Bool{Value: eq}, nil
	case ast.NotEq:
		eq, err := ev.valuesEqual(n.Pos, left, right)
		if err != nil {
			return nil, err
		}
		return &Bool{Value: !eq}, nil
	default:
		return nil, errors.TypeMismatch(n.Pos, "unknown binary operator")
	}
}

func evalAdd(pos ast.Pos, left, right Value) (Value, error) {
	switch l := left.(type) {
	case *Number:
		if r, ok := right.(*Number); ok {
			return &Number{Value: l.Value + r.Value}, nil
		}
		if r, ok := right.(*String); ok {
			return &String{Value: serialize.FormatNumber(l.Value) + r.Value}, nil
		}
	case *String:
		if r, ok := right.(*String); ok {
			return &String{Value: l.Value + r.Value}, nil
		}
		if r, ok := right.(*Number); ok {
			return &String{Value: l.Value + serialize.FormatNumber(r.Value)}, nil
		}
	}
	return nil, errors.TypeMismatch(pos, "+ requires two numbers or at least one string, got %s and %s", TypeName(left), TypeName(right))
}

func numericOp(pos ast.Pos, op string, left, right Value, f func(a, b float64) (float64, error)) (Value, error) {
	l, ok := left.(*Number)
	if !ok {
		return nil, errors.TypeMismatch(pos, "%s requires numbers, got %s", op, TypeName(left))
	}
	r, ok := right.(*Number)
	if !ok {
		return nil, errors.TypeMismatch(pos, "%s requires numbers, got %s", op, TypeName(right))
	}
	v, err := f(l.Value, r.Value)
	if err != nil {
		return nil, err
	}
	return &Number{Value: v}, nil
}
