package errors

import (
	"fmt"

	"github.com/jacklang/jack/internal/ast"
)

// JackError is a dynamic error raised by the lexer, parser, or evaluator.
// There is no in-language catch mechanism: a JackError unwinds as a plain
// Go error to the nearest host boundary (the REPL prompt or `jack run`'s
// top level).
type JackError struct {
	Code    string
	Phase   string
	Message string
	Pos     ast.Pos
	HasPos  bool
}

func (e *JackError) Error() string {
	if e.HasPos {
		return fmt.Sprintf("%s error %s: %s (at %s)", e.Phase, e.Code, e.Message, e.Pos)
	}
	return fmt.Sprintf("%s error %s: %s", e.Phase, e.Code, e.Message)
}

func newErr(code string, pos ast.Pos, hasPos bool, format string, args ...interface{}) *JackError {
	info := Registry[code]
	return &JackError{
		Code:    code,
		Phase:   info.Phase,
		Message: fmt.Sprintf(format, args...),
		Pos:     pos,
		HasPos:  hasPos,
	}
}

// Lexical constructs a LexicalError at pos.
func Lexical(pos ast.Pos, format string, args ...interface{}) *JackError {
	return newErr(LEX001, pos, true, format, args...)
}

// Parse constructs a ParseError at pos.
func Parse(pos ast.Pos, format string, args ...interface{}) *JackError {
	return newErr(PAR001, pos, true, format, args...)
}

// UnboundName constructs an UnboundName error.
func UnboundName(pos ast.Pos, name string) *JackError {
	return newErr(EVA001, pos, true, "unbound name %q", name)
}

// TypeMismatch constructs a TypeMismatch error.
func TypeMismatch(pos ast.Pos, format string, args ...interface{}) *JackError {
	return newErr(EVA002, pos, true, format, args...)
}

// Arity constructs an Arity error.
func Arity(pos ast.Pos, want, got int) *JackError {
	return newErr(EVA003, pos, true, "function expects %d argument(s), got %d", want, got)
}

// DivisionByZero constructs a DivisionByZero error.
func DivisionByZero(pos ast.Pos, op string) *JackError {
	return newErr(EVA004, pos, true, "%s by zero", op)
}

// MissingField constructs a MissingField error.
func MissingField(pos ast.Pos, name string) *JackError {
	return newErr(EVA005, pos, true, "object has no field %q", name)
}

// IndexOutOfRange constructs an IndexOutOfRange error.
func IndexOutOfRange(pos ast.Pos, format string, args ...interface{}) *JackError {
	return newErr(EVA006, pos, true, format, args...)
}

// DuplicateKey constructs a DuplicateKey error.
func DuplicateKey(pos ast.Pos, key string) *JackError {
	return newErr(EVA007, pos, true, "duplicate key %q in dict literal", key)
}

// NonProductiveRecursion constructs a NonProductiveRecursion error.
func NonProductiveRecursion(pos ast.Pos, name string) *JackError {
	if name == "" {
		return newErr(EVA008, pos, true, "non-productive recursion: thunk re-entered while evaluating")
	}
	return newErr(EVA008, pos, true, "non-productive recursion: %q re-entered while evaluating itself", name)
}

// NotSerializable constructs a NotSerializable error.
func NotSerializable(pos ast.Pos) *JackError {
	return newErr(EVA009, pos, true, "functions are not serializable")
}

// StackOverflow constructs the supplemental recursion-depth guard error.
func StackOverflow() *JackError {
	return newErr(RT001, ast.Pos{}, false, "recursion depth exceeded")
}
