// Package errors provides Jack's dynamic error taxonomy: every failure the
// lexer, parser or evaluator can raise is a JackError carrying a stable
// code, a phase, and an optional source position.
package errors

const (
	// Lexical errors (LEX###)
	LEX001 = "LEX001" // unrecognized character or malformed literal

	// Parse errors (PAR###)
	PAR001 = "PAR001" // token stream does not match the grammar

	// Evaluation errors (EVA###)
	EVA001 = "EVA001" // unbound name
	EVA002 = "EVA002" // type mismatch
	EVA003 = "EVA003" // wrong argument count
	EVA004 = "EVA004" // division or modulo by zero
	EVA005 = "EVA005" // missing object field
	EVA006 = "EVA006" // index out of range
	EVA007 = "EVA007" // duplicate key in a dict literal
	EVA008 = "EVA008" // non-productive recursion (thunk re-entered while Evaluating)
	EVA009 = "EVA009" // deep-force encountered a closure

	// Runtime errors (RT###)
	RT001 = "RT001" // recursion depth exceeded (pathological, non-language-level)
)

// ErrorInfo describes one error code for documentation/tooling purposes.
type ErrorInfo struct {
	Code        string
	Phase       string
	Kind        string
	Description string
}

// Registry maps every code to its descriptive info.
var Registry = map[string]ErrorInfo{
	LEX001: {LEX001, "lex", "LexicalError", "Unrecognized character or malformed literal"},
	PAR001: {PAR001, "parse", "ParseError", "Token stream does not match grammar"},
	EVA001: {EVA001, "eval", "UnboundName", "Variable lookup missed"},
	EVA002: {EVA002, "eval", "TypeMismatch", "Operator or operation applied to the wrong value kind"},
	EVA003: {EVA003, "eval", "Arity", "Function call with the wrong argument count"},
	EVA004: {EVA004, "eval", "DivisionByZero", "/ or % with a zero divisor"},
	EVA005: {EVA005, "eval", "MissingField", "Field access on an object lacking the name"},
	EVA006: {EVA006, "eval", "IndexOutOfRange", "Array/string index out of bounds or not an integer"},
	EVA007: {EVA007, "eval", "DuplicateKey", "Dict literal declares the same key twice"},
	EVA008: {EVA008, "eval", "NonProductiveRecursion", "Forcing a thunk already being evaluated"},
	EVA009: {EVA009, "eval", "NotSerializable", "Deep-force encountered a closure"},
	RT001:  {RT001, "eval", "StackOverflow", "Recursion depth exceeded"},
}
