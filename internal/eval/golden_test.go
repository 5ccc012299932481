package eval_test

import (
	"testing"

	"github.com/jacklang/jack/internal/eval"
	"github.com/jacklang/jack/internal/lexer"
	"github.com/jacklang/jack/internal/parser"
	"github.com/jacklang/jack/internal/serialize"
	"github.com/jacklang/jack/testutil"
)

// evalToJSONBytes is golden_test's own pipeline helper (the require-based
// `run` in eval_test.go isn't reusable here since AssertGoldenJSON wants
// raw bytes, not a pre-compared string).
func evalToJSONBytes(t *testing.T, src string) []byte {
	t.Helper()
	l := lexer.New([]byte(src), "golden.jack")
	p := parser.New(l)
	expr := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		t.Fatalf("parse errors for %q: %v", src, errs)
	}
	ev := eval.New()
	val, err := ev.Eval(expr, eval.Empty())
	if err != nil {
		t.Fatalf("eval error for %q: %v", src, err)
	}
	forced, err := eval.DeepForce(ev, val)
	if err != nil {
		t.Fatalf("deep-force error for %q: %v", src, err)
	}
	out, err := serialize.ToJSON(forced)
	if err != nil {
		t.Fatalf("serialize error for %q: %v", src, err)
	}
	return []byte(out)
}

// TestGoldenScenarios covers the concrete programs of the language's
// worked examples against committed fixtures under testdata/eval/.
func TestGoldenScenarios(t *testing.T) {
	scenarios := []struct {
		name string
		src  string
	}{
		{
			name: "factorial",
			src: `
local fact = function(n) if n == 0 then 1 else n * fact(n - 1);
fact(5)
`,
		},
		{
			name: "church_pair",
			src: `
local pair = function(a, b) function(selector) if selector == "fst" then a else b;
local p = pair(1, 2);
[p("fst"), p("snd")]
`,
		},
		{
			name: "person_greeting",
			src: `
local Person = function(name, age) {
  name: name,
  age: age,
  greet(): "hello " + name
};
Person("Ada", 36).greet()
`,
		},
		{
			name: "lazy_cons_prefix",
			src: `
local cons = function(h, t) {head: h, tail: t};
local mugen = cons("inf", mugen);
[mugen.head, mugen.tail.head]
`,
		},
	}

	for _, sc := range scenarios {
		t.Run(sc.name, func(t *testing.T) {
			testutil.AssertGoldenJSON(t, "eval", sc.name, evalToJSONBytes(t, sc.src))
		})
	}
}
