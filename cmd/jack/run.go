package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jacklang/jack/internal/config"
	"github.com/jacklang/jack/internal/eval"
	"github.com/jacklang/jack/internal/lexer"
	"github.com/jacklang/jack/internal/parser"
	"github.com/jacklang/jack/internal/serialize"
)

// exitCodeError carries the process exit code a failure should produce:
// 2 for a parse/lex failure, 1 for everything else (matching the
// language's two-phase failure model — static vs. dynamic errors).
type exitCodeError struct {
	code int
	err  error
}

func (e *exitCodeError) Error() string { return e.err.Error() }
func (e *exitCodeError) Unwrap() error { return e.err }

func exitCodeFor(err error) int {
	if ece, ok := err.(*exitCodeError); ok {
		return ece.code
	}
	return 1
}

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Evaluate a Jack file and print its JSON result",
	Args:  cobra.ExactArgs(1),
	RunE:  runFile,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runFile(_ *cobra.Command, args []string) error {
	path := args[0]
	src, err := os.ReadFile(path)
	if err != nil {
		return &exitCodeError{code: 1, err: fmt.Errorf("reading %s: %w", path, err)}
	}

	cfg, err := config.Load(configFlag)
	if err != nil {
		return &exitCodeError{code: 1, err: fmt.Errorf("loading config: %w", err)}
	}

	l := lexer.New(src, path)
	p := parser.New(l)
	expr := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintln(os.Stderr, e)
		}
		return &exitCodeError{code: 2, err: fmt.Errorf("parsing failed with %d error(s)", len(errs))}
	}

	ev := eval.NewWithMaxDepth(cfg.MaxDepth)
	val, err := ev.Eval(expr, eval.Empty())
	if err != nil {
		return &exitCodeError{code: 1, err: err}
	}

	forced, err := eval.DeepForce(ev, val)
	if err != nil {
		return &exitCodeError{code: 1, err: err}
	}

	out, err := serialize.ToJSON(forced)
	if err != nil {
		return &exitCodeError{code: 1, err: err}
	}

	fmt.Println(out)
	return nil
}
