// Package repl implements Jack's interactive read-eval-print loop: a
// liner-backed line editor with history, colored `=>` results, and
// multi-line continuation for expressions that span more than one line.
package repl

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"

	"github.com/jacklang/jack/internal/config"
	"github.com/jacklang/jack/internal/eval"
	"github.com/jacklang/jack/internal/lexer"
	"github.com/jacklang/jack/internal/parser"
	"github.com/jacklang/jack/internal/serialize"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	dim    = color.New(color.Faint).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
	result = color.New(color.FgCyan).SprintFunc()
)

// REPL is a single interactive session. It keeps no evaluator or
// environment between inputs: each input is evaluated as a fresh
// self-contained expression by a new Evaluator, so `local` bindings made at
// one prompt are not visible at the next. The config (including the
// recursion-depth ceiling) and the liner history are shared by all inputs.
type REPL struct {
	cfg     *config.Config
	version string
}

// New creates a REPL using cfg (from internal/config) and a CLI-supplied
// version string.
func New(cfg *config.Config, version string) *REPL {
	if cfg == nil {
		cfg = config.Default()
	}
	if version == "" {
		version = "dev"
	}
	return &REPL{cfg: cfg, version: version}
}

// Start runs the REPL until EOF (Ctrl-D) or a `:quit` command.
func (r *REPL) Start(out io.Writer) {
	applyColorMode(r.cfg.Color)

	line := liner.NewLiner()
	defer line.Close()
	line.SetMultiLineMode(true)

	if f, err := os.Open(r.cfg.HistoryFile); err == nil {
		_, _ = line.ReadHistory(f)
		f.Close()
	}

	fmt.Fprintf(out, "%s %s\n", bold("Jack"), bold(r.version))
	fmt.Fprintln(out, dim("Type :help for help, :quit to exit."))
	fmt.Fprintln(out)

	for {
		input, ok := r.readExpression(line, out)
		if !ok {
			fmt.Fprintln(out, green("Goodbye!"))
			break
		}
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		if strings.HasPrefix(input, ":") {
			if r.handleCommand(input, out) {
				fmt.Fprintln(out, green("Goodbye!"))
				break
			}
			continue
		}

		r.evalAndPrint(input, out)
	}

	if f, err := os.Create(r.cfg.HistoryFile); err == nil {
		_, _ = line.WriteHistory(f)
		f.Close()
	}
}

// readExpression reads one logical input: a single line, or — if the line
// is syntactically incomplete (unbalanced brackets or a dangling binder —
// see needsContinuation) — as many further lines as it takes to close it,
// terminated early by a blank line or by EOF.
// It returns ok=false on EOF with nothing pending.
func (r *REPL) readExpression(line *liner.State, out io.Writer) (string, bool) {
	first, err := line.Prompt("jack> ")
	if err == io.EOF {
		return "", false
	}
	if err != nil {
		fmt.Fprintf(out, "%s: %v\n", red("error"), err)
		return "", true
	}

	buf := first
	for needsContinuation(buf) {
		more, err := line.Prompt("....| ")
		if err == io.EOF {
			fmt.Fprintln(out, red("incomplete expression at end of input"))
			return "", true
		}
		if err != nil {
			fmt.Fprintf(out, "%s: %v\n", red("error"), err)
			return "", true
		}
		if strings.TrimSpace(more) == "" {
			// A blank line ends continuation even if the expression is
			// still incomplete; evalAndPrint reports whatever parse error
			// results, same as submitting it directly at "jack> ".
			break
		}
		buf += "\n" + more
	}
	return strings.TrimSpace(buf), true
}

// needsContinuation reports whether src is not yet a complete expression.
// Unbalanced brackets are the cheap, certain signal; anything else (a
// dangling `local x =`, a `function(x)` missing its body, a trailing
// operator) is caught by actually parsing src and checking whether the
// first parse error is the parser running off the end of input rather
// than a genuine syntax error — the parser's error text then names EOF as
// the token it found ("got EOF" from expectPeek, "unexpected token EOF"
// from parseExpression).
func needsContinuation(src string) bool {
	if strings.TrimSpace(src) == "" {
		return false
	}
	if bracketDepth(src) > 0 {
		return true
	}

	l := lexer.New([]byte(src), "<repl>")
	p := parser.New(l)
	p.ParseProgram()
	errs := p.Errors()
	if len(errs) == 0 {
		return false
	}
	msg := errs[0].Error()
	return strings.Contains(msg, "got EOF") || strings.Contains(msg, "unexpected token EOF")
}

func bracketDepth(src string) int {
	depth := 0
	l := lexer.New([]byte(src), "<repl>")
	for {
		tok := l.NextToken()
		if tok.Type == lexer.EOF {
			return depth
		}
		switch tok.Type {
		case lexer.LPAREN, lexer.LBRACKET, lexer.LBRACE:
			depth++
		case lexer.RPAREN, lexer.RBRACKET, lexer.RBRACE:
			depth--
		}
	}
}

func (r *REPL) evalAndPrint(src string, out io.Writer) {
	l := lexer.New([]byte(src), "<repl>")
	p := parser.New(l)
	expr := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintf(out, "%s %v\n", red("parse error:"), e)
		}
		return
	}

	ev := eval.NewWithMaxDepth(r.cfg.MaxDepth)
	val, err := ev.Eval(expr, eval.Empty())
	if err != nil {
		fmt.Fprintf(out, "%s %v\n", red("error:"), err)
		return
	}

	forced, err := eval.DeepForce(ev, val)
	if err != nil {
		fmt.Fprintf(out, "%s %v\n", red("error:"), err)
		return
	}

	out2, err := serialize.ToJSON(forced)
	if err != nil {
		fmt.Fprintf(out, "%s %v\n", red("error:"), err)
		return
	}
	fmt.Fprintf(out, "%s %s\n", dim("=>"), result(out2))
}

// handleCommand processes a `:`-prefixed REPL command, returning true if
// the session should end.
func (r *REPL) handleCommand(cmd string, out io.Writer) bool {
	switch strings.TrimSpace(cmd) {
	case ":quit", ":q", ":exit":
		return true
	case ":help", ":h":
		printHelp(out)
		return false
	default:
		fmt.Fprintf(out, "unknown command %q (try :help)\n", cmd)
		return false
	}
}

func printHelp(out io.Writer) {
	fmt.Fprintln(out, "Jack REPL commands:")
	fmt.Fprintln(out, "  :help, :h          show this message")
	fmt.Fprintln(out, "  :quit, :q, :exit   exit the REPL")
	fmt.Fprintln(out, "Anything else is evaluated as a Jack expression.")
}

func applyColorMode(mode config.Color) {
	switch mode {
	case config.ColorAlways:
		color.NoColor = false
	case config.ColorNever:
		color.NoColor = true
	default:
		// auto: leave fatih/color's own terminal detection in place.
	}
}
