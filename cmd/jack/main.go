// Command jack is the Jack language CLI: a REPL, a one-shot file
// evaluator, and a version command, built as a Cobra command tree.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version, Commit, and BuildTime are injected at build time via
// -ldflags "-X main.Version=... -X main.Commit=... -X main.BuildTime=...".
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

var (
	colorFlag  string
	configFlag string
)

var rootCmd = &cobra.Command{
	Use:   "jack",
	Short: "Jack: a lazily-evaluated, pure functional JSON-superset config language",
	Long: `jack evaluates Jack programs: a small, pure functional superset of
JSON with local bindings, functions, and call-by-need evaluation, in the
style of Jsonnet.

Every program is a single expression; evaluating it produces a JSON value.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("jack version %s\ncommit: %s\nbuilt:  %s\n", Version, Commit, BuildTime))
	rootCmd.PersistentFlags().StringVar(&colorFlag, "color", "auto", "color mode: auto|always|never")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "path to a .jackrc.yaml config file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "jack: %v\n", err)
		os.Exit(exitCodeFor(err))
	}
}
