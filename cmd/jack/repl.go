package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jacklang/jack/internal/config"
	"github.com/jacklang/jack/internal/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive Jack REPL",
	Args:  cobra.NoArgs,
	RunE:  startRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func startRepl(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configFlag)
	if err != nil {
		return &exitCodeError{code: 1, err: fmt.Errorf("loading config: %w", err)}
	}
	if cmd.Flags().Changed("color") {
		cfg.Color = config.Color(colorFlag)
	}

	r := repl.New(cfg, Version)
	r.Start(os.Stdout)
	return nil
}
