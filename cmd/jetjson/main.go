// Package main provides the jetjson CLI, a toolbox built on the jetjson
// engine: reformat JSON, convert YAML to JSON, validate documents against a
// JSON Schema, and browse documents interactively.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"go.jacobcolvin.com/jetjson/log"
	"go.jacobcolvin.com/jetjson/profile"
	"go.jacobcolvin.com/jetjson/version"
)

func main() {
	logCfg := log.NewConfig()
	profCfg := profile.NewConfig()
	profiler := profCfg.NewProfiler()

	rootCmd := &cobra.Command{
		Use:           "jetjson",
		Short:         "High-throughput JSON toolbox",
		Long:          "jetjson reformats, converts, validates, and browses JSON documents\nusing a zero-copy parser and an immediate-mode serializer.",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			handler, err := logCfg.NewHandler(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			slog.SetDefault(slog.New(handler))

			return profiler.Start()
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return profiler.Stop()
		},
	}

	logCfg.RegisterFlags(rootCmd.PersistentFlags())
	profCfg.RegisterFlags(rootCmd.PersistentFlags())

	completionErr := logCfg.RegisterCompletions(rootCmd)
	if completionErr == nil {
		completionErr = profCfg.RegisterCompletions(rootCmd)
	}

	if completionErr != nil {
		fmt.Fprintf(os.Stderr, "register completions: %v\n", completionErr)
	}

	rootCmd.AddCommand(
		newFmtCmd(),
		newConvertCmd(),
		newCheckCmd(),
		newViewCmd(),
		newVersionCmd(),
	)

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}

// readInput reads the document from the named file, or from stdin when arg
// is empty or "-". An interactive terminal is refused as stdin so a bare
// invocation fails fast instead of hanging.
func readInput(args []string) ([]byte, error) {
	if len(args) == 1 && args[0] != "-" {
		data, err := os.ReadFile(args[0]) //nolint:gosec // Input path from CLI argument is expected.
		if err != nil {
			return nil, fmt.Errorf("reading input: %w", err)
		}

		return data, nil
	}

	if term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, fmt.Errorf("no input file given and stdin is a terminal")
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}

	return data, nil
}
