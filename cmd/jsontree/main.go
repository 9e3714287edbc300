// Command jsontree inspects, reformats, and minifies JSON documents.
//
// # Usage
//
//	jsontree fmt [flags] <file|->
//	jsontree minify <file|->
//	jsontree view <file>
//	jsontree version
//
// The fmt subcommand parses a document and re-renders it pretty-printed
// (default) or compact (-c). With --yaml the input is read as YAML and
// converted before rendering. The minify subcommand strips insignificant
// whitespace and // and /* */ comments without fully parsing. The view
// subcommand opens an interactive tree viewer in the terminal.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"go.jacobcolvin.com/jsontree"
	"go.jacobcolvin.com/jsontree/log"
	"go.jacobcolvin.com/jsontree/profile"
	"go.jacobcolvin.com/jsontree/version"
	"go.jacobcolvin.com/jsontree/yamltree"
)

var errNotATerminal = errors.New("view requires an interactive terminal")

func main() {
	logCfg := log.NewConfig()
	profCfg := profile.NewConfig()

	rootCmd := &cobra.Command{
		Use:           "jsontree",
		Short:         "Inspect, reformat, and minify JSON documents",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			handler, err := logCfg.NewHandler(os.Stderr)
			if err != nil {
				return err
			}

			slog.SetDefault(slog.New(handler))

			return nil
		},
	}

	logCfg.RegisterFlags(rootCmd.PersistentFlags())
	profCfg.RegisterFlags(rootCmd.PersistentFlags())

	completionErr := logCfg.RegisterCompletions(rootCmd)
	if completionErr != nil {
		fmt.Fprintf(os.Stderr, "register completions: %v\n", completionErr)
	}

	rootCmd.AddCommand(
		newFmtCmd(profCfg),
		newMinifyCmd(),
		newViewCmd(),
		newVersionCmd(),
	)

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func newFmtCmd(profCfg *profile.Config) *cobra.Command {
	var (
		compact  bool
		fromYAML bool
		output   string
	)

	cmd := &cobra.Command{
		Use:   "fmt [flags] <file|->",
		Short: "Parse a document and re-render it",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			data, err := readInput(args[0])
			if err != nil {
				return err
			}

			prof := profCfg.NewProfiler()
			if err := prof.Start(); err != nil {
				return err
			}

			start := time.Now()

			v, err := parseInput(data, fromYAML)
			if err != nil {
				return err
			}

			out := v.PrintBuffered(len(data), !compact)

			slog.Debug("rendered document",
				slog.Int("input_bytes", len(data)),
				slog.Int("output_bytes", len(out)),
				slog.Duration("elapsed", time.Since(start)),
			)

			if err := prof.Stop(); err != nil {
				return err
			}

			return writeOutput(output, append(out, '\n'))
		},
	}

	cmd.Flags().BoolVarP(&compact, "compact", "c", false,
		"render compact output instead of pretty-printing")
	cmd.Flags().BoolVar(&fromYAML, "yaml", false,
		"read the input as YAML and convert it")
	cmd.Flags().StringVarP(&output, "output", "o", "-",
		"output file path (- for stdout)")

	return cmd
}

func parseInput(data []byte, fromYAML bool) (*jsontree.Value, error) {
	if fromYAML {
		return yamltree.FromYAML(data)
	}

	v, _, err := jsontree.ParseWithOptions(data, jsontree.ParseOptions{
		RequireFullyConsumed: true,
	})

	return v, err
}

func newMinifyCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "minify <file|->",
		Short: "Strip whitespace and comments without reformatting",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			data, err := readInput(args[0])
			if err != nil {
				return err
			}

			return writeOutput(output, append(jsontree.Minify(data), '\n'))
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "-",
		"output file path (- for stdout)")

	return cmd
}

func newViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view <file>",
		Short: "Browse a document in an interactive tree viewer",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return errNotATerminal
			}

			data, err := readInput(args[0])
			if err != nil {
				return err
			}

			v, parseErr := jsontree.Parse(data)
			if parseErr != nil {
				return parseErr
			}

			return runViewer(v, args[0])
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Println(version.String())
		},
	}
}

func readInput(arg string) ([]byte, error) {
	if arg == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}

		return data, nil
	}

	data, err := os.ReadFile(arg)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	return data, nil
}

func writeOutput(path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := os.Stdout.Write(data)
		if err != nil {
			return fmt.Errorf("writing stdout: %w", err)
		}

		return nil
	}

	err := os.WriteFile(path, data, 0o644)
	if err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	return nil
}
