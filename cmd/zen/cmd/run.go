package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/zen-lang/zen/internal/loglevel"
	"github.com/zen-lang/zen/internal/value"
)

var evalExpr string

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a zen file or inline expression",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		logger, closer, err := resolveLogger()
		if err != nil {
			return err
		}
		defer closer()

		if evalExpr != "" {
			return runInline(evalExpr, logger)
		}
		if len(args) != 1 {
			return fmt.Errorf("either provide a file path or use -e for inline code")
		}
		return runFile(args[0], logger)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading from a file")
}

// runFile validates filename's extension, reads it, and evaluates it
// to completion.
func runFile(filename string, logger *loglevel.Logger) error {
	ext := filepath.Ext(filename)
	if ext != ".zen" && ext != ".zn" {
		return fmt.Errorf("unknown file extension %q (expected .zen or .zn)", ext)
	}

	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	logger.Info("running %s", filename)
	it := newInterpreter()
	result, err := evalSource(it, string(content), filename)
	if err != nil {
		return err
	}
	if value.IsError(result) {
		fmt.Fprintf(os.Stderr, "Runtime error: %s\n", result.String())
		return fmt.Errorf("execution failed")
	}
	return nil
}

func runInline(src string, logger *loglevel.Logger) error {
	logger.Info("running inline source")
	it := newInterpreter()
	result, err := evalSource(it, src, "<eval>")
	if err != nil {
		return err
	}
	if value.IsError(result) {
		fmt.Fprintf(os.Stderr, "Runtime error: %s\n", result.String())
		return fmt.Errorf("execution failed")
	}
	return nil
}
