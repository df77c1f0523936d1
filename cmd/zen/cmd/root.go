package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/zen-lang/zen/internal/loglevel"
)

var (
	// Version is set by build flags.
	Version = "0.1.0-dev"

	debugFlag   bool
	verboseFlag bool
	silentFlag  bool
	logFile     string
)

var rootCmd = &cobra.Command{
	Use:   "zen [file]",
	Short: "zen scripting language interpreter",
	Long: `zen is a small dynamically-typed scripting language.

Run with no arguments to start an interactive REPL, or pass a .zen/.zn
source file to execute it directly.`,
	Version: Version,
	Args:    cobra.MaximumNArgs(1),
	RunE:    runRoot,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "enable debug-level logging")
	rootCmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false, "enable info-level logging")
	rootCmd.PersistentFlags().BoolVar(&silentFlag, "silent", false, "disable all logging")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "redirect logs to a file")
}

// resolveLogger builds the logger the --debug/--verbose/--silent/
// --log-file flags select. The returned closer must be called before
// the process exits.
func resolveLogger() (*loglevel.Logger, func(), error) {
	level := loglevel.Silent
	switch {
	case silentFlag:
		level = loglevel.Silent
	case debugFlag:
		level = loglevel.Debug
	case verboseFlag:
		level = loglevel.Info
	}

	var w io.Writer = os.Stderr
	closer := func() {}
	if logFile != "" {
		f, err := os.Create(logFile)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file %s: %w", logFile, err)
		}
		w = f
		closer = func() { f.Close() }
	}

	return loglevel.New(level, w), closer, nil
}

func runRoot(_ *cobra.Command, args []string) error {
	logger, closer, err := resolveLogger()
	if err != nil {
		return err
	}
	defer closer()

	if len(args) == 0 {
		return runRepl(logger)
	}
	return runFile(args[0], logger)
}
