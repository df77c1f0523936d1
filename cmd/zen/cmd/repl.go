package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zen-lang/zen/internal/loglevel"
	"github.com/zen-lang/zen/internal/value"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive REPL",
	RunE: func(_ *cobra.Command, _ []string) error {
		logger, closer, err := resolveLogger()
		if err != nil {
			return err
		}
		defer closer()
		return runRepl(logger)
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}

const replMaxLineBytes = 1024

// runRepl runs the interactive loop: a persistent global scope
// across lines, intercepted meta-commands, and suppressed Null
// display for print-like results.
func runRepl(logger *loglevel.Logger) error {
	it := newInterpreter()
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, replMaxLineBytes), replMaxLineBytes)

	fmt.Print("zen> ")
	for scanner.Scan() {
		line := scanner.Text()

		switch line {
		case "exit", "quit":
			return nil
		case "clear":
			it = newInterpreter()
			fmt.Print("zen> ")
			continue
		case "help":
			printReplHelp()
			fmt.Print("zen> ")
			continue
		case "":
			fmt.Print("zen> ")
			continue
		}

		result, err := evalSource(it, line, "<repl>")
		if err != nil {
			fmt.Print("zen> ")
			continue
		}
		displayReplResult(result)
		fmt.Print("zen> ")
	}
	return scanner.Err()
}

func displayReplResult(v value.Value) {
	if v == nil || v.Kind() == value.KindNull {
		return
	}
	fmt.Println(value.ToStringValue(v))
}

func printReplHelp() {
	fmt.Println("Commands: exit, quit, clear, help")
}
