package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zen-lang/zen/internal/errors"
	"github.com/zen-lang/zen/internal/lexer"
	"github.com/zen-lang/zen/internal/parser"
)

var parseEvalExpr string

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a zen file or expression and dump its AST",
	Args:  cobra.MaximumNArgs(1),
	RunE:  parseScript,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVarP(&parseEvalExpr, "eval", "e", "", "parse inline code instead of reading from a file")
}

func parseScript(_ *cobra.Command, args []string) error {
	input, err := readSource(parseEvalExpr, args)
	if err != nil {
		return err
	}
	filename := "<eval>"
	if parseEvalExpr == "" {
		filename = args[0]
	}

	l := lexer.New(input)
	p := parser.New(l, filename)
	prog := p.ParseProgram()

	if errs := p.Errors(); len(errs) > 0 {
		fmt.Fprintln(os.Stderr, errors.FormatAll(errs))
		return fmt.Errorf("parsing failed with %d error(s)", len(errs))
	}

	fmt.Println(prog.String())
	return nil
}
