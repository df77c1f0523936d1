package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zen-lang/zen/internal/lexer"
)

var (
	lexEvalExpr string
	lexShowPos  bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a zen file or expression",
	Args:  cobra.MaximumNArgs(1),
	RunE:  lexScript,
}

func init() {
	rootCmd.AddCommand(lexCmd)
	lexCmd.Flags().StringVarP(&lexEvalExpr, "eval", "e", "", "tokenize inline code instead of reading from a file")
	lexCmd.Flags().BoolVar(&lexShowPos, "show-pos", false, "show token positions (line:column)")
}

func lexScript(_ *cobra.Command, args []string) error {
	input, err := readSource(lexEvalExpr, args)
	if err != nil {
		return err
	}

	l := lexer.New(input)
	for {
		tok := l.NextToken()
		printToken(tok)
		if tok.Type == lexer.EOF {
			break
		}
	}
	return nil
}

func printToken(tok lexer.Token) {
	out := fmt.Sprintf("[%-10s] %q", tok.Type, tok.Literal)
	if lexShowPos {
		out += fmt.Sprintf(" @%d:%d", tok.Pos.Line, tok.Pos.Column)
	}
	fmt.Println(out)
}

// readSource resolves input from -e or a single positional file arg.
func readSource(inline string, args []string) (string, error) {
	if inline != "" {
		return inline, nil
	}
	if len(args) != 1 {
		return "", fmt.Errorf("either provide a file path or use -e for inline code")
	}
	content, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("failed to read file %s: %w", args[0], err)
	}
	return string(content), nil
}
