package cmd

import (
	"fmt"
	"os"

	"github.com/zen-lang/zen/internal/builtins"
	"github.com/zen-lang/zen/internal/errors"
	"github.com/zen-lang/zen/internal/evaluator"
	"github.com/zen-lang/zen/internal/lexer"
	"github.com/zen-lang/zen/internal/parser"
	"github.com/zen-lang/zen/internal/value"
)

// newInterpreter wires a fresh Interpreter with the standard builtin
// registry, print writing to stdout.
func newInterpreter() *evaluator.Interpreter {
	registry := builtins.New(os.Stdout)
	return evaluator.New(registry)
}

// evalSource lexes, parses, and evaluates one chunk of source against
// its persistent global scope. Parse errors are formatted to stderr
// and reported as a single error; a runtime Error Value is returned
// as the result, not as a Go error (the caller decides how to display
// it).
func evalSource(it *evaluator.Interpreter, input, filename string) (value.Value, error) {
	l := lexer.New(input)
	p := parser.New(l, filename)
	prog := p.ParseProgram()

	if errs := p.Errors(); len(errs) > 0 {
		fmt.Fprintln(os.Stderr, errors.FormatAll(errs))
		return nil, fmt.Errorf("parsing failed with %d error(s)", len(errs))
	}

	out := it.Run(prog)
	return out.Value, nil
}
