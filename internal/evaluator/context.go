package evaluator

import (
	"github.com/zen-lang/zen/internal/ast"
	"github.com/zen-lang/zen/internal/scope"
	"github.com/zen-lang/zen/internal/value"
)

// BuiltinRegistry is the lookup surface the evaluator consults for
// any callee that isn't a user function. builtins.Registry implements
// this; package evaluator never imports package builtins directly,
// avoiding a needless dependency between the two.
type BuiltinRegistry interface {
	Lookup(name string) (value.Builtin, bool)
	Count() int
}

// Interpreter holds the state one evaluation run shares: the global
// scope, which persists across REPL lines, and the builtin table.
type Interpreter struct {
	Global   *scope.Scope
	Builtins BuiltinRegistry
}

// New constructs an Interpreter with a fresh global scope.
func New(builtins BuiltinRegistry) *Interpreter {
	return &Interpreter{Global: scope.New(), Builtins: builtins}
}

// Run evaluates every top-level statement of prog against the global
// scope and returns the last statement's outcome (Null for an empty
// program). An Error result from any statement stops the run and
// becomes the program's result. Used by both the file driver and each
// REPL line.
func (it *Interpreter) Run(prog *ast.Program) EvalOutcome {
	out := valueOutcome(value.NullValue)
	for _, stmt := range prog.Statements {
		out = it.evalStatement(stmt, it.Global)
		if !out.IsValue() || isErrorValue(out) {
			return out
		}
	}
	return out
}
