// Package evaluator walks an ast.Program and produces runtime
// Values. Control flow (return/break/continue) is carried as a
// discriminated EvalOutcome rather than in-band sentinel Values, so
// no caller ever has to compare payload contents to detect a
// transfer.
package evaluator

import "github.com/zen-lang/zen/internal/value"

// OutcomeKind discriminates what an evaluation step produced beyond a
// plain Value.
type OutcomeKind int

const (
	// OutcomeValue is normal completion carrying a result Value.
	OutcomeValue OutcomeKind = iota
	// OutcomeReturning carries a `return` payload up to the enclosing
	// function call.
	OutcomeReturning
	// OutcomeBreaking unwinds to the innermost while/for.
	OutcomeBreaking
	// OutcomeContinuing restarts the innermost while/for's next iteration.
	OutcomeContinuing
)

// EvalOutcome is what evaluating a statement produces.
// Value is always populated (even for Breaking/Continuing, as Null)
// so callers that don't care about control flow can read it directly.
type EvalOutcome struct {
	Kind  OutcomeKind
	Value value.Value
}

func valueOutcome(v value.Value) EvalOutcome {
	return EvalOutcome{Kind: OutcomeValue, Value: v}
}

func returningOutcome(v value.Value) EvalOutcome {
	return EvalOutcome{Kind: OutcomeReturning, Value: v}
}

var breakingOutcome = EvalOutcome{Kind: OutcomeBreaking, Value: value.NullValue}
var continuingOutcome = EvalOutcome{Kind: OutcomeContinuing, Value: value.NullValue}

// IsValue reports whether o is a plain value outcome (no pending
// control-flow transfer).
func (o EvalOutcome) IsValue() bool { return o.Kind == OutcomeValue }

// isErrorValue reports whether o's Value is an Error, used to decide
// whether a child outcome should short-circuit propagation.
func isErrorValue(o EvalOutcome) bool {
	return value.IsError(o.Value)
}
