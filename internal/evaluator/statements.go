package evaluator

import (
	"github.com/zen-lang/zen/internal/ast"
	"github.com/zen-lang/zen/internal/scope"
	"github.com/zen-lang/zen/internal/value"
)

// evalStatement evaluates stmt against s, returning the outcome: a
// plain Value for ordinary completion, or a Returning/Breaking/
// Continuing outcome that the enclosing construct must intercept.
func (it *Interpreter) evalStatement(stmt ast.Statement, s *scope.Scope) EvalOutcome {
	switch st := stmt.(type) {
	case *ast.NoOp:
		return valueOutcome(value.NullValue)
	case *ast.VariableDefinition:
		return it.evalVariableDefinition(st, s)
	case *ast.Assignment:
		return it.evalAssignment(st, s)
	case *ast.ExpressionStatement:
		return valueOutcome(it.evalExpression(st.Expression, s))
	case *ast.FunctionDefinition:
		s.DefineFunction(st.Name.Value, st)
		return valueOutcome(value.NullValue)
	case *ast.If:
		return it.evalIf(st, s)
	case *ast.While:
		return it.evalWhile(st, s)
	case *ast.For:
		return it.evalFor(st, s)
	case *ast.Return:
		if st.Value == nil {
			return returningOutcome(value.NullValue)
		}
		return returningOutcome(it.evalExpression(st.Value, s))
	case *ast.Break:
		return breakingOutcome
	case *ast.Continue:
		return continuingOutcome
	case *ast.Compound:
		return it.evalBlock(st, s)
	default:
		return valueOutcome(value.NewError(value.ErrTypeMismatch, "cannot evaluate statement node"))
	}
}

// evalBlock runs every statement of block in s, the enclosing frame
// (if/while/for bodies do not get a fresh scope of their own),
// stopping early on any non-value outcome or on a statement
// whose result is an Error (which propagates unchanged rather than
// letting the rest of the block run). An empty block evaluates to
// Null.
func (it *Interpreter) evalBlock(block *ast.Compound, s *scope.Scope) EvalOutcome {
	out := valueOutcome(value.NullValue)
	for _, stmt := range block.Statements {
		out = it.evalStatement(stmt, s)
		if !out.IsValue() || isErrorValue(out) {
			return out
		}
	}
	return out
}

func (it *Interpreter) evalVariableDefinition(def *ast.VariableDefinition, s *scope.Scope) EvalOutcome {
	var v value.Value = value.NullValue
	if def.Initializer != nil {
		// Errors are first-class: a failing initializer still binds, so
		// user code can store and inspect the Error afterwards.
		v = it.evalExpression(def.Initializer, s)
	}
	s.Define(def.Name.Value, v)
	return valueOutcome(value.NullValue)
}

func (it *Interpreter) evalAssignment(a *ast.Assignment, s *scope.Scope) EvalOutcome {
	// An Error rhs is assigned like any other value; only a failure to
	// resolve the target itself aborts the statement.
	rhs := it.evalExpression(a.Value, s)

	switch target := a.Target.(type) {
	case *ast.Identifier:
		if !s.Assign(target.Value, rhs) {
			rhs.Release()
			return valueOutcome(value.NewError(value.ErrUndefinedSymbol, "undefined variable '"+target.Value+"'"))
		}
		return valueOutcome(value.NullValue)

	case *ast.Index:
		container := it.evalExpression(target.Container, s)
		if value.IsError(container) {
			rhs.Release()
			return valueOutcome(container)
		}
		idx := it.evalExpression(target.Index, s)
		if value.IsError(idx) {
			rhs.Release()
			container.Release()
			return valueOutcome(idx)
		}
		result := it.assignIndex(container, idx, rhs)
		container.Release()
		return valueOutcome(result)

	case *ast.MemberAccess:
		obj := it.evalExpression(target.Object, s)
		if value.IsError(obj) {
			rhs.Release()
			return valueOutcome(obj)
		}
		o, ok := obj.(*value.Object)
		if !ok {
			rhs.Release()
			obj.Release()
			return valueOutcome(value.NewError(value.ErrTypeMismatch, "cannot assign a member of a "+obj.Kind().TypeOf()))
		}
		o.Set(target.Name, rhs)
		obj.Release()
		return valueOutcome(value.NullValue)

	default:
		rhs.Release()
		return valueOutcome(value.NewError(value.ErrTypeMismatch, "invalid assignment target"))
	}
}

// assignIndex mutates container[idx] = rhs. The container must
// already exist; an out-of-bounds Array index is an Error, a missing
// Object key is created.
func (it *Interpreter) assignIndex(container, idx, rhs value.Value) value.Value {
	switch c := container.(type) {
	case *value.Array:
		n, ok := idx.(value.Number)
		if !ok {
			rhs.Release()
			return value.NewError(value.ErrTypeMismatch, "array index must be a number")
		}
		if !c.Set(int(n), rhs) {
			rhs.Release()
			return value.NewError(value.ErrBounds, "array index out of bounds")
		}
		return value.NullValue
	case *value.Object:
		c.Set(value.ToStringValue(idx), rhs)
		return value.NullValue
	default:
		rhs.Release()
		return value.NewError(value.ErrTypeMismatch, "cannot index-assign a "+container.Kind().TypeOf())
	}
}

func (it *Interpreter) evalIf(i *ast.If, s *scope.Scope) EvalOutcome {
	cond := it.evalExpression(i.Condition, s)
	if value.IsError(cond) {
		return valueOutcome(cond)
	}
	if cond.Truthy() {
		return it.evalBlock(i.Then, s)
	}
	if i.Else == nil {
		return valueOutcome(value.NullValue)
	}
	return it.evalStatement(i.Else, s)
}

func (it *Interpreter) evalWhile(w *ast.While, s *scope.Scope) EvalOutcome {
	for {
		cond := it.evalExpression(w.Condition, s)
		if value.IsError(cond) {
			return valueOutcome(cond)
		}
		if !cond.Truthy() {
			return valueOutcome(value.NullValue)
		}

		out := it.evalBlock(w.Body, s)
		switch out.Kind {
		case OutcomeBreaking:
			return valueOutcome(value.NullValue)
		case OutcomeContinuing:
			continue
		case OutcomeReturning:
			return out
		default:
			if isErrorValue(out) {
				return out
			}
		}
	}
}

func (it *Interpreter) evalFor(f *ast.For, s *scope.Scope) EvalOutcome {
	iter := it.evalExpression(f.Iterable, s)
	if value.IsError(iter) {
		return valueOutcome(iter)
	}
	defer iter.Release()

	switch c := iter.(type) {
	case *value.Array:
		for _, elem := range c.Elements() {
			s.Define(f.Variable.Value, elem.Retain())
			out := it.evalBlock(f.Body, s)
			switch out.Kind {
			case OutcomeBreaking:
				return valueOutcome(value.NullValue)
			case OutcomeContinuing:
				continue
			case OutcomeReturning:
				return out
			default:
				if isErrorValue(out) {
					return out
				}
			}
		}
	case value.Str:
		for i := 0; i < len(c); i++ {
			s.Define(f.Variable.Value, value.NewString(string(c[i])))
			out := it.evalBlock(f.Body, s)
			switch out.Kind {
			case OutcomeBreaking:
				return valueOutcome(value.NullValue)
			case OutcomeContinuing:
				continue
			case OutcomeReturning:
				return out
			default:
				if isErrorValue(out) {
					return out
				}
			}
		}
	case *value.Object:
		for _, key := range c.Keys() {
			s.Define(f.Variable.Value, value.NewString(key))
			out := it.evalBlock(f.Body, s)
			switch out.Kind {
			case OutcomeBreaking:
				return valueOutcome(value.NullValue)
			case OutcomeContinuing:
				continue
			case OutcomeReturning:
				return out
			default:
				if isErrorValue(out) {
					return out
				}
			}
		}
	default:
		return valueOutcome(value.NewError(value.ErrTypeMismatch, "cannot iterate a "+iter.Kind().TypeOf()))
	}
	return valueOutcome(value.NullValue)
}
