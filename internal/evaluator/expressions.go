package evaluator

import (
	"github.com/zen-lang/zen/internal/ast"
	"github.com/zen-lang/zen/internal/scope"
	"github.com/zen-lang/zen/internal/value"
)

// evalExpression evaluates expr against s and always returns a plain
// Value (an Error variant on failure). Sentinel control-flow only
// escapes through evalStatement; a FunctionCall unwraps its callee's
// body outcome before returning here.
func (it *Interpreter) evalExpression(expr ast.Expression, s *scope.Scope) value.Value {
	switch e := expr.(type) {
	case *ast.NullLiteral:
		return value.NullValue
	case *ast.BooleanLiteral:
		return value.NewBoolean(e.Value)
	case *ast.NumberLiteral:
		return value.NewNumber(e.Value)
	case *ast.StringLiteral:
		return value.NewString(e.Value)
	case *ast.Identifier:
		return it.evalIdentifier(e, s)
	case *ast.ArrayLiteral:
		return it.evalArrayLiteral(e, s)
	case *ast.ObjectLiteral:
		return it.evalObjectLiteral(e, s)
	case *ast.Index:
		return it.evalIndexGet(e, s)
	case *ast.MemberAccess:
		return it.evalMemberGet(e, s)
	case *ast.BinaryOp:
		return it.evalBinaryOp(e, s)
	case *ast.UnaryOp:
		return it.evalUnaryOp(e, s)
	case *ast.Ternary:
		return it.evalTernary(e, s)
	case *ast.FunctionCall:
		return it.evalFunctionCall(e, s)
	default:
		return value.NewError(value.ErrTypeMismatch, "cannot evaluate expression node")
	}
}

// evalIdentifier looks up a variable, then a user function, which is
// wrapped into a Function Value closing over its defining frame.
func (it *Interpreter) evalIdentifier(id *ast.Identifier, s *scope.Scope) value.Value {
	if v, ok := s.Get(id.Value); ok {
		return v.Retain()
	}
	if def, home, ok := s.LookupFunction(id.Value); ok {
		// The closure captures the frame the definition lives in, not
		// the reference site, and that frame (plus its ancestors) must
		// survive its call's Pop.
		home.MarkCaptured()
		return value.NewFunction(def, home)
	}
	if _, ok := it.Builtins.Lookup(id.Value); ok {
		// Builtins are looked up by name at call time (evalFunctionCall);
		// referencing one bare is reported as undefined, since zen has
		// no Function Value wrapper for native code.
		return value.NewError(value.ErrUndefinedSymbol, "builtin '"+id.Value+"' must be called, not referenced")
	}
	return value.NewError(value.ErrUndefinedSymbol, "undefined variable '"+id.Value+"'")
}

func (it *Interpreter) evalArrayLiteral(a *ast.ArrayLiteral, s *scope.Scope) value.Value {
	elems := make([]value.Value, 0, len(a.Elements))
	for _, elemExpr := range a.Elements {
		v := it.evalExpression(elemExpr, s)
		if value.IsError(v) {
			for _, held := range elems {
				held.Release()
			}
			return v
		}
		elems = append(elems, v)
	}
	return value.NewArray(elems)
}

func (it *Interpreter) evalObjectLiteral(o *ast.ObjectLiteral, s *scope.Scope) value.Value {
	obj := value.NewObject()
	for _, pair := range o.Pairs {
		key := objectKey(pair.Key)
		v := it.evalExpression(pair.Value, s)
		if value.IsError(v) {
			obj.Release()
			return v
		}
		obj.Set(key, v)
	}
	return obj
}

// objectKey extracts the literal key text from an Identifier or
// StringLiteral key node (the only two the parser produces).
func objectKey(keyExpr ast.Expression) string {
	switch k := keyExpr.(type) {
	case *ast.Identifier:
		return k.Value
	case *ast.StringLiteral:
		return k.Value
	}
	return ""
}

func (it *Interpreter) evalIndexGet(ix *ast.Index, s *scope.Scope) value.Value {
	container := it.evalExpression(ix.Container, s)
	if value.IsError(container) {
		return container
	}
	idx := it.evalExpression(ix.Index, s)
	if value.IsError(idx) {
		return idx
	}

	switch c := container.(type) {
	case *value.Array:
		n, ok := idx.(value.Number)
		if !ok {
			return value.NewError(value.ErrTypeMismatch, "array index must be a number")
		}
		elem, ok := c.Get(int(n))
		if !ok {
			return value.NewError(value.ErrBounds, "array index out of bounds")
		}
		return elem.Retain()
	case *value.Object:
		key := value.ToStringValue(idx)
		v, ok := c.Get(key)
		if !ok {
			return value.NullValue
		}
		return v.Retain()
	case value.Str:
		n, ok := idx.(value.Number)
		if !ok {
			return value.NewError(value.ErrTypeMismatch, "string index must be a number")
		}
		i := int(n)
		if i < 0 || i >= len(c) {
			return value.NewError(value.ErrBounds, "string index out of bounds")
		}
		return value.NewString(string(c[i]))
	default:
		return value.NewError(value.ErrTypeMismatch, "cannot index a "+container.Kind().TypeOf())
	}
}

func (it *Interpreter) evalMemberGet(m *ast.MemberAccess, s *scope.Scope) value.Value {
	obj := it.evalExpression(m.Object, s)
	if value.IsError(obj) {
		return obj
	}
	o, ok := obj.(*value.Object)
	if !ok {
		return value.NewError(value.ErrTypeMismatch, "cannot access member of a "+obj.Kind().TypeOf())
	}
	v, ok := o.Get(m.Name)
	if !ok {
		return value.NullValue
	}
	return v.Retain()
}

func (it *Interpreter) evalBinaryOp(b *ast.BinaryOp, s *scope.Scope) value.Value {
	// and/or short-circuit and return the operand itself, not a
	// coerced Boolean.
	switch b.Operator {
	case "and":
		left := it.evalExpression(b.Left, s)
		if value.IsError(left) || !left.Truthy() {
			return left
		}
		return it.evalExpression(b.Right, s)
	case "or":
		left := it.evalExpression(b.Left, s)
		if value.IsError(left) || left.Truthy() {
			return left
		}
		return it.evalExpression(b.Right, s)
	}

	left := it.evalExpression(b.Left, s)
	right := it.evalExpression(b.Right, s)
	return evalBinary(b.Operator, left, right)
}

func (it *Interpreter) evalUnaryOp(u *ast.UnaryOp, s *scope.Scope) value.Value {
	operand := it.evalExpression(u.Operand, s)
	return evalUnary(u.Operator, operand)
}

func (it *Interpreter) evalTernary(t *ast.Ternary, s *scope.Scope) value.Value {
	cond := it.evalExpression(t.Condition, s)
	if value.IsError(cond) {
		return cond
	}
	if cond.Truthy() {
		return it.evalExpression(t.Then, s)
	}
	return it.evalExpression(t.Else, s)
}

func (it *Interpreter) evalFunctionCall(call *ast.FunctionCall, s *scope.Scope) value.Value {
	// Arguments evaluate strictly left-to-right. An Error argument is
	// passed along like any other first-class value; the registry
	// propagates it out of builtins that can't accept one, and display
	// builtins (print, type, toString) render it, which is how a stored
	// Error reaches the user.
	args := make([]value.Value, 0, len(call.Arguments))
	for _, argExpr := range call.Arguments {
		args = append(args, it.evalExpression(argExpr, s))
	}

	if ident, ok := call.Callee.(*ast.Identifier); ok {
		if def, home, ok := s.LookupFunction(ident.Value); ok {
			// The call frame's parent is the function's defining scope,
			// not the call site's, per lexical scoping.
			return it.callUserFunction(def, home, args)
		}
		if _, ok := s.Get(ident.Value); !ok {
			if fn, ok := it.Builtins.Lookup(ident.Value); ok {
				return fn(args)
			}
		}
	}

	callee := it.evalExpression(call.Callee, s)
	if value.IsError(callee) {
		return callee
	}
	fn, ok := callee.(*value.Function)
	if !ok {
		return value.NewError(value.ErrUndefinedSymbol, "undefined function")
	}
	return it.callUserFunction(fn.Def, fn.Scope, args)
}

// callUserFunction pushes a frame parented at definingScope (the
// closure's captured scope, not the caller's), binds parameters
// positionally, runs the body, and unwraps the Return-sentinel.
func (it *Interpreter) callUserFunction(def *value.FunctionDef, definingScope value.Environment, args []value.Value) value.Value {
	parent, ok := definingScope.(*scope.Scope)
	if !ok {
		return value.NewError(value.ErrTypeMismatch, "function has no valid captured scope")
	}
	frame := parent.Push()
	defer frame.Pop()

	for i, param := range def.Parameters {
		if i < len(args) {
			frame.Define(param.Value, args[i])
		} else {
			frame.Define(param.Value, value.NullValue)
		}
	}
	for i := len(def.Parameters); i < len(args); i++ {
		args[i].Release()
	}

	out := it.evalBlock(def.Body, frame)
	switch out.Kind {
	case OutcomeReturning:
		return out.Value
	case OutcomeBreaking, OutcomeContinuing:
		return value.NewError(value.ErrUser, "break/continue used outside a loop")
	default:
		// An Error result from the body propagates to the caller; any
		// other value falls off the end of the function as Null.
		if value.IsError(out.Value) {
			return out.Value
		}
		out.Value.Release()
		return value.NullValue
	}
}
