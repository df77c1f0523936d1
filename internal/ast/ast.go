// Package ast defines the Abstract Syntax Tree node types produced by
// the parser. The root Program exclusively owns its subtree; no other
// component frees or mutates AST nodes.
package ast

import (
	"bytes"
	"strings"

	"github.com/zen-lang/zen/internal/lexer"
)

// Node is the base interface every AST node implements.
type Node interface {
	TokenLiteral() string
	String() string
	Pos() lexer.Position
}

// Expression is any node that produces a Value when evaluated.
type Expression interface {
	Node
	expressionNode()
}

// Statement is any node that performs an action without itself
// producing a Value.
type Statement interface {
	Node
	statementNode()
}

// Program is the root of the AST: an ordered statement list (the
// grammar's "Compound").
type Program struct {
	Statements []Statement
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

func (p *Program) String() string {
	var out bytes.Buffer
	for _, s := range p.Statements {
		out.WriteString(s.String())
		out.WriteString("\n")
	}
	return out.String()
}

func (p *Program) Pos() lexer.Position {
	if len(p.Statements) > 0 {
		return p.Statements[0].Pos()
	}
	return lexer.Position{Line: 1, Column: 1}
}

// NoOp is produced by the parser in place of a statement it could not
// parse, so synchronization can continue without a nil node.
type NoOp struct {
	Token lexer.Token
}

func (n *NoOp) statementNode()            {}
func (n *NoOp) TokenLiteral() string      { return n.Token.Literal }
func (n *NoOp) String() string            { return "" }
func (n *NoOp) Pos() lexer.Position       { return n.Token.Pos }

// Identifier is a variable/function reference.
type Identifier struct {
	Token lexer.Token
	Value string
}

func (i *Identifier) expressionNode()       {}
func (i *Identifier) TokenLiteral() string  { return i.Token.Literal }
func (i *Identifier) String() string        { return i.Value }
func (i *Identifier) Pos() lexer.Position   { return i.Token.Pos }

// NullLiteral is the `null` literal.
type NullLiteral struct{ Token lexer.Token }

func (n *NullLiteral) expressionNode()      {}
func (n *NullLiteral) TokenLiteral() string { return n.Token.Literal }
func (n *NullLiteral) String() string       { return "null" }
func (n *NullLiteral) Pos() lexer.Position  { return n.Token.Pos }

// BooleanLiteral is `true`/`false`.
type BooleanLiteral struct {
	Token lexer.Token
	Value bool
}

func (b *BooleanLiteral) expressionNode()      {}
func (b *BooleanLiteral) TokenLiteral() string { return b.Token.Literal }
func (b *BooleanLiteral) String() string       { return b.Token.Literal }
func (b *BooleanLiteral) Pos() lexer.Position  { return b.Token.Pos }

// NumberLiteral is an integer or float literal; both collapse to the
// single Number variant at the value layer, so the AST stores the
// parsed float64 directly.
type NumberLiteral struct {
	Token lexer.Token
	Value float64
}

func (n *NumberLiteral) expressionNode()      {}
func (n *NumberLiteral) TokenLiteral() string { return n.Token.Literal }
func (n *NumberLiteral) String() string       { return n.Token.Literal }
func (n *NumberLiteral) Pos() lexer.Position  { return n.Token.Pos }

// StringLiteral is a double-quoted string literal with escapes
// already decoded by the lexer.
type StringLiteral struct {
	Token lexer.Token
	Value string
}

func (s *StringLiteral) expressionNode()      {}
func (s *StringLiteral) TokenLiteral() string { return s.Token.Literal }
func (s *StringLiteral) String() string       { return "\"" + s.Value + "\"" }
func (s *StringLiteral) Pos() lexer.Position  { return s.Token.Pos }

// ArrayLiteral is `[e1, e2, ...]`.
type ArrayLiteral struct {
	Token    lexer.Token // '['
	Elements []Expression
}

func (a *ArrayLiteral) expressionNode()      {}
func (a *ArrayLiteral) TokenLiteral() string { return a.Token.Literal }
func (a *ArrayLiteral) Pos() lexer.Position  { return a.Token.Pos }
func (a *ArrayLiteral) String() string {
	parts := make([]string, len(a.Elements))
	for i, e := range a.Elements {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// ObjectPair is one `key: value` pair inside an ObjectLiteral.
type ObjectPair struct {
	Key   Expression // Identifier or StringLiteral
	Value Expression
}

// ObjectLiteral is `{k1: v1, k2: v2, ...}`.
type ObjectLiteral struct {
	Token lexer.Token // '{'
	Pairs []ObjectPair
}

func (o *ObjectLiteral) expressionNode()      {}
func (o *ObjectLiteral) TokenLiteral() string { return o.Token.Literal }
func (o *ObjectLiteral) Pos() lexer.Position  { return o.Token.Pos }
func (o *ObjectLiteral) String() string {
	parts := make([]string, len(o.Pairs))
	for i, p := range o.Pairs {
		parts[i] = p.Key.String() + ": " + p.Value.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Index is `container[indexExpr]`.
type Index struct {
	Token     lexer.Token // '['
	Container Expression
	Index     Expression
}

func (ix *Index) expressionNode()      {}
func (ix *Index) TokenLiteral() string { return ix.Token.Literal }
func (ix *Index) Pos() lexer.Position  { return ix.Token.Pos }
func (ix *Index) String() string       { return ix.Container.String() + "[" + ix.Index.String() + "]" }

// MemberAccess is `object.name`.
type MemberAccess struct {
	Token  lexer.Token // '.'
	Object Expression
	Name   string
}

func (m *MemberAccess) expressionNode()      {}
func (m *MemberAccess) TokenLiteral() string { return m.Token.Literal }
func (m *MemberAccess) Pos() lexer.Position  { return m.Token.Pos }
func (m *MemberAccess) String() string       { return m.Object.String() + "." + m.Name }

// BinaryOp is `left OP right`.
type BinaryOp struct {
	Token    lexer.Token
	Operator string
	Left     Expression
	Right    Expression
}

func (b *BinaryOp) expressionNode()      {}
func (b *BinaryOp) TokenLiteral() string { return b.Token.Literal }
func (b *BinaryOp) Pos() lexer.Position  { return b.Token.Pos }
func (b *BinaryOp) String() string {
	return "(" + b.Left.String() + " " + b.Operator + " " + b.Right.String() + ")"
}

// UnaryOp is `OP operand`.
type UnaryOp struct {
	Token    lexer.Token
	Operator string
	Operand  Expression
}

func (u *UnaryOp) expressionNode()      {}
func (u *UnaryOp) TokenLiteral() string { return u.Token.Literal }
func (u *UnaryOp) Pos() lexer.Position  { return u.Token.Pos }
func (u *UnaryOp) String() string {
	// Word operators need a separator so the printed form re-lexes as
	// two tokens ("not done", not "notdone").
	if u.Operator == "not" {
		return "(" + u.Operator + " " + u.Operand.String() + ")"
	}
	return "(" + u.Operator + u.Operand.String() + ")"
}

// Ternary is `cond ? then : else`.
type Ternary struct {
	Token     lexer.Token // '?'
	Condition Expression
	Then      Expression
	Else      Expression
}

func (t *Ternary) expressionNode()      {}
func (t *Ternary) TokenLiteral() string { return t.Token.Literal }
func (t *Ternary) Pos() lexer.Position  { return t.Token.Pos }
func (t *Ternary) String() string {
	return "(" + t.Condition.String() + " ? " + t.Then.String() + " : " + t.Else.String() + ")"
}

// FunctionCall is `callee(args...)`. Callee is either an Identifier
// naming a user function/builtin, or an arbitrary expression
// evaluating to a Function Value.
type FunctionCall struct {
	Token     lexer.Token // '('
	Callee    Expression
	Arguments []Expression
}

func (f *FunctionCall) expressionNode()      {}
func (f *FunctionCall) TokenLiteral() string { return f.Token.Literal }
func (f *FunctionCall) Pos() lexer.Position  { return f.Token.Pos }
func (f *FunctionCall) String() string {
	parts := make([]string, len(f.Arguments))
	for i, a := range f.Arguments {
		parts[i] = a.String()
	}
	return f.Callee.String() + "(" + strings.Join(parts, ", ") + ")"
}

// Compound is a `{ statement* }` block.
type Compound struct {
	Token      lexer.Token // '{'
	Statements []Statement
}

func (c *Compound) statementNode()      {}
func (c *Compound) TokenLiteral() string { return c.Token.Literal }
func (c *Compound) Pos() lexer.Position  { return c.Token.Pos }
func (c *Compound) String() string {
	var out bytes.Buffer
	out.WriteString("{ ")
	for _, s := range c.Statements {
		out.WriteString(s.String())
		out.WriteString(" ")
	}
	out.WriteString("}")
	return out.String()
}

// VariableDefinition is `set name = initializer` (initializer
// optional).
type VariableDefinition struct {
	Token       lexer.Token // 'set'
	Name        *Identifier
	Initializer Expression // nil if absent
}

func (v *VariableDefinition) statementNode()      {}
func (v *VariableDefinition) TokenLiteral() string { return v.Token.Literal }
func (v *VariableDefinition) Pos() lexer.Position  { return v.Token.Pos }
func (v *VariableDefinition) String() string {
	if v.Initializer == nil {
		return "set " + v.Name.String()
	}
	return "set " + v.Name.String() + " = " + v.Initializer.String()
}

// Assignment is `target = value`, where target is an Identifier,
// Index, or MemberAccess expression.
type Assignment struct {
	Token  lexer.Token // '='
	Target Expression
	Value  Expression
}

func (a *Assignment) statementNode()      {}
func (a *Assignment) TokenLiteral() string { return a.Token.Literal }
func (a *Assignment) Pos() lexer.Position  { return a.Token.Pos }
func (a *Assignment) String() string       { return a.Target.String() + " = " + a.Value.String() }

// ExpressionStatement wraps an expression evaluated for its side
// effect (e.g. a bare function call).
type ExpressionStatement struct {
	Token      lexer.Token
	Expression Expression
}

func (e *ExpressionStatement) statementNode()      {}
func (e *ExpressionStatement) TokenLiteral() string { return e.Token.Literal }
func (e *ExpressionStatement) Pos() lexer.Position  { return e.Token.Pos }
func (e *ExpressionStatement) String() string {
	if e.Expression == nil {
		return ""
	}
	return e.Expression.String()
}

// FunctionDefinition is `function name(params) { body }`.
type FunctionDefinition struct {
	Token      lexer.Token // 'function'
	Name       *Identifier
	Parameters []*Identifier
	Body       *Compound
}

func (f *FunctionDefinition) statementNode()      {}
func (f *FunctionDefinition) TokenLiteral() string { return f.Token.Literal }
func (f *FunctionDefinition) Pos() lexer.Position  { return f.Token.Pos }
func (f *FunctionDefinition) String() string {
	parts := make([]string, len(f.Parameters))
	for i, p := range f.Parameters {
		parts[i] = p.String()
	}
	return "function " + f.Name.String() + "(" + strings.Join(parts, ", ") + ") " + f.Body.String()
}

// If is `if cond thenBlock (else (If|block))?`.
type If struct {
	Token     lexer.Token // 'if'
	Condition Expression
	Then      *Compound
	Else      Statement // *Compound or *If, nil if absent
}

func (i *If) statementNode()      {}
func (i *If) TokenLiteral() string { return i.Token.Literal }
func (i *If) Pos() lexer.Position  { return i.Token.Pos }
func (i *If) String() string {
	s := "if " + i.Condition.String() + " " + i.Then.String()
	if i.Else != nil {
		s += " else " + i.Else.String()
	}
	return s
}

// While is `while cond { body }`.
type While struct {
	Token     lexer.Token // 'while'
	Condition Expression
	Body      *Compound
}

func (w *While) statementNode()      {}
func (w *While) TokenLiteral() string { return w.Token.Literal }
func (w *While) Pos() lexer.Position  { return w.Token.Pos }
func (w *While) String() string       { return "while " + w.Condition.String() + " " + w.Body.String() }

// For is `for ident in iterExpr { body }`.
type For struct {
	Token    lexer.Token // 'for'
	Variable *Identifier
	Iterable Expression
	Body     *Compound
}

func (f *For) statementNode()      {}
func (f *For) TokenLiteral() string { return f.Token.Literal }
func (f *For) Pos() lexer.Position  { return f.Token.Pos }
func (f *For) String() string {
	return "for " + f.Variable.String() + " in " + f.Iterable.String() + " " + f.Body.String()
}

// Return is `return expr?`.
type Return struct {
	Token lexer.Token
	Value Expression // nil if bare `return`
}

func (r *Return) statementNode()      {}
func (r *Return) TokenLiteral() string { return r.Token.Literal }
func (r *Return) Pos() lexer.Position  { return r.Token.Pos }
func (r *Return) String() string {
	if r.Value == nil {
		return "return"
	}
	return "return " + r.Value.String()
}

// Break is `break`.
type Break struct{ Token lexer.Token }

func (b *Break) statementNode()      {}
func (b *Break) TokenLiteral() string { return b.Token.Literal }
func (b *Break) Pos() lexer.Position  { return b.Token.Pos }
func (b *Break) String() string       { return "break" }

// Continue is `continue`.
type Continue struct{ Token lexer.Token }

func (c *Continue) statementNode()      {}
func (c *Continue) TokenLiteral() string { return c.Token.Literal }
func (c *Continue) Pos() lexer.Position  { return c.Token.Pos }
func (c *Continue) String() string       { return "continue" }
