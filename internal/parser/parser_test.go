package parser

import (
	"strings"
	"testing"

	"github.com/zen-lang/zen/internal/ast"
	"github.com/zen-lang/zen/internal/lexer"
)

func parseProgram(t *testing.T, input string) *ast.Program {
	t.Helper()
	l := lexer.New(input)
	p := New(l, "")
	prog := p.ParseProgram()
	if errs := p.Errors(); len(errs) != 0 {
		t.Fatalf("unexpected parse errors for %q: %v", input, errs)
	}
	return prog
}

func TestParseVarDef(t *testing.T) {
	prog := parseProgram(t, "set x = 1 + 2")
	if len(prog.Statements) != 1 {
		t.Fatalf("got %d statements, want 1", len(prog.Statements))
	}
	def, ok := prog.Statements[0].(*ast.VariableDefinition)
	if !ok {
		t.Fatalf("got %T, want *ast.VariableDefinition", prog.Statements[0])
	}
	if def.Name.Value != "x" {
		t.Errorf("Name = %q, want x", def.Name.Value)
	}
	bin, ok := def.Initializer.(*ast.BinaryOp)
	if !ok || bin.Operator != "+" {
		t.Fatalf("Initializer = %#v, want BinaryOp(+)", def.Initializer)
	}
}

func TestParseVarDefWithoutInitializer(t *testing.T) {
	prog := parseProgram(t, "set x")
	def := prog.Statements[0].(*ast.VariableDefinition)
	if def.Initializer != nil {
		t.Errorf("Initializer = %#v, want nil", def.Initializer)
	}
}

func TestOperatorPrecedence(t *testing.T) {
	prog := parseProgram(t, "1 + 2 * 3")
	stmt := prog.Statements[0].(*ast.ExpressionStatement)
	got := stmt.Expression.String()
	want := "(1 + (2 * 3))"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestAssignmentToIndexAndMemberTargets(t *testing.T) {
	prog := parseProgram(t, "a[0] = 1\nb.field = 2")
	if len(prog.Statements) != 2 {
		t.Fatalf("got %d statements, want 2", len(prog.Statements))
	}
	first := prog.Statements[0].(*ast.Assignment)
	if _, ok := first.Target.(*ast.Index); !ok {
		t.Fatalf("Target = %#v, want *ast.Index", first.Target)
	}
	second := prog.Statements[1].(*ast.Assignment)
	if _, ok := second.Target.(*ast.MemberAccess); !ok {
		t.Fatalf("Target = %#v, want *ast.MemberAccess", second.Target)
	}
}

func TestParseFunctionDefinitionAndCall(t *testing.T) {
	prog := parseProgram(t, "function sq(n) { return n * n } print(sq(9))")
	if len(prog.Statements) != 2 {
		t.Fatalf("got %d statements, want 2", len(prog.Statements))
	}
	fn, ok := prog.Statements[0].(*ast.FunctionDefinition)
	if !ok {
		t.Fatalf("got %T, want *ast.FunctionDefinition", prog.Statements[0])
	}
	if fn.Name.Value != "sq" || len(fn.Parameters) != 1 || fn.Parameters[0].Value != "n" {
		t.Errorf("unexpected function signature: %+v", fn)
	}
}

func TestParseIfElseChain(t *testing.T) {
	prog := parseProgram(t, "if a { x } else if b { y } else { z }")
	ifStmt := prog.Statements[0].(*ast.If)
	elseIf, ok := ifStmt.Else.(*ast.If)
	if !ok {
		t.Fatalf("Else = %#v, want nested *ast.If", ifStmt.Else)
	}
	if _, ok := elseIf.Else.(*ast.Compound); !ok {
		t.Fatalf("elseIf.Else = %#v, want *ast.Compound", elseIf.Else)
	}
}

func TestParseForIn(t *testing.T) {
	prog := parseProgram(t, "for x in a { print(x) }")
	forStmt, ok := prog.Statements[0].(*ast.For)
	if !ok {
		t.Fatalf("got %T, want *ast.For", prog.Statements[0])
	}
	if forStmt.Variable.Value != "x" {
		t.Errorf("Variable = %q, want x", forStmt.Variable.Value)
	}
}

func TestParseArrayAndObjectLiterals(t *testing.T) {
	prog := parseProgram(t, `set a = [1, 2, 3] set o = {"k": 1, x: 2}`)
	arrDef := prog.Statements[0].(*ast.VariableDefinition)
	arr := arrDef.Initializer.(*ast.ArrayLiteral)
	if len(arr.Elements) != 3 {
		t.Errorf("got %d elements, want 3", len(arr.Elements))
	}

	objDef := prog.Statements[1].(*ast.VariableDefinition)
	obj := objDef.Initializer.(*ast.ObjectLiteral)
	if len(obj.Pairs) != 2 {
		t.Errorf("got %d pairs, want 2", len(obj.Pairs))
	}
}

func TestParseIndexMemberTernary(t *testing.T) {
	prog := parseProgram(t, "a[0].b ? 1 : 2")
	stmt := prog.Statements[0].(*ast.ExpressionStatement)
	ternary, ok := stmt.Expression.(*ast.Ternary)
	if !ok {
		t.Fatalf("got %T, want *ast.Ternary", stmt.Expression)
	}
	member, ok := ternary.Condition.(*ast.MemberAccess)
	if !ok || member.Name != "b" {
		t.Fatalf("Condition = %#v, want MemberAccess(b)", ternary.Condition)
	}
	if _, ok := member.Object.(*ast.Index); !ok {
		t.Fatalf("member.Object = %#v, want *ast.Index", member.Object)
	}
}

func TestSyntaxErrorRecoveryContinuesParsing(t *testing.T) {
	l := lexer.New("set = 1\nset y = 2")
	p := New(l, "")
	prog := p.ParseProgram()

	if len(p.Errors()) == 0 {
		t.Fatal("expected at least one syntax error")
	}
	found := false
	for _, stmt := range prog.Statements {
		if def, ok := stmt.(*ast.VariableDefinition); ok && def.Name.Value == "y" {
			found = true
		}
	}
	if !found {
		t.Error("expected parser to recover and still parse 'set y = 2'")
	}
}

// TestLexicalErrorDeepInFileIsReported guards against a regression
// where Parser.Errors() only drained the lexer's error list once, at
// the very start of ParseProgram, before most of the file had even
// been scanned. A lexical error discovered many tokens in (not one of
// the two tokens New() primes before parsing starts) must still show
// up in Errors() once parsing finishes.
func TestLexicalErrorDeepInFileIsReported(t *testing.T) {
	src := `set a = 1
set b = 2
set c = 3
set bad = "unterminated`
	l := lexer.New(src)
	p := New(l, "")
	p.ParseProgram()

	if len(p.Errors()) == 0 {
		t.Fatal("expected the unterminated string literal to surface as a parse error")
	}
}

// TestSyntaxErrorFormatQuotesSourceLine checks that errors produced
// by real parsing carry the input buffer: Format must quote the
// offending line and point a caret at the column, not just print the
// message.
func TestSyntaxErrorFormatQuotesSourceLine(t *testing.T) {
	src := "set x = 1\nset = 2"
	l := lexer.New(src)
	p := New(l, "bad.zen")
	p.ParseProgram()

	errs := p.Errors()
	if len(errs) == 0 {
		t.Fatal("expected a syntax error for 'set = 2'")
	}
	out := errs[0].Format()
	if !strings.Contains(out, "bad.zen:2:") {
		t.Errorf("missing file:line header in %q", out)
	}
	if !strings.Contains(out, "set = 2") {
		t.Errorf("missing offending source line in %q", out)
	}
	if !strings.Contains(out, "^") {
		t.Errorf("missing caret in %q", out)
	}
}

func TestEmptyProgramIsValid(t *testing.T) {
	prog := parseProgram(t, "")
	if len(prog.Statements) != 0 {
		t.Errorf("got %d statements, want 0", len(prog.Statements))
	}
}

func TestMultipleBareStatementsWithoutSeparators(t *testing.T) {
	// Statements need no separator between them; each ends at its own
	// natural boundary.
	prog := parseProgram(t, "set x = 1 + 2 print(x)")
	if len(prog.Statements) != 2 {
		t.Fatalf("got %d statements, want 2: %#v", len(prog.Statements), prog.Statements)
	}
	if _, ok := prog.Statements[0].(*ast.VariableDefinition); !ok {
		t.Errorf("statement 0 = %T, want *ast.VariableDefinition", prog.Statements[0])
	}
	call, ok := prog.Statements[1].(*ast.ExpressionStatement)
	if !ok {
		t.Fatalf("statement 1 = %T, want *ast.ExpressionStatement", prog.Statements[1])
	}
	if _, ok := call.Expression.(*ast.FunctionCall); !ok {
		t.Errorf("statement 1 expression = %T, want *ast.FunctionCall", call.Expression)
	}
}

func TestThreeBareStatementsInARow(t *testing.T) {
	prog := parseProgram(t, `set a = [1, 2, 3] set o = {"k": 1, x: 2} print(a)`)
	if len(prog.Statements) != 3 {
		t.Fatalf("got %d statements, want 3: %#v", len(prog.Statements), prog.Statements)
	}
}

func TestAssignmentFollowedByAnotherStatement(t *testing.T) {
	prog := parseProgram(t, "set x = 1\nx = 2\nprint(x)")
	if len(prog.Statements) != 3 {
		t.Fatalf("got %d statements, want 3: %#v", len(prog.Statements), prog.Statements)
	}
	if _, ok := prog.Statements[1].(*ast.Assignment); !ok {
		t.Errorf("statement 1 = %T, want *ast.Assignment", prog.Statements[1])
	}
}

func TestReturnFollowedByAnotherStatementInBlock(t *testing.T) {
	prog := parseProgram(t, "function f() { return 1 } set y = f()")
	if len(prog.Statements) != 2 {
		t.Fatalf("got %d statements, want 2: %#v", len(prog.Statements), prog.Statements)
	}
	fn := prog.Statements[0].(*ast.FunctionDefinition)
	if len(fn.Body.Statements) != 1 {
		t.Fatalf("function body has %d statements, want 1", len(fn.Body.Statements))
	}
}

// TestPrintReparseRoundTrip checks print/re-parse composability: the
// String() rendering of a parsed program, parsed again, renders to the
// same text, so the printed form is structurally faithful.
func TestPrintReparseRoundTrip(t *testing.T) {
	sources := []string{
		"set x = 1 + 2 * 3",
		`function sq(n) { return n * n } print(sq(9))`,
		"if a < b { x = 1 } else { x = 2 }",
		"for x in [1, 2, 3] { print(x) }",
		`set o = {"k": 1, x: [true, false, null]}`,
		"while not done { continue }",
		"set t = a or b ? c[0].d : -e",
	}
	for _, src := range sources {
		first := parseProgram(t, src)
		printed := first.String()
		second := parseProgram(t, printed)
		if got := second.String(); got != printed {
			t.Errorf("round trip diverged for %q:\nfirst:  %q\nsecond: %q", src, printed, got)
		}
	}
}

func TestEmptyBlockIsValid(t *testing.T) {
	prog := parseProgram(t, "while true { }")
	w := prog.Statements[0].(*ast.While)
	if len(w.Body.Statements) != 0 {
		t.Errorf("got %d statements in body, want 0", len(w.Body.Statements))
	}
}
