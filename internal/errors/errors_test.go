package errors

import (
	"strings"
	"testing"

	"github.com/zen-lang/zen/internal/lexer"
)

func TestFormatIncludesSourceLineAndCaret(t *testing.T) {
	src := "set x = 1\nset = 2\nset y = 3"
	e := New(lexer.Position{Line: 2, Column: 5}, "expected IDENT, got =", src, "demo.zen")

	out := e.Format()
	if !strings.Contains(out, "demo.zen:2:5") {
		t.Errorf("missing file:line:col header in %q", out)
	}
	if !strings.Contains(out, "set = 2") {
		t.Errorf("missing offending source line in %q", out)
	}
	if !strings.Contains(out, "^") {
		t.Errorf("missing caret in %q", out)
	}
	if !strings.Contains(out, "expected IDENT") {
		t.Errorf("missing message in %q", out)
	}
}

func TestFormatWithoutSourceOmitsSnippet(t *testing.T) {
	e := New(lexer.Position{Line: 1, Column: 1}, "boom", "", "")
	out := e.Format()
	if strings.Contains(out, "|") {
		t.Errorf("expected no source snippet without source text, got %q", out)
	}
	if !strings.Contains(out, "line 1:1") {
		t.Errorf("missing positional header in %q", out)
	}
}

func TestFormatAllNumbersMultipleErrors(t *testing.T) {
	errs := []*SourceError{
		New(lexer.Position{Line: 1, Column: 1}, "first", "", ""),
		New(lexer.Position{Line: 2, Column: 1}, "second", "", ""),
	}
	out := FormatAll(errs)
	if !strings.Contains(out, "2 error(s)") {
		t.Errorf("missing error count in %q", out)
	}
	if !strings.Contains(out, "[Error 1 of 2]") || !strings.Contains(out, "[Error 2 of 2]") {
		t.Errorf("missing numbering in %q", out)
	}
}

func TestFormatAllEmptyAndSingle(t *testing.T) {
	if out := FormatAll(nil); out != "" {
		t.Errorf("FormatAll(nil) = %q, want empty", out)
	}
	single := []*SourceError{New(lexer.Position{Line: 1, Column: 1}, "only", "", "")}
	out := FormatAll(single)
	if strings.Contains(out, "[Error") {
		t.Errorf("single error should not be numbered: %q", out)
	}
}
