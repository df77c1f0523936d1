// Package errors formats syntax and runtime diagnostics with source
// context: a line/column header, the offending source line, and a
// caret pointing at the column.
package errors

import (
	"fmt"
	"strings"

	"github.com/zen-lang/zen/internal/lexer"
)

// SourceError is a single diagnostic tied to a source position.
type SourceError struct {
	Message string
	Source  string
	File    string
	Pos     lexer.Position
}

// New creates a SourceError.
func New(pos lexer.Position, message, source, file string) *SourceError {
	return &SourceError{Pos: pos, Message: message, Source: source, File: file}
}

func (e *SourceError) Error() string { return e.Format() }

// Format renders the error with a source line and caret indicator.
func (e *SourceError) Format() string {
	var sb strings.Builder

	if e.File != "" {
		fmt.Fprintf(&sb, "Error in %s:%d:%d\n", e.File, e.Pos.Line, e.Pos.Column)
	} else {
		fmt.Fprintf(&sb, "Error at line %d:%d\n", e.Pos.Line, e.Pos.Column)
	}

	if line := e.sourceLine(e.Pos.Line); line != "" {
		prefix := fmt.Sprintf("%4d | ", e.Pos.Line)
		sb.WriteString(prefix)
		sb.WriteString(line)
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat(" ", len(prefix)+e.Pos.Column-1))
		sb.WriteString("^\n")
	}

	sb.WriteString(e.Message)
	return sb.String()
}

func (e *SourceError) sourceLine(n int) string {
	if e.Source == "" {
		return ""
	}
	lines := strings.Split(e.Source, "\n")
	if n < 1 || n > len(lines) {
		return ""
	}
	return lines[n-1]
}

// FormatAll renders a batch of accumulated SourceErrors, numbering
// them when there is more than one.
func FormatAll(errs []*SourceError) string {
	if len(errs) == 0 {
		return ""
	}
	if len(errs) == 1 {
		return errs[0].Format()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "parsing failed with %d error(s):\n\n", len(errs))
	for i, e := range errs {
		fmt.Fprintf(&sb, "[Error %d of %d]\n", i+1, len(errs))
		sb.WriteString(e.Format())
		if i < len(errs)-1 {
			sb.WriteString("\n\n")
		}
	}
	return sb.String()
}
