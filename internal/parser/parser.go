// Package parser implements a recursive-descent parser over the
// lexer's token stream, producing an AST Program plus an accumulated
// error list. Parsing is error-recovering: a syntax error is recorded
// and the parser advances to the next statement boundary rather than
// aborting.
package parser

import (
	"fmt"

	"github.com/zen-lang/zen/internal/ast"
	"github.com/zen-lang/zen/internal/errors"
	"github.com/zen-lang/zen/internal/lexer"
)

// Parser consumes a Lexer and produces an ast.Program.
type Parser struct {
	l    *lexer.Lexer
	file string

	curToken  lexer.Token
	peekToken lexer.Token

	errs []*errors.SourceError
}

// New creates a Parser reading from l. file is used only to annotate
// error messages (pass "" for inline/REPL input).
func New(l *lexer.Lexer, file string) *Parser {
	p := &Parser{l: l, file: file}
	// Prime curToken/peekToken.
	p.advance()
	p.advance()
	return p
}

// Errors returns every syntax error accumulated while parsing.
func (p *Parser) Errors() []*errors.SourceError { return p.errs }

func (p *Parser) errorf(pos lexer.Position, format string, args ...any) {
	// The lexer's buffer rides along so Format can quote the offending
	// line with a caret under the column.
	p.errs = append(p.errs, errors.New(pos, fmt.Sprintf(format, args...), p.l.Source(), p.file))
}

// ParseProgram parses the entire token stream into a Program. A
// syntactically-correct program with zero statements is valid.
func (p *Parser) ParseProgram() *ast.Program {
	prog := &ast.Program{}
	for !p.curIs(lexer.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			prog.Statements = append(prog.Statements, stmt)
		} else {
			// A '}' with no open block: report it and step past it.
			p.errorf(p.curToken.Pos, "expected statement, got %s", p.curToken.Type)
			p.advance()
		}
		p.skipSemicolons()
	}
	// Collected here, after the loop above has driven the lexer to EOF
	// (every token read), so this sees every lexical error discovered
	// during the whole scan, not just the two primed by New() before
	// parsing started.
	for _, err := range p.l.Errors() {
		p.errorf(err.Pos, "%s", err.Message)
	}
	return prog
}

func (p *Parser) skipSemicolons() {
	for p.curIs(lexer.SEMICOLON) {
		p.advance()
	}
}

// synchronize advances past tokens until a plausible statement
// boundary is reached, so one syntax error does not cascade into the
// rest of the file being misparsed.
func (p *Parser) synchronize() {
	for !p.curIs(lexer.EOF) {
		switch p.curToken.Type {
		case lexer.SET, lexer.FUNCTION, lexer.IF, lexer.WHILE, lexer.FOR,
			lexer.RETURN, lexer.BREAK, lexer.CONTINUE, lexer.RBRACE, lexer.SEMICOLON:
			return
		}
		p.advance()
	}
}
