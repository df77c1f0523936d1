package parser

import (
	"github.com/zen-lang/zen/internal/ast"
	"github.com/zen-lang/zen/internal/lexer"
)

func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Type {
	case lexer.SET:
		return p.parseVarDef()
	case lexer.FUNCTION:
		return p.parseFunctionDefinition()
	case lexer.IF:
		return p.parseIf()
	case lexer.WHILE:
		return p.parseWhile()
	case lexer.FOR:
		return p.parseFor()
	case lexer.RETURN:
		return p.parseReturn()
	case lexer.BREAK:
		tok := p.curToken
		p.advance()
		return &ast.Break{Token: tok}
	case lexer.CONTINUE:
		tok := p.curToken
		p.advance()
		return &ast.Continue{Token: tok}
	case lexer.RBRACE:
		// Caller (parseBlock) handles this; never consumed here.
		return nil
	default:
		return p.parseAssignmentOrExpressionStatement()
	}
}

// parseVarDef parses `set ident ('=' expression)?`.
func (p *Parser) parseVarDef() ast.Statement {
	tok := p.curToken // 'set'
	if !p.expect(lexer.IDENT) {
		p.advance() // step off 'set' itself, which synchronize would stop on
		p.synchronize()
		return &ast.NoOp{Token: tok}
	}
	name := &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}

	def := &ast.VariableDefinition{Token: tok, Name: name}
	if p.peekIs(lexer.ASSIGN) {
		p.advance() // consume '='
		p.advance() // move to start of expression
		def.Initializer = p.parseExpression()
	}
	p.advance() // leave curToken on the token after the statement, like a block-ending statement would
	return def
}

// parseAssignmentOrExpressionStatement parses `postfix '=' expression`
// when an assignable target is followed by '=', otherwise a bare
// expression statement.
func (p *Parser) parseAssignmentOrExpressionStatement() ast.Statement {
	tok := p.curToken
	expr := p.parseExpression()

	if p.peekIs(lexer.ASSIGN) {
		p.advance() // consume '='
		p.advance() // move to start of RHS expression
		value := p.parseExpression()
		p.advance() // leave curToken on the token after the statement
		return &ast.Assignment{Token: tok, Target: expr, Value: value}
	}

	p.advance() // leave curToken on the token after the statement
	return &ast.ExpressionStatement{Token: tok, Expression: expr}
}

// parseBlock parses `'{' statement* '}'`. Assumes curToken is '{' on
// entry and leaves curToken on the token after '}' on exit.
func (p *Parser) parseBlock() *ast.Compound {
	tok := p.curToken // '{'
	block := &ast.Compound{Token: tok}
	p.advance()

	for !p.curIs(lexer.RBRACE) && !p.curIs(lexer.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		} else if !p.curIs(lexer.RBRACE) {
			p.errorf(p.curToken.Pos, "expected statement, got %s", p.curToken.Type)
			p.synchronize()
		}
		p.skipSemicolons()
	}

	if !p.curIs(lexer.RBRACE) {
		p.errorf(p.curToken.Pos, "expected '}', got %s", p.curToken.Type)
	} else {
		p.advance() // leave on token after '}'; caller already saw '{' so advance now
	}
	return block
}

func (p *Parser) parseIf() ast.Statement {
	tok := p.curToken // 'if'
	p.advance()
	cond := p.parseExpression()

	if !p.peekIs(lexer.LBRACE) {
		p.errorf(p.peekToken.Pos, "expected '{', got %s", p.peekToken.Type)
		p.synchronize()
		return &ast.NoOp{Token: tok}
	}
	p.advance() // move to '{'
	then := p.parseBlock()

	ifStmt := &ast.If{Token: tok, Condition: cond, Then: then}

	if p.curIs(lexer.ELSE) {
		p.advance()
		switch p.curToken.Type {
		case lexer.IF:
			ifStmt.Else = p.parseIf()
		case lexer.LBRACE:
			ifStmt.Else = p.parseBlock()
		default:
			p.errorf(p.curToken.Pos, "expected '{' or 'if' after 'else', got %s", p.curToken.Type)
		}
	}
	return ifStmt
}

func (p *Parser) parseWhile() ast.Statement {
	tok := p.curToken // 'while'
	p.advance()
	cond := p.parseExpression()

	if !p.peekIs(lexer.LBRACE) {
		p.errorf(p.peekToken.Pos, "expected '{', got %s", p.peekToken.Type)
		p.synchronize()
		return &ast.NoOp{Token: tok}
	}
	p.advance()
	body := p.parseBlock()
	return &ast.While{Token: tok, Condition: cond, Body: body}
}

func (p *Parser) parseFor() ast.Statement {
	tok := p.curToken // 'for'
	if !p.expect(lexer.IDENT) {
		p.advance() // step off 'for' itself, which synchronize would stop on
		p.synchronize()
		return &ast.NoOp{Token: tok}
	}
	variable := &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}

	if !p.expect(lexer.IN) {
		p.synchronize()
		return &ast.NoOp{Token: tok}
	}
	p.advance() // move to start of iterable expression
	iterable := p.parseExpression()

	if !p.peekIs(lexer.LBRACE) {
		p.errorf(p.peekToken.Pos, "expected '{', got %s", p.peekToken.Type)
		p.synchronize()
		return &ast.NoOp{Token: tok}
	}
	p.advance()
	body := p.parseBlock()
	return &ast.For{Token: tok, Variable: variable, Iterable: iterable, Body: body}
}

func (p *Parser) parseFunctionDefinition() ast.Statement {
	tok := p.curToken // 'function'
	if !p.expect(lexer.IDENT) {
		p.advance() // step off 'function' itself, which synchronize would stop on
		p.synchronize()
		return &ast.NoOp{Token: tok}
	}
	name := &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}

	if !p.expect(lexer.LPAREN) {
		p.synchronize()
		return &ast.NoOp{Token: tok}
	}

	var params []*ast.Identifier
	if !p.peekIs(lexer.RPAREN) {
		p.advance()
		params = append(params, &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal})
		for p.peekIs(lexer.COMMA) {
			p.advance()
			p.advance()
			params = append(params, &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal})
		}
	}
	if !p.expect(lexer.RPAREN) {
		p.synchronize()
		return &ast.NoOp{Token: tok}
	}
	if !p.expect(lexer.LBRACE) {
		p.synchronize()
		return &ast.NoOp{Token: tok}
	}
	body := p.parseBlock()

	return &ast.FunctionDefinition{Token: tok, Name: name, Parameters: params, Body: body}
}

func (p *Parser) parseReturn() ast.Statement {
	tok := p.curToken // 'return'
	ret := &ast.Return{Token: tok}

	if p.startsExpression(p.peekToken.Type) {
		p.advance()
		ret.Value = p.parseExpression()
	}
	p.advance() // leave curToken on the token after the statement
	return ret
}

// startsExpression reports whether t can begin a primary expression,
// used to tell `return` (bare) apart from `return <expr>`.
func (p *Parser) startsExpression(t lexer.TokenType) bool {
	switch t {
	case lexer.INT, lexer.FLOAT, lexer.STRING, lexer.TRUE, lexer.FALSE, lexer.NULL,
		lexer.IDENT, lexer.LPAREN, lexer.LBRACK, lexer.LBRACE, lexer.MINUS, lexer.NOT:
		return true
	}
	return false
}
