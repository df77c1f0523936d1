package parser

import (
	"strconv"

	"github.com/zen-lang/zen/internal/ast"
	"github.com/zen-lang/zen/internal/lexer"
)

// parseExpression is the grammar's `expression := ternary` entry
// point. On entry curToken is the expression's first token; on return
// curToken is its last token.
func (p *Parser) parseExpression() ast.Expression {
	return p.parseTernary()
}

func (p *Parser) parseTernary() ast.Expression {
	cond := p.parseLogicalOr()
	if !p.peekIs(lexer.QUESTION) {
		return cond
	}
	tok := p.peekToken
	p.advance() // curToken = '?'
	p.advance() // move to then-expr
	thenExpr := p.parseExpression()
	if !p.expect(lexer.COLON) {
		return cond
	}
	p.advance() // move to else-expr
	elseExpr := p.parseExpression()
	return &ast.Ternary{Token: tok, Condition: cond, Then: thenExpr, Else: elseExpr}
}

func (p *Parser) parseLogicalOr() ast.Expression {
	left := p.parseLogicalAnd()
	for p.peekIs(lexer.OR) {
		tok := p.peekToken
		p.advance()
		p.advance()
		right := p.parseLogicalAnd()
		left = &ast.BinaryOp{Token: tok, Operator: "or", Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseLogicalAnd() ast.Expression {
	left := p.parseEquality()
	for p.peekIs(lexer.AND) {
		tok := p.peekToken
		p.advance()
		p.advance()
		right := p.parseEquality()
		left = &ast.BinaryOp{Token: tok, Operator: "and", Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseEquality() ast.Expression {
	left := p.parseComparison()
	for p.peekIs(lexer.EQ) || p.peekIs(lexer.NOT_EQ) {
		tok := p.peekToken
		p.advance()
		p.advance()
		right := p.parseComparison()
		left = &ast.BinaryOp{Token: tok, Operator: tok.Literal, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseComparison() ast.Expression {
	left := p.parseAdditive()
	for p.peekIs(lexer.LESS) || p.peekIs(lexer.LESS_EQ) || p.peekIs(lexer.GREATER) || p.peekIs(lexer.GREATER_EQ) {
		tok := p.peekToken
		p.advance()
		p.advance()
		right := p.parseAdditive()
		left = &ast.BinaryOp{Token: tok, Operator: tok.Literal, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseAdditive() ast.Expression {
	left := p.parseMultiplicative()
	for p.peekIs(lexer.PLUS) || p.peekIs(lexer.MINUS) {
		tok := p.peekToken
		p.advance()
		p.advance()
		right := p.parseMultiplicative()
		left = &ast.BinaryOp{Token: tok, Operator: tok.Literal, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseMultiplicative() ast.Expression {
	left := p.parseUnary()
	for p.peekIs(lexer.ASTERISK) || p.peekIs(lexer.SLASH) || p.peekIs(lexer.PERCENT) {
		tok := p.peekToken
		p.advance()
		p.advance()
		right := p.parseUnary()
		left = &ast.BinaryOp{Token: tok, Operator: tok.Literal, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseUnary() ast.Expression {
	if p.curIs(lexer.MINUS) || p.curIs(lexer.NOT) {
		tok := p.curToken
		p.advance() // move to operand
		operand := p.parseUnary()
		return &ast.UnaryOp{Token: tok, Operator: tok.Literal, Operand: operand}
	}
	return p.parsePostfix()
}

func (p *Parser) parsePostfix() ast.Expression {
	expr := p.parsePrimary()
	for {
		switch p.peekToken.Type {
		case lexer.LPAREN:
			p.advance()
			expr = p.parseCall(expr)
		case lexer.LBRACK:
			p.advance()
			expr = p.parseIndex(expr)
		case lexer.DOT:
			p.advance()
			expr = p.parseMember(expr)
		default:
			return expr
		}
	}
}

func (p *Parser) parseCall(callee ast.Expression) ast.Expression {
	tok := p.curToken // '('
	var args []ast.Expression
	if !p.peekIs(lexer.RPAREN) {
		p.advance()
		args = append(args, p.parseExpression())
		for p.peekIs(lexer.COMMA) {
			p.advance()
			p.advance()
			args = append(args, p.parseExpression())
		}
	}
	p.expect(lexer.RPAREN)
	return &ast.FunctionCall{Token: tok, Callee: callee, Arguments: args}
}

func (p *Parser) parseIndex(container ast.Expression) ast.Expression {
	tok := p.curToken // '['
	p.advance()
	idx := p.parseExpression()
	p.expect(lexer.RBRACK)
	return &ast.Index{Token: tok, Container: container, Index: idx}
}

func (p *Parser) parseMember(obj ast.Expression) ast.Expression {
	tok := p.curToken // '.'
	if !p.expect(lexer.IDENT) {
		return obj
	}
	return &ast.MemberAccess{Token: tok, Object: obj, Name: p.curToken.Literal}
}

func (p *Parser) parsePrimary() ast.Expression {
	switch p.curToken.Type {
	case lexer.INT:
		return p.parseIntLiteral()
	case lexer.FLOAT:
		return p.parseFloatLiteral()
	case lexer.STRING:
		return &ast.StringLiteral{Token: p.curToken, Value: p.curToken.Literal}
	case lexer.TRUE:
		return &ast.BooleanLiteral{Token: p.curToken, Value: true}
	case lexer.FALSE:
		return &ast.BooleanLiteral{Token: p.curToken, Value: false}
	case lexer.NULL:
		return &ast.NullLiteral{Token: p.curToken}
	case lexer.IDENT:
		return &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
	case lexer.LPAREN:
		p.advance() // move to inner expression
		expr := p.parseExpression()
		p.expect(lexer.RPAREN)
		return expr
	case lexer.LBRACK:
		return p.parseArrayLiteral()
	case lexer.LBRACE:
		return p.parseObjectLiteral()
	default:
		tok := p.curToken
		p.errorf(tok.Pos, "expected expression, got %s", tok.Type)
		return &ast.NullLiteral{Token: tok}
	}
}

func (p *Parser) parseIntLiteral() ast.Expression {
	tok := p.curToken
	// Base 0 accepts the 0x/0b forms the lexer produces. A plain
	// decimal with a leading zero ("09") fails base-0 parsing, so fall
	// back to decimal before reporting an error.
	n, err := strconv.ParseInt(tok.Literal, 0, 64)
	if err != nil {
		f, ferr := strconv.ParseFloat(tok.Literal, 64)
		if ferr != nil {
			p.errorf(tok.Pos, "invalid integer literal: %s", tok.Literal)
			return &ast.NumberLiteral{Token: tok, Value: 0}
		}
		return &ast.NumberLiteral{Token: tok, Value: f}
	}
	return &ast.NumberLiteral{Token: tok, Value: float64(n)}
}

func (p *Parser) parseFloatLiteral() ast.Expression {
	tok := p.curToken
	f, err := strconv.ParseFloat(tok.Literal, 64)
	if err != nil {
		p.errorf(tok.Pos, "invalid float literal: %s", tok.Literal)
		return &ast.NumberLiteral{Token: tok, Value: 0}
	}
	return &ast.NumberLiteral{Token: tok, Value: f}
}

func (p *Parser) parseArrayLiteral() ast.Expression {
	tok := p.curToken // '['
	arr := &ast.ArrayLiteral{Token: tok}
	if !p.peekIs(lexer.RBRACK) {
		p.advance()
		arr.Elements = append(arr.Elements, p.parseExpression())
		for p.peekIs(lexer.COMMA) {
			p.advance()
			p.advance()
			arr.Elements = append(arr.Elements, p.parseExpression())
		}
	}
	p.expect(lexer.RBRACK)
	return arr
}

func (p *Parser) parseObjectLiteral() ast.Expression {
	tok := p.curToken // '{'
	obj := &ast.ObjectLiteral{Token: tok}
	if !p.peekIs(lexer.RBRACE) {
		p.advance()
		pair, ok := p.parseObjectPair()
		if ok {
			obj.Pairs = append(obj.Pairs, pair)
		}
		for p.peekIs(lexer.COMMA) {
			p.advance()
			p.advance()
			pair, ok := p.parseObjectPair()
			if ok {
				obj.Pairs = append(obj.Pairs, pair)
			}
		}
	}
	p.expect(lexer.RBRACE)
	return obj
}

func (p *Parser) parseObjectPair() (ast.ObjectPair, bool) {
	var key ast.Expression
	switch p.curToken.Type {
	case lexer.STRING:
		key = &ast.StringLiteral{Token: p.curToken, Value: p.curToken.Literal}
	case lexer.IDENT:
		key = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
	default:
		p.errorf(p.curToken.Pos, "expected object key, got %s", p.curToken.Type)
		return ast.ObjectPair{}, false
	}
	if !p.expect(lexer.COLON) {
		return ast.ObjectPair{}, false
	}
	p.advance() // move to value
	value := p.parseExpression()
	return ast.ObjectPair{Key: key, Value: value}, true
}
