package parser

import "github.com/zen-lang/zen/internal/lexer"

// advance discards curToken and pulls the next token from the lexer
// into curToken/peekToken.
func (p *Parser) advance() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) curIs(t lexer.TokenType) bool  { return p.curToken.Type == t }
func (p *Parser) peekIs(t lexer.TokenType) bool { return p.peekToken.Type == t }

// expect advances past peekToken if it matches t, else records a
// syntax error and leaves the cursor in place.
func (p *Parser) expect(t lexer.TokenType) bool {
	if p.peekIs(t) {
		p.advance()
		return true
	}
	p.errorf(p.peekToken.Pos, "expected %s, got %s", t, p.peekToken.Type)
	return false
}
