package compiler

import "strconv"

// Parser consumes the token slice produced by the Tokenizer and builds an AST.
//
// Grammar:
//
//	program    = function EOF
//	function   = "int" identifier "(" "void" ")" "{" statement "}"
//	statement  = "return" expression ";"
//	expression = constant
//	identifier = IDENTIFIER
//	constant   = CONSTANT
//
// Tokens are consumed strictly left to right and never revisited. The first
// mismatch aborts the parse.
type Parser struct {
	tokens []Token
	pos    int
}

func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens}
}

// done reports whether every token has been consumed.
func (p *Parser) done() bool {
	return p.pos >= len(p.tokens)
}

// advance consumes and returns the current token, or an EMPTY token once the
// stream is exhausted.
func (p *Parser) advance() Token {
	if p.done() {
		return Token{Type: EMPTY}
	}
	tok := p.tokens[p.pos]
	p.pos++
	return tok
}

// expect consumes one token and fails unless it has type tt.
func (p *Parser) expect(tt TokenType) (Token, error) {
	tok := p.advance()
	if tok.Type != tt {
		return tok, &ParseError{Expected: tt, Got: tok.Type, Value: tok.Value, Line: tok.Line}
	}
	return tok, nil
}

// parseProgram handles program = function EOF
func (p *Parser) parseProgram() (*Program, error) {
	fn, err := p.parseFunction()
	if err != nil {
		return nil, err
	}
	if !p.done() {
		tok := p.advance()
		return nil, ErrTrailingInput.New(tok.Value, tok.Line)
	}
	return &Program{Function: fn}, nil
}

// parseFunction handles "int" identifier "(" "void" ")" "{" statement "}"
func (p *Parser) parseFunction() (*Function, error) {
	if _, err := p.expect(INT); err != nil {
		return nil, err
	}
	name, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	for _, tt := range []TokenType{LPAREN, VOID, RPAREN, LBRACE} {
		if _, err := p.expect(tt); err != nil {
			return nil, err
		}
	}
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(RBRACE); err != nil {
		return nil, err
	}
	return &Function{Name: name, Body: body}, nil
}

// parseStatement handles "return" expression ";"
func (p *Parser) parseStatement() (*Statement, error) {
	if _, err := p.expect(RETURN); err != nil {
		return nil, err
	}
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(SEMICOLON); err != nil {
		return nil, err
	}
	return &Statement{Expr: expr}, nil
}

func (p *Parser) parseExpression() (*Expression, error) {
	c, err := p.parseConstant()
	if err != nil {
		return nil, err
	}
	return &Expression{Value: c}, nil
}

func (p *Parser) parseIdentifier() (*Identifier, error) {
	tok, err := p.expect(IDENTIFIER)
	if err != nil {
		return nil, err
	}
	return &Identifier{Name: tok.Value}, nil
}

// parseConstant converts the lexeme to an int32. The lexer only admits
// digits, but values beyond the int32 range still reach this point.
func (p *Parser) parseConstant() (*Constant, error) {
	tok, err := p.expect(CONSTANT)
	if err != nil {
		return nil, err
	}
	v, err := strconv.ParseInt(tok.Value, 10, 32)
	if err != nil {
		return nil, ErrInvalidConstant.Wrap(err, tok.Value, tok.Line)
	}
	return &Constant{Value: int32(v)}, nil
}

// ParseProgram builds the AST for a complete translation unit. Comment
// tokens must already have been removed with StripComments.
func ParseProgram(tokens []Token) (*Program, error) {
	return NewParser(tokens).parseProgram()
}
