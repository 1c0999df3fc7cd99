package compiler

import "fmt"

// TokenType identifies the category of a lexed token.
type TokenType int

const (
	EMPTY TokenType = iota // sentinel: no token matched / stream exhausted

	// Paired delimiters
	LPAREN // (
	RPAREN // )
	LBRACE // {
	RBRACE // }

	// Punctuation
	SEMICOLON // ;

	// Literals
	IDENTIFIER // function name
	CONSTANT   // decimal integer literal

	// Keywords
	INT    // "int"
	VOID   // "void"
	RETURN // "return"

	COMMENT // "// ..." or "/* ... */"
)

var tokenNames = [...]string{
	EMPTY:      "EMPTY",
	LPAREN:     "LPAREN",
	RPAREN:     "RPAREN",
	LBRACE:     "LBRACE",
	RBRACE:     "RBRACE",
	SEMICOLON:  "SEMICOLON",
	IDENTIFIER: "IDENTIFIER",
	CONSTANT:   "CONSTANT",
	INT:        "INT",
	VOID:       "VOID",
	RETURN:     "RETURN",
	COMMENT:    "COMMENT",
}

func (tt TokenType) String() string {
	if int(tt) >= 0 && int(tt) < len(tokenNames) {
		return tokenNames[tt]
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// IsKeyword reports whether tt is one of the reserved words.
func (tt TokenType) IsKeyword() bool {
	return tt == INT || tt == VOID || tt == RETURN
}

// Token is a single lexical unit produced by the Tokenizer.
type Token struct {
	Type  TokenType
	Value string // the exact source text that was matched
	Line  int    // 1-based source line
}

func (t Token) String() string {
	return fmt.Sprintf("%-10s %-14q  line %d", t.Type, t.Value, t.Line)
}
