package compiler

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/sirupsen/logrus"
)

// lexicon lists every token type alongside the expression that recognises it.
// Order matters only for equal-length matches: the earlier entry wins.
var lexicon = [...]struct {
	Type TokenType
	Expr string
}{
	{LPAREN, `\(`},
	{RPAREN, `\)`},
	{LBRACE, `\{`},
	{RBRACE, `\}`},
	{SEMICOLON, `;`},
	{IDENTIFIER, `[a-zA-Z_]\w*\b`},
	{CONSTANT, `[0-9]+\b`},
	{INT, `int\b`},
	{RETURN, `return\b`},
	{VOID, `void\b`},
	{COMMENT, `//[^\n]*(?:\n|$)|/\*.*?\*/`},
}

// keywordPriority is the order in which an identifier match is re-tested
// against the keyword patterns.
var keywordPriority = [...]TokenType{RETURN, VOID, INT}

type pattern struct {
	ttype TokenType
	re    *regexp.Regexp
}

// Tokenizer turns source text into tokens using longest-match over a fixed
// table of anchored regular expressions. The table is built once per
// Tokenizer and never modified afterwards.
type Tokenizer struct {
	patterns []pattern
	keywords map[TokenType]*regexp.Regexp
	log      *logrus.Entry
}

// NewTokenizer compiles the pattern table. A nil logger falls back to the
// standard logrus logger.
func NewTokenizer(log *logrus.Entry) *Tokenizer {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	t := &Tokenizer{
		patterns: make([]pattern, 0, len(lexicon)),
		keywords: make(map[TokenType]*regexp.Regexp, len(keywordPriority)),
		log:      log.WithField("stage", "lex"),
	}
	for _, entry := range lexicon {
		re := regexp.MustCompile(`^(?:` + entry.Expr + `)`)
		t.patterns = append(t.patterns, pattern{ttype: entry.Type, re: re})
		if entry.Type.IsKeyword() {
			t.keywords[entry.Type] = re
		}
	}
	return t
}

// match finds the longest pattern match at the start of src. It returns a
// zero length when nothing matches.
func (t *Tokenizer) match(src string) (TokenType, int) {
	best, longest := EMPTY, 0
	for _, p := range t.patterns {
		loc := p.re.FindStringIndex(src)
		if loc == nil || loc[0] != 0 {
			continue
		}
		if n := loc[1]; n > longest {
			best, longest = p.ttype, n
		}
	}

	// The identifier pattern covers every keyword, so a winning identifier
	// is re-tested against the keywords before it is accepted.
	if best == IDENTIFIER {
		word := src[:longest]
		for _, kw := range keywordPriority {
			if m := t.keywords[kw].FindString(word); m != "" {
				return kw, len(m)
			}
		}
	}
	return best, longest
}

// Tokenize scans src from the front, emitting one token per longest match.
// The first position at which no pattern matches aborts the scan with
// ErrUnableToTokenize and no tokens are returned.
func (t *Tokenizer) Tokenize(src string) ([]Token, error) {
	var tokens []Token
	line := 1

	rest := strings.TrimRightFunc(src, unicode.IsSpace)
	for rest != "" {
		trimmed := strings.TrimLeftFunc(rest, unicode.IsSpace)
		line += strings.Count(rest[:len(rest)-len(trimmed)], "\n")
		rest = trimmed

		t.log.Debugf("remaining: %q", rest)

		ttype, n := t.match(rest)
		if n == 0 {
			return nil, ErrUnableToTokenize.New(unmatchedSpan(rest), line)
		}

		lexeme := rest[:n]
		tokens = append(tokens, Token{Type: ttype, Value: lexeme, Line: line})
		line += strings.Count(lexeme, "\n")
		rest = rest[n:]
	}

	if t.log.Logger.IsLevelEnabled(logrus.DebugLevel) {
		values := make([]string, len(tokens))
		for i, tok := range tokens {
			values[i] = tok.Value
		}
		t.log.Debugf("tokens: %s", strings.Join(values, ", "))
	}

	return tokens, nil
}

// unmatchedSpan returns the text from the start of src up to the next
// whitespace character.
func unmatchedSpan(src string) string {
	if i := strings.IndexFunc(src, unicode.IsSpace); i >= 0 {
		return src[:i]
	}
	return src
}

// StripComments returns tokens with every COMMENT token removed. The parser
// grammar has no place for comments, so this runs before ParseProgram.
func StripComments(tokens []Token) []Token {
	out := make([]Token, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Type != COMMENT {
			out = append(out, tok)
		}
	}
	return out
}

// Lex tokenises src with a fresh Tokenizer using the standard logger.
func Lex(src string) ([]Token, error) {
	return NewTokenizer(nil).Tokenize(src)
}
