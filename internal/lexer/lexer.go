// Package lexer splits an expression into tokens.
//
// Tokens are maximal runs of characters that are not delimiters. The
// delimiters are whitespace, commas and parentheses; runs of delimiters
// collapse, so no token is ever empty. The lexer does not validate token
// text: it only classifies it (see token.Lookup) and leaves error reporting
// to the parser.
package lexer

import (
	"letcalc/internal/span"
	"letcalc/internal/token"
)

// Lexer tokenizes an expression into a sequence of tokens.
type Lexer struct {
	source string

	pos  int // current read position in source
	line int // current line (1-based)
	col  int // current column (1-based)
}

// New creates a new Lexer for the given expression.
func New(source string) *Lexer {
	return &Lexer{
		source: source,
		pos:    0,
		line:   1,
		col:    1,
	}
}

// Tokenize scans the entire input and returns all tokens. Empty,
// whitespace-only and delimiter-only input yields an empty slice.
func (l *Lexer) Tokenize() []token.Token {
	tokens := []token.Token{}
	for {
		l.skipDelimiters()
		if l.pos >= len(l.source) {
			return tokens
		}
		tokens = append(tokens, l.readToken())
	}
}

// End returns the position just past the last byte of input. Only
// meaningful after Tokenize.
func (l *Lexer) End() span.Position {
	return l.curPos()
}

// Tokenize is a shorthand for New(source).Tokenize().
func Tokenize(source string) []token.Token {
	return New(source).Tokenize()
}

// ---- internal helpers ----

// advance consumes the current character and returns it.
func (l *Lexer) advance() byte {
	ch := l.source[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return ch
}

// curPos returns the current position as a span.Position.
func (l *Lexer) curPos() span.Position {
	return span.Position{Offset: l.pos, Line: l.line, Column: l.col}
}

// makeSpan returns a span from start to current position.
func (l *Lexer) makeSpan(start span.Position) span.Span {
	return span.Span{Start: start, End: l.curPos()}
}

func (l *Lexer) skipDelimiters() {
	for l.pos < len(l.source) && isDelimiter(l.source[l.pos]) {
		l.advance()
	}
}

// readToken reads one maximal run of non-delimiter bytes.
func (l *Lexer) readToken() token.Token {
	start := l.curPos()
	for l.pos < len(l.source) && !isDelimiter(l.source[l.pos]) {
		l.advance()
	}
	lexeme := l.source[start.Offset:l.pos]
	return token.Token{Kind: token.Lookup(lexeme), Lexeme: lexeme, Span: l.makeSpan(start)}
}

// isDelimiter reports whether ch separates tokens: the whitespace class
// \s (space, \t, \n, \v, \f, \r), comma and parentheses.
func isDelimiter(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\v', '\f', '\r', ',', '(', ')':
		return true
	default:
		return false
	}
}
