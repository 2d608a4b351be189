// Package token defines the tokens produced by the lexer and the rules used
// to classify their text.
package token

import (
	"fmt"
	"letcalc/internal/span"
	"strconv"
)

// Kind represents the classification of a token.
type Kind int

const (
	// ILLEGAL is any text that is neither a keyword, a variable name nor an
	// integer in the 32-bit range.
	ILLEGAL Kind = iota
	EOF

	IDENT // variable names: a, Let, foo
	INT   // integer literals: 42, -7, 00

	// Keywords
	KW_LET
	KW_ADD
	KW_SUB
	KW_MULT
	KW_DIV
)

var kindNames = map[Kind]string{
	ILLEGAL: "ILLEGAL",
	EOF:     "EOF",
	IDENT:   "IDENT",
	INT:     "INT",
	KW_LET:  "let",
	KW_ADD:  "add",
	KW_SUB:  "sub",
	KW_MULT: "mult",
	KW_DIV:  "div",
}

// String returns the human-readable name for a token kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsKeyword returns true if the kind is one of the operator keywords.
func (k Kind) IsKeyword() bool {
	return k >= KW_LET && k <= KW_DIV
}

// Arity returns the number of operands the keyword takes, or 0 for
// non-keywords.
func (k Kind) Arity() int {
	switch k {
	case KW_LET:
		return 3
	case KW_ADD, KW_SUB, KW_MULT, KW_DIV:
		return 2
	default:
		return 0
	}
}

// Keywords are case-sensitive: "Let" is a variable name.
var keywords = map[string]Kind{
	"let":  KW_LET,
	"add":  KW_ADD,
	"sub":  KW_SUB,
	"mult": KW_MULT,
	"div":  KW_DIV,
}

// Lookup classifies lexeme. The order is fixed: keyword, then variable name,
// then bounded integer. Anything else is ILLEGAL.
func Lookup(lexeme string) Kind {
	if kind, ok := keywords[lexeme]; ok {
		return kind
	}
	if IsVariableName(lexeme) {
		return IDENT
	}
	if _, ok := ParseInt(lexeme); ok {
		return INT
	}
	return ILLEGAL
}

// IsVariableName reports whether s matches ^[a-zA-Z]+$.
func IsVariableName(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if !('a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z') {
			return false
		}
	}
	return true
}

// ParseInt parses s as a signed decimal integer within the int32 range.
// Out-of-range values are rejected rather than clamped.
func ParseInt(s string) (int32, bool) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, false
	}
	return int32(v), true
}

// Token represents a lexical token with its kind, text, and source location.
type Token struct {
	Kind   Kind      `json:"kind"`
	Lexeme string    `json:"lexeme"`
	Span   span.Span `json:"span"`
}

// String returns a human-readable representation of the token.
func (t Token) String() string {
	return fmt.Sprintf("%s %q %s", t.Kind, t.Lexeme, t.Span.Start)
}
