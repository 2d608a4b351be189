// Package span provides source position and span types used to locate
// tokens, tree nodes and diagnostics in an expression.
package span

import "fmt"

// Position represents a position in the input expression.
type Position struct {
	Offset int `json:"offset"` // byte offset from beginning of input
	Line   int `json:"line"`   // 1-based line number
	Column int `json:"column"` // 1-based column number
}

// Start is the position of the first byte of any input.
var Start = Position{Offset: 0, Line: 1, Column: 1}

// IsValid reports whether p was set by the lexer (the zero Position is not).
func (p Position) IsValid() bool {
	return p.Line > 0
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Span represents a range in the input [Start, End).
type Span struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// At returns an empty span located at p.
func At(p Position) Span {
	return Span{Start: p, End: p}
}

// Join returns the smallest span covering both a and b.
func Join(a, b Span) Span {
	s := a
	if b.Start.Offset < s.Start.Offset {
		s.Start = b.Start
	}
	if b.End.Offset > s.End.Offset {
		s.End = b.End
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("%s..%s", s.Start, s.End)
}

// Len returns the byte length of the span.
func (s Span) Len() int {
	return s.End.Offset - s.Start.Offset
}
