// Package parser builds an expression tree from a token sequence.
//
// The grammar is prefix notation with fixed arities:
//
//	expr := "let" expr expr expr
//	      | ("add" | "sub" | "mult" | "div") expr expr
//	      | VARIABLE | INTEGER
//
// Parentheses and commas are delimiters that never reach the parser, so
// "add(1,2)" and "add 1 2" build the same tree. Tokens are consumed left to
// right by recursive descent; the first failure aborts the parse.
package parser

import (
	"letcalc/internal/ast"
	"letcalc/internal/diag"
	"letcalc/internal/span"
	"letcalc/internal/token"
)

// Parser performs syntax analysis on a sequence of tokens.
type Parser struct {
	tokens []token.Token
	pos    int
}

// New creates a new parser from a token slice.
func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens, pos: 0}
}

// Parse builds the tree for exactly one expression. All tokens must be
// consumed: anything left over after a complete expression is a
// BadExpression, even if the remainder is itself well formed.
func (p *Parser) Parse() (ast.Node, error) {
	root, err := p.parseExpr(false)
	if err != nil {
		return nil, err
	}
	if !p.isAtEnd() {
		tok := p.peek()
		return nil, diag.Errorf(diag.BadExpression, tok.Span,
			"bad expression: unexpected %q after complete expression", tok.Lexeme).
			WithHint("the expression %s ends at %s", root, root.GetSpan().End)
	}
	return root, nil
}

// ---- navigation helpers ----

func (p *Parser) peek() token.Token {
	if p.pos >= len(p.tokens) {
		return token.Token{Kind: token.EOF, Span: span.At(p.endPos())}
	}
	return p.tokens[p.pos]
}

func (p *Parser) advance() token.Token {
	tok := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Kind == token.EOF
}

// endPos is where a missing token would have been.
func (p *Parser) endPos() span.Position {
	if len(p.tokens) == 0 {
		return span.Start
	}
	return p.tokens[len(p.tokens)-1].Span.End
}

// ============================================================
// Expressions
// ============================================================

// parseExpr parses one expression. hasParent reports whether the
// expression is an operand of an enclosing operation; a variable is only
// allowed in that position.
func (p *Parser) parseExpr(hasParent bool) (ast.Node, error) {
	tok := p.peek()
	if tok.Kind == token.EOF {
		return nil, diag.Errorf(diag.BadExpression, tok.Span, "bad expression: empty input")
	}

	if op, ok := ast.OpFromToken(tok.Kind); ok {
		return p.parseOperation(op)
	}

	switch tok.Kind {
	case token.IDENT:
		if !hasParent {
			return nil, diag.Errorf(diag.WrongVariablePosition, tok.Span,
				"wrong variable position: %q has no enclosing operation", tok.Lexeme)
		}
		p.advance()
		return &ast.Variable{NodeBase: ast.NodeBase{Span: tok.Span}, Name: tok.Lexeme}, nil

	case token.INT:
		value, ok := token.ParseInt(tok.Lexeme)
		if !ok {
			return nil, diag.Errorf(diag.UnknownLiteralType, tok.Span, "unknown literal type: %q", tok.Lexeme)
		}
		p.advance()
		return &ast.IntLiteral{NodeBase: ast.NodeBase{Span: tok.Span}, Value: value}, nil

	default:
		return nil, diag.Errorf(diag.UnknownLiteralType, tok.Span, "unknown literal type: %q", tok.Lexeme).
			WithHint("expected let, add, sub, mult, div, a variable name or a 32-bit integer")
	}
}

// parseOperation consumes the keyword and then exactly Arity() operands.
func (p *Parser) parseOperation(op ast.OpKind) (ast.Node, error) {
	kw := p.advance()
	arity := op.Arity()
	node := &ast.Operation{
		NodeBase: ast.NodeBase{Span: kw.Span},
		Op:       op,
		Operands: make([]ast.Node, 0, arity),
	}

	for len(node.Operands) < arity {
		if p.isAtEnd() {
			return nil, diag.Errorf(diag.BadExpression, p.peek().Span,
				"bad expression: %s is missing operand %d", op, len(node.Operands)+1).
				WithHint("%s takes %d operands", op, arity)
		}
		operand, err := p.parseExpr(true)
		if err != nil {
			return nil, err
		}
		node.Operands = append(node.Operands, operand)
		node.Span = span.Join(node.Span, operand.GetSpan())
	}
	return node, nil
}

// Parse is a shorthand for New(tokens).Parse().
func Parse(tokens []token.Token) (ast.Node, error) {
	return New(tokens).Parse()
}
