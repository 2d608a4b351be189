// Package ast defines the expression tree built by the parser.
package ast

import (
	"fmt"
	"letcalc/internal/span"
	"letcalc/internal/token"
	"strconv"
	"strings"
)

// ============================================================
// Node interface
// ============================================================

// Node is the interface implemented by all tree nodes.
type Node interface {
	nodeNode()
	GetSpan() span.Span
	String() string
}

// NodeBase provides the common Span field for all nodes.
type NodeBase struct {
	Span span.Span
}

func (n NodeBase) nodeNode()          {}
func (n NodeBase) GetSpan() span.Span { return n.Span }

// ============================================================
// Operations
// ============================================================

// OpKind is the closed set of operations.
type OpKind int

const (
	OpInvalid OpKind = iota
	OpLet
	OpAdd
	OpSub
	OpMul
	OpDiv
)

var opNames = map[OpKind]string{
	OpLet: "let",
	OpAdd: "add",
	OpSub: "sub",
	OpMul: "mult",
	OpDiv: "div",
}

// String returns the keyword spelling of the operation.
func (k OpKind) String() string {
	if name, ok := opNames[k]; ok {
		return name
	}
	return fmt.Sprintf("OpKind(%d)", int(k))
}

// Arity returns the fixed operand count: 3 for let, 2 for the arithmetic
// operations and 0 for anything else.
func (k OpKind) Arity() int {
	switch k {
	case OpLet:
		return 3
	case OpAdd, OpSub, OpMul, OpDiv:
		return 2
	default:
		return 0
	}
}

// OpFromToken maps a keyword token kind to its operation.
func OpFromToken(kind token.Kind) (OpKind, bool) {
	switch kind {
	case token.KW_LET:
		return OpLet, true
	case token.KW_ADD:
		return OpAdd, true
	case token.KW_SUB:
		return OpSub, true
	case token.KW_MULT:
		return OpMul, true
	case token.KW_DIV:
		return OpDiv, true
	default:
		return OpInvalid, false
	}
}

// Operation is an interior node. It exclusively owns its operands, which
// are stored in source order. A tree returned by the parser always has
// len(Operands) == Op.Arity().
type Operation struct {
	NodeBase
	Op       OpKind
	Operands []Node
}

func (n *Operation) String() string {
	var sb strings.Builder
	sb.WriteString(n.Op.String())
	sb.WriteByte('(')
	for i, operand := range n.Operands {
		if i > 0 {
			sb.WriteString(", ")
		}
		if operand == nil {
			sb.WriteString("<nil>")
			continue
		}
		sb.WriteString(operand.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

// ============================================================
// Leaves
// ============================================================

// Variable is a reference to (or, as the first operand of let, the target
// of) a binding.
type Variable struct {
	NodeBase
	Name string
}

func (n *Variable) String() string { return n.Name }

// IntLiteral is an integer constant in the int32 range.
type IntLiteral struct {
	NodeBase
	Value int32
}

func (n *IntLiteral) String() string { return strconv.FormatInt(int64(n.Value), 10) }

// ============================================================
// Helpers
// ============================================================

// IsLeaf reports whether n has no children.
func IsLeaf(n Node) bool {
	switch n.(type) {
	case *Variable, *IntLiteral:
		return true
	default:
		return false
	}
}

// Walk visits n and its descendants in pre-order. Returning false from fn
// skips the children of the node just visited.
func Walk(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	if op, ok := n.(*Operation); ok {
		for _, operand := range op.Operands {
			Walk(operand, fn)
		}
	}
}

// Depth returns the height of the tree rooted at n; a leaf has depth 1.
func Depth(n Node) int {
	op, ok := n.(*Operation)
	if !ok {
		if n == nil {
			return 0
		}
		return 1
	}
	deepest := 0
	for _, operand := range op.Operands {
		if d := Depth(operand); d > deepest {
			deepest = d
		}
	}
	return deepest + 1
}
