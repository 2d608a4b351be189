// Package diag provides the error taxonomy shared by the parser and the
// evaluator.
//
// Every failure is a *Diagnostic carrying one Kind. Kinds are themselves
// errors, so callers can branch with errors.Is:
//
//	if errors.Is(err, diag.UndefinedVariable) { ... }
package diag

import (
	"fmt"
	"letcalc/internal/span"
)

// Kind identifies the class of a failure.
type Kind int

const (
	BadExpression Kind = iota + 1
	UnknownLiteralType
	WrongVariablePosition
	UndefinedVariable
	WrongNumberOfOperands
	FirstLetOperandMustBeVariable
	// Internal signals a contract violation between the parser and the
	// evaluator. It is unreachable for trees produced by the parser.
	Internal
)

var kindInfo = map[Kind]struct {
	code, name, text string
}{
	BadExpression:                 {"E2001", "BadExpression", "bad expression (empty/malformed)"},
	UnknownLiteralType:            {"E2002", "UnknownLiteralType", "unknown literal type"},
	WrongVariablePosition:         {"E2003", "WrongVariablePosition", "wrong variable position"},
	UndefinedVariable:             {"E3001", "UndefinedVariable", "undefined variable"},
	WrongNumberOfOperands:         {"E3002", "WrongNumberOfOperands", "wrong number of operands"},
	FirstLetOperandMustBeVariable: {"E3003", "FirstLetOperandMustBeVariable", "leftmost operand of let must be a variable"},
	Internal:                      {"E3999", "Internal", "internal error"},
}

// Code returns the stable error code, e.g. "E2001".
func (k Kind) Code() string {
	if info, ok := kindInfo[k]; ok {
		return info.code
	}
	return "E0000"
}

func (k Kind) String() string {
	if info, ok := kindInfo[k]; ok {
		return info.name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Error returns the generic description of the kind.
func (k Kind) Error() string {
	if info, ok := kindInfo[k]; ok {
		return info.text
	}
	return "unknown error"
}

// Diagnostic is a failure raised while building or evaluating an expression.
type Diagnostic struct {
	Kind    Kind      `json:"kind"`
	Message string    `json:"message"`        // human-readable description
	Span    span.Span `json:"span"`           // input location
	Hint    string    `json:"hint,omitempty"` // optional hint
}

// Code returns the stable code of the diagnostic's kind.
func (d *Diagnostic) Code() string {
	return d.Kind.Code()
}

// String returns a human-readable representation of the diagnostic.
func (d *Diagnostic) String() string {
	msg := fmt.Sprintf("[%s] error", d.Kind.Code())
	if d.Span.Start.IsValid() {
		msg += " at " + d.Span.Start.String()
	}
	msg += ": " + d.Message
	if d.Hint != "" {
		msg += " (hint: " + d.Hint + ")"
	}
	return msg
}

func (d *Diagnostic) Error() string {
	return d.String()
}

// Is makes errors.Is(err, kind) match a diagnostic of that kind.
func (d *Diagnostic) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == d.Kind
}

// Errorf creates a diagnostic of the given kind at the given span.
func Errorf(kind Kind, s span.Span, format string, args ...interface{}) *Diagnostic {
	return &Diagnostic{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Span:    s,
	}
}

// WithHint sets the hint and returns d.
func (d *Diagnostic) WithHint(format string, args ...interface{}) *Diagnostic {
	d.Hint = fmt.Sprintf(format, args...)
	return d
}
