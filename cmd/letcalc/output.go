package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"letcalc/internal/diag"
	"letcalc/internal/token"

	"github.com/fatih/color"
)

var (
	errorColor  = color.New(color.FgRed)
	resultColor = color.New(color.FgGreen)
	hintColor   = color.New(color.FgHiBlack)
	bannerColor = color.New(color.FgCyan, color.Bold)
)

// ---- output helpers ----

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printError writes err on one line, in red when color is enabled.
func printError(w io.Writer, err error) {
	var d *diag.Diagnostic
	if errors.As(err, &d) {
		errorColor.Fprintln(w, err.Error())
		return
	}
	errorColor.Fprintf(w, "error: %v\n", err)
}

func diagToMap(d *diag.Diagnostic) map[string]interface{} {
	result := map[string]interface{}{
		"code":    d.Code(),
		"kind":    d.Kind.String(),
		"message": d.Message,
		"line":    d.Span.Start.Line,
		"column":  d.Span.Start.Column,
		"offset":  d.Span.Start.Offset,
	}
	if d.Hint != "" {
		result["hint"] = d.Hint
	}
	return result
}

// ---- token output helpers ----

func printTokensText(w io.Writer, tokens []token.Token) {
	for _, tok := range tokens {
		fmt.Fprintf(w, "%-8s %-20s %d:%d\n", tok.Kind, tok.Lexeme, tok.Span.Start.Line, tok.Span.Start.Column)
	}
}

func printTokensJSON(w io.Writer, tokens []token.Token) error {
	type tokenJSON struct {
		Kind   string `json:"kind"`
		Lexeme string `json:"lexeme"`
		Line   int    `json:"line"`
		Column int    `json:"column"`
		Offset int    `json:"offset"`
	}

	toks := make([]tokenJSON, 0, len(tokens))
	for _, tok := range tokens {
		toks = append(toks, tokenJSON{
			Kind:   tok.Kind.String(),
			Lexeme: tok.Lexeme,
			Line:   tok.Span.Start.Line,
			Column: tok.Span.Start.Column,
			Offset: tok.Span.Start.Offset,
		})
	}

	return printJSON(w, map[string]interface{}{
		"tokens": toks,
	})
}
