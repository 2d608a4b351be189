package calc

import (
	"bufio"
	"io"
	"strings"
)

// Line is the outcome of evaluating one line of a batch.
type Line struct {
	Number int // 1-based line number in the input
	Source string
	Value  int32
	Err    error
}

// Batch evaluates every line of r as an independent expression and reports
// each result to fn in input order. Blank lines and lines starting with '#'
// are skipped. Evaluation failures go to fn; only read errors are returned.
func Batch(r io.Reader, fn func(Line)) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	number := 0
	for scanner.Scan() {
		number++
		text := scanner.Text()
		trimmed := strings.TrimSpace(text)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		value, err := Evaluate(text)
		fn(Line{Number: number, Source: text, Value: value, Err: err})
	}
	return scanner.Err()
}
