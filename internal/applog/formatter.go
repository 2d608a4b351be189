package applog

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

// TimestampFormat is the layout of the record timestamp, with milliseconds.
const TimestampFormat = "2006-01-02 15:04:05.000"

// Formatter renders a record as
//
//	<timestamp> <LEVEL> <caller>
//	<message>
//	<blank line>
//
// The caller line is only present when the logger reports callers.
type Formatter struct{}

// Format implements logrus.Formatter.
func (f *Formatter) Format(entry *logrus.Entry) ([]byte, error) {
	b := entry.Buffer
	if b == nil {
		b = &bytes.Buffer{}
	}

	b.WriteString(entry.Time.Format(TimestampFormat))
	b.WriteByte(' ')
	b.WriteString(strings.ToUpper(entry.Level.String()))
	if entry.HasCaller() {
		fmt.Fprintf(b, " %s():%d", entry.Caller.Function, entry.Caller.Line)
	}
	b.WriteByte('\n')
	b.WriteString(entry.Message)
	for _, k := range sortedKeys(entry.Data) {
		fmt.Fprintf(b, " %s=%v", k, entry.Data[k])
	}
	b.WriteString("\n\n")
	return b.Bytes(), nil
}

func sortedKeys(data logrus.Fields) []string {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
