// Package applog sets up the file logger used by the command-line front end.
//
// Records are appended to <Dir>/<File> in this layout, one blank line after
// each record:
//
//	2024-05-01 13:37:00.123 INFO main.runEval():42
//	evaluating "add(1, 2)"
//
// The expression packages never log; only cmd/letcalc does.
package applog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	DefaultDir  = "logs"
	DefaultFile = "calculator.log"
)

// Level is a verbosity level accepted on the command line.
type Level int

const (
	LevelOff Level = iota
	LevelError
	LevelInfo
	LevelDebug
)

var levelNames = map[string]Level{
	"off":   LevelOff,
	"error": LevelError,
	"info":  LevelInfo,
	"debug": LevelDebug,
}

// ParseLevel parses a verbosity level, ignoring case.
func ParseLevel(s string) (Level, error) {
	if lvl, ok := levelNames[strings.ToLower(s)]; ok {
		return lvl, nil
	}
	return LevelOff, fmt.Errorf("wrong verbose level: %q (want debug, info, error or off)", s)
}

func (l Level) String() string {
	for name, lvl := range levelNames {
		if lvl == l {
			return name
		}
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

func (l Level) logrusLevel() logrus.Level {
	switch l {
	case LevelDebug:
		return logrus.DebugLevel
	case LevelInfo:
		return logrus.InfoLevel
	default:
		return logrus.ErrorLevel
	}
}

// Options configures New.
type Options struct {
	Dir   string // created if missing; DefaultDir when empty
	File  string // DefaultFile when empty
	Level Level
}

// Logger is a logrus logger bound to a log file.
type Logger struct {
	*logrus.Logger
	file *os.File
}

// New creates the log directory and opens the log file for appending. With
// LevelOff no file is touched and every record is discarded.
func New(opts Options) (*Logger, error) {
	l := logrus.New()
	l.SetFormatter(&Formatter{})
	l.SetReportCaller(true)

	if opts.Level == LevelOff {
		l.SetOutput(io.Discard)
		l.SetLevel(logrus.PanicLevel)
		return &Logger{Logger: l}, nil
	}

	dir := opts.Dir
	if dir == "" {
		dir = DefaultDir
	}
	name := opts.File
	if name == "" {
		name = DefaultFile
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "creating log directory %s", dir)
	}
	path := filepath.Join(dir, name)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, errors.Wrapf(err, "opening log file %s", path)
	}

	l.SetOutput(f)
	l.SetLevel(opts.Level.logrusLevel())
	return &Logger{Logger: l, file: f}, nil
}

// Path returns the log file path, or "" when logging is off.
func (l *Logger) Path() string {
	if l.file == nil {
		return ""
	}
	return l.file.Name()
}

// Close closes the log file.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}
