// Package loglevel is zen's diagnostic logger: plain fmt.Fprintf
// gated by a verbosity level.
package loglevel

import (
	"fmt"
	"io"
)

// Level orders zen's three verbosity tiers, least to most chatty.
type Level int

const (
	Silent Level = iota
	Info
	Debug
)

// Logger writes gated diagnostics to w.
type Logger struct {
	level Level
	w     io.Writer
}

// New constructs a Logger at level, writing to w.
func New(level Level, w io.Writer) *Logger {
	return &Logger{level: level, w: w}
}

// Info writes a message when the level is Info or Debug.
func (l *Logger) Info(format string, args ...any) {
	if l.level >= Info {
		fmt.Fprintf(l.w, format+"\n", args...)
	}
}

// Debug writes a message only at Debug level.
func (l *Logger) Debug(format string, args ...any) {
	if l.level >= Debug {
		fmt.Fprintf(l.w, format+"\n", args...)
	}
}
