// Package diag is the diagnostics sink the semantic core issues every
// error, warning and info message through. It never owns presentation;
// it only accumulates location-tagged messages and lets a caller ask
// whether any error or fatal message was emitted.
package diag

import (
	"fmt"
	"io"

	"github.com/alecthomas/participle/lexer"
)

// Severity classifies a Message.
type Severity int

const (
	Info Severity = iota
	Warn
	Error
	Fatal
)

func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Warn:
		return "warning"
	case Error:
		return "error"
	case Fatal:
		return "fatal"
	default:
		return "?"
	}
}

// Code tags a Message with the taxonomy entry it belongs to, so callers
// (and tests) can match on the kind of failure without parsing text.
type Code string

const (
	SyntaxReferenceError  Code = "syntax-reference-error"
	InheritanceRuleViolation Code = "inheritance-rule-violation"
	CircularDependency    Code = "circular-dependency"
	FinalityViolation     Code = "finality-violation"
	SignatureConflict     Code = "signature-conflict"
	OverrideWithoutKeyword Code = "override-without-keyword"
	HiddenMember          Code = "hidden-member"
	AbstractnessFailure   Code = "abstractness-failure"
	ConstructorRuleViolation Code = "constructor-rule-violation"
)

// Message is one emitted diagnostic.
type Message struct {
	Severity Severity
	Code     Code
	Pos      lexer.Position
	Text     string
}

func (m Message) String() string {
	if m.Pos.Filename == "" && m.Pos.Line == 0 {
		return fmt.Sprintf("%s: %s", m.Severity, m.Text)
	}
	return fmt.Sprintf("%s: %s: %s", m.Pos, m.Severity, m.Text)
}

// Sink is the external diagnostics collaborator. The core depends only
// on this interface, never on a concrete logger.
type Sink interface {
	Emit(m Message)
	// Failed reports whether any Error or Fatal message has been
	// emitted so far.
	Failed() bool
}

// Log is the concrete Sink the core's own binaries and tests use: an
// append-only buffer of every Message, optionally echoed to a writer
// as it arrives.
type Log struct {
	Messages []Message
	Writer   io.Writer
	failed   bool
}

var _ Sink = &Log{}

func NewLog(w io.Writer) *Log {
	return &Log{Writer: w}
}

func (l *Log) Emit(m Message) {
	l.Messages = append(l.Messages, m)
	if m.Severity >= Error {
		l.failed = true
	}
	if l.Writer != nil {
		fmt.Fprintln(l.Writer, m.String())
	}
}

func (l *Log) Failed() bool { return l.failed }

// Convenience emitters used pervasively by the analyzers.

func Infof(s Sink, pos lexer.Position, format string, args ...interface{}) {
	s.Emit(Message{Severity: Info, Pos: pos, Text: fmt.Sprintf(format, args...)})
}

func Warnf(s Sink, code Code, pos lexer.Position, format string, args ...interface{}) {
	s.Emit(Message{Severity: Warn, Code: code, Pos: pos, Text: fmt.Sprintf(format, args...)})
}

func Errorf(s Sink, code Code, pos lexer.Position, format string, args ...interface{}) {
	s.Emit(Message{Severity: Error, Code: code, Pos: pos, Text: fmt.Sprintf(format, args...)})
}

// Fatalf emits a Fatal message. Unlike the C++ original this never
// aborts the process; "fatal" here means "this pass cannot usefully
// continue", which the caller expresses by returning ok=false.
func Fatalf(s Sink, code Code, pos lexer.Position, format string, args ...interface{}) {
	s.Emit(Message{Severity: Fatal, Code: code, Pos: pos, Text: fmt.Sprintf(format, args...)})
}
