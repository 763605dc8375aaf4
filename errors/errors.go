// Package errors defines the errors reported while compiling and running
// Robolang programs. Every error carries the source range it refers to.
package errors

import (
	"fmt"
	"strings"

	"github.com/gpoesia/loopye-sub000/internal/token"
)

// Kind classifies an Error.
type Kind int

const (
	LexicalError Kind = iota
	InvalidAction
	InvalidSensor
	MissingBlockTerminator
	UnknownConstruct
	LoopTooLong
	UndeclaredVariable
)

var kindNames = map[Kind]string{
	LexicalError:           "lexical error",
	InvalidAction:          "invalid action",
	InvalidSensor:          "invalid sensor",
	MissingBlockTerminator: "missing block terminator",
	UnknownConstruct:       "unknown construct",
	LoopTooLong:            "semantic error",
	UndeclaredVariable:     "runtime error",
}

var kindCodes = map[Kind]ErrorCode{
	LexicalError:           E1001,
	InvalidAction:          E1002,
	InvalidSensor:          E1003,
	MissingBlockTerminator: E1004,
	UnknownConstruct:       E1005,
	LoopTooLong:            E2001,
	UndeclaredVariable:     E3001,
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Code returns the stable error code for the kind.
func (k Kind) Code() ErrorCode {
	return kindCodes[k]
}

// FriendlyError is an interface for errors that have a human friendly message
// in addition to a the lower level default error message.
type FriendlyError interface {
	Error() string
	FriendlyErrorMessage() string
}

// FormattableError is an interface for errors that can be formatted with
// the enhanced error formatter (with colors, source context, etc).
type FormattableError interface {
	Error() string
	ToFormatted() *FormattedError
}

// FatalError is an interface for errors that may or may not be fatal.
type FatalError interface {
	Error() string
	IsFatal() bool
}

// Error is a lexical, parse, semantic or runtime error tied to a source range.
type Error struct {
	Kind    Kind
	Message string
	Range   token.Range
	Source  string // text of the line containing Range.Begin
	Hint    string
}

// New returns an Error of the given kind.
func New(kind Kind, rng token.Range, message string) *Error {
	return &Error{Kind: kind, Message: message, Range: rng}
}

// Newf returns an Error with a message formatted from the locale's catalog.
func Newf(loc Locale, kind Kind, rng token.Range, id MessageID, args ...any) *Error {
	return New(kind, rng, loc.Sprintf(id, args...))
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Range.Begin, e.Kind, e.Message)
}

// Code returns the error code of the error's kind.
func (e *Error) Code() ErrorCode {
	return e.Kind.Code()
}

// IsFatal reports whether the error was raised while running a program.
// Such errors indicate a host integration bug rather than bad user input.
func (e *Error) IsFatal() bool {
	return e.Code().Category() == "runtime"
}

// WithSource records the text of the offending line, taken from source.
func (e *Error) WithSource(source string) *Error {
	e.Source = LineText(source, e.Range.Begin.Line)
	return e
}

// FriendlyErrorMessage renders the error without colors.
func (e *Error) FriendlyErrorMessage() string {
	return NewFormatter(false).Format(e.ToFormatted())
}

// ToFormatted converts the error to a FormattedError for display.
func (e *Error) ToFormatted() *FormattedError {
	begin, end := e.Range.Begin, e.Range.End
	fe := &FormattedError{
		Code:    e.Code(),
		Kind:    e.Kind.String(),
		Message: e.Message,
		Line:    begin.LineNumber(),
		Column:  begin.ColumnNumber(),
		Hint:    e.Hint,
	}
	if end.Line == begin.Line && end.Column > begin.Column {
		// EndColumn is inclusive
		fe.EndColumn = end.Column
	}
	if e.Source != "" {
		fe.SourceLines = []SourceLineEntry{
			{Number: begin.LineNumber(), Text: e.Source, IsMain: true},
		}
	}
	return fe
}

// LineText returns the 0-indexed line of source, or "" if absent.
func LineText(source string, line int) string {
	lines := strings.Split(source, "\n")
	if line < 0 || line >= len(lines) {
		return ""
	}
	return strings.TrimRight(lines[line], "\r")
}
