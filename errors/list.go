package errors

import (
	stderrors "errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// List collects the errors produced by one compilation. It implements the
// error interface so it can be returned from Compile.
type List struct {
	merr *multierror.Error
}

// NewList returns a List holding errs.
func NewList(errs ...*Error) *List {
	l := &List{}
	l.Add(errs...)
	return l
}

// Add appends errors to the list.
func (l *List) Add(errs ...*Error) {
	for _, err := range errs {
		if err == nil {
			continue
		}
		l.merr = multierror.Append(l.merr, err)
	}
	if l.merr != nil {
		l.merr.ErrorFormat = formatList
	}
}

// Len returns the number of errors.
func (l *List) Len() int {
	if l == nil || l.merr == nil {
		return 0
	}
	return l.merr.Len()
}

// Errors returns the collected errors in the order they were added.
func (l *List) Errors() []*Error {
	if l.Len() == 0 {
		return nil
	}
	out := make([]*Error, 0, l.merr.Len())
	for _, err := range l.merr.WrappedErrors() {
		if e, ok := err.(*Error); ok {
			out = append(out, e)
		}
	}
	return out
}

// First returns the first error, or nil if empty.
func (l *List) First() *Error {
	errs := l.Errors()
	if len(errs) == 0 {
		return nil
	}
	return errs[0]
}

// ErrorOrNil returns the list as an error, or nil if it holds no errors.
func (l *List) ErrorOrNil() error {
	if l.Len() == 0 {
		return nil
	}
	return l
}

// Error implements the error interface. Returns the first error message.
func (l *List) Error() string {
	if l.Len() == 0 {
		return ""
	}
	return l.merr.Error()
}

// Unwrap returns the underlying errors for use with errors.Is/As.
func (l *List) Unwrap() []error {
	if l.Len() == 0 {
		return nil
	}
	return l.merr.WrappedErrors()
}

// FriendlyErrorMessage returns a formatted message showing all errors.
func (l *List) FriendlyErrorMessage() string {
	return NewFormatter(false).FormatMultiple(l.ToFormattedMultiple())
}

// ToFormattedMultiple converts all errors to FormattedError for display.
func (l *List) ToFormattedMultiple() []*FormattedError {
	var formatted []*FormattedError
	for _, err := range l.Errors() {
		formatted = append(formatted, err.ToFormatted())
	}
	return formatted
}

func formatList(errs []error) string {
	switch len(errs) {
	case 0:
		return ""
	case 1:
		return errs[0].Error()
	default:
		return fmt.Sprintf("%s (and %d more errors)", errs[0].Error(), len(errs)-1)
	}
}

// All extracts every *Error from err, which may be a *List, an *Error or
// any error wrapping one of them.
func All(err error) []*Error {
	if err == nil {
		return nil
	}
	var list *List
	if stderrors.As(err, &list) {
		return list.Errors()
	}
	var e *Error
	if stderrors.As(err, &e) {
		return []*Error{e}
	}
	return nil
}
