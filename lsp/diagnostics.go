// Package lsp converts Robolang compile errors into Language Server Protocol
// diagnostics, for editors embedded in lesson pages.
package lsp

import (
	"unicode/utf16"

	"github.com/gpoesia/loopye-sub000/errors"
	"github.com/gpoesia/loopye-sub000/internal/token"
	"github.com/jdbaldry/go-language-server-protocol/lsp/protocol"
)

// Source is the diagnostic source reported to editors.
const Source = "robolang"

// Diagnostics returns one error diagnostic per compile or runtime error in
// err. Errors that carry no source location are ignored.
func Diagnostics(err error) []protocol.Diagnostic {
	errs := errors.All(err)
	diagnostics := make([]protocol.Diagnostic, 0, len(errs))
	for _, e := range errs {
		diagnostics = append(diagnostics, Diagnostic(e))
	}
	return diagnostics
}

// Diagnostic converts a single error.
func Diagnostic(e *errors.Error) protocol.Diagnostic {
	message := e.Message
	if e.Hint != "" {
		message += "\n" + e.Hint
	}
	return protocol.Diagnostic{
		Range:    toRange(e.Range, e.Source),
		Severity: protocol.SeverityError,
		Code:     string(e.Code()),
		Source:   Source,
		Message:  message,
	}
}

// Publish returns the notification parameters for a document whose latest
// compilation produced err. A nil err clears the document's diagnostics.
func Publish(uri protocol.DocumentURI, err error) protocol.PublishDiagnosticsParams {
	return protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: Diagnostics(err),
	}
}

// toRange converts a rune based range to LSP positions, which count UTF-16
// code units. line is the text of the range's first line, if known.
func toRange(r token.Range, line string) protocol.Range {
	endLine := line
	if r.End.Line != r.Begin.Line {
		endLine = ""
	}
	return protocol.Range{
		Start: toPosition(r.Begin, line),
		End:   toPosition(r.End, endLine),
	}
}

func toPosition(p token.Position, line string) protocol.Position {
	return protocol.Position{
		Line:      uint32(p.Line),
		Character: uint32(utf16Column(line, p.Column)),
	}
}

func utf16Column(line string, column int) int {
	if line == "" {
		return column
	}
	units, i := 0, 0
	for _, r := range line {
		if i == column {
			return units
		}
		units += utf16.RuneLen(r)
		i++
	}
	return units + column - i
}
