package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Formatter renders errors Rust-style with the offending source line and
// carets under the error range.
type Formatter struct {
	// UseColor enables ANSI color codes in output.
	UseColor bool

	// Filename is shown in the location arrow when set.
	Filename string

	// Locale is used for the summary line of FormatMultiple.
	Locale Locale
}

// NewFormatter creates a new error formatter.
func NewFormatter(useColor bool) *Formatter {
	return &Formatter{UseColor: useColor, Locale: DefaultLocale}
}

// Colors used for error formatting
var (
	colorErrorBold = color.New(color.FgHiRed, color.Bold)
	colorError     = color.New(color.FgRed)
	colorCode      = color.New(color.FgHiBlack)
	colorLocation  = color.New(color.FgCyan)
	colorGutter    = color.New(color.FgHiBlack)
	colorCaret     = color.New(color.FgHiRed)
	colorHint      = color.New(color.FgHiYellow)
)

// FormattedError represents an error ready for display.
type FormattedError struct {
	Code        ErrorCode
	Kind        string // "lexical error", "invalid sensor", ...
	Message     string
	Line        int // 1-based
	Column      int // 1-based
	EndColumn   int // 1-based, inclusive; 0 for a single caret
	SourceLines []SourceLineEntry
	Hint        string
}

// SourceLineEntry represents a line of source code with its number.
type SourceLineEntry struct {
	Number int
	Text   string
	IsMain bool // True if this is the line with the error
}

func (f *Formatter) paint(c *color.Color, s string) string {
	if !f.UseColor {
		return s
	}
	return c.Sprint(s)
}

// Format formats a single error.
func (f *Formatter) Format(err *FormattedError) string {
	return f.FormatWithPrefix(err, "")
}

// FormatWithPrefix formats the error with an optional prefix like "1/5"
// shown in place of the error code.
func (f *Formatter) FormatWithPrefix(err *FormattedError, prefix string) string {
	var b strings.Builder
	width := len(fmt.Sprintf("%d", err.Line))
	if width < 2 {
		width = 2
	}
	pad := strings.Repeat(" ", width)

	// error[E1002]: message
	label := "error"
	if err.Kind != "" {
		label = err.Kind
	}
	b.WriteString(f.paint(colorErrorBold, label))
	if prefix != "" {
		b.WriteString(f.paint(colorCode, "["+prefix+"]"))
	} else if err.Code != "" {
		b.WriteString(f.paint(colorCode, "["+string(err.Code)+"]"))
	}
	b.WriteString(f.paint(colorError, ": "))
	b.WriteString(err.Message)
	b.WriteString("\n")

	//   --> file.robo:1:5
	if err.Line > 0 {
		loc := fmt.Sprintf("%d:%d", err.Line, err.Column)
		if f.Filename != "" {
			loc = f.Filename + ":" + loc
		}
		b.WriteString(pad)
		b.WriteString(f.paint(colorLocation, "-->"))
		b.WriteString(" ")
		b.WriteString(f.paint(colorLocation, loc))
		b.WriteString("\n")
	}

	if len(err.SourceLines) > 0 {
		b.WriteString(pad)
		b.WriteString(f.paint(colorGutter, " |"))
		b.WriteString("\n")
	}
	for _, line := range err.SourceLines {
		b.WriteString(f.paint(colorGutter, fmt.Sprintf("%*d | ", width, line.Number)))
		b.WriteString(line.Text)
		b.WriteString("\n")
		if !line.IsMain || err.Column < 1 {
			continue
		}
		caretLen := 1
		if err.EndColumn > err.Column {
			caretLen = err.EndColumn - err.Column + 1
		}
		b.WriteString(pad)
		b.WriteString(f.paint(colorGutter, " | "))
		b.WriteString(strings.Repeat(" ", err.Column-1))
		b.WriteString(f.paint(colorCaret, strings.Repeat("^", caretLen)))
		b.WriteString("\n")
	}

	if err.Hint != "" {
		b.WriteString(pad)
		b.WriteString(f.paint(colorGutter, " = "))
		b.WriteString(f.paint(colorHint, "hint: "))
		b.WriteString(err.Hint)
		b.WriteString("\n")
	}
	return b.String()
}

// FormatMultiple formats multiple errors with consistent styling.
func (f *Formatter) FormatMultiple(errs []*FormattedError) string {
	switch len(errs) {
	case 0:
		return ""
	case 1:
		return f.Format(errs[0])
	}
	var b strings.Builder
	for i, err := range errs {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(f.FormatWithPrefix(err, fmt.Sprintf("%d/%d", i+1, len(errs))))
	}
	b.WriteString("\n")
	b.WriteString(f.paint(colorErrorBold, f.Locale.Sprintf(MsgFoundErrors, len(errs))))
	b.WriteString("\n")
	return b.String()
}
