package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"pyapi/internal/diag"
	"pyapi/internal/source"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan, color.Bold)
	caretColor   = color.New(color.FgGreen)
)

// Pretty formats diagnostics for humans. It walks bag.Items() (callers
// sort the bag first) and prints for each one
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//
// followed by the source line with a ^~~~ underline, then notes in the
// same shape.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		writeHeading(w, fs, d.Primary, d.Severity, d.Code.ID(), d.Message, opts)
		writeContext(w, fs, d.Primary, opts)
		if opts.ShowNotes {
			for _, note := range d.Notes {
				writeHeading(w, fs, note.Span, diag.SevInfo, "note", note.Msg, opts)
				writeContext(w, fs, note.Span, opts)
			}
		}
	}
}

func writeHeading(w io.Writer, fs *source.FileSet, sp source.Span, sev diag.Severity, label, msg string, opts PrettyOpts) {
	file := fs.Get(sp.File)
	start, _ := fs.Resolve(sp)
	path := file.FormatPath(opts.PathMode.mode(), fs.BaseDir())

	sevText := strings.ToLower(sev.String())
	if opts.Color {
		sevText = severityColor(sev).Sprint(sevText)
	}
	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n", path, start.Line, start.Col, sevText, label, msg)
}

func writeContext(w io.Writer, fs *source.FileSet, sp source.Span, opts PrettyOpts) {
	if sp.Empty() {
		return
	}
	file := fs.Get(sp.File)
	start, end := fs.Resolve(sp)

	line := file.Line(start.Line)
	if line == "" {
		return
	}
	fmt.Fprintf(w, "  %s\n", line)

	width := uint32(1)
	if end.Line == start.Line && end.Col > start.Col {
		width = end.Col - start.Col
	}
	underline := "^"
	if width > 1 {
		underline += strings.Repeat("~", int(width-1))
	}
	if opts.Color {
		underline = caretColor.Sprint(underline)
	}
	fmt.Fprintf(w, "  %s%s\n", strings.Repeat(" ", int(start.Col-1)), underline)
}

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return errorColor
	case diag.SevWarning:
		return warningColor
	default:
		return infoColor
	}
}
