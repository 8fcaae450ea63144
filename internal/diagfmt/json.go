package diagfmt

import (
	"encoding/json"
	"io"

	"pyapi/internal/diag"
	"pyapi/internal/source"
)

// LocationJSON is a file location in JSON output.
type LocationJSON struct {
	File      string `json:"file"`
	StartByte uint32 `json:"start_byte"`
	EndByte   uint32 `json:"end_byte"`
	StartLine uint32 `json:"start_line,omitempty"`
	StartCol  uint32 `json:"start_col,omitempty"`
	EndLine   uint32 `json:"end_line,omitempty"`
	EndCol    uint32 `json:"end_col,omitempty"`
}

// NoteJSON is an attached note in JSON output.
type NoteJSON struct {
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
}

// DiagnosticJSON is one diagnostic in JSON output.
type DiagnosticJSON struct {
	Severity string       `json:"severity"`
	Code     string       `json:"code"`
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
	Notes    []NoteJSON   `json:"notes,omitempty"`
}

// DiagnosticsOutput is the JSON document root.
type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Truncated   bool             `json:"truncated,omitempty"`
}

// JSON serializes the bag. Callers sort the bag first.
func JSON(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	items := bag.Items()
	out := DiagnosticsOutput{Diagnostics: make([]DiagnosticJSON, 0, len(items))}
	for _, d := range items {
		if opts.Max > 0 && len(out.Diagnostics) >= opts.Max {
			out.Truncated = true
			break
		}
		dj := DiagnosticJSON{
			Severity: d.Severity.String(),
			Code:     d.Code.ID(),
			Message:  d.Message,
			Location: locationJSON(fs, d.Primary, opts),
		}
		if opts.IncludeNotes {
			for _, note := range d.Notes {
				dj.Notes = append(dj.Notes, NoteJSON{
					Message:  note.Msg,
					Location: locationJSON(fs, note.Span, opts),
				})
			}
		}
		out.Diagnostics = append(out.Diagnostics, dj)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

func locationJSON(fs *source.FileSet, sp source.Span, opts JSONOpts) LocationJSON {
	file := fs.Get(sp.File)
	loc := LocationJSON{
		File:      file.FormatPath(opts.PathMode.mode(), fs.BaseDir()),
		StartByte: sp.Start,
		EndByte:   sp.End,
	}
	if opts.IncludePositions {
		start, end := fs.Resolve(sp)
		loc.StartLine, loc.StartCol = start.Line, start.Col
		loc.EndLine, loc.EndCol = end.Line, end.Col
	}
	return loc
}
