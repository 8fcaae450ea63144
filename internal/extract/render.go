package extract

import (
	"strings"

	"pyapi/internal/source"
)

// Render reconstructs the literal source text of a definition from the
// file's physical lines. It walks the captured tokens and, whenever one
// ends on a line not yet emitted, appends the raw line range covering
// it. Multi-line headers and triple-quoted docstrings come out exactly
// as written. Rendering the same definition twice yields the same text.
func Render(file *source.File, def Definition) string {
	var sb strings.Builder
	lastLine := uint32(0)
	for _, tok := range def.Tokens {
		if tok.Span.Empty() {
			continue
		}
		endLine := file.LineOf(tok.Span.End - 1)
		if endLine <= lastLine {
			continue
		}
		from := file.LineOf(tok.Span.Start)
		if from <= lastLine {
			from = lastLine + 1
		}
		sb.WriteString(file.LineSpan(from, endLine))
		lastLine = endLine
	}
	// a continuation backslash before the keyword leaves a stray
	// artifact at the front of the first emitted line
	return strings.TrimLeft(sb.String(), "\\\n")
}

// RenderAll renders each definition in order.
func RenderAll(file *source.File, defs []Definition) []string {
	out := make([]string, 0, len(defs))
	for _, d := range defs {
		out = append(out, Render(file, d))
	}
	return out
}
