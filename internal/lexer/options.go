package lexer

import (
	"pyapi/internal/diag"
	"pyapi/internal/source"
)

// Options configures a Lexer.
type Options struct {
	// Reporter receives lexical diagnostics; nil discards them. The lexer
	// always keeps going after reporting: downstream phases work on the
	// token stream regardless.
	Reporter diag.Reporter
	// TabSize is the tab stop used when measuring indentation columns.
	// Zero means the Python default of 8.
	TabSize uint32
}

func (o Options) tabSize() uint32 {
	if o.TabSize == 0 {
		return 8
	}
	return o.TabSize
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}

func (lx *Lexer) warnLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevWarning, sp, msg, nil)
	}
}
