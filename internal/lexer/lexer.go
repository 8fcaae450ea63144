package lexer

import (
	"pyapi/internal/diag"
	"pyapi/internal/source"
	"pyapi/internal/token"
)

// Lexer turns Python source bytes into a token stream following the shape
// of CPython's tokenize module: keywords are classified by table, logical
// newlines are distinguished from blank/joined lines, and indentation is
// reported as Indent/Dedent tokens driven by an indent stack.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options

	// step() may produce several tokens at once (dedent runs, comment+NL),
	// so output goes through a small queue.
	queue []token.Token
	qhead int

	indents        []uint32 // indentation columns, always starts with 0
	depth          int      // open bracket nesting; newlines inside are NL
	atLineStart    bool
	lineHasContent bool
	done           bool
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:        file,
		cursor:      NewCursor(file),
		opts:        opts,
		indents:     []uint32{0},
		atLineStart: true,
	}
}

// Next returns the next token. After the EOF token was produced, every
// further call returns EOF again.
func (lx *Lexer) Next() token.Token {
	for {
		if lx.qhead < len(lx.queue) {
			tok := lx.queue[lx.qhead]
			lx.qhead++
			if lx.qhead == len(lx.queue) {
				lx.queue = lx.queue[:0]
				lx.qhead = 0
			}
			return tok
		}
		if lx.done {
			return token.Token{Kind: token.EOF, Span: lx.emptySpan()}
		}
		lx.step()
	}
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	for lx.qhead >= len(lx.queue) {
		if lx.done {
			return token.Token{Kind: token.EOF, Span: lx.emptySpan()}
		}
		lx.step()
	}
	return lx.queue[lx.qhead]
}

// ScanAll collects every token through EOF (inclusive).
func ScanAll(file *source.File, opts Options) []token.Token {
	lx := New(file, opts)
	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens
		}
	}
}

func (lx *Lexer) emit(tok token.Token) {
	switch tok.Kind {
	case token.Newline, token.NL, token.Indent, token.Dedent, token.Comment, token.EOF:
	default:
		lx.lineHasContent = true
	}
	lx.queue = append(lx.queue, tok)
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

// step produces at least one token or marks the lexer done.
func (lx *Lexer) step() {
	if lx.atLineStart && lx.depth == 0 {
		lx.stepLineStart()
		return
	}

	lx.skipSpaces()
	if lx.cursor.EOF() {
		lx.finish()
		return
	}

	ch := lx.cursor.Peek()
	switch {
	case ch == '\n':
		start := lx.cursor.Mark()
		lx.cursor.Bump()
		sp := lx.cursor.SpanFrom(start)
		if lx.depth > 0 {
			lx.emit(token.Token{Kind: token.NL, Span: sp, Text: "\n"})
		} else {
			lx.emit(token.Token{Kind: token.Newline, Span: sp, Text: "\n"})
			lx.atLineStart = true
			lx.lineHasContent = false
		}

	case ch == '\\':
		start := lx.cursor.Mark()
		lx.cursor.Bump()
		if lx.cursor.Eat('\n') {
			// explicit line joining produces no token
			return
		}
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexLoneContinuation, sp, "unexpected character after line continuation")
		lx.emit(token.Token{Kind: token.Invalid, Span: sp, Text: "\\"})

	case ch == '#':
		lx.emit(lx.scanComment())

	case isQuote(ch):
		lx.emit(lx.scanString(lx.cursor.Mark()))

	case isIdentStartByte(ch) || ch >= utf8RuneSelf:
		lx.emit(lx.scanIdentOrKeyword())

	case isDec(ch) || lx.isNumberAfterDot():
		lx.emit(lx.scanNumber())

	default:
		lx.emit(lx.scanOperatorOrPunct())
	}
}

// stepLineStart measures indentation at the start of a logical line and
// emits Indent/Dedent tokens. Blank and comment-only lines end in NL and
// leave the indent stack untouched.
func (lx *Lexer) stepLineStart() {
	lineStart := lx.cursor.Mark()
	col := uint32(0)
	ts := lx.opts.tabSize()
	for {
		switch lx.cursor.Peek() {
		case ' ':
			col++
			lx.cursor.Bump()
			continue
		case '\t':
			col = (col/ts + 1) * ts
			lx.cursor.Bump()
			continue
		case '\x0c':
			// form feed resets the column, as in tokenize
			col = 0
			lx.cursor.Bump()
			continue
		}
		break
	}

	if lx.cursor.EOF() {
		lx.finish()
		return
	}

	switch lx.cursor.Peek() {
	case '\n':
		start := lx.cursor.Mark()
		lx.cursor.Bump()
		lx.emit(token.Token{Kind: token.NL, Span: lx.cursor.SpanFrom(start), Text: "\n"})
		return // still at line start

	case '#':
		lx.emit(lx.scanComment())
		if lx.cursor.Peek() == '\n' {
			start := lx.cursor.Mark()
			lx.cursor.Bump()
			lx.emit(token.Token{Kind: token.NL, Span: lx.cursor.SpanFrom(start), Text: "\n"})
		}
		return // still at line start
	}

	top := lx.indents[len(lx.indents)-1]
	switch {
	case col > top:
		lx.indents = append(lx.indents, col)
		sp := lx.cursor.SpanFrom(lineStart)
		lx.emit(token.Token{Kind: token.Indent, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])})

	case col < top:
		for len(lx.indents) > 1 && lx.indents[len(lx.indents)-1] > col {
			lx.indents = lx.indents[:len(lx.indents)-1]
			lx.emit(token.Token{Kind: token.Dedent, Span: lx.emptySpan()})
		}
		if lx.indents[len(lx.indents)-1] != col {
			lx.errLex(diag.LexBadIndent, lx.cursor.SpanFrom(lineStart),
				"unindent does not match any outer indentation level")
			lx.indents = append(lx.indents, col)
		}
	}

	lx.atLineStart = false
	lx.lineHasContent = false
}

// finish ends a possibly newline-less final logical line, unwinds the
// indent stack, and emits EOF.
func (lx *Lexer) finish() {
	if lx.lineHasContent {
		lx.emit(token.Token{Kind: token.Newline, Span: lx.emptySpan()})
		lx.lineHasContent = false
	}
	for len(lx.indents) > 1 {
		lx.indents = lx.indents[:len(lx.indents)-1]
		lx.emit(token.Token{Kind: token.Dedent, Span: lx.emptySpan()})
	}
	lx.emit(token.Token{Kind: token.EOF, Span: lx.emptySpan()})
	lx.done = true
}

func (lx *Lexer) skipSpaces() {
	for {
		switch lx.cursor.Peek() {
		case ' ', '\t', '\x0c':
			lx.cursor.Bump()
		default:
			return
		}
	}
}

// scanComment consumes '#' through the byte before the newline.
func (lx *Lexer) scanComment() token.Token {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.Comment, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
