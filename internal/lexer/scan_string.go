package lexer

import (
	"pyapi/internal/diag"
	"pyapi/internal/token"
)

// scanString reads a string or bytes literal. The mark points at the
// literal start, before any r/b/f/u prefix the caller already consumed;
// the cursor sits on the opening quote.
func (lx *Lexer) scanString(start Mark) token.Token {
	quote := lx.cursor.Bump()
	triple := false
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == quote && b1 == quote {
		lx.cursor.Bump()
		lx.cursor.Bump()
		triple = true
	}

	for {
		if lx.cursor.EOF() {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexUnterminatedString, sp, "unterminated string literal")
			return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		}
		b := lx.cursor.Peek()
		switch {
		case b == '\\':
			// a backslashed quote or newline never closes the literal;
			// this holds for raw strings too, and we never decode escapes
			lx.cursor.Bump()
			if !lx.cursor.EOF() {
				lx.cursor.Bump()
			}

		case b == '\n' && !triple:
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexUnterminatedString, sp, "EOL while scanning string literal")
			return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}

		case b == quote && !triple:
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.String, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}

		case b == quote && triple:
			if b0, b1, b2, ok := lx.cursor.Peek3(); ok && b0 == quote && b1 == quote && b2 == quote {
				lx.cursor.Bump()
				lx.cursor.Bump()
				lx.cursor.Bump()
				sp := lx.cursor.SpanFrom(start)
				return token.Token{Kind: token.String, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
			}
			// lone quote inside a triple-quoted literal
			lx.cursor.Bump()

		default:
			lx.cursor.Bump()
		}
	}
}
