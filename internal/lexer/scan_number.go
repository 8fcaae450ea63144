package lexer

import (
	"pyapi/internal/diag"
	"pyapi/internal/token"
)

// scanNumber reads an integer, radix, float, or imaginary literal.
// Underscore separators are accepted between digits.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '0' {
		var pred func(byte) bool
		switch b1 | 0x20 {
		case 'x':
			pred = isHex
		case 'o':
			pred = isOct
		case 'b':
			pred = isBin
		}
		if pred != nil {
			lx.cursor.Bump()
			lx.cursor.Bump()
			if !lx.eatDigits(pred) {
				sp := lx.cursor.SpanFrom(start)
				lx.errLex(diag.LexBadNumber, sp, "radix literal without digits")
				return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
			}
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.Number, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		}
	}

	lx.eatDigits(isDec)
	if lx.cursor.Peek() == '.' {
		lx.cursor.Bump()
		lx.eatDigits(isDec)
	}
	lx.eatExponent()
	if b := lx.cursor.Peek(); b|0x20 == 'j' {
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.Number, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

// eatDigits consumes a run of digits matched by pred, allowing single
// underscores between digits. Reports whether any digit was consumed.
func (lx *Lexer) eatDigits(pred func(byte) bool) bool {
	seen := false
	for {
		b := lx.cursor.Peek()
		if pred(b) {
			seen = true
			lx.cursor.Bump()
			continue
		}
		if b == '_' {
			if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '_' && pred(b1) {
				lx.cursor.Bump()
				continue
			}
		}
		return seen
	}
}

// eatExponent consumes e/E with an optional sign when digits follow.
func (lx *Lexer) eatExponent() {
	b0, b1, ok := lx.cursor.Peek2()
	if !ok || b0|0x20 != 'e' {
		return
	}
	if isDec(b1) {
		lx.cursor.Bump()
		lx.eatDigits(isDec)
		return
	}
	if b1 == '+' || b1 == '-' {
		if c0, c1, c2, ok3 := lx.cursor.Peek3(); ok3 && c0|0x20 == 'e' && (c1 == '+' || c1 == '-') && isDec(c2) {
			lx.cursor.Bump()
			lx.cursor.Bump()
			lx.eatDigits(isDec)
		}
	}
}
