package lexer

import (
	"fmt"

	"pyapi/internal/diag"
	"pyapi/internal/token"
)

// scanOperatorOrPunct reads one operator or delimiter, longest match
// first. Brackets adjust the implicit-joining depth here.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	kind := token.Invalid

	switch b := lx.cursor.Peek(); b {
	case '(':
		lx.cursor.Bump()
		kind = token.LParen
		lx.depth++
	case '[':
		lx.cursor.Bump()
		kind = token.LBracket
		lx.depth++
	case '{':
		lx.cursor.Bump()
		kind = token.LBrace
		lx.depth++
	case ')':
		lx.cursor.Bump()
		kind = token.RParen
		lx.closeBracket(start)
	case ']':
		lx.cursor.Bump()
		kind = token.RBracket
		lx.closeBracket(start)
	case '}':
		lx.cursor.Bump()
		kind = token.RBrace
		lx.closeBracket(start)

	case ',':
		lx.cursor.Bump()
		kind = token.Comma
	case ';':
		lx.cursor.Bump()
		kind = token.Semicolon
	case '~':
		lx.cursor.Bump()
		kind = token.Tilde

	case ':':
		if lx.try2(':', '=') {
			kind = token.ColonAssign
		} else {
			lx.cursor.Bump()
			kind = token.Colon
		}
	case '.':
		if lx.try3('.', '.', '.') {
			kind = token.Ellipsis
		} else {
			lx.cursor.Bump()
			kind = token.Dot
		}
	case '+':
		if lx.try2('+', '=') {
			kind = token.PlusAssign
		} else {
			lx.cursor.Bump()
			kind = token.Plus
		}
	case '-':
		switch {
		case lx.try2('-', '>'):
			kind = token.Arrow
		case lx.try2('-', '='):
			kind = token.MinusAssign
		default:
			lx.cursor.Bump()
			kind = token.Minus
		}
	case '*':
		switch {
		case lx.try3('*', '*', '='):
			kind = token.DoubleStarAssign
		case lx.try2('*', '*'):
			kind = token.DoubleStar
		case lx.try2('*', '='):
			kind = token.StarAssign
		default:
			lx.cursor.Bump()
			kind = token.Star
		}
	case '/':
		switch {
		case lx.try3('/', '/', '='):
			kind = token.DoubleSlashAssign
		case lx.try2('/', '/'):
			kind = token.DoubleSlash
		case lx.try2('/', '='):
			kind = token.SlashAssign
		default:
			lx.cursor.Bump()
			kind = token.Slash
		}
	case '%':
		if lx.try2('%', '=') {
			kind = token.PercentAssign
		} else {
			lx.cursor.Bump()
			kind = token.Percent
		}
	case '@':
		if lx.try2('@', '=') {
			kind = token.AtAssign
		} else {
			lx.cursor.Bump()
			kind = token.At
		}
	case '&':
		if lx.try2('&', '=') {
			kind = token.AmpAssign
		} else {
			lx.cursor.Bump()
			kind = token.Amp
		}
	case '|':
		if lx.try2('|', '=') {
			kind = token.PipeAssign
		} else {
			lx.cursor.Bump()
			kind = token.Pipe
		}
	case '^':
		if lx.try2('^', '=') {
			kind = token.CaretAssign
		} else {
			lx.cursor.Bump()
			kind = token.Caret
		}
	case '<':
		switch {
		case lx.try3('<', '<', '='):
			kind = token.ShlAssign
		case lx.try2('<', '<'):
			kind = token.Shl
		case lx.try2('<', '='):
			kind = token.LtEq
		default:
			lx.cursor.Bump()
			kind = token.Lt
		}
	case '>':
		switch {
		case lx.try3('>', '>', '='):
			kind = token.ShrAssign
		case lx.try2('>', '>'):
			kind = token.Shr
		case lx.try2('>', '='):
			kind = token.GtEq
		default:
			lx.cursor.Bump()
			kind = token.Gt
		}
	case '=':
		if lx.try2('=', '=') {
			kind = token.EqEq
		} else {
			lx.cursor.Bump()
			kind = token.Assign
		}
	case '!':
		if lx.try2('!', '=') {
			kind = token.BangEq
		} else {
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexUnknownChar, sp, "unexpected character '!'")
			return token.Token{Kind: token.Invalid, Span: sp, Text: "!"}
		}

	default:
		lx.cursor.Bump()
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexUnknownChar, sp, fmt.Sprintf("unexpected character %q", rune(b)))
		return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

func (lx *Lexer) closeBracket(start Mark) {
	if lx.depth > 0 {
		lx.depth--
		return
	}
	lx.warnLex(diag.LexUnmatchedBracket, lx.cursor.SpanFrom(start), "unmatched closing bracket")
}
