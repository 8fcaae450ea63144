package lexer

import (
	"fmt"

	"golang.org/x/text/unicode/norm"

	"pyapi/internal/diag"
	"pyapi/internal/token"
)

// Two-letter string prefix combinations Python accepts, lowercased.
// Single letters r/b/f/u are always valid; u never combines.
var stringPrefixPairs = map[string]bool{
	"rb": true,
	"br": true,
	"rf": true,
	"fr": true,
}

func isPrefixLetter(b byte) bool {
	switch b | 0x20 {
	case 'r', 'b', 'f', 'u':
		return true
	}
	return false
}

// tryStringPrefix consumes a valid string prefix when it is directly
// followed by a quote, so r"..." lexes as one String token instead of
// an identifier and a string.
func (lx *Lexer) tryStringPrefix() bool {
	b0, b1, ok := lx.cursor.Peek2()
	if !ok {
		return false
	}
	if isPrefixLetter(b0) && isQuote(b1) {
		lx.cursor.Bump()
		return true
	}
	c0, c1, c2, ok3 := lx.cursor.Peek3()
	if ok3 && isPrefixLetter(c0) && isPrefixLetter(c1) && isQuote(c2) {
		pair := string([]byte{c0 | 0x20, c1 | 0x20})
		if stringPrefixPairs[pair] {
			lx.cursor.Bump()
			lx.cursor.Bump()
			return true
		}
	}
	return false
}

// scanIdentOrKeyword reads an identifier, classifies keywords through the
// keyword table, and NFKC-normalizes non-ASCII names the way CPython does.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()

	if lx.tryStringPrefix() {
		return lx.scanString(start)
	}

	if b := lx.cursor.Peek(); b >= utf8RuneSelf {
		r, _ := lx.peekRune()
		if !isIdentStartRune(r) {
			lx.bumpRune()
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexUnknownChar, sp, fmt.Sprintf("unexpected character %q", r))
			return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		}
	}

	ascii := true
	for {
		b := lx.cursor.Peek()
		if b < utf8RuneSelf {
			if !isIdentContinueByte(b) {
				break
			}
			lx.cursor.Bump()
			continue
		}
		r, _ := lx.peekRune()
		if !isIdentContinueRune(r) {
			break
		}
		ascii = false
		lx.bumpRune()
	}

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])
	if !ascii {
		text = norm.NFKC.String(text)
	}
	if kind, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: kind, Span: sp, Text: text}
	}
	return token.Token{Kind: token.Ident, Span: sp, Text: text}
}
