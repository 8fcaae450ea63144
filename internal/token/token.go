package token

import (
	"pyapi/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsKeyword reports whether the token is a Python keyword.
func (t Token) IsKeyword() bool {
	return t.Kind >= KwFalse && t.Kind <= KwYield
}

// IsDefinitionKeyword reports whether the token opens a function or class
// definition.
func (t Token) IsDefinitionKeyword() bool {
	return t.Kind == KwDef || t.Kind == KwClass
}

// IsLiteral reports whether the token is a number or string literal.
func (t Token) IsLiteral() bool {
	return t.Kind == Number || t.Kind == String
}

// IsStructural reports whether the token carries line structure rather
// than program content.
func (t Token) IsStructural() bool {
	switch t.Kind {
	case Newline, NL, Indent, Dedent, Comment:
		return true
	default:
		return false
	}
}

// IsOpenBracket reports whether the token opens a bracketed region for
// implicit line joining.
func (t Token) IsOpenBracket() bool {
	switch t.Kind {
	case LParen, LBracket, LBrace:
		return true
	default:
		return false
	}
}

// IsCloseBracket reports whether the token closes a bracketed region.
func (t Token) IsCloseBracket() bool {
	switch t.Kind {
	case RParen, RBracket, RBrace:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }
