package extract

import (
	"strings"

	"pyapi/internal/source"
	"pyapi/internal/token"
)

// Definition is one captured def/class header: the contiguous token run
// from the keyword through the depth-zero colon, plus the docstring run
// when one was committed.
type Definition struct {
	Tokens []token.Token
}

// Keyword returns the token kind that opened the definition,
// token.KwDef or token.KwClass.
func (d Definition) Keyword() token.Kind {
	return d.Tokens[0].Kind
}

// IsClass reports whether the definition is a class.
func (d Definition) IsClass() bool {
	return d.Keyword() == token.KwClass
}

// Span covers the whole captured run.
func (d Definition) Span() source.Span {
	sp := d.Tokens[0].Span
	return sp.Cover(d.Tokens[len(d.Tokens)-1].Span)
}

// Name returns the defined name: the identifier directly after the
// keyword. Anything else there means the header is malformed.
func (d Definition) Name() (string, error) {
	if len(d.Tokens) < 2 || d.Tokens[1].Kind != token.Ident {
		return "", missingName(d.Span())
	}
	return d.Tokens[1].Text, nil
}

// IsPrivate reports whether the defined name starts with an underscore.
// Dunder names like __init__ count as private.
func (d Definition) IsPrivate() (bool, error) {
	name, err := d.Name()
	if err != nil {
		return false, err
	}
	return strings.HasPrefix(name, "_"), nil
}
