package extract

import (
	"pyapi/internal/token"
)

// readSignature captures the header starting at the definition keyword
// tokens[start] and returns the definition together with the index of
// the first token after it.
//
// Only round parens adjust the nesting depth, so the first colon outside
// parens ends the header. A colon inside square or curly brackets on the
// header line (a dict-valued default, a lambda in a subscript) therefore
// cuts the capture short. That asymmetry is long-standing extraction
// behavior and stays.
func readSignature(tokens []token.Token, start int, opts Options) (*Definition, int, error) {
	depth := 0
	i := start
	var captured []token.Token

header:
	for {
		if i >= len(tokens) || tokens[i].Kind == token.EOF {
			sp := tokens[start].Span
			if len(captured) > 0 {
				sp = sp.Cover(captured[len(captured)-1].Span)
			}
			return nil, 0, streamExhausted(sp)
		}
		tok := tokens[i]
		captured = append(captured, tok)
		i++

		switch tok.Kind {
		case token.LParen:
			depth++
		case token.RParen:
			depth--
		case token.Colon:
			if depth == 0 {
				break header
			}
		}
	}

	if !opts.Docstrings {
		return &Definition{Tokens: captured}, i, nil
	}

	// Look ahead over the structural run after the colon. It is committed
	// only when a String shows up in it; otherwise the cursor stays right
	// after the colon and the run is re-scanned as ordinary body tokens.
	j := i
	sawString := false
lookahead:
	for j < len(tokens) {
		switch tokens[j].Kind {
		case token.Newline, token.Indent:
		case token.String:
			sawString = true
		default:
			break lookahead
		}
		j++
	}
	if sawString {
		captured = append(captured, tokens[i:j]...)
		i = j
	}
	return &Definition{Tokens: captured}, i, nil
}
