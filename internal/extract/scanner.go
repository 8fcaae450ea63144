package extract

import (
	"pyapi/internal/token"
)

// Options configures a definition scan.
type Options struct {
	// Docstrings enables the look-ahead that attaches a docstring run to
	// each captured header.
	Docstrings bool
}

// Scanner yields definitions from a token stream in source order.
// Nested definitions come out as separate Definitions: the scan resumes
// right after each captured header, before the nested body tokens.
type Scanner struct {
	tokens []token.Token
	pos    int
	opts   Options
}

func NewScanner(tokens []token.Token, opts Options) *Scanner {
	return &Scanner{tokens: tokens, opts: opts}
}

// Next returns the next definition, or (nil, nil) when the stream is
// exhausted.
func (s *Scanner) Next() (*Definition, error) {
	for s.pos < len(s.tokens) {
		tok := s.tokens[s.pos]
		if tok.Kind == token.EOF {
			break
		}
		if tok.IsDefinitionKeyword() {
			def, next, err := readSignature(s.tokens, s.pos, s.opts)
			if err != nil {
				return nil, err
			}
			s.pos = next
			return def, nil
		}
		s.pos++
	}
	return nil, nil
}

// Scan collects every definition in the stream.
func Scan(tokens []token.Token, opts Options) ([]Definition, error) {
	sc := NewScanner(tokens, opts)
	var defs []Definition
	for {
		def, err := sc.Next()
		if err != nil {
			return nil, err
		}
		if def == nil {
			return defs, nil
		}
		defs = append(defs, *def)
	}
}
