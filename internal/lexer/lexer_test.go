package lexer_test

import (
	"testing"

	"pyapi/internal/diag"
	"pyapi/internal/lexer"
	"pyapi/internal/source"
	"pyapi/internal/token"
)

// testReporter collects every diagnostic the lexer reports.
type testReporter struct {
	diagnostics []diag.Diagnostic
}

func (r *testReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note) {
	r.diagnostics = append(r.diagnostics, diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
		Notes:    notes,
	})
}

func (r *testReporter) has(code diag.Code) bool {
	for _, d := range r.diagnostics {
		if d.Code == code {
			return true
		}
	}
	return false
}

func makeTestLexer(t *testing.T, input string) (*lexer.Lexer, *testReporter) {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.py", []byte(input))
	file := fs.Get(fileID)

	reporter := &testReporter{}
	return lexer.New(file, lexer.Options{Reporter: reporter}), reporter
}

func collectKinds(lx *lexer.Lexer) []token.Kind {
	var kinds []token.Kind
	for {
		tok := lx.Next()
		kinds = append(kinds, tok.Kind)
		if tok.Kind == token.EOF {
			return kinds
		}
	}
}

func expectKinds(t *testing.T, input string, want []token.Kind) *testReporter {
	t.Helper()
	lx, reporter := makeTestLexer(t, input)
	got := collectKinds(lx)
	if len(got) != len(want) {
		t.Fatalf("token count = %d, want %d\ninput: %q\ngot:  %v\nwant: %v", len(got), len(want), input, got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("token[%d] = %v, want %v\ninput: %q\ngot:  %v", i, got[i], want[i], input, got)
		}
	}
	return reporter
}

func TestSimpleStatement(t *testing.T) {
	expectKinds(t, "x = 1\n", []token.Kind{
		token.Ident, token.Assign, token.Number, token.Newline, token.EOF,
	})
}

func TestKeywordClassification(t *testing.T) {
	lx, _ := makeTestLexer(t, "def definition\n")
	first := lx.Next()
	second := lx.Next()
	if first.Kind != token.KwDef {
		t.Errorf("first token = %v, want KwDef", first.Kind)
	}
	if second.Kind != token.Ident || second.Text != "definition" {
		t.Errorf("second token = %v %q, want Ident \"definition\"", second.Kind, second.Text)
	}
}

func TestFunctionBlock(t *testing.T) {
	expectKinds(t, "def foo():\n    pass\n", []token.Kind{
		token.KwDef, token.Ident, token.LParen, token.RParen, token.Colon, token.Newline,
		token.Indent, token.KwPass, token.Newline,
		token.Dedent, token.EOF,
	})
}

func TestBlankAndCommentLinesAreNL(t *testing.T) {
	input := "x = 1\n\n# comment\ny = 2\n"
	expectKinds(t, input, []token.Kind{
		token.Ident, token.Assign, token.Number, token.Newline,
		token.NL,
		token.Comment, token.NL,
		token.Ident, token.Assign, token.Number, token.Newline,
		token.EOF,
	})
}

func TestBlankLineInsideBlockKeepsIndent(t *testing.T) {
	input := "def f():\n    a = 1\n\n    b = 2\n"
	expectKinds(t, input, []token.Kind{
		token.KwDef, token.Ident, token.LParen, token.RParen, token.Colon, token.Newline,
		token.Indent, token.Ident, token.Assign, token.Number, token.Newline,
		token.NL,
		token.Ident, token.Assign, token.Number, token.Newline,
		token.Dedent, token.EOF,
	})
}

func TestImplicitLineJoining(t *testing.T) {
	input := "f(\n    1,\n    2,\n)\n"
	expectKinds(t, input, []token.Kind{
		token.Ident, token.LParen, token.NL,
		token.Number, token.Comma, token.NL,
		token.Number, token.Comma, token.NL,
		token.RParen, token.Newline,
		token.EOF,
	})
}

func TestExplicitLineJoining(t *testing.T) {
	expectKinds(t, "x = 1 + \\\n    2\n", []token.Kind{
		token.Ident, token.Assign, token.Number, token.Plus, token.Number, token.Newline,
		token.EOF,
	})
}

func TestTripleQuotedStringIsOneToken(t *testing.T) {
	lx, _ := makeTestLexer(t, "\"\"\"line one\nline two\n\"\"\"\n")
	tok := lx.Next()
	if tok.Kind != token.String {
		t.Fatalf("kind = %v, want String", tok.Kind)
	}
	if tok.Text != "\"\"\"line one\nline two\n\"\"\"" {
		t.Errorf("text = %q", tok.Text)
	}
	if next := lx.Next(); next.Kind != token.Newline {
		t.Errorf("after string = %v, want Newline", next.Kind)
	}
}

func TestStringPrefixes(t *testing.T) {
	for _, input := range []string{"r'a'", "B'a'", "f'a'", "rb'a'", "fr'a'", "Rb'a'", "u'a'"} {
		lx, _ := makeTestLexer(t, input+"\n")
		tok := lx.Next()
		if tok.Kind != token.String {
			t.Errorf("%q: kind = %v, want String", input, tok.Kind)
		}
		if tok.Text != input {
			t.Errorf("%q: text = %q", input, tok.Text)
		}
	}
}

func TestPrefixLikeIdentStaysIdent(t *testing.T) {
	lx, _ := makeTestLexer(t, "rb = 1\n")
	tok := lx.Next()
	if tok.Kind != token.Ident || tok.Text != "rb" {
		t.Errorf("got %v %q, want Ident \"rb\"", tok.Kind, tok.Text)
	}
}

func TestEscapedQuoteDoesNotClose(t *testing.T) {
	lx, reporter := makeTestLexer(t, `'it\'s' + x` + "\n")
	tok := lx.Next()
	if tok.Kind != token.String || tok.Text != `'it\'s'` {
		t.Errorf("got %v %q", tok.Kind, tok.Text)
	}
	if len(reporter.diagnostics) != 0 {
		t.Errorf("unexpected diagnostics: %v", reporter.diagnostics)
	}
}

func TestUnterminatedString(t *testing.T) {
	lx, reporter := makeTestLexer(t, "'oops\nx = 1\n")
	tok := lx.Next()
	if tok.Kind != token.Invalid {
		t.Errorf("kind = %v, want Invalid", tok.Kind)
	}
	if !reporter.has(diag.LexUnterminatedString) {
		t.Error("expected LexUnterminatedString diagnostic")
	}
}

func TestKeywordInStringAndComment(t *testing.T) {
	lx, _ := makeTestLexer(t, "s = 'def not_a_def(): pass'  # def neither\n")
	kinds := collectKinds(lx)
	for _, k := range kinds {
		if k == token.KwDef {
			t.Fatal("def inside a string or comment must not become a keyword token")
		}
	}
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		input string
		text  string
	}{
		{"x = 0xFF\n", "0xFF"},
		{"x = 0b1010\n", "0b1010"},
		{"x = 0o755\n", "0o755"},
		{"x = 1_000_000\n", "1_000_000"},
		{"x = 3.14\n", "3.14"},
		{"x = .5\n", ".5"},
		{"x = 1e10\n", "1e10"},
		{"x = 2.5e-3\n", "2.5e-3"},
		{"x = 4j\n", "4j"},
	}
	for _, tt := range tests {
		lx, _ := makeTestLexer(t, tt.input)
		lx.Next() // x
		lx.Next() // =
		tok := lx.Next()
		if tok.Kind != token.Number || tok.Text != tt.text {
			t.Errorf("%q: got %v %q, want Number %q", tt.input, tok.Kind, tok.Text, tt.text)
		}
	}
}

func TestCompoundOperators(t *testing.T) {
	expectKinds(t, "a := b ** c // d\ne -> f\nx **= 2\n...\n", []token.Kind{
		token.Ident, token.ColonAssign, token.Ident, token.DoubleStar, token.Ident,
		token.DoubleSlash, token.Ident, token.Newline,
		token.Ident, token.Arrow, token.Ident, token.Newline,
		token.Ident, token.DoubleStarAssign, token.Number, token.Newline,
		token.Ellipsis, token.Newline,
		token.EOF,
	})
}

func TestDedentRuns(t *testing.T) {
	input := "if a:\n    if b:\n        pass\nelse:\n    pass\n"
	expectKinds(t, input, []token.Kind{
		token.KwIf, token.Ident, token.Colon, token.Newline,
		token.Indent, token.KwIf, token.Ident, token.Colon, token.Newline,
		token.Indent, token.KwPass, token.Newline,
		token.Dedent, token.Dedent, token.KwElse, token.Colon, token.Newline,
		token.Indent, token.KwPass, token.Newline,
		token.Dedent, token.EOF,
	})
}

func TestInconsistentDedentReported(t *testing.T) {
	lx, reporter := makeTestLexer(t, "if a:\n        pass\n  b\n")
	collectKinds(lx)
	if !reporter.has(diag.LexBadIndent) {
		t.Error("expected LexBadIndent diagnostic")
	}
}

func TestTabStopIndentation(t *testing.T) {
	// a tab advances to the next multiple of 8, so "\tx" and 8 spaces
	// sit at the same indentation level
	input := "if a:\n\tx = 1\n        y = 2\n"
	reporter := expectKinds(t, input, []token.Kind{
		token.KwIf, token.Ident, token.Colon, token.Newline,
		token.Indent, token.Ident, token.Assign, token.Number, token.Newline,
		token.Ident, token.Assign, token.Number, token.Newline,
		token.Dedent, token.EOF,
	})
	if len(reporter.diagnostics) != 0 {
		t.Errorf("unexpected diagnostics: %v", reporter.diagnostics)
	}
}

func TestMissingTrailingNewline(t *testing.T) {
	expectKinds(t, "x = 1", []token.Kind{
		token.Ident, token.Assign, token.Number, token.Newline, token.EOF,
	})
}

func TestEOFInsideBlockUnwindsIndents(t *testing.T) {
	expectKinds(t, "def f():\n    pass", []token.Kind{
		token.KwDef, token.Ident, token.LParen, token.RParen, token.Colon, token.Newline,
		token.Indent, token.KwPass, token.Newline,
		token.Dedent, token.EOF,
	})
}

func TestEOFIsSticky(t *testing.T) {
	lx, _ := makeTestLexer(t, "")
	for i := 0; i < 3; i++ {
		if tok := lx.Next(); tok.Kind != token.EOF {
			t.Fatalf("call %d: kind = %v, want EOF", i, tok.Kind)
		}
	}
}

func TestUnmatchedBracketWarning(t *testing.T) {
	lx, reporter := makeTestLexer(t, "x = )\n")
	collectKinds(lx)
	if !reporter.has(diag.LexUnmatchedBracket) {
		t.Error("expected LexUnmatchedBracket diagnostic")
	}
}

func TestTokenSpansCoverSource(t *testing.T) {
	input := "def foo(a):\n"
	lx, _ := makeTestLexer(t, input)
	tok := lx.Next() // def
	if tok.Span.Start != 0 || tok.Span.End != 3 {
		t.Errorf("def span = [%d,%d), want [0,3)", tok.Span.Start, tok.Span.End)
	}
	tok = lx.Next() // foo
	if tok.Span.Start != 4 || tok.Span.End != 7 {
		t.Errorf("foo span = [%d,%d), want [4,7)", tok.Span.Start, tok.Span.End)
	}
}
