package diagfmt_test

import (
	"encoding/json"
	"strings"
	"testing"

	"pyapi/internal/diag"
	"pyapi/internal/diagfmt"
	"pyapi/internal/lexer"
	"pyapi/internal/source"
	"pyapi/internal/token"
)

func TestPrettyHeadingAndUnderline(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("bad.py", []byte("x = $z\n"))

	bag := diag.NewBag(8)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.LexUnknownChar,
		Message:  "unexpected character '$'",
		Primary:  source.Span{File: fileID, Start: 4, End: 5},
	})

	var sb strings.Builder
	diagfmt.Pretty(&sb, bag, fs, diagfmt.PrettyOpts{PathMode: diagfmt.PathModeBasename})
	out := sb.String()

	if !strings.Contains(out, "bad.py:1:5: error LEX1001: unexpected character '$'") {
		t.Errorf("missing heading in output:\n%s", out)
	}
	if !strings.Contains(out, "  x = $z\n      ^\n") {
		t.Errorf("missing context underline in output:\n%s", out)
	}
}

func TestPrettyMultiByteUnderline(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("wide.py", []byte("name == value\n"))

	bag := diag.NewBag(8)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevWarning,
		Code:     diag.LexBadIndent,
		Message:  "example",
		Primary:  source.Span{File: fileID, Start: 5, End: 7},
	})

	var sb strings.Builder
	diagfmt.Pretty(&sb, bag, fs, diagfmt.PrettyOpts{PathMode: diagfmt.PathModeBasename})
	if !strings.Contains(sb.String(), "     ^~\n") {
		t.Errorf("underline should span the two-byte token:\n%s", sb.String())
	}
}

func TestFormatTokensPretty(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("toks.py", []byte("def f():\n"))
	file := fs.Get(fileID)
	tokens := lexer.ScanAll(file, lexer.Options{})

	var sb strings.Builder
	if err := diagfmt.FormatTokensPretty(&sb, tokens, fs); err != nil {
		t.Fatalf("FormatTokensPretty: %v", err)
	}
	out := sb.String()
	if !strings.Contains(out, "KwDef") || !strings.Contains(out, `"def"`) {
		t.Errorf("missing def token line:\n%s", out)
	}
	if !strings.Contains(out, "at 1:1-1:4") {
		t.Errorf("missing resolved position:\n%s", out)
	}
}

func TestFormatTokensJSON(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("toks.py", []byte("x\n"))
	tokens := lexer.ScanAll(fs.Get(fileID), lexer.Options{})

	var sb strings.Builder
	if err := diagfmt.FormatTokensJSON(&sb, tokens); err != nil {
		t.Fatalf("FormatTokensJSON: %v", err)
	}

	var decoded []diagfmt.TokenOutput
	if err := json.Unmarshal([]byte(sb.String()), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded) == 0 || decoded[0].Kind != token.Ident.String() {
		t.Errorf("unexpected decoded tokens: %+v", decoded)
	}
}

func TestJSONDiagnostics(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("j.py", []byte("'oops\n"))

	bag := diag.NewBag(8)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.LexUnterminatedString,
		Message:  "unterminated string literal",
		Primary:  source.Span{File: fileID, Start: 0, End: 5},
	})

	var sb strings.Builder
	err := diagfmt.JSON(&sb, bag, fs, diagfmt.JSONOpts{
		IncludePositions: true,
		PathMode:         diagfmt.PathModeBasename,
	})
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}

	var out diagfmt.DiagnosticsOutput
	if err := json.Unmarshal([]byte(sb.String()), &out); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(out.Diagnostics) != 1 {
		t.Fatalf("diagnostics = %d, want 1", len(out.Diagnostics))
	}
	d := out.Diagnostics[0]
	if d.Code != "LEX1002" || d.Location.StartLine != 1 {
		t.Errorf("unexpected diagnostic: %+v", d)
	}
}
