package diag_test

import (
	"testing"

	"pyapi/internal/diag"
	"pyapi/internal/source"
)

func TestBagLimit(t *testing.T) {
	bag := diag.NewBag(2)
	d := diag.Diagnostic{Severity: diag.SevError, Code: diag.LexUnknownChar}

	if !bag.Add(d) || !bag.Add(d) {
		t.Fatal("first two adds should succeed")
	}
	if bag.Add(d) {
		t.Error("third add should be dropped")
	}
	if bag.Len() != 2 {
		t.Errorf("Len = %d, want 2", bag.Len())
	}
	if !bag.HasErrors() {
		t.Error("expected HasErrors")
	}
}

func TestBagSortAndDedup(t *testing.T) {
	bag := diag.NewBag(10)
	sp := func(start uint32) source.Span { return source.Span{File: 0, Start: start, End: start + 1} }

	bag.Add(diag.Diagnostic{Severity: diag.SevWarning, Code: diag.LexBadIndent, Primary: sp(9)})
	bag.Add(diag.Diagnostic{Severity: diag.SevError, Code: diag.LexUnknownChar, Primary: sp(3)})
	bag.Add(diag.Diagnostic{Severity: diag.SevError, Code: diag.LexUnknownChar, Primary: sp(3)})

	bag.Sort()
	bag.Dedup()

	items := bag.Items()
	if len(items) != 2 {
		t.Fatalf("after dedup Len = %d, want 2", len(items))
	}
	if items[0].Primary.Start != 3 || items[1].Primary.Start != 9 {
		t.Errorf("unexpected order: %v", items)
	}
}

func TestCodeID(t *testing.T) {
	tests := []struct {
		code diag.Code
		want string
	}{
		{diag.LexUnknownChar, "LEX1001"},
		{diag.ExtStreamExhausted, "EXT2001"},
		{diag.IOLoadFileError, "IO4001"},
		{diag.UnknownCode, "E0000"},
	}
	for _, tt := range tests {
		if got := tt.code.ID(); got != tt.want {
			t.Errorf("Code(%d).ID() = %q, want %q", tt.code, got, tt.want)
		}
	}
}
