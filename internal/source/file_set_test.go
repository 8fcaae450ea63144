package source_test

import (
	"testing"

	"pyapi/internal/source"
)

func TestAddVirtualAndGet(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.py", []byte("def f():\n    pass\n"))
	f := fs.Get(id)

	if f.Path != "test.py" {
		t.Errorf("Path = %q, want %q", f.Path, "test.py")
	}
	if f.Flags&source.FileVirtual == 0 {
		t.Error("expected FileVirtual flag")
	}
	if got, ok := fs.GetByPath("test.py"); !ok || got.ID != id {
		t.Errorf("GetByPath = %v, %v", got, ok)
	}
}

func TestResolvePositions(t *testing.T) {
	fs := source.NewFileSet()
	content := "abc\ndef\nghi\n"
	id := fs.AddVirtual("pos.py", []byte(content))

	tests := []struct {
		off      uint32
		line, col uint32
	}{
		{0, 1, 1},  // 'a'
		{2, 1, 3},  // 'c'
		{3, 1, 4},  // '\n' belongs to line 1
		{4, 2, 1},  // 'd'
		{7, 2, 4},  // '\n' of line 2
		{8, 3, 1},  // 'g'
		{10, 3, 3}, // 'i'
	}
	for _, tt := range tests {
		start, _ := fs.Resolve(source.Span{File: id, Start: tt.off, End: tt.off})
		if start.Line != tt.line || start.Col != tt.col {
			t.Errorf("Resolve(off=%d) = %d:%d, want %d:%d", tt.off, start.Line, start.Col, tt.line, tt.col)
		}
	}
}

func TestLineAccess(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("lines.py", []byte("one\ntwo\nthree"))
	f := fs.Get(id)

	if got := f.LineCount(); got != 3 {
		t.Fatalf("LineCount = %d, want 3", got)
	}
	if got := f.Line(2); got != "two" {
		t.Errorf("Line(2) = %q, want %q", got, "two")
	}
	if got := f.Line(4); got != "" {
		t.Errorf("Line(4) = %q, want empty", got)
	}
	if got := f.LineSpan(1, 2); got != "one\ntwo\n" {
		t.Errorf("LineSpan(1,2) = %q, want %q", got, "one\ntwo\n")
	}
	// last line has no trailing newline in the file
	if got := f.LineSpan(2, 3); got != "two\nthree" {
		t.Errorf("LineSpan(2,3) = %q, want %q", got, "two\nthree")
	}
}

func TestSpanCover(t *testing.T) {
	a := source.Span{File: 0, Start: 5, End: 9}
	b := source.Span{File: 0, Start: 2, End: 7}
	got := a.Cover(b)
	if got.Start != 2 || got.End != 9 {
		t.Errorf("Cover = %v", got)
	}

	other := source.Span{File: 1, Start: 0, End: 100}
	if got := a.Cover(other); got != a {
		t.Errorf("Cover across files = %v, want unchanged", got)
	}
}
