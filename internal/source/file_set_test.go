package source_test

import (
	"testing"

	"shaderlint/internal/source"
)

func TestResolveLineCol(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.frag", []byte("abc\ndef\n\nghij"))

	tests := []struct {
		off  uint32
		line uint32
		col  uint32
	}{
		{0, 1, 1},  // 'a'
		{2, 1, 3},  // 'c'
		{3, 1, 4},  // the newline itself
		{4, 2, 1},  // 'd'
		{8, 3, 1},  // empty line
		{9, 4, 1},  // 'g'
		{12, 4, 4}, // 'j'
	}
	for _, tt := range tests {
		start, _ := fs.Resolve(source.Span{File: id, Start: tt.off, End: tt.off})
		if start.Line != tt.line || start.Col != tt.col {
			t.Errorf("offset %d = %d:%d, want %d:%d", tt.off, start.Line, start.Col, tt.line, tt.col)
		}
	}
}

func TestGetLine(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.frag", []byte("first\nsecond\nthird"))
	f := fs.Get(id)

	tests := []struct {
		line uint32
		want string
	}{
		{0, ""},
		{1, "first"},
		{2, "second"},
		{3, "third"},
		{4, ""},
	}
	for _, tt := range tests {
		if got := f.GetLine(tt.line); got != tt.want {
			t.Errorf("GetLine(%d) = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestTextClampsSpan(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.frag", []byte("hello"))
	f := fs.Get(id)

	if got := f.Text(source.Span{File: id, Start: 1, End: 4}); got != "ell" {
		t.Errorf("Text = %q, want %q", got, "ell")
	}
	if got := f.Text(source.Span{File: id, Start: 2, End: 99}); got != "llo" {
		t.Errorf("out-of-range end: Text = %q, want %q", got, "llo")
	}
	if got := f.Text(source.Span{File: id, Start: 99, End: 100}); got != "" {
		t.Errorf("out-of-range start: Text = %q, want empty", got)
	}
}

func TestNormalization(t *testing.T) {
	content := []byte("\xef\xbb\xbfline\r\nnext")
	stripped, hadBOM := source.RemoveBOM(content)
	if !hadBOM {
		t.Fatal("BOM not detected")
	}
	normalized, hadCRLF := source.NormalizeCRLF(stripped)
	if !hadCRLF {
		t.Fatal("CRLF not detected")
	}
	if string(normalized) != "line\nnext" {
		t.Errorf("normalized = %q", normalized)
	}

	clean, hadBOM := source.RemoveBOM([]byte("plain"))
	if hadBOM || string(clean) != "plain" {
		t.Errorf("RemoveBOM mangled clean input: %q", clean)
	}
}

func TestIndexPointsAtLatestVersion(t *testing.T) {
	fs := source.NewFileSet()
	fs.AddVirtual("a.frag", []byte("old"))
	second := fs.AddVirtual("a.frag", []byte("new"))

	f, ok := fs.GetByPath("a.frag")
	if !ok {
		t.Fatal("path not indexed")
	}
	if f.ID != second {
		t.Errorf("indexed ID = %d, want %d", f.ID, second)
	}
	if fs.Len() != 2 {
		t.Errorf("Len = %d, want 2", fs.Len())
	}
}

func TestHashDiffersByContent(t *testing.T) {
	fs := source.NewFileSet()
	a := fs.Get(fs.AddVirtual("a.frag", []byte("one")))
	b := fs.Get(fs.AddVirtual("b.frag", []byte("two")))
	c := fs.Get(fs.AddVirtual("c.frag", []byte("one")))

	if a.Hash == b.Hash {
		t.Error("different content produced equal hashes")
	}
	if a.Hash != c.Hash {
		t.Error("equal content produced different hashes")
	}
}
