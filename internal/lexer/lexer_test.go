package lexer_test

import (
	"testing"

	"shaderlint/internal/diag"
	"shaderlint/internal/lexer"
	"shaderlint/internal/source"
	"shaderlint/internal/token"
)

// testReporter collects every diagnostic the lexer reports.
type testReporter struct {
	diagnostics []diag.Diagnostic
}

func (r *testReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note, fixes []diag.Fix) {
	r.diagnostics = append(r.diagnostics, diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
		Notes:    notes,
		Fixes:    fixes,
	})
}

func (r *testReporter) count(code diag.Code) int {
	n := 0
	for _, d := range r.diagnostics {
		if d.Code == code {
			n++
		}
	}
	return n
}

func makeTestLexer(input string) (*lexer.Lexer, *testReporter) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.frag", []byte(input))
	file := fs.Get(fileID)

	reporter := &testReporter{}
	return lexer.New(file, lexer.Options{Reporter: reporter}), reporter
}

func kindsOf(toks []token.Token) []token.Kind {
	kinds := make([]token.Kind, 0, len(toks))
	for _, t := range toks {
		kinds = append(kinds, t.Kind)
	}
	return kinds
}

func TestStageIODeclaration(t *testing.T) {
	lx, rep := makeTestLexer("layout(location = 0) in vec3 position;")
	toks := lx.Tokens()

	want := []token.Kind{
		token.KwLayout, token.LParen, token.Ident, token.Assign, token.IntLit,
		token.RParen, token.KwIn, token.Ident, token.Ident, token.Semicolon,
		token.EOF,
	}
	got := kindsOf(toks)
	if len(got) != len(want) {
		t.Fatalf("token count = %d, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d = %s, want %s", i, got[i], want[i])
		}
	}
	if toks[2].Text != "location" {
		t.Errorf("layout key text = %q, want %q", toks[2].Text, "location")
	}
	if len(rep.diagnostics) != 0 {
		t.Errorf("unexpected diagnostics: %v", rep.diagnostics)
	}
}

func TestNumberLiterals(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
		text  string
	}{
		{"0", token.IntLit, "0"},
		{"123", token.IntLit, "123"},
		{"0x1F", token.IntLit, "0x1F"},
		{"7u", token.UintLit, "7u"},
		{"7U", token.UintLit, "7U"},
		{"1.0", token.FloatLit, "1.0"},
		{".5", token.FloatLit, ".5"},
		{"1.", token.FloatLit, "1."},
		{"1e-3", token.FloatLit, "1e-3"},
		{"2.5e+10", token.FloatLit, "2.5e+10"},
		{"2.0f", token.FloatLit, "2.0f"},
		{"3lf", token.FloatLit, "3lf"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			lx, rep := makeTestLexer(tt.input)
			tok := lx.Next()
			if tok.Kind != tt.kind {
				t.Errorf("kind = %s, want %s", tok.Kind, tt.kind)
			}
			if tok.Text != tt.text {
				t.Errorf("text = %q, want %q", tok.Text, tt.text)
			}
			if len(rep.diagnostics) != 0 {
				t.Errorf("unexpected diagnostics: %v", rep.diagnostics)
			}
		})
	}
}

func TestDirectiveIsOneOpaqueToken(t *testing.T) {
	lx, _ := makeTestLexer("#version 450\nvoid main() {}")
	tok := lx.Next()
	if tok.Kind != token.Directive {
		t.Fatalf("kind = %s, want Directive", tok.Kind)
	}
	if tok.Text != "#version 450" {
		t.Errorf("text = %q, want %q", tok.Text, "#version 450")
	}
	next := lx.Next()
	if next.Kind != token.Ident || next.Text != "void" {
		t.Errorf("token after directive = %s %q, want Ident \"void\"", next.Kind, next.Text)
	}
}

func TestDirectiveLineContinuation(t *testing.T) {
	lx, _ := makeTestLexer("#define FOO 1 \\\n+ 2\nfoo")
	tok := lx.Next()
	if tok.Kind != token.Directive {
		t.Fatalf("kind = %s, want Directive", tok.Kind)
	}
	next := lx.Next()
	if next.Kind != token.Ident || next.Text != "foo" {
		t.Errorf("token after directive = %s %q, want Ident \"foo\"", next.Kind, next.Text)
	}
}

func TestCommentTrivia(t *testing.T) {
	lx, _ := makeTestLexer("// leading comment\nfoo /* inline */ bar")
	first := lx.Next()
	if first.Kind != token.Ident || first.Text != "foo" {
		t.Fatalf("first token = %s %q", first.Kind, first.Text)
	}
	hasComment := false
	for _, tr := range first.Leading {
		if tr.IsComment() {
			hasComment = true
		}
	}
	if !hasComment {
		t.Error("expected a comment in leading trivia of first token")
	}

	second := lx.Next()
	if second.Kind != token.Ident || second.Text != "bar" {
		t.Fatalf("second token = %s %q", second.Kind, second.Text)
	}
	hasBlock := false
	for _, tr := range second.Leading {
		if tr.Kind == token.TriviaBlockComment {
			hasBlock = true
		}
	}
	if !hasBlock {
		t.Error("expected block comment in leading trivia of second token")
	}
}

func TestUnterminatedBlockComment(t *testing.T) {
	lx, rep := makeTestLexer("foo /* never closed")
	for {
		if lx.Next().Kind == token.EOF {
			break
		}
	}
	if rep.count(diag.LexUnterminatedBlockComment) != 1 {
		t.Errorf("unterminated-comment diagnostics = %d, want 1", rep.count(diag.LexUnterminatedBlockComment))
	}
}

func TestUnknownCharacterRecovers(t *testing.T) {
	lx, rep := makeTestLexer("a @ b")
	toks := lx.Tokens()
	if rep.count(diag.LexUnknownChar) != 1 {
		t.Fatalf("unknown-char diagnostics = %d, want 1", rep.count(diag.LexUnknownChar))
	}
	// the bad byte becomes an Invalid token; lexing continues
	want := []token.Kind{token.Ident, token.Invalid, token.Ident, token.EOF}
	got := kindsOf(toks)
	if len(got) != len(want) {
		t.Fatalf("tokens = %v, want kinds %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestTwoCharOperators(t *testing.T) {
	lx, _ := makeTestLexer("a += b && c << 2; i++;")
	want := []token.Kind{
		token.Ident, token.PlusAssign, token.Ident, token.AndAnd, token.Ident,
		token.Shl, token.IntLit, token.Semicolon,
		token.Ident, token.PlusPlus, token.Semicolon, token.EOF,
	}
	got := kindsOf(lx.Tokens())
	if len(got) != len(want) {
		t.Fatalf("tokens = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestKeywordsVersusIdents(t *testing.T) {
	lx, _ := makeTestLexer("uniform inout flat myname")
	toks := lx.Tokens()
	want := []token.Kind{token.KwUniform, token.KwInout, token.KwFlat, token.Ident, token.EOF}
	got := kindsOf(toks)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestEOFIsSticky(t *testing.T) {
	lx, _ := makeTestLexer("")
	for i := 0; i < 3; i++ {
		if tok := lx.Next(); tok.Kind != token.EOF {
			t.Fatalf("call %d: kind = %s, want EOF", i, tok.Kind)
		}
	}
}
