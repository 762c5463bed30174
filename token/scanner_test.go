package token

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func types(toks []Token) []TokenType {
	var res []TokenType
	for i := range toks {
		res = append(res, toks[i].Type)
	}
	return res
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		in   string
		want []TokenType
	}{
		{in: ``, want: nil},
		{in: " \t\n", want: nil},
		{in: `{}`, want: []TokenType{TCurlyOpen, TCurlyClose}},
		{in: `[1, -2.5]`, want: []TokenType{TSquareOpen, TNumber, TComma, TNumber, TSquareClose}},
		{in: `{"a" : true}`, want: []TokenType{TCurlyOpen, TString, TColon, TTrue, TCurlyClose}},
		{in: `[false,null]`, want: []TokenType{TSquareOpen, TFalse, TComma, TNull, TSquareClose}},
		{in: "   1", want: []TokenType{TNumber}},
	}
	for _, tt := range tests {
		toks, err := Tokenize([]byte(tt.in))
		if err != nil {
			t.Errorf("%q: %v", tt.in, err)
			continue
		}
		if diff := cmp.Diff(tt.want, types(toks)); diff != "" {
			t.Errorf("%q (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestTokenizeBytes(t *testing.T) {
	toks, err := Tokenize([]byte(`{"k\"":12e3}`))
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for i := range toks {
		got = append(got, string(toks[i].Bytes))
	}
	want := []string{`{`, `"k\""`, `:`, `12e3`, `}`}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestTokenizeUnknownWord(t *testing.T) {
	_, err := Tokenize([]byte(`[nope]`))
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestNextConsumesBarewords(t *testing.T) {
	s := NewScanner([]byte(`  true]`))
	tok := s.Next()
	if tok.Type != TTrue {
		t.Fatalf("got %s", tok.Type)
	}
	if s.Offset() != 6 {
		t.Errorf("offset %d, want 6", s.Offset())
	}
	if tok.Pos.I != 2 {
		t.Errorf("pos %d, want 2", tok.Pos.I)
	}
	if tok = s.Next(); tok.Type != TSquareClose {
		t.Errorf("got %s", tok.Type)
	}
	if s.Offset() != 6 {
		t.Errorf("structural token consumed")
	}

	s = NewScanner([]byte(`truex,`))
	if tok = s.Next(); tok.Type != TNone || string(tok.Bytes) != "truex" {
		t.Errorf("got %s %q", tok.Type, tok.Bytes)
	}
	if tok.EOF() {
		t.Errorf("bareword reported as EOF")
	}
	if tok = s.Next(); tok.Type != TComma {
		t.Errorf("got %s", tok.Type)
	}
	s.Advance()
	if tok = s.Next(); !tok.EOF() {
		t.Errorf("expected EOF, got %s", tok.Info())
	}
}

func TestWord(t *testing.T) {
	tests := []struct{ in, want string }{
		{"123,", "123"},
		{"-1.5e3}", "-1.5e3"},
		{"12 3", "12"},
		{`1"`, "1"},
		{"1:2", "1"},
		{"1 2", "1"},
		{"abc", "abc"},
	}
	for _, tt := range tests {
		s := NewScanner([]byte(tt.in))
		if got := string(s.Word()); got != tt.want {
			t.Errorf("Word(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPos(t *testing.T) {
	doc := NewPosDoc([]byte("ab\ncd\nef"))
	tests := []struct{ off, line, col int }{
		{0, 0, 0},
		{1, 0, 1},
		{3, 1, 0},
		{4, 1, 1},
		{7, 2, 1},
		{99, 2, 2},
	}
	for _, tt := range tests {
		l, c := doc.LineCol(tt.off)
		if l != tt.line || c != tt.col {
			t.Errorf("LineCol(%d) = %d,%d want %d,%d", tt.off, l, c, tt.line, tt.col)
		}
	}
}
