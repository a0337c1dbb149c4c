package lexer

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/arnavsurve/tiny/internal/compiler/source"
	"github.com/arnavsurve/tiny/internal/compiler/token"
)

func scanAll(src string) []token.Token {
	return New(source.NewStringSource(src)).Tokens()
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}
	return out
}

func expectKinds(t *testing.T, src string, want ...token.Kind) []token.Token {
	t.Helper()
	toks := scanAll(src)
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("%q: expected %d tokens %v, got=%d %v", src, len(want), want, len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("%q: token %d expected=%s, got=%s", src, i, want[i], got[i])
		}
	}
	return toks
}

func TestKeywords(t *testing.T) {
	kw := token.Keywords()
	if len(kw) != 15 {
		t.Fatalf("expected 15 reserved words, got=%d", len(kw))
	}
	for word, kind := range kw {
		toks := expectKinds(t, word, kind, token.EOF)
		if toks[0].Lexeme != word {
			t.Errorf("keyword %q lexeme got=%q", word, toks[0].Lexeme)
		}
	}
}

func TestIdentifiers(t *testing.T) {
	tests := []string{"x", "fact", "If", "endx", "a1b2", "ELSE", "doit"}
	for _, ident := range tests {
		toks := expectKinds(t, ident, token.Ident, token.EOF)
		if toks[0].Lexeme != ident {
			t.Errorf("identifier %q lexeme got=%q", ident, toks[0].Lexeme)
		}
	}
}

func TestLongIdentifierIsTruncated(t *testing.T) {
	long := strings.Repeat("a", token.MaxLexeme+10)
	toks := expectKinds(t, long+" y", token.Ident, token.Ident, token.EOF)
	if toks[0].Lexeme != long[:token.MaxLexeme] {
		t.Errorf("expected lexeme truncated to %d chars, got=%d", token.MaxLexeme, len(toks[0].Lexeme))
	}
	if toks[1].Lexeme != "y" || toks[1].Column != len(long)+2 {
		t.Errorf("expected y at column %d, got=%q at %d", len(long)+2, toks[1].Lexeme, toks[1].Column)
	}
}

func TestRelationalOperators(t *testing.T) {
	tests := []struct {
		input string
		want  token.Kind
	}{
		{"<", token.Less},
		{"<=", token.LessEqual},
		{">", token.Greater},
		{">=", token.GreaterEqual},
		{"=", token.Equal},
	}
	for _, tt := range tests {
		toks := expectKinds(t, tt.input, tt.want, token.EOF)
		if toks[0].Lexeme != tt.input {
			t.Errorf("%q lexeme got=%q", tt.input, toks[0].Lexeme)
		}
	}

	toks := expectKinds(t, "<x", token.Less, token.Ident, token.EOF)
	if toks[1].Lexeme != "x" || toks[1].Column != 2 {
		t.Errorf("expected x at column 2, got=%q at %d", toks[1].Lexeme, toks[1].Column)
	}
	expectKinds(t, ">1", token.Greater, token.Number, token.EOF)
	expectKinds(t, "< =", token.Less, token.Equal, token.EOF)
}

func TestAssign(t *testing.T) {
	expectKinds(t, "x:=1", token.Ident, token.Assign, token.Number, token.EOF)

	toks := expectKinds(t, ":x", token.Error, token.Ident, token.EOF)
	if toks[0].Lexeme != ":" {
		t.Errorf("expected error lexeme ':', got=%q", toks[0].Lexeme)
	}
	if toks[1].Lexeme != "x" {
		t.Errorf("expected x after bad assign, got=%q", toks[1].Lexeme)
	}
}

func TestSingleCharacterSymbols(t *testing.T) {
	expectKinds(t, "=+-*/(),;",
		token.Equal, token.Plus, token.Minus, token.Times, token.Over,
		token.LParen, token.RParen, token.Comma, token.Semi, token.EOF)
}

func TestUnrecognizedCharacters(t *testing.T) {
	toks := expectKinds(t, "x # y _", token.Ident, token.Error, token.Ident, token.Error, token.EOF)
	if toks[1].Lexeme != "#" || toks[3].Lexeme != "_" {
		t.Errorf("unexpected error lexemes %q %q", toks[1].Lexeme, toks[3].Lexeme)
	}
}

func TestNumbers(t *testing.T) {
	toks := expectKinds(t, "123abc", token.Number, token.Ident, token.EOF)
	if toks[0].Lexeme != "123" || toks[1].Lexeme != "abc" {
		t.Errorf("got %q %q", toks[0].Lexeme, toks[1].Lexeme)
	}
	toks = expectKinds(t, "7;", token.Number, token.Semi, token.EOF)
	if toks[0].Lexeme != "7" {
		t.Errorf("got %q", toks[0].Lexeme)
	}
}

func TestStrings(t *testing.T) {
	toks := expectKinds(t, "'hello' x", token.String, token.Ident, token.EOF)
	if toks[0].Lexeme != "hello" {
		t.Errorf("string lexeme expected=hello, got=%q", toks[0].Lexeme)
	}
	expectKinds(t, "''", token.String, token.EOF)
}

func TestUnterminatedString(t *testing.T) {
	toks := expectKinds(t, "'abc def", token.UnterminatedString, token.Ident, token.EOF)
	if toks[0].Lexeme != "abc" {
		t.Errorf("expected lexeme abc, got=%q", toks[0].Lexeme)
	}
	if toks[1].Lexeme != "def" || toks[1].Column != 6 {
		t.Errorf("expected def at column 6, got=%q at %d", toks[1].Lexeme, toks[1].Column)
	}

	toks = expectKinds(t, "'abc", token.UnterminatedString, token.EOF)
	if toks[0].Lexeme != "abc" {
		t.Errorf("expected lexeme abc, got=%q", toks[0].Lexeme)
	}

	toks = expectKinds(t, "'abc\nx", token.UnterminatedString, token.Ident, token.EOF)
	if toks[1].Line != 2 || toks[1].Column != 1 {
		t.Errorf("expected x at 2:1, got=%d:%d", toks[1].Line, toks[1].Column)
	}
}

func TestComments(t *testing.T) {
	toks := expectKinds(t, "{ a comment := 'x }x", token.Ident, token.EOF)
	if toks[0].Lexeme != "x" {
		t.Errorf("got %q", toks[0].Lexeme)
	}
	expectKinds(t, "{ spans\n lines }\nwrite", token.Write, token.EOF)
	expectKinds(t, "x { never closed", token.Ident, token.Error, token.EOF)
}

func TestLineAndColumn(t *testing.T) {
	toks := expectKinds(t, "x\n\n  y := 1", token.Ident, token.Ident, token.Assign, token.Number, token.EOF)
	want := [][2]int{{1, 1}, {3, 3}, {3, 5}, {3, 8}}
	for i, w := range want {
		if toks[i].Line != w[0] || toks[i].Column != w[1] {
			t.Errorf("token %d (%s) expected %d:%d, got=%d:%d", i, toks[i], w[0], w[1], toks[i].Line, toks[i].Column)
		}
	}
}

func TestEOFIsSticky(t *testing.T) {
	l := New(source.NewStringSource("x"))
	l.NextToken()
	for i := 0; i < 3; i++ {
		if tok := l.NextToken(); tok.Kind != token.EOF {
			t.Fatalf("call %d after end expected EOF, got=%s", i, tok.Kind)
		}
	}
}

func TestLiteralRoundTrip(t *testing.T) {
	for _, n := range []int{0, 7, 42, 1234567} {
		printed := strconv.Itoa(n)
		toks := expectKinds(t, printed, token.Number, token.EOF)
		got, err := strconv.Atoi(toks[0].Lexeme)
		if err != nil || got != n {
			t.Errorf("number %d rescanned as %q", n, toks[0].Lexeme)
		}
	}
	for _, s := range []string{"abc", "x1", "a+b", ""} {
		toks := expectKinds(t, "'"+s+"'", token.String, token.EOF)
		if toks[0].Lexeme != s {
			t.Errorf("string %q rescanned as %q", s, toks[0].Lexeme)
		}
	}
}

func TestEchoAndTrace(t *testing.T) {
	var echo, trace bytes.Buffer
	l := New(source.NewStringSource("x := 1\nwrite x"),
		WithEchoSource(&echo), WithTraceScan(&trace))
	l.Tokens()

	wantEcho := "   1: x := 1\n   2: write x\n"
	if echo.String() != wantEcho {
		t.Errorf("echo expected=%q, got=%q", wantEcho, echo.String())
	}
	wantTrace := "\t1: ID, name= x\n" +
		"\t1: :=\n" +
		"\t1: NUM, val= 1\n" +
		"\t2: reserved word: write\n" +
		"\t2: ID, name= x\n" +
		"\t2: EOF\n"
	if trace.String() != wantTrace {
		t.Errorf("trace expected=%q, got=%q", wantTrace, trace.String())
	}
}

// lineSlice hands out lines without their terminators.
type lineSlice []string

func (s *lineSlice) ReadLine() (string, bool) {
	if len(*s) == 0 {
		return "", false
	}
	line := (*s)[0]
	*s = (*s)[1:]
	return line, true
}

func TestBareLinesSeparateTokens(t *testing.T) {
	src := &lineSlice{"x", "y"}
	toks := New(src).Tokens()
	if got := kinds(toks); len(got) != 3 || got[0] != token.Ident || got[1] != token.Ident {
		t.Fatalf("expected ID ID EOF, got=%v", got)
	}
	if toks[0].Lexeme != "x" || toks[1].Lexeme != "y" || toks[1].Line != 2 {
		t.Errorf("unexpected tokens %v", toks)
	}

	src = &lineSlice{"'abc", "def'"}
	toks = New(src).Tokens()
	if toks[0].Kind != token.UnterminatedString || toks[0].Lexeme != "abc" {
		t.Fatalf("expected unterminated string abc, got=%s", toks[0])
	}
	if toks[1].Kind != token.Ident || toks[1].Lexeme != "def" || toks[1].Line != 2 {
		t.Errorf("expected def on line 2, got=%s at %d", toks[1], toks[1].Line)
	}
	if toks[2].Kind != token.UnterminatedString || toks[len(toks)-1].Kind != token.EOF {
		t.Errorf("unexpected tail %v", kinds(toks))
	}
}
