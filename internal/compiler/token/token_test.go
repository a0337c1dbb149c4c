package token

import "testing"

func TestLookup(t *testing.T) {
	for word, kind := range keywords {
		if got := Lookup(word); got != kind {
			t.Errorf("Lookup(%q) expected=%s, got=%s", word, kind, got)
		}
		if !kind.IsKeyword() {
			t.Errorf("%s should be a keyword", kind)
		}
	}
	for _, word := range []string{"x", "IF", "Then", "program", "begin"} {
		if got := Lookup(word); got != Ident {
			t.Errorf("Lookup(%q) expected=ID, got=%s", word, got)
		}
	}
}

func TestTokenString(t *testing.T) {
	tests := []struct {
		tok  Token
		want string
	}{
		{Token{Kind: If, Lexeme: "if"}, "reserved word: if"},
		{Token{Kind: Ident, Lexeme: "x"}, "ID, name= x"},
		{Token{Kind: Number, Lexeme: "42"}, "NUM, val= 42"},
		{Token{Kind: String, Lexeme: "abc"}, "STR, val= abc"},
		{Token{Kind: Assign, Lexeme: ":="}, ":="},
		{Token{Kind: LessEqual, Lexeme: "<="}, "<="},
		{Token{Kind: EOF}, "EOF"},
		{Token{Kind: Error, Lexeme: "#"}, "ERROR: #"},
		{Token{Kind: UnterminatedString, Lexeme: "ab"}, "ERROR: unterminated string 'ab"},
	}
	for _, tt := range tests {
		if got := tt.tok.String(); got != tt.want {
			t.Errorf("expected=%q, got=%q", tt.want, got)
		}
	}
}

func TestKindHelpers(t *testing.T) {
	for _, k := range []Kind{Int, Bool, Char} {
		if !k.IsTypeSpecifier() {
			t.Errorf("%s should be a type specifier", k)
		}
	}
	if Ident.IsTypeSpecifier() || While.IsTypeSpecifier() {
		t.Errorf("only int, bool and char are type specifiers")
	}
	for _, k := range []Kind{Less, LessEqual, Greater, GreaterEqual, Equal} {
		if !k.IsComparison() {
			t.Errorf("%s should be a comparison", k)
		}
	}
	for _, k := range []Kind{Plus, Minus, Times, Over, Assign} {
		if k.IsComparison() {
			t.Errorf("%s should not be a comparison", k)
		}
	}
	if Kind(999).String() != "Kind(999)" {
		t.Errorf("got=%q", Kind(999).String())
	}
	if Semi.Symbol() != ";" || Ident.Symbol() != "" {
		t.Errorf("unexpected symbols %q %q", Semi.Symbol(), Ident.Symbol())
	}
}
