package token

import "fmt"

// MaxLexeme is the longest lexeme the scanner keeps. Characters past it are
// consumed from the input but dropped from the stored text.
const MaxLexeme = 40

type Kind int

const (
	// Bookkeeping
	EOF                Kind = iota
	Error                   // unrecognized or malformed input
	UnterminatedString      // 'abc followed by whitespace or end of input

	// Reserved words
	If
	Then
	Else
	End
	Repeat
	Until
	Read
	Write
	Or
	And
	Int
	Bool
	Char
	While
	Do

	// Multi-character tokens
	Ident  // x
	Number // 42
	String // 'abc'

	// Special symbols
	Assign       // :=
	Equal        // =
	Less         // <
	LessEqual    // <=
	Greater      // >
	GreaterEqual // >=
	Plus         // +
	Minus        // -
	Times        // *
	Over         // /
	LParen       // (
	RParen       // )
	Semi         // ;
	Comma        // ,
)

var kindNames = [...]string{
	EOF:                "EOF",
	Error:              "ERROR",
	UnterminatedString: "UNTERMINATED_STRING",
	If:                 "IF",
	Then:               "THEN",
	Else:               "ELSE",
	End:                "END",
	Repeat:             "REPEAT",
	Until:              "UNTIL",
	Read:               "READ",
	Write:              "WRITE",
	Or:                 "OR",
	And:                "AND",
	Int:                "INT",
	Bool:               "BOOL",
	Char:               "CHAR",
	While:              "WHILE",
	Do:                 "DO",
	Ident:              "ID",
	Number:             "NUM",
	String:             "STR",
	Assign:             "ASSIGN",
	Equal:              "EQ",
	Less:               "LT",
	LessEqual:          "LE",
	Greater:            "GT",
	GreaterEqual:       "GE",
	Plus:               "PLUS",
	Minus:              "MINUS",
	Times:              "TIMES",
	Over:               "OVER",
	LParen:             "LPAREN",
	RParen:             "RPAREN",
	Semi:               "SEMI",
	Comma:              "COMMA",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// symbols holds the source spelling of every operator and separator.
var symbols = map[Kind]string{
	Assign:       ":=",
	Equal:        "=",
	Less:         "<",
	LessEqual:    "<=",
	Greater:      ">",
	GreaterEqual: ">=",
	Plus:         "+",
	Minus:        "-",
	Times:        "*",
	Over:         "/",
	LParen:       "(",
	RParen:       ")",
	Semi:         ";",
	Comma:        ",",
}

// Symbol returns the source spelling of an operator or separator kind, or ""
// for every other kind.
func (k Kind) Symbol() string {
	return symbols[k]
}

// keywords is the reserved word table. Lookup is exact and case-sensitive.
var keywords = map[string]Kind{
	"if":     If,
	"then":   Then,
	"else":   Else,
	"end":    End,
	"repeat": Repeat,
	"until":  Until,
	"read":   Read,
	"write":  Write,
	"or":     Or,
	"and":    And,
	"int":    Int,
	"bool":   Bool,
	"char":   Char,
	"while":  While,
	"do":     Do,
}

// Keywords returns the reserved word spellings, used by tests and tooling.
func Keywords() map[string]Kind {
	out := make(map[string]Kind, len(keywords))
	for k, v := range keywords {
		out[k] = v
	}
	return out
}

// Lookup returns the keyword kind for ident, or Ident if it is not reserved.
func Lookup(ident string) Kind {
	if kind, ok := keywords[ident]; ok {
		return kind
	}
	return Ident
}

func (k Kind) IsKeyword() bool {
	return k >= If && k <= Do
}

// IsComparison reports whether k is a relational operator.
func (k Kind) IsComparison() bool {
	switch k {
	case Less, LessEqual, Greater, GreaterEqual, Equal:
		return true
	}
	return false
}

// IsTypeSpecifier reports whether k can start a declaration.
func (k Kind) IsTypeSpecifier() bool {
	return k == Int || k == Bool || k == Char
}

type Token struct {
	Kind   Kind
	Lexeme string
	Line   int
	Column int
}

// String renders the token the way the listing trace prints it.
func (t Token) String() string {
	switch {
	case t.Kind.IsKeyword():
		return "reserved word: " + t.Lexeme
	case t.Kind.Symbol() != "":
		return t.Kind.Symbol()
	}
	switch t.Kind {
	case EOF:
		return "EOF"
	case Ident:
		return "ID, name= " + t.Lexeme
	case Number:
		return "NUM, val= " + t.Lexeme
	case String:
		return "STR, val= " + t.Lexeme
	case UnterminatedString:
		return "ERROR: unterminated string '" + t.Lexeme
	case Error:
		return "ERROR: " + t.Lexeme
	default:
		return fmt.Sprintf("Unknown token: %d", int(t.Kind))
	}
}
