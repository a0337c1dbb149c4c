package lexer

import (
	"fmt"
	"io"
	"strings"

	"github.com/arnavsurve/tiny/internal/compiler/source"
	"github.com/arnavsurve/tiny/internal/compiler/token"
)

// eof is returned by peek once the source is exhausted.
const eof = -1

// state is a state of the scanner DFA.
type state int

const (
	stateStart state = iota
	stateInAssign
	stateInComment
	stateInNumber
	stateInIdent
	stateInString
	stateDone
)

// singles maps the one-character symbols that need no lookahead.
var singles = map[byte]token.Kind{
	'=': token.Equal,
	'+': token.Plus,
	'-': token.Minus,
	'*': token.Times,
	'/': token.Over,
	'(': token.LParen,
	')': token.RParen,
	';': token.Semi,
	',': token.Comma,
}

type Lexer struct {
	src    source.LineSource
	buf    string // current line
	pos    int    // next char index in buf
	lineNo int    // number of lines read so far
	done   bool   // src is exhausted

	echo  io.Writer // echo each source line as it is read
	trace io.Writer // print each token as it is recognized
}

type Option func(*Lexer)

// WithEchoSource echoes every source line to w, prefixed with its number.
func WithEchoSource(w io.Writer) Option {
	return func(l *Lexer) { l.echo = w }
}

// WithTraceScan prints every recognized token to w.
func WithTraceScan(w io.Writer) Option {
	return func(l *Lexer) { l.trace = w }
}

func New(src source.LineSource, opts ...Option) *Lexer {
	l := &Lexer{src: src}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// peek returns the next character without consuming it, pulling a new line
// from the source when the buffer is used up. A line without a terminator is
// given one.
func (l *Lexer) peek() int {
	for l.pos >= len(l.buf) {
		if l.done {
			return eof
		}
		line, ok := l.src.ReadLine()
		if !ok {
			l.done = true
			return eof
		}
		l.lineNo++
		if l.echo != nil {
			l.echoLine(line)
		}
		// The end of a line always separates tokens.
		if !strings.HasSuffix(line, "\n") {
			line += "\n"
		}
		l.buf = line
		l.pos = 0
	}
	return int(l.buf[l.pos])
}

// advance consumes the character returned by the last peek.
func (l *Lexer) advance() {
	if l.pos < len(l.buf) {
		l.pos++
	}
}

func (l *Lexer) echoLine(line string) {
	if !strings.HasSuffix(line, "\n") {
		line += "\n"
	}
	fmt.Fprintf(l.echo, "%4d: %s", l.lineNo, line)
}

// NextToken scans and returns the next token. It never fails: malformed input
// comes back as an Error or UnterminatedString token and scanning resumes at
// the following character.
func (l *Lexer) NextToken() token.Token {
	var (
		lexeme    = make([]byte, 0, token.MaxLexeme)
		kind      token.Kind
		st        = stateStart
		line, col int
	)
	save := func(c int) {
		if len(lexeme) < token.MaxLexeme {
			lexeme = append(lexeme, byte(c))
		}
	}

	for st != stateDone {
		c := l.peek()
		switch st {
		case stateStart:
			line, col = l.lineNo, l.pos+1
			switch {
			case isDigit(c):
				st = stateInNumber
				save(c)
				l.advance()
			case isLetter(c):
				st = stateInIdent
				save(c)
				l.advance()
			case c == ':':
				st = stateInAssign
				save(c)
				l.advance()
			case isSpace(c):
				l.advance()
			case c == '{':
				st = stateInComment
				l.advance()
			case c == '\'':
				st = stateInString
				l.advance()
			case c == eof:
				kind = token.EOF
				st = stateDone
			case c == '<' || c == '>':
				save(c)
				l.advance()
				kind = relational(c, l.peek() == '=')
				if kind == token.LessEqual || kind == token.GreaterEqual {
					save('=')
					l.advance()
				}
				st = stateDone
			default:
				save(c)
				l.advance()
				if k, ok := singles[byte(c)]; ok {
					kind = k
				} else {
					kind = token.Error
				}
				st = stateDone
			}

		case stateInComment:
			switch c {
			case eof:
				lexeme = append(lexeme[:0], '{')
				kind = token.Error
				st = stateDone
			case '}':
				l.advance()
				st = stateStart
			default:
				l.advance()
			}

		case stateInString:
			switch {
			case c == eof || isSpace(c):
				// The terminator is left for the next token.
				kind = token.UnterminatedString
				st = stateDone
			case c == '\'':
				l.advance()
				kind = token.String
				st = stateDone
			default:
				save(c)
				l.advance()
			}

		case stateInAssign:
			if c == '=' {
				save(c)
				l.advance()
				kind = token.Assign
			} else {
				kind = token.Error
			}
			st = stateDone

		case stateInNumber:
			if isDigit(c) {
				save(c)
				l.advance()
			} else {
				kind = token.Number
				st = stateDone
			}

		case stateInIdent:
			if isLetter(c) || isDigit(c) {
				save(c)
				l.advance()
			} else {
				kind = token.Lookup(string(lexeme))
				st = stateDone
			}
		}
	}

	tok := token.Token{Kind: kind, Lexeme: string(lexeme), Line: line, Column: col}
	if l.trace != nil {
		fmt.Fprintf(l.trace, "\t%d: %s\n", tok.Line, tok)
	}
	return tok
}

// Tokens drains the lexer, returning every token up to and including EOF.
func (l *Lexer) Tokens() []token.Token {
	var toks []token.Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks
		}
	}
}

func relational(c int, withEqual bool) token.Kind {
	switch {
	case c == '<' && withEqual:
		return token.LessEqual
	case c == '<':
		return token.Less
	case withEqual:
		return token.GreaterEqual
	default:
		return token.Greater
	}
}

func isDigit(c int) bool {
	return '0' <= c && c <= '9'
}

func isLetter(c int) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isSpace(c int) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
