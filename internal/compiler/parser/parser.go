package parser

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arnavsurve/tiny/internal/compiler/ast"
	"github.com/arnavsurve/tiny/internal/compiler/diag"
	"github.com/arnavsurve/tiny/internal/compiler/lexer"
	"github.com/arnavsurve/tiny/internal/compiler/printer"
	"github.com/arnavsurve/tiny/internal/compiler/token"
)

// Parser is a recursive-descent parser with one token of lookahead. Each
// parse function consumes the input of one grammar rule and returns whatever
// subtree it managed to build. A Parser runs a single parse.
type Parser struct {
	l      *lexer.Lexer
	curTok token.Token
	sink   diag.Sink
	errors []string
	errTok *token.Token // token of the last reported error

	trace io.Writer // print the finished tree
}

type Option func(*Parser)

// WithTraceParse prints the syntax tree to w once parsing finishes.
func WithTraceParse(w io.Writer) Option {
	return func(p *Parser) { p.trace = w }
}

// New returns a parser reading from l. Syntax errors go to sink, which may be
// nil; they are also kept and returned by Errors.
func New(l *lexer.Lexer, sink diag.Sink, opts ...Option) *Parser {
	p := &Parser{l: l, sink: sink}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// --- Token Handling ---
func (p *Parser) nextToken() {
	p.curTok = p.l.NextToken()
}

// match consumes the current token if it has the expected kind. Otherwise it
// reports the mismatch and leaves the token in place.
func (p *Parser) match(expected token.Kind) bool {
	if p.curTok.Kind == expected {
		p.nextToken()
		return true
	}
	p.addError(p.curTok, "%s, expected %s", unexpected(p.curTok), describe(expected))
	return false
}

// skip reports the current token as unexpected and consumes it.
func (p *Parser) skip() {
	p.addError(p.curTok, "%s", unexpected(p.curTok))
	p.nextToken()
}

// --- Error Handling ---

// addError records a syntax error at tok. A token that already has an error
// is not reported again, so a failed match followed by a skip of the same
// token yields one diagnostic.
func (p *Parser) addError(tok token.Token, format string, args ...any) {
	if p.errTok != nil && *p.errTok == tok {
		return
	}
	p.errTok = &tok
	msg := fmt.Sprintf(format, args...)
	p.errors = append(p.errors, fmt.Sprintf("%d:%d: Syntax Error: %s", tok.Line, tok.Column, msg))
	if p.sink != nil {
		p.sink.Report(tok.Line, msg)
	}
}

// Errors returns every syntax error reported so far.
func (p *Parser) Errors() []string {
	return p.errors
}

func unexpected(tok token.Token) string {
	switch tok.Kind {
	case token.EOF:
		return "unexpected end of input"
	case token.UnterminatedString:
		return "unterminated string -> '" + tok.Lexeme
	case token.Error:
		return "unexpected character -> " + tok.Lexeme
	}
	return "unexpected token -> " + tok.String()
}

func describe(kind token.Kind) string {
	switch {
	case kind.IsKeyword():
		return "'" + strings.ToLower(kind.String()) + "'"
	case kind.Symbol() != "":
		return "'" + kind.Symbol() + "'"
	}
	switch kind {
	case token.Ident:
		return "identifier"
	case token.Number:
		return "number"
	case token.String:
		return "string literal"
	case token.EOF:
		return "end of input"
	}
	return kind.String()
}

// --- Program Parsing ---

// Parse parses a whole program: declarations followed by a statement
// sequence.
func (p *Parser) Parse() *ast.Program {
	p.nextToken()
	prog := &ast.Program{}
	prog.Declarations = p.parseDeclarations()
	prog.Statements = p.parseStmtSequence()
	p.finish(prog)
	return prog
}

// ParseStatements parses a bare statement sequence. Declarations are not
// recognized; a leading type keyword is a syntax error.
func (p *Parser) ParseStatements() *ast.Program {
	p.nextToken()
	prog := &ast.Program{}
	prog.Statements = p.parseStmtSequence()
	p.finish(prog)
	return prog
}

func (p *Parser) finish(prog *ast.Program) {
	if p.curTok.Kind != token.EOF {
		p.addError(p.curTok, "Code ends before file")
	}
	if p.trace != nil {
		fmt.Fprintln(p.trace, "\nSyntax tree:")
		printer.Print(p.trace, prog)
	}
}

// --- Declarations ---

// declarations -> (decl ';')*
func (p *Parser) parseDeclarations() []*ast.Declaration {
	decls := []*ast.Declaration{}
	for p.curTok.Kind.IsTypeSpecifier() {
		if d := p.parseDeclaration(); d != nil {
			decls = append(decls, d)
		}
		p.match(token.Semi)
	}
	return decls
}

// decl -> type_specifier varlist
func (p *Parser) parseDeclaration() *ast.Declaration {
	tok := p.curTok
	typ, ok := ast.TypeOf(tok.Kind)
	if !ok {
		p.skip()
		return nil
	}
	p.nextToken()

	return &ast.Declaration{
		Token: tok,
		Type:  typ,
		Vars:  p.parseVarList(typ),
	}
}

// varlist -> identifier (',' identifier)*
func (p *Parser) parseVarList(typ ast.Type) []*ast.Identifier {
	vars := []*ast.Identifier{}
	if id := p.parseDeclaredIdentifier(typ); id != nil {
		vars = append(vars, id)
	}
	for p.curTok.Kind == token.Comma {
		p.nextToken()
		if id := p.parseDeclaredIdentifier(typ); id != nil {
			vars = append(vars, id)
		}
	}
	return vars
}

func (p *Parser) parseDeclaredIdentifier(typ ast.Type) *ast.Identifier {
	tok := p.curTok
	if !p.match(token.Ident) {
		return nil
	}
	return &ast.Identifier{Token: tok, Name: tok.Lexeme, Type: typ}
}

// --- Statements ---

// isSequenceEnd reports whether kind closes a statement sequence.
func isSequenceEnd(kind token.Kind) bool {
	switch kind {
	case token.EOF, token.End, token.Else, token.Until:
		return true
	}
	return false
}

// stmt_sequence -> statement (';' statement)*
func (p *Parser) parseStmtSequence() []ast.Statement {
	stmts := []ast.Statement{}
	if stmt := p.parseStatement(); stmt != nil {
		stmts = append(stmts, stmt)
	}
	for !isSequenceEnd(p.curTok.Kind) {
		p.match(token.Semi)
		if stmt := p.parseStatement(); stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	return stmts
}

func (p *Parser) parseStatement() ast.Statement {
	switch p.curTok.Kind {
	case token.If:
		return p.parseIfStatement()
	case token.Repeat:
		return p.parseRepeatStatement()
	case token.Ident:
		return p.parseAssignStatement()
	case token.Read:
		return p.parseReadStatement()
	case token.Write:
		return p.parseWriteStatement()
	case token.While:
		return p.parseWhileStatement()
	default:
		p.skip()
		return nil
	}
}

// if_stmt -> 'if' bool_exp 'then' stmt_sequence ['else' stmt_sequence] 'end'
func (p *Parser) parseIfStatement() *ast.IfStatement {
	stmt := &ast.IfStatement{Token: p.curTok}
	p.match(token.If)
	stmt.Condition = p.parseBoolExp()
	p.match(token.Then)
	stmt.Then = p.parseStmtSequence()
	if p.curTok.Kind == token.Else {
		p.nextToken()
		stmt.Else = p.parseStmtSequence()
	}
	p.match(token.End)
	return stmt
}

// while_stmt -> 'while' bool_exp 'do' stmt_sequence 'end'
func (p *Parser) parseWhileStatement() *ast.WhileStatement {
	stmt := &ast.WhileStatement{Token: p.curTok}
	p.match(token.While)
	stmt.Condition = p.parseBoolExp()
	p.match(token.Do)
	stmt.Body = p.parseStmtSequence()
	p.match(token.End)
	return stmt
}

// repeat_stmt -> 'repeat' stmt_sequence 'until' bool_exp
func (p *Parser) parseRepeatStatement() *ast.RepeatStatement {
	stmt := &ast.RepeatStatement{Token: p.curTok}
	p.match(token.Repeat)
	stmt.Body = p.parseStmtSequence()
	p.match(token.Until)
	stmt.Condition = p.parseBoolExp()
	return stmt
}

// assign_stmt -> identifier ':=' exp
func (p *Parser) parseAssignStatement() *ast.AssignStatement {
	stmt := &ast.AssignStatement{Token: p.curTok, Name: p.curTok.Lexeme}
	p.match(token.Ident)
	p.match(token.Assign)
	stmt.Value = p.parseExp()
	return stmt
}

// read_stmt -> 'read' identifier
func (p *Parser) parseReadStatement() *ast.ReadStatement {
	stmt := &ast.ReadStatement{Token: p.curTok}
	p.match(token.Read)
	if p.curTok.Kind == token.Ident {
		stmt.Name = p.curTok.Lexeme
	}
	p.match(token.Ident)
	return stmt
}

// write_stmt -> 'write' exp
func (p *Parser) parseWriteStatement() *ast.WriteStatement {
	stmt := &ast.WriteStatement{Token: p.curTok}
	p.match(token.Write)
	stmt.Value = p.parseExp()
	return stmt
}

// --- Expressions ---

// exp -> string_exp | bool_exp
//
// Arithmetic expressions are reached through bool_exp, which falls through
// to comparison_exp and arithmetic_exp.
func (p *Parser) parseExp() ast.Expression {
	if p.curTok.Kind == token.String {
		return p.parseStringExp()
	}
	return p.parseBoolExp()
}

// bool_exp -> bterm ('or' bterm)*
func (p *Parser) parseBoolExp() ast.Expression {
	left := p.parseBTerm()
	for p.curTok.Kind == token.Or {
		op := p.curTok
		p.nextToken()
		left = &ast.LogicalExpression{Token: op, Operator: op.Kind, Left: left, Right: p.parseBTerm()}
	}
	return left
}

// bterm -> bfactor ('and' bfactor)*
func (p *Parser) parseBTerm() ast.Expression {
	left := p.parseBFactor()
	for p.curTok.Kind == token.And {
		op := p.curTok
		p.nextToken()
		left = &ast.LogicalExpression{Token: op, Operator: op.Kind, Left: left, Right: p.parseBFactor()}
	}
	return left
}

// bfactor -> comparison_exp
func (p *Parser) parseBFactor() ast.Expression {
	return p.parseComparisonExp()
}

// comparison_exp -> arithmetic_exp [relop arithmetic_exp]
func (p *Parser) parseComparisonExp() ast.Expression {
	left := p.parseArithmeticExp()
	if p.curTok.Kind.IsComparison() {
		op := p.curTok
		p.nextToken()
		left = &ast.BinaryExpression{Token: op, Operator: op.Kind, Left: left, Right: p.parseArithmeticExp()}
	}
	return left
}

// arithmetic_exp -> term (('+' | '-') term)*
func (p *Parser) parseArithmeticExp() ast.Expression {
	left := p.parseTerm()
	for p.curTok.Kind == token.Plus || p.curTok.Kind == token.Minus {
		op := p.curTok
		p.nextToken()
		left = &ast.BinaryExpression{Token: op, Operator: op.Kind, Left: left, Right: p.parseTerm()}
	}
	return left
}

// term -> factor (('*' | '/') factor)*
func (p *Parser) parseTerm() ast.Expression {
	left := p.parseFactor()
	for p.curTok.Kind == token.Times || p.curTok.Kind == token.Over {
		op := p.curTok
		p.nextToken()
		left = &ast.BinaryExpression{Token: op, Operator: op.Kind, Left: left, Right: p.parseFactor()}
	}
	return left
}

// factor -> '(' exp ')' | number | identifier
func (p *Parser) parseFactor() ast.Expression {
	tok := p.curTok
	switch tok.Kind {
	case token.Number:
		p.nextToken()
		val, err := strconv.Atoi(tok.Lexeme)
		if err != nil {
			p.addError(tok, "integer literal out of range -> %s", tok.Lexeme)
		}
		return &ast.IntegerLiteral{Token: tok, Value: val}
	case token.Ident:
		p.nextToken()
		return &ast.Identifier{Token: tok, Name: tok.Lexeme}
	case token.LParen:
		p.nextToken()
		expr := p.parseExp()
		p.match(token.RParen)
		return expr
	default:
		p.skip()
		return nil
	}
}

// string_exp -> string_literal
func (p *Parser) parseStringExp() ast.Expression {
	lit := &ast.StringLiteral{Token: p.curTok, Value: p.curTok.Lexeme}
	p.match(token.String)
	return lit
}
