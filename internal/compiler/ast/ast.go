package ast

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/arnavsurve/tiny/internal/compiler/token"
)

// --- Interfaces ---
type Node interface {
	TokenLiteral() string
	String() string
	Line() int
}

type Statement interface {
	Node
	statementNode()
}

type Expression interface {
	Node
	expressionNode()
	ResultType() Type
}

// --- Program ---

// Program is the root of a parse: declarations first, then statements, each
// in source order.
type Program struct {
	Declarations []*Declaration
	Statements   []Statement
}

func (p *Program) TokenLiteral() string {
	if len(p.Declarations) > 0 {
		return p.Declarations[0].TokenLiteral()
	}
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

// String renders the program back to source text.
func (p *Program) String() string {
	var out bytes.Buffer
	for _, d := range p.Declarations {
		out.WriteString(d.String())
		out.WriteString(";\n")
	}
	out.WriteString(joinStatements(p.Statements, ";\n"))
	return out.String()
}

// --- Declarations ---

// Declaration -> int x, y
type Declaration struct {
	Token token.Token // int, bool or char
	Type  Type
	Vars  []*Identifier
}

func (d *Declaration) statementNode()       {}
func (d *Declaration) TokenLiteral() string { return d.Token.Lexeme }
func (d *Declaration) Line() int            { return d.Token.Line }
func (d *Declaration) String() string {
	names := make([]string, 0, len(d.Vars))
	for _, v := range d.Vars {
		names = append(names, v.String())
	}
	return d.Type.String() + " " + strings.Join(names, ", ")
}

// --- Statements ---

// IfStatement -> if cond then stmts [else stmts] end
type IfStatement struct {
	Token     token.Token // if
	Condition Expression
	Then      []Statement
	Else      []Statement // nil when there is no else branch
}

func (is *IfStatement) statementNode()       {}
func (is *IfStatement) TokenLiteral() string { return is.Token.Lexeme }
func (is *IfStatement) Line() int            { return is.Token.Line }
func (is *IfStatement) String() string {
	var out bytes.Buffer
	out.WriteString("if " + exprString(is.Condition) + " then ")
	out.WriteString(joinStatements(is.Then, "; "))
	if is.Else != nil {
		out.WriteString(" else ")
		out.WriteString(joinStatements(is.Else, "; "))
	}
	out.WriteString(" end")
	return out.String()
}

// WhileStatement -> while cond do stmts end
type WhileStatement struct {
	Token     token.Token // while
	Condition Expression
	Body      []Statement
}

func (ws *WhileStatement) statementNode()       {}
func (ws *WhileStatement) TokenLiteral() string { return ws.Token.Lexeme }
func (ws *WhileStatement) Line() int            { return ws.Token.Line }
func (ws *WhileStatement) String() string {
	return "while " + exprString(ws.Condition) + " do " + joinStatements(ws.Body, "; ") + " end"
}

// RepeatStatement -> repeat stmts until cond
type RepeatStatement struct {
	Token     token.Token // repeat
	Body      []Statement
	Condition Expression
}

func (rs *RepeatStatement) statementNode()       {}
func (rs *RepeatStatement) TokenLiteral() string { return rs.Token.Lexeme }
func (rs *RepeatStatement) Line() int            { return rs.Token.Line }
func (rs *RepeatStatement) String() string {
	return "repeat " + joinStatements(rs.Body, "; ") + " until " + exprString(rs.Condition)
}

// AssignStatement -> x := exp
type AssignStatement struct {
	Token token.Token // the target identifier
	Name  string
	Value Expression
}

func (as *AssignStatement) statementNode()       {}
func (as *AssignStatement) TokenLiteral() string { return as.Token.Lexeme }
func (as *AssignStatement) Line() int            { return as.Token.Line }
func (as *AssignStatement) String() string {
	return as.Name + " := " + exprString(as.Value)
}

// ReadStatement -> read x
type ReadStatement struct {
	Token token.Token // read
	Name  string
}

func (rs *ReadStatement) statementNode()       {}
func (rs *ReadStatement) TokenLiteral() string { return rs.Token.Lexeme }
func (rs *ReadStatement) Line() int            { return rs.Token.Line }
func (rs *ReadStatement) String() string       { return "read " + rs.Name }

// WriteStatement -> write exp
type WriteStatement struct {
	Token token.Token // write
	Value Expression
}

func (ws *WriteStatement) statementNode()       {}
func (ws *WriteStatement) TokenLiteral() string { return ws.Token.Lexeme }
func (ws *WriteStatement) Line() int            { return ws.Token.Line }
func (ws *WriteStatement) String() string       { return "write " + exprString(ws.Value) }

// --- Expressions ---

// BinaryExpression covers arithmetic (+ - * /) and comparison (< <= > >= =)
// operators.
type BinaryExpression struct {
	Token    token.Token // the operator
	Operator token.Kind
	Left     Expression
	Right    Expression
}

func (be *BinaryExpression) expressionNode()      {}
func (be *BinaryExpression) TokenLiteral() string { return be.Token.Lexeme }
func (be *BinaryExpression) Line() int            { return be.Token.Line }

// ResultType is left Void for a later pass to fill.
func (be *BinaryExpression) ResultType() Type { return Void }
func (be *BinaryExpression) String() string {
	return "(" + exprString(be.Left) + " " + be.Operator.Symbol() + " " + exprString(be.Right) + ")"
}

// LogicalExpression -> a and b, a or b
type LogicalExpression struct {
	Token    token.Token // and / or
	Operator token.Kind
	Left     Expression
	Right    Expression
}

func (le *LogicalExpression) expressionNode()      {}
func (le *LogicalExpression) TokenLiteral() string { return le.Token.Lexeme }
func (le *LogicalExpression) Line() int            { return le.Token.Line }
func (le *LogicalExpression) ResultType() Type     { return Void }
func (le *LogicalExpression) String() string {
	op := "and"
	if le.Operator == token.Or {
		op = "or"
	}
	return "(" + exprString(le.Left) + " " + op + " " + exprString(le.Right) + ")"
}

// IntegerLiteral is a number constant. Value is 0 when the lexeme does not
// fit in an int; the parser reports that as a syntax error and String keeps
// the lexeme.
type IntegerLiteral struct {
	Token token.Token
	Value int
}

func (il *IntegerLiteral) expressionNode()      {}
func (il *IntegerLiteral) TokenLiteral() string { return il.Token.Lexeme }
func (il *IntegerLiteral) Line() int            { return il.Token.Line }
func (il *IntegerLiteral) ResultType() Type     { return Integer }
func (il *IntegerLiteral) String() string {
	if il.Token.Lexeme != "" {
		return il.Token.Lexeme
	}
	return strconv.Itoa(il.Value)
}

type StringLiteral struct {
	Token token.Token
	Value string
}

func (sl *StringLiteral) expressionNode()      {}
func (sl *StringLiteral) TokenLiteral() string { return sl.Token.Lexeme }
func (sl *StringLiteral) Line() int            { return sl.Token.Line }
func (sl *StringLiteral) ResultType() Type     { return String }
func (sl *StringLiteral) String() string       { return "'" + sl.Value + "'" }

// Identifier is a variable reference or, inside a Declaration, the declared
// name. Type is set for declared names and Void elsewhere.
type Identifier struct {
	Token token.Token
	Name  string
	Type  Type
}

func (i *Identifier) expressionNode()      {}
func (i *Identifier) TokenLiteral() string { return i.Token.Lexeme }
func (i *Identifier) Line() int            { return i.Token.Line }
func (i *Identifier) ResultType() Type     { return i.Type }
func (i *Identifier) String() string       { return i.Name }

// --- Helpers ---

func exprString(e Expression) string {
	if e == nil {
		return ""
	}
	return e.String()
}

func joinStatements(stmts []Statement, sep string) string {
	parts := make([]string, 0, len(stmts))
	for _, s := range stmts {
		parts = append(parts, s.String())
	}
	return strings.Join(parts, sep)
}
