package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/arnavsurve/tiny/internal/compiler/ast"
	"github.com/arnavsurve/tiny/internal/compiler/token"
)

const indentStep = "  "

// Printer writes the linearized listing of a syntax tree: one node per line,
// children indented one step below their parent.
type Printer struct {
	builder strings.Builder
	depth   int
}

func New() *Printer {
	return &Printer{}
}

// Print writes the listing of prog to w.
func Print(w io.Writer, prog *ast.Program) error {
	_, err := io.WriteString(w, Sprint(prog))
	return err
}

func Sprint(prog *ast.Program) string {
	return New().Emit(prog)
}

// Emit returns the listing of prog.
func (p *Printer) Emit(prog *ast.Program) string {
	p.builder.Reset()
	p.depth = 0
	if prog == nil {
		return ""
	}
	for _, d := range prog.Declarations {
		p.emitDeclaration(d)
	}
	p.emitStatements(prog.Statements)
	return p.builder.String()
}

// --- Emit Helpers ---

func (p *Printer) line(format string, args ...any) {
	p.builder.WriteString(strings.Repeat(indentStep, p.depth))
	fmt.Fprintf(&p.builder, format, args...)
	p.builder.WriteString("\n")
}

func (p *Printer) indent(fn func()) {
	p.depth++
	fn()
	p.depth--
}

// --- Emit Declarations ---

func (p *Printer) emitDeclaration(d *ast.Declaration) {
	p.line("Decl: %s", d.Type)
	p.indent(func() {
		for _, v := range d.Vars {
			p.line("Id: %s", v.Name)
		}
	})
}

// --- Emit Statements ---

func (p *Printer) emitStatements(stmts []ast.Statement) {
	for _, s := range stmts {
		p.emitStatement(s)
	}
}

func (p *Printer) emitStatement(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.IfStatement:
		p.line("If")
		p.indent(func() {
			p.emitExpression(s.Condition)
			p.emitStatements(s.Then)
			if s.Else != nil {
				p.line("Else")
				p.indent(func() { p.emitStatements(s.Else) })
			}
		})
	case *ast.WhileStatement:
		p.line("While")
		p.indent(func() {
			p.emitExpression(s.Condition)
			p.emitStatements(s.Body)
		})
	case *ast.RepeatStatement:
		p.line("Repeat")
		p.indent(func() {
			p.emitStatements(s.Body)
			p.emitExpression(s.Condition)
		})
	case *ast.AssignStatement:
		p.line("Assign to: %s", s.Name)
		p.indent(func() { p.emitExpression(s.Value) })
	case *ast.ReadStatement:
		p.line("Read: %s", s.Name)
	case *ast.WriteStatement:
		p.line("Write")
		p.indent(func() { p.emitExpression(s.Value) })
	case *ast.Declaration:
		p.emitDeclaration(s)
	default:
		p.line("Unknown statement: %T", stmt)
	}
}

// --- Emit Expressions ---

func (p *Printer) emitExpression(expr ast.Expression) {
	switch e := expr.(type) {
	case nil:
		// Left empty by a syntax error.
	case *ast.BinaryExpression:
		p.line("Op: %s", e.Operator.Symbol())
		p.indent(func() {
			p.emitExpression(e.Left)
			p.emitExpression(e.Right)
		})
	case *ast.LogicalExpression:
		op := "and"
		if e.Operator == token.Or {
			op = "or"
		}
		p.line("Logic: %s", op)
		p.indent(func() {
			p.emitExpression(e.Left)
			p.emitExpression(e.Right)
		})
	case *ast.IntegerLiteral:
		p.line("Const: %d", e.Value)
	case *ast.StringLiteral:
		p.line("Str: %s", e.Value)
	case *ast.Identifier:
		p.line("Id: %s", e.Name)
	default:
		p.line("Unknown expression: %T", expr)
	}
}
