package ast

import "github.com/arnavsurve/tiny/internal/compiler/token"

// Type is the semantic type tag carried by declarations and literals.
type Type int

const (
	Void Type = iota
	Integer
	Boolean
	Char
	String
)

func (t Type) String() string {
	switch t {
	case Integer:
		return "int"
	case Boolean:
		return "bool"
	case Char:
		return "char"
	case String:
		return "string"
	default:
		return "void"
	}
}

// TypeOf maps a type specifier keyword to its Type. ok is false for any other
// token kind.
func TypeOf(kind token.Kind) (t Type, ok bool) {
	switch kind {
	case token.Int:
		return Integer, true
	case token.Bool:
		return Boolean, true
	case token.Char:
		return Char, true
	}
	return Void, false
}
