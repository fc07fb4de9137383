package tir

import "github.com/inko-lang/corec/internal/diag"

// Literal is an inline literal argument carried by an instruction: a
// string, integer, float, symbol reference, or constant name. Exactly one
// field is meaningful per Kind.
type LiteralKind int

const (
	LiteralNone LiteralKind = iota
	LiteralString
	LiteralInteger
	LiteralFloat
	LiteralSymbol
	LiteralConstant
)

type Literal struct {
	Kind    LiteralKind
	Str     string
	Int     int64
	Float   float64
}

// Instruction is a uniform record: an opcode, an optional destination
// register, zero or more operand registers, zero or more inline literals,
// and a source location. The instruction shape is implicit in the opcode —
// there is no separate IR type per shape.
type Instruction struct {
	Op       Opcode
	Dest     *Register
	Operands []Register
	Literals []Literal
	Location diag.Location

	// Child is set for SetBlock (the code object being captured as a
	// block value) and for the synthetic RunBlock emitted for try/else
	// bodies. It is nil for every other opcode.
	Child *CodeObject
}

func strLit(s string) Literal    { return Literal{Kind: LiteralString, Str: s} }
func intLit(v int64) Literal     { return Literal{Kind: LiteralInteger, Int: v} }
func floatLit(v float64) Literal { return Literal{Kind: LiteralFloat, Float: v} }
func symLit(s string) Literal    { return Literal{Kind: LiteralSymbol, Str: s} }
