package tir

import (
	"github.com/inko-lang/corec/internal/diag"
	"github.com/inko-lang/corec/internal/symbols"
	"github.com/inko-lang/corec/internal/types"
)

// CodeObject is one TIR function body: a method, closure, lambda, an
// object/trait body, a try/else body, or a module's top-level body.
type CodeObject struct {
	Name      string
	Signature *types.BlockSignature
	Location  diag.Location

	Locals     *symbols.Table
	Registers  *registerTable
	Blocks     []*BasicBlock
	CatchTable []CatchTableEntry
	Children   []*CodeObject
}

// NewCodeObject creates an empty code object with a fresh register table
// and a locals table parented to the enclosing scope (nil for a module's
// top-level body).
func NewCodeObject(name string, sig *types.BlockSignature, loc diag.Location, parentLocals *symbols.Table) *CodeObject {
	return &CodeObject{
		Name:      name,
		Signature: sig,
		Location:  loc,
		Locals:    symbols.NewTable(parentLocals),
		Registers: newRegisterTable(),
	}
}

// LastBlock returns the currently active basic block, or nil if none exist
// yet.
func (c *CodeObject) LastBlock() *BasicBlock {
	if len(c.Blocks) == 0 {
		return nil
	}
	return c.Blocks[len(c.Blocks)-1]
}
