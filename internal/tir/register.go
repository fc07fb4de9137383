package tir

import "github.com/inko-lang/corec/internal/types"

// Register is a single typed virtual register, numbered densely per code
// object in allocation order.
type Register struct {
	ID   int
	Type types.Type
}

// registerTable owns the registers of one code object and hands out fresh,
// monotonically increasing IDs.
type registerTable struct {
	registers []Register
}

func newRegisterTable() *registerTable {
	return &registerTable{}
}

func (t *registerTable) allocate(typ types.Type) Register {
	reg := Register{ID: len(t.registers), Type: typ}
	t.registers = append(t.registers, reg)
	return reg
}

func (t *registerTable) all() []Register {
	return t.registers
}
