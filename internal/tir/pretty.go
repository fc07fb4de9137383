package tir

import (
	"fmt"
	"strings"
)

// PrettyPrint returns a human-readable rendering of a code object: its
// signature, basic blocks, instructions, and catch table.
func (c *CodeObject) PrettyPrint() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("code %s {\n", c.Name))

	for _, block := range c.Blocks {
		b.WriteString(block.prettyPrint())
	}

	if len(c.CatchTable) > 0 {
		b.WriteString("  catch:\n")
		for _, entry := range c.CatchTable {
			b.WriteString(fmt.Sprintf("    bb%d -> bb%d (r%d)\n", entry.TryBlock, entry.ElseBlock, entry.CatchRegister.ID))
		}
	}

	b.WriteString("}")

	for _, child := range c.Children {
		b.WriteString("\n\n")
		b.WriteString(child.PrettyPrint())
	}

	return b.String()
}

func (bb *BasicBlock) prettyPrint() string {
	var b strings.Builder
	reach := "reachable"
	if !bb.Reachable {
		reach = "unreachable"
	}
	b.WriteString(fmt.Sprintf("  bb%d: // %s\n", bb.ID, reach))
	for _, instr := range bb.Instructions {
		b.WriteString("    ")
		b.WriteString(instr.prettyPrint())
		b.WriteString("\n")
	}
	return b.String()
}

func (i Instruction) prettyPrint() string {
	var b strings.Builder
	if i.Dest != nil {
		b.WriteString(fmt.Sprintf("r%d = ", i.Dest.ID))
	}
	b.WriteString(string(i.Op))
	parts := make([]string, 0, len(i.Operands)+len(i.Literals))
	for _, op := range i.Operands {
		parts = append(parts, fmt.Sprintf("r%d", op.ID))
	}
	for _, lit := range i.Literals {
		parts = append(parts, lit.prettyPrint())
	}
	if len(parts) > 0 {
		b.WriteString(" ")
		b.WriteString(strings.Join(parts, ", "))
	}
	if i.Child != nil {
		b.WriteString(fmt.Sprintf(" <%s>", i.Child.Name))
	}
	return b.String()
}

func (l Literal) prettyPrint() string {
	switch l.Kind {
	case LiteralString:
		return fmt.Sprintf("%q", l.Str)
	case LiteralInteger:
		return fmt.Sprintf("%d", l.Int)
	case LiteralFloat:
		return fmt.Sprintf("%g", l.Float)
	case LiteralSymbol, LiteralConstant:
		return l.Str
	default:
		return ""
	}
}
