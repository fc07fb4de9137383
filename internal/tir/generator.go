package tir

import (
	"github.com/inko-lang/corec/internal/ast"
	"github.com/inko-lang/corec/internal/diag"
	"github.com/inko-lang/corec/internal/modgraph"
	"github.com/inko-lang/corec/internal/types"
)

// Generator is a depth-first visitor over the decorated AST that emits one
// code object per block-defining node. Beyond the compile-wide state it
// holds only its own current-code-object stack, the per-module set of
// already-loaded imports, and its dispatch table, mirroring the "single
// owned object passed by reference" discipline the rest of the core
// follows.
type Generator struct {
	state *modgraph.CompileState
	db    *types.Database
	diags *diag.Bag

	stack []*CodeObject

	// loadedModules tracks, per *module being generated*, which imported
	// qualified names already emitted a LoadModule instruction, so
	// re-importing the same module within that module costs exactly one
	// LoadModule.
	loadedModules map[string]bool

	exprDispatch *ast.Dispatch[Register]
}

// NewGenerator creates a generator bound to a compile state. db and diags
// are the same instances the semantic passes used.
func NewGenerator(state *modgraph.CompileState) *Generator {
	g := &Generator{
		state:         state,
		db:            state.Types,
		diags:         state.Diagnostics,
		loadedModules: make(map[string]bool),
	}
	g.exprDispatch = g.buildExprDispatch()
	return g
}

func (g *Generator) current() *CodeObject {
	return g.stack[len(g.stack)-1]
}

// pushCodeObject makes co the active code object for the duration of fn,
// appending it as a child of the previously active code object (if any).
func (g *Generator) pushCodeObject(co *CodeObject, fn func()) {
	if len(g.stack) > 0 {
		g.current().Children = append(g.current().Children, co)
	}
	g.stack = append(g.stack, co)
	co.Blocks = append(co.Blocks, &BasicBlock{ID: 0})
	fn()
	g.stack = g.stack[:len(g.stack)-1]
}

// register allocates a fresh register of the given type in the current
// code object.
func (g *Generator) register(typ types.Type) Register {
	return g.current().Registers.allocate(typ)
}

// registerDynamic allocates a register typed Dynamic.
func (g *Generator) registerDynamic() Register {
	return g.register(&types.Dynamic{})
}

// instruct appends an instruction to the current basic block. destType is
// nil for instructions with no destination (Return, Throw, SetAttribute,
// control-flow opcodes); otherwise a destination register of that type is
// allocated, recorded on the instruction, and returned.
func (g *Generator) instruct(op Opcode, destType types.Type, operands []Register, literals []Literal, loc diag.Location) *Register {
	var dest *Register
	if destType != nil {
		r := g.register(destType)
		dest = &r
	}
	instr := Instruction{Op: op, Dest: dest, Operands: operands, Literals: literals, Location: loc}
	g.current().LastBlock().append(instr)
	return dest
}

// instructNoDest is instruct without a destination register.
func (g *Generator) instructNoDest(op Opcode, operands []Register, literals []Literal, loc diag.Location) {
	g.instruct(op, nil, operands, literals, loc)
}

// instructInto emits an instruction that writes into an already-allocated
// register (SetRegister unifying the try/else result paths, or any other
// opcode that assigns into an existing slot rather than allocating a fresh
// one).
func (g *Generator) instructInto(op Opcode, dest Register, operands []Register, literals []Literal, loc diag.Location) {
	instr := Instruction{Op: op, Dest: &dest, Operands: operands, Literals: literals, Location: loc}
	g.current().LastBlock().append(instr)
}

// instructChild is instruct with an attached child code object (SetBlock,
// or the synthetic RunBlock invoking a try/else body).
func (g *Generator) instructChild(op Opcode, destType types.Type, operands []Register, literals []Literal, child *CodeObject, loc diag.Location) *Register {
	dest := g.instruct(op, destType, operands, literals, loc)
	g.current().LastBlock().Instructions[len(g.current().LastBlock().Instructions)-1].Child = child
	return dest
}

// addBasicBlock begins a new successor block that is not reached via
// fall-through from the previous one (e.g. the unreachable block started
// right after an unconditional Return/Throw).
func (g *Generator) addBasicBlock() *BasicBlock {
	bb := &BasicBlock{ID: len(g.current().Blocks)}
	g.current().Blocks = append(g.current().Blocks, bb)
	return bb
}

// addConnectedBasicBlock appends a successor block that is reachable via
// fall-through from the previous block's terminator-free end, or via a
// GotoNextBlockIfTrue/SkipNextBlock target. The reach pass computes actual
// reachability structurally; this method only appends.
func (g *Generator) addConnectedBasicBlock() *BasicBlock {
	return g.addBasicBlock()
}

// finalizeReturn appends an explicit Return of the given register (or a Nil
// literal if none) to the end of each reachable body that doesn't already
// end in a terminator.
func (g *Generator) finalizeReturn(last *Register, isClosureReturn bool, loc diag.Location) {
	bb := g.current().LastBlock()
	if bb.Terminated() {
		return
	}
	var operands []Register
	if last != nil {
		operands = []Register{*last}
	} else {
		nilReg := g.instruct(SetLiteral, &types.Primitive{Kind: types.NilKind}, nil, []Literal{{Kind: LiteralSymbol, Str: "nil"}}, loc)
		operands = []Register{*nilReg}
	}
	lit := Literal{Kind: LiteralSymbol, Str: "false"}
	if isClosureReturn {
		lit.Str = "true"
	}
	g.instructNoDest(Return, operands, []Literal{lit}, loc)
}
