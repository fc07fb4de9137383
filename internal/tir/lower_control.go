package tir

import (
	"github.com/inko-lang/corec/internal/ast"
	"github.com/inko-lang/corec/internal/types"
)

// lowerReturn emits Return then starts a new unreachable block; block-return
// is true when the enclosing code object is a closure (non-method), since
// closures return from the enclosing method per language semantics.
func (g *Generator) lowerReturn(n ast.Node) Register {
	ret := n.(*ast.ReturnStmt)
	var operand *Register
	if ret.Value != nil {
		v := g.lowerExpr(ret.Value)
		operand = &v
	}
	lit := Literal{Kind: LiteralSymbol, Str: "false"}
	if g.currentIsClosureReturn() {
		lit.Str = "true"
	}
	var operands []Register
	if operand != nil {
		operands = []Register{*operand}
	}
	g.instructNoDest(Return, operands, []Literal{lit}, ret.Loc())
	g.addBasicBlock()
	return g.registerDynamic()
}

func (g *Generator) currentIsClosureReturn() bool {
	sig := g.current().Signature
	return sig != nil && sig.Tag != types.TagMethod
}

// lowerThrow emits Throw; the expression's result is Nil since control
// never falls through.
func (g *Generator) lowerThrow(n ast.Node) Register {
	th := n.(*ast.ThrowStmt)
	v := g.lowerExpr(th.Value)
	g.instructNoDest(Throw, []Register{v}, nil, th.Loc())
	g.addBasicBlock()
	return g.register(&types.Primitive{Kind: types.NilKind})
}

// lowerTry lowers `try e` (pass-through, no extra emission — a thrown value
// propagates via the enclosing catch table) and `try e else (err) { body }`
// (three basic blocks plus a catch-table entry).
func (g *Generator) lowerTry(n ast.Node) Register {
	try := n.(*ast.TryExpr)
	if !try.HasElse {
		return g.lowerExpr(try.Body)
	}

	loc := try.Loc()
	tryBlock := g.current().LastBlock()
	retReg := g.registerDynamic()

	tryReg := g.lowerExpr(try.Body)
	g.instructInto(SetRegister, retReg, []Register{tryReg}, nil, loc)
	g.instructNoDest(SkipNextBlock, nil, nil, loc)

	elseBlock := g.addConnectedBasicBlock()
	catchReg := g.registerDynamic()
	if try.ErrName != "" {
		g.instructNoDest(SetLocal, []Register{catchReg}, []Literal{symLit(try.ErrName)}, loc)
	}
	elseSig := &types.BlockSignature{Tag: types.TagClosure}
	elseCode := NewCodeObject("try_else", elseSig, loc, g.current().Locals)
	g.pushCodeObject(elseCode, func() {
		last := g.lowerBody(try.Else)
		g.finalizeReturn(last, true, loc)
	})
	selfReg := g.instruct(GetLocal, &types.Dynamic{}, nil, []Literal{symLit("self")}, loc)
	elseResult := g.instructChild(RunBlock, &types.Dynamic{}, []Register{*selfReg, catchReg}, nil, elseCode, loc)
	g.instructInto(SetRegister, retReg, []Register{*elseResult}, nil, loc)

	g.current().CatchTable = append(g.current().CatchTable, CatchTableEntry{
		TryBlock:      tryBlock.ID,
		ElseBlock:     elseBlock.ID,
		CatchRegister: catchReg,
	})

	g.addConnectedBasicBlock() // continuation block
	return retReg
}

// lowerRawInstruction maps the `_intrinsic.<name>` bridge to its opcode.
// Unknown intrinsics fail with UnknownIntrinsic.
func (g *Generator) lowerRawInstruction(n ast.Node) Register {
	raw := n.(*ast.RawInstruction)
	op, ok := LookupIntrinsic(raw.Name)
	if !ok {
		g.diags.Error(errUnknownIntrinsic(raw.Name), raw.Loc())
		return g.registerDynamic()
	}
	operands := make([]Register, len(raw.Operands))
	for i, o := range raw.Operands {
		operands[i] = g.lowerExpr(o)
	}
	reg := g.instruct(op, identType(raw.Type), operands, nil, raw.Loc())
	return *reg
}
