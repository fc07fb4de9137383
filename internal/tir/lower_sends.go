package tir

import (
	"github.com/inko-lang/corec/internal/ast"
	"github.com/inko-lang/corec/internal/diag"
	"github.com/inko-lang/corec/internal/types"
)

// lowerSend evaluates the receiver first (defaulting to self, or the
// module global when the static receiver type is the module type), then
// arguments left-to-right, then emits a direct primitive opcode when one
// applies, or else chooses one of four emission forms.
func (g *Generator) lowerSend(n ast.Node) Register {
	send := n.(*ast.Send)

	recvReg, recvType := g.lowerSendReceiver(send)
	args := make([]Register, len(send.Args))
	for i, a := range send.Args {
		args[i] = g.lowerExpr(a)
	}
	var kwLiterals []Literal
	var kwArgs []Register
	for _, kw := range send.KwArgs {
		kwLiterals = append(kwLiterals, strLit(kw.Name))
		kwArgs = append(kwArgs, g.lowerExpr(kw.Value))
	}

	if op, ok := primitiveArithmeticOpcode(recvType, send.Message, len(args)); ok {
		reg := g.instruct(op, sendResultType(send), append([]Register{recvReg}, args...), nil, send.Loc())
		return *reg
	}

	switch {
	case g.isArrayConstructorShortcut(recvType, send.Message):
		reg := g.instruct(SetArray, g.db.NewArrayOfType(&types.Dynamic{}), args, nil, send.Loc())
		return *reg

	case g.isDirectBlockCall(recvType, send.Message):
		operands := append([]Register{recvReg}, args...)
		operands = append(operands, kwArgs...)
		reg := g.instruct(RunBlock, sendResultType(send), operands, kwLiterals, send.Loc())
		return *reg

	case !g.db.GuardUnknownMessage(recvType, send.Message):
		blockReg := g.instruct(GetAttribute, &types.Dynamic{}, []Register{recvReg}, []Literal{symLit(send.Message)}, send.Loc())
		operands := append([]Register{*blockReg, recvReg}, args...)
		operands = append(operands, kwArgs...)
		reg := g.instruct(RunBlock, sendResultType(send), operands, kwLiterals, send.Loc())
		return *reg

	default:
		return g.lowerGuardedSend(recvReg, recvType, send, args, kwArgs, kwLiterals)
	}
}

// lowerGuardedSend emits the unknown-message fallback pattern: attempt
// attribute lookup; skip the fallback if found; else invoke
// `unknown_message(name, *args)`. Both paths' RunBlock write into the same
// result register, which the continuation block reads.
func (g *Generator) lowerGuardedSend(recvReg Register, recvType types.Type, send *ast.Send, args, kwArgs []Register, kwLiterals []Literal) Register {
	loc := send.Loc()
	result := g.register(sendResultType(send))
	blockReg := g.instruct(GetAttribute, &types.Dynamic{}, []Register{recvReg}, []Literal{symLit(send.Message)}, loc)
	g.instructNoDest(GotoNextBlockIfTrue, []Register{*blockReg}, nil, loc)

	g.addConnectedBasicBlock() // fallback block
	fallbackBlock := g.instruct(GetAttribute, &types.Dynamic{}, []Register{recvReg}, []Literal{symLit("unknown_message")}, loc)
	argsArray := g.instruct(SetArray, g.db.NewArrayOfType(&types.Dynamic{}), args, nil, loc)
	g.instructInto(RunBlock, result,
		[]Register{*fallbackBlock, recvReg, *argsArray}, []Literal{strLit(send.Message)}, loc)
	g.instructNoDest(SkipNextBlock, nil, nil, loc)

	g.addConnectedBasicBlock() // direct-call block
	directOperands := append([]Register{*blockReg, recvReg}, args...)
	directOperands = append(directOperands, kwArgs...)
	g.instructInto(RunBlock, result, directOperands, kwLiterals, loc)

	g.addConnectedBasicBlock() // continuation block
	return result
}

func sendResultType(send *ast.Send) types.Type {
	if send.Type != nil {
		return send.Type
	}
	return &types.Dynamic{}
}

// primitiveArithmeticOpcode reports the direct opcode to emit for a message
// sent to a known-primitive receiver, instead of routing through a generic
// send. Only single-argument operator messages qualify;
// zero-arg or multi-arg sends of the same name (unusual, but not ruled out
// by the grammar) still go through the ordinary send path.
func primitiveArithmeticOpcode(recvType types.Type, message string, argCount int) (Opcode, bool) {
	if argCount != 1 {
		return "", false
	}
	prim, ok := recvType.(*types.Primitive)
	if !ok {
		return "", false
	}
	switch prim.Kind {
	case types.Integer:
		op, ok := integerMessageOpcodes[message]
		return op, ok
	case types.Float:
		op, ok := floatMessageOpcodes[message]
		return op, ok
	case types.Str:
		op, ok := stringMessageOpcodes[message]
		return op, ok
	default:
		return "", false
	}
}

func (g *Generator) isArrayConstructorShortcut(recvType types.Type, message string) bool {
	proto, ok := recvType.(*types.Prototype)
	return ok && proto == g.db.Array && message == "new"
}

func (g *Generator) isDirectBlockCall(recvType types.Type, message string) bool {
	_, isBlockSig := recvType.(*types.BlockSignature)
	proto, isBlockProto := recvType.(*types.Prototype)
	return (isBlockSig || (isBlockProto && proto == g.db.Block)) && message == "call"
}

// lowerSendReceiver evaluates the receiver: if absent, it is self unless
// the enclosing static scope is the module type, in which case it is the
// module global (permitting self-method calls without explicit `self.`).
func (g *Generator) lowerSendReceiver(send *ast.Send) (Register, types.Type) {
	if send.Receiver != nil {
		reg := g.lowerExpr(send.Receiver)
		return reg, send.Receiver.Typ()
	}
	if g.inModuleScope() {
		reg := g.instruct(GetGlobal, &types.Dynamic{}, nil, []Literal{symLit("MODULE")}, send.Loc())
		return *reg, g.db.Module
	}
	reg := g.instruct(GetLocal, &types.Dynamic{}, nil, []Literal{symLit("self")}, send.Loc())
	return *reg, &types.Dynamic{}
}

// lowerSelfSend desugars a bare-identifier method-on-self reference into a
// zero-argument send to self.
func (g *Generator) lowerSelfSend(name string, argTypes []types.Type, loc diag.Location) Register {
	selfReg := g.instruct(GetLocal, &types.Dynamic{}, nil, []Literal{symLit("self")}, loc)
	blockReg := g.instruct(GetAttribute, &types.Dynamic{}, []Register{*selfReg}, []Literal{symLit(name)}, loc)
	reg := g.instruct(RunBlock, &types.Dynamic{}, []Register{*blockReg, *selfReg}, nil, loc)
	return *reg
}

// lowerModuleSend desugars a bare-identifier module-method reference into a
// zero-argument send to the module global.
func (g *Generator) lowerModuleSend(name string, loc diag.Location) Register {
	modReg := g.instruct(GetGlobal, &types.Dynamic{}, nil, []Literal{symLit("MODULE")}, loc)
	blockReg := g.instruct(GetAttribute, &types.Dynamic{}, []Register{*modReg}, []Literal{symLit(name)}, loc)
	reg := g.instruct(RunBlock, &types.Dynamic{}, []Register{*blockReg, *modReg}, nil, loc)
	return *reg
}
