package tir

import (
	"github.com/inko-lang/corec/internal/ast"
	"github.com/inko-lang/corec/internal/diag"
	"github.com/inko-lang/corec/internal/types"
)

// lowerBlockDef handles `def`, closures (`do { }` / `{ }`), and lambdas
// uniformly: create a code object, lower argument defaults, lower the body,
// and close with an explicit Return if the body didn't already end in one.
func (g *Generator) lowerBlockDef(n ast.Node) Register {
	def := n.(*ast.BlockDef)
	sig, _ := def.Type.(*types.BlockSignature)
	child := NewCodeObject(def.Name, sig, def.Loc(), g.current().Locals)

	g.pushCodeObject(child, func() {
		if def.Kind == ast.BlockLambda {
			g.lowerLambdaSelfDefault(def.Loc())
		}
		g.lowerParamDefaults(def.Params, def.Loc())
		last := g.lowerBody(def.Body)
		g.finalizeReturn(last, def.Kind != ast.BlockMethod, def.Loc())
	})

	blockReg := g.instructChild(SetBlock, blockSignatureType(sig), nil, nil, child, def.Loc())

	switch def.Kind {
	case ast.BlockMethod:
		if def.Name != "" {
			if g.inModuleScope() {
				g.instructNoDest(SetGlobal, []Register{*blockReg}, []Literal{symLit(def.Name)}, def.Loc())
			}
			selfReg := g.instruct(GetLocal, &types.Dynamic{}, nil, []Literal{symLit("self")}, def.Loc())
			g.instructNoDest(SetAttribute, []Register{*selfReg, *blockReg}, []Literal{symLit(def.Name)}, def.Loc())
		}
	}
	return *blockReg
}

func blockSignatureType(sig *types.BlockSignature) types.Type {
	if sig == nil {
		return &types.Dynamic{}
	}
	return sig
}

// lowerLambdaSelfDefault emits the synthetic self-default block a lambda's
// body begins with: if no self local exists in scope (lambdas do not
// capture self), bind it to GetGlobal MODULE so `process.spawn` still works.
func (g *Generator) lowerLambdaSelfDefault(loc diag.Location) {
	existsReg := g.instruct(LocalExists, &types.Primitive{Kind: types.Boolean}, nil, []Literal{symLit("self")}, loc)
	g.instructNoDest(GotoNextBlockIfTrue, []Register{*existsReg}, nil, loc)
	g.addConnectedBasicBlock()
	modReg := g.instruct(GetGlobal, &types.Dynamic{}, nil, []Literal{symLit("MODULE")}, loc)
	g.instructNoDest(SetLocal, []Register{*modReg}, []Literal{symLit("self")}, loc)
	g.addConnectedBasicBlock()
}

// lowerParamDefaults emits one conditional block per default-valued
// parameter, and seeds rest parameters with an empty array default.
func (g *Generator) lowerParamDefaults(params []ast.Param, loc diag.Location) {
	for _, p := range params {
		switch {
		case p.Rest:
			emptyArr := g.instruct(SetArray, &types.Dynamic{}, nil, nil, loc)
			g.instructNoDest(SetLocal, []Register{*emptyArr}, []Literal{symLit(p.Name)}, loc)
		case p.Default != nil:
			existsReg := g.instruct(LocalExists, &types.Primitive{Kind: types.Boolean}, nil, []Literal{symLit(p.Name)}, loc)
			g.instructNoDest(GotoNextBlockIfTrue, []Register{*existsReg}, nil, loc)
			g.addConnectedBasicBlock()
			val := g.lowerExpr(p.Default)
			g.instructNoDest(SetLocal, []Register{val}, []Literal{symLit(p.Name)}, loc)
			g.addConnectedBasicBlock()
		}
	}
}

// lowerBody lowers a sequence of body statements in order and returns the
// last expression's destination register, or nil if the body produced no
// value (e.g. ended in a statement with no destination).
func (g *Generator) lowerBody(body []ast.Node) *Register {
	var last *Register
	for _, stmt := range body {
		reg := g.lowerExpr(stmt)
		last = &reg
	}
	return last
}

// bodyCodeObject runs body as its own code object, a child of the
// currently active one, so a `def`/`let` inside an object/trait/impl/reopen
// body gets its own locals scope and its own place in the emitter's
// code-object list rather than leaking into the enclosing scope.
func (g *Generator) bodyCodeObject(name string, loc diag.Location, body []ast.Node) *CodeObject {
	sig := &types.BlockSignature{Tag: types.TagMethod}
	child := NewCodeObject(name, sig, loc, g.current().Locals)
	g.pushCodeObject(child, func() {
		last := g.lowerBody(body)
		g.finalizeReturn(last, false, loc)
	})
	return child
}

// lowerObjectDef fetches the object's prototype, materializes it with
// SetObject, stores it under the object's name, then runs the body as its
// own code object with the new object as receiver.
func (g *Generator) lowerObjectDef(n ast.Node) Register {
	obj := n.(*ast.ObjectDef)
	proto := g.db.Prototype(obj.Name)
	objReg := g.instruct(SetObject, proto, nil, []Literal{symLit(obj.Name)}, obj.Loc())
	if g.inModuleScope() {
		g.instructNoDest(SetGlobal, []Register{*objReg}, []Literal{symLit(obj.Name)}, obj.Loc())
	}
	child := g.bodyCodeObject(obj.Name, obj.Loc(), obj.Body)
	g.instructChild(RunBlock, &types.Dynamic{}, []Register{*objReg}, nil, child, obj.Loc())
	return *objReg
}

// lowerTraitDef fetches the trait prototype, materializes it, and runs the
// body as its own code object with the trait as receiver.
func (g *Generator) lowerTraitDef(n ast.Node) Register {
	tr := n.(*ast.TraitDef)
	trait := g.db.TraitByName(tr.Name)
	_ = trait
	reg := g.instruct(SetObject, g.db.Trait, nil, []Literal{symLit(tr.Name)}, tr.Loc())
	if g.inModuleScope() {
		g.instructNoDest(SetGlobal, []Register{*reg}, []Literal{symLit(tr.Name)}, tr.Loc())
	}
	child := g.bodyCodeObject(tr.Name, tr.Loc(), tr.Body)
	g.instructChild(RunBlock, &types.Dynamic{}, []Register{*reg}, nil, child, tr.Loc())
	return *reg
}

// lowerTraitImpl lowers `impl T for Obj { body }`: resolve both globals,
// run implement_trait(Obj, T) as a regular send, then evaluate the body as
// its own code object with Obj as receiver.
func (g *Generator) lowerTraitImpl(n ast.Node) Register {
	impl := n.(*ast.TraitImpl)
	objReg := g.instruct(GetGlobal, &types.Dynamic{}, nil, []Literal{symLit(impl.ObjectName)}, impl.Loc())
	traitReg := g.instruct(GetGlobal, &types.Dynamic{}, nil, []Literal{symLit(impl.TraitName)}, impl.Loc())
	result := g.instruct(RunBlock, &types.Dynamic{}, []Register{*traitReg, *objReg}, []Literal{symLit("implement_trait")}, impl.Loc())
	child := g.bodyCodeObject(impl.ObjectName, impl.Loc(), impl.Body)
	g.instructChild(RunBlock, &types.Dynamic{}, []Register{*objReg}, nil, child, impl.Loc())
	return *result
}

// lowerReopen evaluates the body as its own code object with the existing
// object as receiver; no new object is created.
func (g *Generator) lowerReopen(n ast.Node) Register {
	reopen := n.(*ast.Reopen)
	objReg := g.instruct(GetGlobal, &types.Dynamic{}, nil, []Literal{symLit(reopen.ObjectName)}, reopen.Loc())
	child := g.bodyCodeObject(reopen.ObjectName, reopen.Loc(), reopen.Body)
	g.instructChild(RunBlock, &types.Dynamic{}, []Register{*objReg}, nil, child, reopen.Loc())
	return *objReg
}
