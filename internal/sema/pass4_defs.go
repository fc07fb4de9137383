package sema

import (
	"github.com/inko-lang/corec/internal/ast"
	"github.com/inko-lang/corec/internal/symbols"
	"github.com/inko-lang/corec/internal/types"
)

var blockKindTag = map[ast.BlockDefKind]types.BlockTag{
	ast.BlockMethod:  types.TagMethod,
	ast.BlockClosure: types.TagClosure,
	ast.BlockLambda:  types.TagLambda,
}

// buildBlockSignature resolves a BlockDef's declared argument/return/throw
// types into a types.BlockSignature, without touching its body.
func buildBlockSignature(db *types.Database, def *ast.BlockDef) *types.BlockSignature {
	sig := &types.BlockSignature{
		TypeParams: def.TypeParams,
		Tag:        blockKindTag[def.Kind],
		Return:     resolveTypeRef(db, def.ReturnType),
		Throw:      resolveTypeRef(db, def.ThrowType),
	}
	for i, p := range def.Params {
		sig.Arguments = append(sig.Arguments, types.Param{
			Name:    p.Name,
			Type:    resolveTypeRef(db, p.Type),
			Default: p.Default != nil,
		})
		if p.Rest && i == len(def.Params)-1 {
			sig.Rest = true
		}
	}
	return sig
}

// inferBlockDef resolves the block's own signature, then infers its body
// in a fresh locals scope parented on the enclosing one. self is unchanged
// for a method or closure (both execute with the enclosing receiver) and
// becomes the module type for a lambda (lambdas don't capture self).
func (ti *inferer) inferBlockDef(n ast.Node) types.Type {
	def := n.(*ast.BlockDef)
	sig := buildBlockSignature(ti.db, def)

	ti.locals = append(ti.locals, symbols.NewTable(ti.currentLocals()))
	for _, p := range def.Params {
		ti.currentLocals().Define(p.Name, resolveTypeRef(ti.db, p.Type), true)
		if p.Default != nil {
			ti.infer(p.Default)
		}
	}

	selfType := ti.currentSelf()
	if def.Kind == ast.BlockLambda {
		selfType = ti.db.Module
	}
	ti.self = append(ti.self, selfType)

	for _, stmt := range def.Body {
		ti.infer(stmt)
	}

	ti.self = ti.self[:len(ti.self)-1]
	ti.locals = ti.locals[:len(ti.locals)-1]

	if def.Kind == ast.BlockMethod && def.Name != "" {
		if proto, ok := ti.currentSelf().(*types.Prototype); ok {
			proto.Attributes.Define(def.Name, sig, false)
		}
		if ti.inModuleScope() {
			ti.mod.Globals.Define(def.Name, sig, true)
		}
	}

	setType(n, sig)
	return sig
}

// inferObjectDef registers (or reuses) the object's prototype, then infers
// the body with it as self.
func (ti *inferer) inferObjectDef(n ast.Node) types.Type {
	obj := n.(*ast.ObjectDef)
	proto := ti.db.Prototype(obj.Name)
	if proto == nil {
		proto = types.NewPrototype(obj.Name, types.KindObject, nil)
		ti.db.RegisterPrototype(proto)
	}

	ti.self = append(ti.self, proto)
	for _, stmt := range obj.Body {
		ti.infer(stmt)
	}
	ti.self = ti.self[:len(ti.self)-1]

	setType(n, proto)
	return proto
}

// inferTraitDef registers (or reuses) the trait, resolves its required
// method signatures, then infers the body with the trait meta-prototype as
// self.
func (ti *inferer) inferTraitDef(n ast.Node) types.Type {
	tr := n.(*ast.TraitDef)
	trait := ti.db.TraitByName(tr.Name)
	if trait == nil {
		trait = &types.Trait{Name: tr.Name, RequiredMethods: symbols.NewTable(nil)}
		ti.db.RegisterTrait(trait)
	}
	for _, req := range tr.RequiredMethods {
		sig := buildBlockSignature(ti.db, req)
		trait.RequiredMethods.Define(req.Name, sig, false)
	}

	ti.self = append(ti.self, ti.db.Trait)
	for _, stmt := range tr.Body {
		ti.infer(stmt)
	}
	ti.self = ti.self[:len(ti.self)-1]

	setType(n, ti.db.Trait)
	return ti.db.Trait
}

// inferTraitImpl infers the body with the implementing object as self. It
// deliberately does not call Database.ImplementTrait itself — pass 5 must
// see the object's own pre-existing attribute table to verify required
// methods are actually defined there before the trait's declared
// signatures get copied on top.
func (ti *inferer) inferTraitImpl(n ast.Node) types.Type {
	impl := n.(*ast.TraitImpl)
	var self types.Type = &types.Dynamic{}
	if proto := ti.db.Prototype(impl.ObjectName); proto != nil {
		self = proto
	}

	ti.self = append(ti.self, self)
	for _, stmt := range impl.Body {
		ti.infer(stmt)
	}
	ti.self = ti.self[:len(ti.self)-1]

	setType(n, self)
	return self
}

// inferReopen infers the body with the existing object as self.
func (ti *inferer) inferReopen(n ast.Node) types.Type {
	reopen := n.(*ast.Reopen)
	var self types.Type = &types.Dynamic{}
	if proto := ti.db.Prototype(reopen.ObjectName); proto != nil {
		self = proto
	}

	ti.self = append(ti.self, self)
	for _, stmt := range reopen.Body {
		ti.infer(stmt)
	}
	ti.self = ti.self[:len(ti.self)-1]

	setType(n, self)
	return self
}

// inferSend resolves the callee block via the receiver's attribute table,
// validates arity and keyword arguments, initializes any generic type
// parameters from the inferred argument types, and computes the call's
// return type.
func (ti *inferer) inferSend(n ast.Node) types.Type {
	send := n.(*ast.Send)

	var recvType types.Type
	if send.Receiver != nil {
		recvType = ti.infer(send.Receiver)
	} else {
		recvType = ti.currentSelf()
	}

	argTypes := make([]types.Type, len(send.Args))
	for i, a := range send.Args {
		argTypes[i] = ti.infer(a)
	}
	for _, kw := range send.KwArgs {
		ti.infer(kw.Value)
	}

	sym := ti.db.LookupMethod(recvType, send.Message)
	if sym.IsNull() {
		if !ti.db.GuardUnknownMessage(recvType, send.Message) {
			ti.state.Diagnostics.Error(errUndefinedMethod(recvType.String(), send.Message), send.Loc())
		}
		t := &types.Dynamic{}
		setType(n, t)
		return t
	}

	block, _ := sym.Type.(*types.BlockSignature)
	if block == nil {
		t := &types.Dynamic{}
		setType(n, t)
		return t
	}

	min, max := block.ArgumentCountRange()
	got := len(send.Args)
	if got < min || (got > max && !block.Rest) {
		ti.state.Diagnostics.Error(errArityMismatch(send.Message, got, min, max), send.Loc())
	}
	for _, kw := range send.KwArgs {
		if _, ok := block.LookupArgument(kw.Name); !ok {
			ti.state.Diagnostics.Error(errUnknownKeyword(send.Message, kw.Name), send.Loc())
		}
	}

	ctx := types.NewMessageContext(recvType, block, argTypes, send.Loc())
	for i, param := range block.Arguments {
		if i >= len(argTypes) {
			break
		}
		if tp, ok := param.Type.(*types.TypeParameter); ok {
			ctx.InitializeTypeParameter(tp.Name, argTypes[i])
		}
	}

	send.Block = block
	t := ctx.InitializedReturnType(ti.db)
	setType(n, t)
	return t
}
