package types

import "github.com/inko-lang/corec/internal/diag"

// MessageContext captures everything needed to type a single call site: the
// receiver's static type, the resolved block signature, the argument
// types, a fresh type-parameter table seeded from the receiver and the
// block, and the call's source location.
type MessageContext struct {
	Receiver   Type
	Block      *BlockSignature
	ArgTypes   []Type
	TypeParams *TypeParameterTable
	Location   diag.Location
}

// NewMessageContext seeds a fresh type-parameter table from the receiver
// (if it is a GenericInstance, its bound type arguments are paired with its
// base's declared parameter names) and then merges the block's own type
// parameters on top, so a generic block called on a generic receiver sees
// both without either clobbering the other.
func NewMessageContext(receiver Type, block *BlockSignature, argTypes []Type, loc diag.Location) *MessageContext {
	ctx := &MessageContext{
		Receiver:   receiver,
		Block:      block,
		ArgTypes:   argTypes,
		TypeParams: NewTypeParameterTable(),
		Location:   loc,
	}

	if inst, ok := receiver.(*GenericInstance); ok {
		for i, name := range inst.Base.TypeParams {
			if i < len(inst.Args) {
				ctx.TypeParams.Set(name, inst.Args[i])
			}
		}
	}

	if block != nil {
		blockParams := NewTypeParameterTable()
		for _, name := range block.TypeParams {
			blockParams.Set(name, &Dynamic{})
		}
		blockParams.Merge(ctx.TypeParams)
		ctx.TypeParams = blockParams
	}

	return ctx
}

// InitializeTypeParameter binds name to actual in the context's type
// parameter table. When the receiver is a generic instance of a base that
// declares the same parameter name, its bound argument is updated too, so
// later lookups through either the receiver or the context agree.
func (ctx *MessageContext) InitializeTypeParameter(name string, actual Type) {
	ctx.TypeParams.Set(name, actual)

	inst, ok := ctx.Receiver.(*GenericInstance)
	if !ok {
		return
	}
	for i, paramName := range inst.Base.TypeParams {
		if paramName == name && i < len(inst.Args) {
			inst.Args[i] = actual
		}
	}
}

// InitializedReturnType computes the call's return type: the block's
// declared return type, then Database.ResolveType against the context's
// type parameters, then — only if what remains is still an uninstantiated
// generic prototype — Database.NewInstance against the same table. The
// order is load-bearing: see Database.NewInstance's doc comment.
func (ctx *MessageContext) InitializedReturnType(db *Database) Type {
	if ctx.Block == nil || ctx.Block.Return == nil {
		return &Primitive{Kind: NilKind}
	}
	rt := ctx.Block.Return
	rt = db.ResolveType(rt, ctx.TypeParams)
	if db.GenericType(rt) {
		rt = db.NewInstance(rt, ctx.TypeParams)
	}
	return rt
}
