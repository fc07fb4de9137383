package tir

import (
	"github.com/inko-lang/corec/internal/ast"
	"github.com/inko-lang/corec/internal/types"
)

// lowerSelfExpr resolves `self`: GetLocal of the self local in the current
// scope, except inside a lambda, where lambdas don't capture self and it
// becomes GetGlobal MODULE instead.
func (g *Generator) lowerSelfExpr(n ast.Node) Register {
	expr := n.(*ast.SelfExpr)
	if g.current().Signature != nil && g.current().Signature.Tag == types.TagLambda {
		reg := g.instruct(GetGlobal, expr.Type, nil, []Literal{symLit("MODULE")}, expr.Loc())
		return *reg
	}
	reg := g.instruct(GetLocal, selfType(expr.Type), nil, []Literal{symLit("self")}, expr.Loc())
	return *reg
}

func selfType(t types.Type) types.Type {
	if t == nil {
		return &types.Dynamic{}
	}
	return t
}

// lowerIdentifier dispatches on the Kind the resolution pass recorded.
func (g *Generator) lowerIdentifier(n ast.Node) Register {
	id := n.(*ast.Identifier)
	switch id.Kind {
	case ast.IdentLocal:
		reg := g.instruct(GetParentLocal, identType(id.Type), nil,
			[]Literal{intLit(int64(id.Depth)), symLit(id.Name)}, id.Loc())
		return *reg
	case ast.IdentSelfMethod:
		return g.lowerSelfSend(id.Name, nil, id.Loc())
	case ast.IdentModuleMethod:
		return g.lowerModuleSend(id.Name, id.Loc())
	default: // ast.IdentGlobal
		if id.Symbol.Index < 0 {
			g.diags.Error(errUndefinedGlobal(id.Name), id.Loc())
		}
		reg := g.instruct(GetGlobal, identType(id.Type), nil, []Literal{symLit(id.Name)}, id.Loc())
		return *reg
	}
}

func identType(t types.Type) types.Type {
	if t == nil {
		return &types.Dynamic{}
	}
	return t
}

// lowerAttribute always reads from self: GetLocal self, then GetAttribute.
func (g *Generator) lowerAttribute(n ast.Node) Register {
	attr := n.(*ast.Attribute)
	selfReg := g.instruct(GetLocal, &types.Dynamic{}, nil, []Literal{symLit("self")}, attr.Loc())
	reg := g.instruct(GetAttribute, identType(attr.Type), []Register{*selfReg}, []Literal{symLit(attr.Name)}, attr.Loc())
	return *reg
}

// lowerConstant resolves against the receiver's attribute table if present,
// else Nil.
func (g *Generator) lowerConstant(n ast.Node) Register {
	c := n.(*ast.Constant)
	if c.Receiver == nil {
		reg := g.instruct(SetLiteral, &types.Primitive{Kind: types.NilKind}, nil,
			[]Literal{{Kind: LiteralSymbol, Str: "nil"}}, c.Loc())
		return *reg
	}
	recvReg := g.lowerExpr(c.Receiver)
	reg := g.instruct(GetAttribute, identType(c.Type), []Register{recvReg}, []Literal{symLit(c.Name)}, c.Loc())
	return *reg
}

func (g *Generator) lowerGlobalRef(n ast.Node) Register {
	ref := n.(*ast.GlobalRef)
	reg := g.instruct(GetGlobal, identType(ref.Type), nil, []Literal{symLit(ref.Name)}, ref.Loc())
	return *reg
}

func (g *Generator) lowerDereference(n ast.Node) Register {
	d := n.(*ast.Dereference)
	return g.lowerExpr(d.Value)
}
