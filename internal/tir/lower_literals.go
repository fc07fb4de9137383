package tir

import (
	"github.com/inko-lang/corec/internal/ast"
	"github.com/inko-lang/corec/internal/types"
)

func (g *Generator) lowerIntegerLit(n ast.Node) Register {
	lit := n.(*ast.IntegerLit)
	reg := g.instruct(SetLiteral, &types.Primitive{Kind: types.Integer}, nil,
		[]Literal{intLit(lit.Value)}, lit.Loc())
	return *reg
}

func (g *Generator) lowerFloatLit(n ast.Node) Register {
	lit := n.(*ast.FloatLit)
	reg := g.instruct(SetLiteral, &types.Primitive{Kind: types.Float}, nil,
		[]Literal{floatLit(lit.Value)}, lit.Loc())
	return *reg
}

func (g *Generator) lowerStringLit(n ast.Node) Register {
	lit := n.(*ast.StringLit)
	reg := g.instruct(SetLiteral, &types.Primitive{Kind: types.Str}, nil,
		[]Literal{strLit(lit.Value)}, lit.Loc())
	return *reg
}

// lowerArrayLit evaluates each element left-to-right, then emits SetArray.
func (g *Generator) lowerArrayLit(n ast.Node) Register {
	lit := n.(*ast.ArrayLit)
	elems := make([]Register, len(lit.Elements))
	for i, el := range lit.Elements {
		elems[i] = g.lowerExpr(el)
	}
	reg := g.instruct(SetArray, g.db.NewArrayOfType(&types.Dynamic{}), elems, nil, lit.Loc())
	return *reg
}

// lowerHashMapLit lowers a `%[k: v, …]` literal as HashMap.new (receiver
// `HashMap` fetched via GetGlobal, then invoked as operand[0] of RunBlock),
// then `hash[k] = v` via `[]=` for each pair.
func (g *Generator) lowerHashMapLit(n ast.Node) Register {
	lit := n.(*ast.HashMapLit)
	hashMapProto := g.db.Prototype("HashMap")
	classReg := g.instruct(GetGlobal, hashMapProto, nil, []Literal{symLit("HashMap")}, lit.Loc())
	newReg := g.instruct(RunBlock, hashMapProto, []Register{*classReg}, []Literal{symLit("new")}, lit.Loc())
	hm := *newReg
	for _, entry := range lit.Entries {
		k := g.lowerExpr(entry.Key)
		v := g.lowerExpr(entry.Value)
		g.instruct(RunBlock, &types.Dynamic{}, []Register{hm, k, v}, []Literal{symLit("[]=")}, lit.Loc())
	}
	return hm
}
