package tir

import "github.com/inko-lang/corec/internal/ast"

// lowerExpr routes a node through the tag-indexed dispatch table built by
// buildExprDispatch. Every node the generator can reach inside a body
// (expressions and statements alike) produces a register holding its
// value: for most expressions the last instruction's destination, for a
// binding statement the bound value's register, and after Return/Throw a
// fresh register that no instruction writes, since control never falls
// through.
func (g *Generator) lowerExpr(n ast.Node) Register {
	return g.exprDispatch.Visit(n)
}

func (g *Generator) buildExprDispatch() *ast.Dispatch[Register] {
	d := ast.NewDispatch[Register]()
	d.On(ast.TagIntegerLit, g.lowerIntegerLit)
	d.On(ast.TagFloatLit, g.lowerFloatLit)
	d.On(ast.TagStringLit, g.lowerStringLit)
	d.On(ast.TagSelfExpr, g.lowerSelfExpr)
	d.On(ast.TagArrayLit, g.lowerArrayLit)
	d.On(ast.TagHashMapLit, g.lowerHashMapLit)
	d.On(ast.TagIdentifier, g.lowerIdentifier)
	d.On(ast.TagAttribute, g.lowerAttribute)
	d.On(ast.TagConstant, g.lowerConstant)
	d.On(ast.TagGlobalRef, g.lowerGlobalRef)
	d.On(ast.TagDereference, g.lowerDereference)
	d.On(ast.TagBlockDef, g.lowerBlockDef)
	d.On(ast.TagObjectDef, g.lowerObjectDef)
	d.On(ast.TagTraitDef, g.lowerTraitDef)
	d.On(ast.TagTraitImpl, g.lowerTraitImpl)
	d.On(ast.TagReopen, g.lowerReopen)
	d.On(ast.TagSend, g.lowerSend)
	d.On(ast.TagTypeCast, g.lowerTypeCast)
	d.On(ast.TagDefineVariable, g.lowerDefineVariable)
	d.On(ast.TagReassignVariable, g.lowerReassignVariable)
	d.On(ast.TagRawInstruction, g.lowerRawInstruction)
	d.On(ast.TagReturn, g.lowerReturn)
	d.On(ast.TagThrow, g.lowerThrow)
	d.On(ast.TagTry, g.lowerTry)
	return d
}
