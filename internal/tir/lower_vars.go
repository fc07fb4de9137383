package tir

import (
	"github.com/inko-lang/corec/internal/ast"
	"github.com/inko-lang/corec/internal/types"
)

// lowerDefineVariable evaluates the value then SetLocal; at module scope it
// additionally SetGlobal.
func (g *Generator) lowerDefineVariable(n ast.Node) Register {
	def := n.(*ast.DefineVariable)
	val := g.lowerExpr(def.Value)
	g.instructNoDest(SetLocal, []Register{val}, []Literal{symLit(def.Name)}, def.Loc())
	if g.current().Signature != nil && g.current().Signature.Tag == types.TagMethod && g.inModuleScope() {
		g.instructNoDest(SetGlobal, []Register{val}, []Literal{symLit(def.Name)}, def.Loc())
	}
	return val
}

// inModuleScope reports whether the generator is currently emitting a
// module's top-level body (no enclosing method/closure/lambda).
func (g *Generator) inModuleScope() bool {
	return len(g.stack) == 1
}

func (g *Generator) lowerReassignVariable(n ast.Node) Register {
	r := n.(*ast.ReassignVariable)
	val := g.lowerExpr(r.Value)
	if r.Depth >= 0 {
		g.instructNoDest(SetParentLocal, []Register{val}, []Literal{intLit(int64(r.Depth)), symLit(r.Name)}, r.Loc())
	} else {
		g.instructNoDest(SetLocal, []Register{val}, []Literal{symLit(r.Name)}, r.Loc())
	}
	return val
}

func (g *Generator) lowerTypeCast(n ast.Node) Register {
	cast := n.(*ast.TypeCast)
	return g.lowerExpr(cast.Value)
}
