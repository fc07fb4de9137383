package tir

import (
	"github.com/inko-lang/corec/internal/diag"
	"github.com/inko-lang/corec/internal/modgraph"
	"github.com/inko-lang/corec/internal/types"
)

// GenerateModule produces a module's top-level code object: the imports
// block, then (when mod.DefineModule) a define_module block, then the user
// body. Bootstrap modules with DefineModule false skip the second block and
// define all names directly on the toplevel (see DESIGN.md).
func (g *Generator) GenerateModule(mod *modgraph.Module) *CodeObject {
	sig := &types.BlockSignature{Tag: types.TagMethod}
	top := NewCodeObject(mod.QualifiedName, sig, moduleLoc(mod), mod.Globals)

	g.pushCodeObject(top, func() {
		g.lowerImports(mod.Imports)

		if mod.DefineModule {
			g.addConnectedBasicBlock()
			selfReg := g.instruct(SetObject, g.db.Module, nil, []Literal{symLit(mod.QualifiedName)}, moduleLoc(mod))
			g.instructNoDest(SetLocal, []Register{*selfReg}, []Literal{symLit("self")}, moduleLoc(mod))
		}

		g.addConnectedBasicBlock()
		var last *Register
		if mod.File != nil {
			last = g.lowerBody(mod.File.Body)
		}
		g.finalizeReturn(last, false, moduleLoc(mod))
	})

	mod.Body = top
	return top
}

func moduleLoc(mod *modgraph.Module) diag.Location {
	return diag.Location{File: mod.SourcePath, Line: 1, Column: 1}
}
