package tir

import (
	"github.com/inko-lang/corec/internal/ast"
	"github.com/inko-lang/corec/internal/diag"
	"github.com/inko-lang/corec/internal/modgraph"
	"github.com/inko-lang/corec/internal/types"
)

// lowerImports generates the module's imports block: exactly one
// LoadModule per qualified name (even if the module imports it more than
// once), followed by the toplevel.modules.<qname>
// attribute chain and per-symbol binding.
func (g *Generator) lowerImports(imports []*ast.ImportDecl) {
	for _, imp := range imports {
		g.lowerImport(imp)
	}
}

func (g *Generator) lowerImport(imp *ast.ImportDecl) {
	loc := imp.Loc()
	qname := imp.QualifiedName()

	if !g.loadedModules[qname] {
		g.loadedModules[qname] = true
		pathReg := g.instruct(SetLiteral, &types.Primitive{Kind: types.Str}, nil,
			[]Literal{strLit((&modgraph.Module{QualifiedName: qname}).BytecodeImportPath())}, loc)
		g.instructNoDest(LoadModule, []Register{*pathReg}, nil, loc)
	}

	toplevelReg := g.instruct(GetGlobal, &types.Dynamic{}, nil, []Literal{symLit("toplevel")}, loc)
	modulesReg := g.instruct(GetAttribute, &types.Dynamic{}, []Register{*toplevelReg}, []Literal{symLit("modules")}, loc)
	moduleReg := g.instruct(GetAttribute, &types.Dynamic{}, []Register{*modulesReg}, []Literal{symLit(qname)}, loc)

	for _, sym := range imp.Symbols {
		switch sym.Kind {
		case ast.ImportSelf:
			name := sym.Alias
			if name == "" {
				name = qname
			}
			g.instructNoDest(SetGlobal, []Register{*moduleReg}, []Literal{symLit(name)}, loc)
		case ast.ImportNamed:
			symReg := g.instruct(GetAttribute, &types.Dynamic{}, []Register{*moduleReg}, []Literal{symLit(sym.Name)}, loc)
			name := sym.Alias
			if name == "" {
				name = sym.Name
			}
			g.instructNoDest(SetGlobal, []Register{*symReg}, []Literal{symLit(name)}, loc)
		case ast.ImportGlob:
			g.lowerGlobImport(*moduleReg, qname, loc)
		}
	}
}

// lowerGlobImport re-exports every name the imported module's global table
// records, in insertion order, one GetAttribute/SetGlobal pair per name.
func (g *Generator) lowerGlobImport(moduleReg Register, qname string, loc diag.Location) {
	mod, ok := g.state.Module(qname)
	if !ok {
		return
	}
	for _, name := range mod.Globals.Names() {
		symReg := g.instruct(GetAttribute, &types.Dynamic{}, []Register{moduleReg}, []Literal{symLit(name)}, loc)
		g.instructNoDest(SetGlobal, []Register{*symReg}, []Literal{symLit(name)}, loc)
	}
}
