package sema

import (
	"github.com/inko-lang/corec/internal/ast"
	"github.com/inko-lang/corec/internal/modgraph"
	"github.com/inko-lang/corec/internal/types"
)

// RunPass3DefineGlobals walks a module's top-level let/object/trait/def
// declarations and registers one global symbol per name with a provisional
// Dynamic type (pass 4 attaches real types to individual AST nodes; the
// symbol table itself keeps the placeholder until then). Redeclaring a
// name at module scope is a
// DuplicateSymbol diagnostic rather than silent shadowing, since globals
// (unlike locals) are not lexically nested.
func RunPass3DefineGlobals(state *modgraph.CompileState, mod *modgraph.Module) {
	if mod.File == nil {
		return
	}
	for _, n := range mod.File.Body {
		defineGlobal(state, mod, n)
	}
}

func defineGlobal(state *modgraph.CompileState, mod *modgraph.Module, n ast.Node) {
	var name string
	switch v := n.(type) {
	case *ast.DefineVariable:
		name = v.Name
	case *ast.ObjectDef:
		name = v.Name
	case *ast.TraitDef:
		name = v.Name
	case *ast.BlockDef:
		if v.Kind != ast.BlockMethod || v.Name == "" {
			return
		}
		name = v.Name
	default:
		return
	}

	if _, ok := mod.Globals.DefineUnique(name, &types.Dynamic{}, true); !ok {
		state.Diagnostics.Error(errDuplicateSymbol(name), n.Loc())
	}
}
