package sema

import (
	"github.com/inko-lang/corec/internal/ast"
	"github.com/inko-lang/corec/internal/modgraph"
	"github.com/inko-lang/corec/internal/types"
)

// RunPass5CheckTraitImplementations walks every `impl Trait for Obj` block
// in mod and verifies Obj's own attribute table already defines each of
// Trait's required methods before Database.ImplementTrait copies the
// trait's declared signatures onto Obj. Checking first and copying after
// means a verified method keeps its own signature as recorded by pass 4,
// with the trait's declared type applied only where pass 4 found nothing.
func RunPass5CheckTraitImplementations(state *modgraph.CompileState, mod *modgraph.Module) {
	if mod.File == nil {
		return
	}
	db := state.Types
	for _, n := range mod.File.Body {
		impl, ok := n.(*ast.TraitImpl)
		if !ok {
			continue
		}
		checkTraitImpl(state, db, impl)
	}
}

func checkTraitImpl(state *modgraph.CompileState, db *types.Database, impl *ast.TraitImpl) {
	trait := db.TraitByName(impl.TraitName)
	obj := db.Prototype(impl.ObjectName)
	if trait == nil || obj == nil {
		return
	}

	for _, name := range trait.RequiredMethods.Names() {
		sym := obj.Attributes.Lookup(name)
		if sym.IsNull() {
			state.Diagnostics.Error(errMissingImplementation(trait.Name, obj.Name, name), impl.Loc())
		}
	}

	db.ImplementTrait(obj, trait)
}
