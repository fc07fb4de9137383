package sema_test

import (
	"testing"

	"github.com/inko-lang/corec/internal/ast"
	"github.com/inko-lang/corec/internal/diag"
	"github.com/inko-lang/corec/internal/sema"
)

func TestPass5MissingImplementationIsDiagnosed(t *testing.T) {
	trait := &ast.TraitDef{
		Base: ast.Base{Location: loc()},
		Name: "Greet",
		RequiredMethods: []*ast.BlockDef{
			{Base: ast.Base{Location: loc()}, Kind: ast.BlockMethod, Name: "hello"},
		},
	}
	obj := &ast.ObjectDef{Base: ast.Base{Location: loc()}, Name: "Widget"}
	impl := &ast.TraitImpl{Base: ast.Base{Location: loc()}, TraitName: "Greet", ObjectName: "Widget"}
	mod, state := moduleOf(trait, obj, impl)

	sema.RunPass4InferTypes(state, mod)
	sema.RunPass5CheckTraitImplementations(state, mod)

	found := false
	for _, d := range state.Diagnostics.All() {
		if d.Code == diag.CodeMissingImplementation {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a missing-implementation diagnostic: %v", state.Diagnostics.All())
	}
}

func TestPass5SatisfiedImplementationHasNoDiagnostic(t *testing.T) {
	trait := &ast.TraitDef{
		Base: ast.Base{Location: loc()},
		Name: "Greet",
		RequiredMethods: []*ast.BlockDef{
			{Base: ast.Base{Location: loc()}, Kind: ast.BlockMethod, Name: "hello"},
		},
	}
	obj := &ast.ObjectDef{
		Base: ast.Base{Location: loc()},
		Name: "Widget",
		Body: []ast.Node{
			&ast.BlockDef{Base: ast.Base{Location: loc()}, Kind: ast.BlockMethod, Name: "hello"},
		},
	}
	impl := &ast.TraitImpl{Base: ast.Base{Location: loc()}, TraitName: "Greet", ObjectName: "Widget"}
	mod, state := moduleOf(trait, obj, impl)

	sema.RunPass4InferTypes(state, mod)
	sema.RunPass5CheckTraitImplementations(state, mod)

	if state.Diagnostics.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", state.Diagnostics.All())
	}
	if !state.Types.Prototype("Widget").ImplementsTrait("Greet") {
		t.Error("expected Widget to be recorded as implementing Greet")
	}
}
