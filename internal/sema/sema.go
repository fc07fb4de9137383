// Package sema implements the five ordered semantic passes that run on a
// module's AST before TIR generation: import collection, module loading
// (with cycle detection), global definition, type inference/resolution,
// and trait-implementation checking. Reachability/return annotation (pass
// 6) runs on the generated TIR, in the reach package.
//
// Passes MUST NOT assume an earlier pass fully succeeded — every lookup
// tolerates a NullSymbol or Dynamic placeholder rather than panicking, so a
// single run surfaces as many diagnostics as possible instead of stopping
// at the first one.
package sema

import (
	"github.com/inko-lang/corec/internal/ast"
	"github.com/inko-lang/corec/internal/modgraph"
)

// ParseFunc is the external parser hook: given a resolved source path, it
// returns the already-lexed-and-parsed AST. Lexing/parsing is an external
// black box (out of scope for this module); the driver supplies the real
// implementation, tests supply a fixture.
type ParseFunc func(sourcePath string) (*ast.File, error)

// Run executes passes 1-5 on mod (pass 6 runs after TIR generation, once
// code objects exist to annotate — see the reach package and the driver).
// It recurses into every transitively imported module that isn't already
// registered, via RunPass2LoadImports.
func Run(state *modgraph.CompileState, mod *modgraph.Module, parse ParseFunc) {
	RunPass1CollectImports(mod)
	RunPass2LoadImports(state, mod, parse)
	RunPass3DefineGlobals(state, mod)
	RunPass4InferTypes(state, mod)
	RunPass5CheckTraitImplementations(state, mod)
}
