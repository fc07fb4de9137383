package sema

import "github.com/inko-lang/corec/internal/modgraph"

// RunPass1CollectImports gathers a module's import declarations in source
// order. The parser already attaches them to File.Imports; this pass just
// copies the reference onto the module registration, which is the shape
// every later pass and the TIR generator consult.
func RunPass1CollectImports(mod *modgraph.Module) {
	if mod.File == nil {
		return
	}
	mod.Imports = mod.File.Imports
}
