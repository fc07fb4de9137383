package sema

import (
	"github.com/inko-lang/corec/internal/diag"
	"github.com/inko-lang/corec/internal/modgraph"
)

// RunPass2LoadImports resolves, parses, and recursively runs all six passes
// on every module mod imports that isn't already registered. Cycles are
// detected via the compile state's in-progress set (grounded on the
// teacher's LoadingModules map): re-entering a module already in progress
// records ImportCycle and skips it rather than recursing forever.
func RunPass2LoadImports(state *modgraph.CompileState, mod *modgraph.Module, parse ParseFunc) {
	if !state.BeginLoading(mod.QualifiedName) {
		state.Diagnostics.Error(errImportCycle(mod.QualifiedName), moduleLoc(mod))
		return
	}
	defer state.FinishLoading(mod.QualifiedName)

	for _, imp := range mod.Imports {
		qname := imp.QualifiedName()

		if _, ok := state.Module(qname); ok {
			continue
		}
		if state.IsLoading(qname) {
			state.Diagnostics.Error(errImportCycle(qname), imp.Loc())
			continue
		}

		sourcePath, ok := modgraph.ResolveSourcePath(state.Config, qname)
		if !ok {
			state.Diagnostics.Error(errUnknownModule(qname), imp.Loc())
			continue
		}

		file, err := parse(sourcePath)
		if err != nil {
			state.Diagnostics.Error(errUnknownModule(qname), imp.Loc())
			continue
		}

		child := modgraph.NewModule(lastPathSegment(imp.Path), qname, sourcePath, true)
		child.File = file
		state.RegisterModule(child)

		Run(state, child, parse)
	}
}

func lastPathSegment(path []string) string {
	if len(path) == 0 {
		return ""
	}
	return path[len(path)-1]
}

func moduleLoc(mod *modgraph.Module) diag.Location {
	return diag.Location{File: mod.SourcePath, Line: 1, Column: 1}
}
