package tir_test

import (
	"github.com/rs/zerolog"

	"github.com/inko-lang/corec/internal/ast"
	"github.com/inko-lang/corec/internal/diag"
	"github.com/inko-lang/corec/internal/modgraph"
	"github.com/inko-lang/corec/internal/tir"
)

func diagLoc() diag.Location {
	return diag.Location{File: "test.src", Line: 1, Column: 1}
}

// newGenerator builds a generator over a fresh compile state, with the given
// modules (if any) pre-registered so import lowering can resolve them.
func newGenerator(mods ...*modgraph.Module) (*tir.Generator, *modgraph.CompileState) {
	state := modgraph.NewCompileState(modgraph.DefaultConfig(modgraph.ModeDebug), zerolog.Nop())
	for _, m := range mods {
		state.RegisterModule(m)
	}
	return tir.NewGenerator(state), state
}

func intLitNode(v int64) *ast.IntegerLit {
	return &ast.IntegerLit{Base: ast.Base{Location: diagLoc()}, Value: v}
}

func strLitNode(v string) *ast.StringLit {
	return &ast.StringLit{Base: ast.Base{Location: diagLoc()}, Value: v}
}
