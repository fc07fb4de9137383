package sema_test

import (
	"github.com/rs/zerolog"

	"github.com/inko-lang/corec/internal/ast"
	"github.com/inko-lang/corec/internal/diag"
	"github.com/inko-lang/corec/internal/modgraph"
)

func loc() diag.Location {
	return diag.Location{File: "test.src", Line: 1, Column: 1}
}

func newState() *modgraph.CompileState {
	return modgraph.NewCompileState(modgraph.DefaultConfig(modgraph.ModeDebug), zerolog.Nop())
}

func nopLogger() zerolog.Logger {
	return zerolog.Nop()
}

// moduleOf registers a fresh module named "main", with body as its parsed
// file contents, and returns both.
func moduleOf(body ...ast.Node) (*modgraph.Module, *modgraph.CompileState) {
	state := newState()
	mod := modgraph.NewModule("main", "main", "main.src", false)
	mod.File = &ast.File{Base: ast.Base{Location: loc()}, Body: body}
	state.RegisterModule(mod)
	return mod, state
}

func intLit(v int64) *ast.IntegerLit {
	return &ast.IntegerLit{Base: ast.Base{Location: loc()}, Value: v}
}

func strLit(v string) *ast.StringLit {
	return &ast.StringLit{Base: ast.Base{Location: loc()}, Value: v}
}
