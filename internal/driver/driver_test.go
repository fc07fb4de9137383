package driver_test

import (
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/inko-lang/corec/internal/ast"
	"github.com/inko-lang/corec/internal/driver"
	"github.com/inko-lang/corec/internal/modgraph"
	"github.com/inko-lang/corec/internal/tir"
)

func loc() ast.Base {
	return ast.Base{}
}

func TestCompileMainGeneratesCodeObjectForCleanModule(t *testing.T) {
	body := []ast.Node{
		&ast.DefineVariable{Base: loc(), Name: "x", Value: &ast.IntegerLit{Base: loc(), Value: 1}},
	}
	file := &ast.File{Base: loc(), Body: body}
	parse := func(path string) (*ast.File, error) { return file, nil }

	result, err := driver.CompileMain("main.src", modgraph.ModeDebug, "", nil, parse, zerolog.Nop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Diagnostics.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", result.Diagnostics.All())
	}
	co, ok := result.Module.Body.(*tir.CodeObject)
	if !ok || co == nil {
		t.Fatal("expected the main module to have a generated code object")
	}
	if len(co.Blocks) == 0 {
		t.Fatal("expected at least one basic block")
	}
}

func TestCompileMainSkipsGenerationOnSemanticErrors(t *testing.T) {
	send := &ast.Send{Base: loc(), Message: "nonexistent"}
	file := &ast.File{Base: loc(), Body: []ast.Node{send}}
	parse := func(path string) (*ast.File, error) { return file, nil }

	result, err := driver.CompileMain("main.src", modgraph.ModeDebug, "", nil, parse, zerolog.Nop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Diagnostics.HasErrors() {
		t.Fatal("expected semantic errors for an undefined message send")
	}
	if result.Module.Body != nil {
		t.Error("expected no code object to be generated when semantic passes fail")
	}
}

func TestCompileMainPropagatesParseError(t *testing.T) {
	parse := func(path string) (*ast.File, error) { return nil, fmt.Errorf("boom") }

	_, err := driver.CompileMain("main.src", modgraph.ModeDebug, "", nil, parse, zerolog.Nop())
	if err == nil {
		t.Fatal("expected an error when the parse hook fails")
	}
}
