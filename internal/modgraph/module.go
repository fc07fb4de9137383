package modgraph

import (
	"strings"

	"github.com/inko-lang/corec/internal/ast"
	"github.com/inko-lang/corec/internal/symbols"
)

// BytecodeExtension is the opaque extension the driver appends when
// computing a module's bytecode import path. The emitter that actually
// produces bytecode is out of scope for this module; the core only needs a
// stable, predictable path to reference.
const BytecodeExtension = ".bytecode-ext"

// Module is one compiled unit: its qualified name, source location, import
// list, global symbol table, and (once the TIR generator has run) its
// top-level code object.
type Module struct {
	Name          string
	QualifiedName string
	SourcePath    string

	// DefineModule is false for bootstrap modules, which skip defining a
	// module object and instead define all names directly on the toplevel.
	DefineModule bool

	Imports []*ast.ImportDecl
	Globals *symbols.Table

	// Body is the module's top-level code object once TIR generation has
	// run. Its concrete type is *tir.CodeObject; kept as any here because
	// the tir package depends on modgraph for module resolution, and a
	// *tir.CodeObject field would create an import cycle the other way.
	Body any

	File *ast.File
}

// NewModule creates a module registration before its body is loaded. Globals
// is seeded with a fresh root-level symbol table (no parent).
func NewModule(name, qualifiedName, sourcePath string, defineModule bool) *Module {
	return &Module{
		Name:          name,
		QualifiedName: qualifiedName,
		SourcePath:    sourcePath,
		DefineModule:  defineModule,
		Globals:       symbols.NewTable(nil),
	}
}

// BytecodeImportPath computes "a/b/c.bytecode-ext" from a qualified name
// "a::b::c". The exact extension is an emitter concern; the core treats the
// resulting string as opaque and only passes it to LoadModule (duplicate
// imports are detected by qualified name).
func (m *Module) BytecodeImportPath() string {
	return strings.ReplaceAll(m.QualifiedName, "::", "/") + BytecodeExtension
}
