// Package driver wires the semantic passes, TIR generation, and
// reachability analysis into the single entry point a CLI or embedder
// calls: compile a main module, and every module it transitively imports,
// to a code object tree, or a non-empty diagnostic bag explaining why not.
package driver

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/inko-lang/corec/internal/diag"
	"github.com/inko-lang/corec/internal/modgraph"
	"github.com/inko-lang/corec/internal/reach"
	"github.com/inko-lang/corec/internal/sema"
	"github.com/inko-lang/corec/internal/tir"
)

// Result is what a compile produces: the main module and the full
// diagnostic bag. Body is populated for every registered module only when
// no semantic pass reported an error; a single error anywhere leaves every
// module's Body unset.
type Result struct {
	Module      *modgraph.Module
	Diagnostics *diag.Bag
}

// CompileMain parses and semantically checks path as the program's entry
// module, then — if no pass reported an error — generates TIR and runs
// reachability analysis for it and every module it (transitively) imports.
// parse is the external lexer/parser hook (out of scope for this module);
// mode/targetDir/includeDirs configure module resolution the same way an
// inko.yaml or CLI flags would.
func CompileMain(path string, mode modgraph.Mode, targetDir string, includeDirs []string, parse sema.ParseFunc, logger zerolog.Logger) (*Result, error) {
	cfg := modgraph.DefaultConfig(mode)
	if targetDir != "" {
		cfg.TargetDir = targetDir
	}
	if len(includeDirs) > 0 {
		cfg.IncludeDirs = includeDirs
	}

	state := modgraph.NewCompileState(cfg, logger)

	file, err := parse(path)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	qname := mainQualifiedName(path)
	mod := modgraph.NewModule(mainModuleName(path), qname, path, true)
	mod.File = file
	state.RegisterModule(mod)

	logger.Debug().Str("module", qname).Msg("running semantic passes")
	sema.Run(state, mod, parse)

	if state.Diagnostics.HasErrors() {
		logger.Warn().Int("count", state.Diagnostics.Len()).Msg("semantic errors, skipping code generation")
		return &Result{Module: mod, Diagnostics: state.Diagnostics}, nil
	}

	for _, m := range state.Modules {
		gen := tir.NewGenerator(state)
		co := gen.GenerateModule(m)
		reach.Analyze(co)
		logger.Debug().Str("module", m.QualifiedName).Msg("generated code object")
	}

	return &Result{Module: mod, Diagnostics: state.Diagnostics}, nil
}

// mainModuleName derives a bare module name from a source path: the file's
// base name without its extension, e.g. "src/main.src" -> "main".
func mainModuleName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// mainQualifiedName treats the entry module's own name as its qualified
// name; it has no package prefix since it is the compile's root.
func mainQualifiedName(path string) string {
	return mainModuleName(path)
}
