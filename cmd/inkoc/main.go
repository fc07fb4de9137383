package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/inko-lang/corec/internal/ast"
	"github.com/inko-lang/corec/internal/diag"
	"github.com/inko-lang/corec/internal/driver"
	"github.com/inko-lang/corec/internal/modgraph"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: inkoc [-mode debug|release|test] [-target DIR] [-include DIR,...] [-log-level LEVEL] <main-file>\n")
	}

	mode := flag.String("mode", "", "compile mode: debug, release, or test")
	target := flag.String("target", "", "output directory")
	include := flag.String("include", "", "comma-separated include directories, earlier entries shadow later ones")
	logLevel := flag.String("log-level", "warn", "zerolog level: trace, debug, info, warn, error")
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}
	mainFile := flag.Arg(0)

	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		level = zerolog.WarnLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	cfg, err := modgraph.LoadYAMLConfig("inko.yaml", resolveMode(*mode))
	if err != nil {
		fmt.Fprintf(os.Stderr, "inkoc: reading inko.yaml: %v\n", err)
		os.Exit(1)
	}
	if *mode != "" {
		cfg.Mode = modgraph.Mode(*mode)
	}
	if *target != "" {
		cfg.TargetDir = *target
	}
	var includeDirs []string
	if *include != "" {
		includeDirs = strings.Split(*include, ",")
	} else {
		includeDirs = cfg.IncludeDirs
	}

	result, err := driver.CompileMain(mainFile, cfg.Mode, cfg.TargetDir, includeDirs, notImplementedParser, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "inkoc: %v\n", err)
		os.Exit(1)
	}

	if result.Diagnostics.Len() > 0 {
		diag.FormatCompact(os.Stderr, result.Diagnostics.All())
	}
	if result.Diagnostics.HasErrors() {
		os.Exit(1)
	}
	os.Exit(0)
}

func resolveMode(flagValue string) modgraph.Mode {
	if flagValue != "" {
		return modgraph.Mode(flagValue)
	}
	return modgraph.ModeDebug
}

// notImplementedParser is the external lexer/parser hook's placeholder: the
// compiler core treats lexing and parsing as an external collaborator and
// never implements them itself. A real deployment wires its own parser
// package here; this build reports the gap instead of silently producing an
// empty AST.
func notImplementedParser(sourcePath string) (*ast.File, error) {
	return nil, fmt.Errorf("inkoc: no parser wired in for %s (lexing/parsing is an external collaborator)", sourcePath)
}
