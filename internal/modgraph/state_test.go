package modgraph_test

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/inko-lang/corec/internal/modgraph"
)

func TestCompileStateModuleLookupMissing(t *testing.T) {
	s := modgraph.NewCompileState(modgraph.DefaultConfig(modgraph.ModeDebug), zerolog.Nop())
	if _, ok := s.Module("std::hash_map"); ok {
		t.Fatal("expected unregistered module to report not found")
	}
}

func TestCompileStateRegisterAndLookupModule(t *testing.T) {
	s := modgraph.NewCompileState(modgraph.DefaultConfig(modgraph.ModeDebug), zerolog.Nop())
	m := modgraph.NewModule("hash_map", "std::hash_map", "src/std/hash_map.src", true)
	s.RegisterModule(m)

	got, ok := s.Module("std::hash_map")
	if !ok || got != m {
		t.Fatalf("expected registered module to be retrievable, ok=%v got=%v", ok, got)
	}
}

func TestCompileStateDetectsImportCycle(t *testing.T) {
	s := modgraph.NewCompileState(modgraph.DefaultConfig(modgraph.ModeDebug), zerolog.Nop())
	if !s.BeginLoading("a::b") {
		t.Fatal("expected first BeginLoading to succeed")
	}
	if s.BeginLoading("a::b") {
		t.Fatal("expected re-entrant BeginLoading on an in-progress module to fail")
	}
	s.FinishLoading("a::b")
	if !s.BeginLoading("a::b") {
		t.Fatal("expected BeginLoading to succeed again once finished")
	}
}

func TestCompileStateIsLoadingReflectsInProgressSet(t *testing.T) {
	s := modgraph.NewCompileState(modgraph.DefaultConfig(modgraph.ModeDebug), zerolog.Nop())
	if s.IsLoading("a::b") {
		t.Fatal("expected fresh state to report nothing loading")
	}
	s.BeginLoading("a::b")
	if !s.IsLoading("a::b") {
		t.Fatal("expected in-progress module to report loading")
	}
}
