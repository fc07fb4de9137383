package modgraph

import (
	"github.com/rs/zerolog"

	"github.com/inko-lang/corec/internal/diag"
	"github.com/inko-lang/corec/internal/types"
)

// CompileState is the single owned object every pass receives by reference:
// configuration, the module graph, the global type database, and the
// growing diagnostic list. No pass may hide any of these in a process-wide
// singleton.
type CompileState struct {
	Config      Config
	Modules     map[string]*Module
	Types       *types.Database
	Diagnostics *diag.Bag
	Logger      zerolog.Logger

	inProgress map[string]bool
}

// NewCompileState creates an empty compile state for the given config.
func NewCompileState(cfg Config, logger zerolog.Logger) *CompileState {
	return &CompileState{
		Config:      cfg,
		Modules:     make(map[string]*Module),
		Types:       types.NewDatabase(),
		Diagnostics: &diag.Bag{},
		Logger:      logger,
		inProgress:  make(map[string]bool),
	}
}

// Module retrieves an already-loaded module. The bool is false if the
// qualified name has not been loaded (UnknownModule at the caller's
// diagnostic site).
func (s *CompileState) Module(qualifiedName string) (*Module, bool) {
	m, ok := s.Modules[qualifiedName]
	return m, ok
}

// RegisterModule adds a module to the graph, keyed by its qualified name.
func (s *CompileState) RegisterModule(m *Module) {
	s.Modules[m.QualifiedName] = m
}

// BeginLoading marks a qualified name in-progress for cycle detection.
// Returns false if the name is already in-progress (an import cycle).
func (s *CompileState) BeginLoading(qualifiedName string) bool {
	if s.inProgress[qualifiedName] {
		return false
	}
	s.inProgress[qualifiedName] = true
	return true
}

// FinishLoading clears the in-progress mark for a qualified name.
func (s *CompileState) FinishLoading(qualifiedName string) {
	delete(s.inProgress, qualifiedName)
}

// IsLoading reports whether a qualified name is currently in-progress.
func (s *CompileState) IsLoading(qualifiedName string) bool {
	return s.inProgress[qualifiedName]
}
