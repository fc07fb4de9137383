package ast

// File is a parsed compilation unit: one source file's worth of imports and
// top-level body. The compiler core never constructs a File itself — the
// external parser produces it — but owns its shape since the semantic
// passes and TIR generator walk it directly.
type File struct {
	Base
	Imports []*ImportDecl
	Body    []Node
}

func (*File) Tag() Tag { return TagFile }
