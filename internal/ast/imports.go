package ast

// ImportSymbolKind distinguishes the three forms an imported symbol can
// take: the module itself (`self`), a glob of every exported name, or a
// single named symbol.
type ImportSymbolKind string

const (
	ImportSelf  ImportSymbolKind = "self"
	ImportGlob  ImportSymbolKind = "glob"
	ImportNamed ImportSymbolKind = "named"
)

// ImportSymbol is one entry of an import's symbol list: `(HashMap as _HashMap)`.
type ImportSymbol struct {
	Kind  ImportSymbolKind
	Name  string // empty for ImportSelf and ImportGlob
	Alias string // empty when no `as` clause was given
}

// ImportDecl is `import a::b::c::(Sym as Alias, *, self)`.
type ImportDecl struct {
	Base
	Path    []string
	Symbols []ImportSymbol
}

func (*ImportDecl) Tag() Tag { return TagImport }

// QualifiedName joins Path with the module separator used throughout the
// compiler (module names, bytecode import paths, diagnostics).
func (i *ImportDecl) QualifiedName() string {
	out := ""
	for idx, part := range i.Path {
		if idx > 0 {
			out += "::"
		}
		out += part
	}
	return out
}
