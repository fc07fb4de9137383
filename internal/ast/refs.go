package ast

// IdentifierKind records which branch of the type-inference pass's
// resolution order (local-with-parent lookup -> self responds -> module
// responds -> module global) an Identifier resolved through, so the TIR
// generator can pick the matching lowering without re-deriving it.
type IdentifierKind int

const (
	IdentLocal IdentifierKind = iota
	IdentSelfMethod
	IdentModuleMethod
	IdentGlobal
)

// Identifier is a bare name reference: a local variable, a zero-argument
// send to self, a module method, or a module global, disambiguated by the
// type-inference pass's resolution order and recorded via Base.Bind plus
// Kind.
type Identifier struct {
	Base
	Name string
	Kind IdentifierKind
}

func (*Identifier) Tag() Tag { return TagIdentifier }

// Attribute is a field reference on the implicit `self` receiver.
type Attribute struct {
	Base
	Name string
}

func (*Attribute) Tag() Tag { return TagAttribute }

// Constant is a capitalized name reference, resolved against an optional
// receiver's attribute table, falling back to module globals.
type Constant struct {
	Base
	Name     string
	Receiver Node // nil when unqualified
}

func (*Constant) Tag() Tag { return TagConstant }

// GlobalRef is an explicit module-global reference.
type GlobalRef struct {
	Base
	Name string
}

func (*GlobalRef) Tag() Tag { return TagGlobalRef }

// Dereference unwraps a pointer-like value. It is a distinct node kind
// from Identifier even though both resolve to a register read, since it
// carries its own location for diagnostics.
type Dereference struct {
	Base
	Value Node
}

func (*Dereference) Tag() Tag { return TagDereference }

// TypeRef names a type in a type-annotation position: a parameter type, a
// return type, a throw type, or the target of a type-cast. Args holds any
// generic type arguments (e.g. the T in Array[T]).
type TypeRef struct {
	Base
	Name string
	Args []*TypeRef
}

func (*TypeRef) Tag() Tag { return TagTypeRef }
