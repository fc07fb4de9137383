package ast

// Param is one formal parameter of a block definition.
type Param struct {
	Name    string
	Type    *TypeRef
	Default Node // nil when the parameter has no default value
	Rest    bool // true for a trailing *args-style parameter
}

// BlockDefKind distinguishes a method (attached to an object/module), a
// closure, and a lambda — each lowered differently by the TIR generator's
// `self` handling.
type BlockDefKind string

const (
	BlockMethod  BlockDefKind = "method"
	BlockClosure BlockDefKind = "closure"
	BlockLambda  BlockDefKind = "lambda"
)

// BlockDef defines a method, closure, or lambda: `def name(args) { body }`,
// `do { body }`/`{ body }`, or `lambda { body }`.
type BlockDef struct {
	Base
	Kind       BlockDefKind
	Name       string // empty for anonymous closures and lambdas
	Params     []Param
	ReturnType *TypeRef
	ThrowType  *TypeRef
	TypeParams []string
	Body       []Node
}

func (*BlockDef) Tag() Tag { return TagBlockDef }

// ObjectDef defines `object Name { body }`.
type ObjectDef struct {
	Base
	Name       string
	TypeParams []string
	Body       []Node
}

func (*ObjectDef) Tag() Tag { return TagObjectDef }

// TraitDef defines `trait Name { body }`. RequiredMethods lists the method
// signatures the trait declares without a body — the set checked against
// implementors by the trait-implementation semantic pass.
type TraitDef struct {
	Base
	Name            string
	TypeParams      []string
	RequiredMethods []*BlockDef
	Body            []Node
}

func (*TraitDef) Tag() Tag { return TagTraitDef }

// TraitImpl defines `impl Trait for Obj { body }`.
type TraitImpl struct {
	Base
	TraitName  string
	ObjectName string
	Body       []Node
}

func (*TraitImpl) Tag() Tag { return TagTraitImpl }

// Reopen defines `impl Obj { body }` (reopening an existing object without
// an associated trait).
type Reopen struct {
	Base
	ObjectName string
	Body       []Node
}

func (*Reopen) Tag() Tag { return TagReopen }
