// Package types implements the compiler's type system database: prototype
// objects, traits, generic parameters, block signatures, and the structural
// and prototype-chain kind checks the semantic passes and TIR generator
// consult throughout compilation.
package types

import (
	"strings"

	"github.com/inko-lang/corec/internal/symbols"
)

// Type is the sum type over every kind of static type the compiler reasons
// about: primitives, generic object prototypes, traits, type parameters,
// the dynamic type, generic instances, and block signatures.
type Type interface {
	String() string
	typeMarker()
}

// PrimitiveKind enumerates the compiler's built-in value kinds.
type PrimitiveKind string

const (
	Integer PrimitiveKind = "Integer"
	Float   PrimitiveKind = "Float"
	Str     PrimitiveKind = "String"
	Boolean PrimitiveKind = "Boolean"
	NilKind PrimitiveKind = "Nil"
)

// Primitive is a built-in value type. Each primitive kind has a backing
// Prototype (see Database.PrototypeOf) that owns its attribute table, so
// method dispatch on primitive receivers goes through the same attribute
// lookup as every other type.
type Primitive struct {
	Kind PrimitiveKind
}

func (p *Primitive) String() string { return string(p.Kind) }
func (*Primitive) typeMarker()      {}

// Dynamic is the type assigned to an expression whose static type could not
// be determined (an unresolved identifier, for instance). Passes treat it as
// a placeholder that never fails a check, so compilation can continue and
// surface further diagnostics.
type Dynamic struct{}

func (*Dynamic) String() string { return "Dynamic" }
func (*Dynamic) typeMarker()    {}

// TypeParameter is a reference to a generic type parameter captured by the
// enclosing container (an object, trait, or block).
type TypeParameter struct {
	Name string
}

func (t *TypeParameter) String() string { return t.Name }
func (*TypeParameter) typeMarker()      {}

// PrototypeKind distinguishes the handful of built-in prototypes the
// database seeds from ordinary user-defined objects.
type PrototypeKind string

const (
	KindObject   PrototypeKind = "object"
	KindTopLevel PrototypeKind = "toplevel"
	KindModule   PrototypeKind = "module"
	KindArray    PrototypeKind = "array"
	KindBlock    PrototypeKind = "block"
	KindBoolean  PrototypeKind = "boolean"
)

// Prototype is a generic object or trait definition: a name, an ordered set
// of generic type parameters, an attribute table recording its methods and
// fields, the set of traits it implements, and a link to its prototype
// parent (the object every user-defined object implicitly descends from).
type Prototype struct {
	Name       string
	Kind       PrototypeKind
	TypeParams []string
	Attributes *symbols.Table
	Traits     map[string]*Trait
	Parent     *Prototype
}

func (p *Prototype) String() string { return p.Name }
func (*Prototype) typeMarker()      {}

// NewPrototype creates an empty prototype with its own root attribute table
// (not parented on the parent prototype's table); method resolution walks
// Parent explicitly so cycles can be guarded with a visited set (see
// Database.RespondsToMessage).
func NewPrototype(name string, kind PrototypeKind, parent *Prototype) *Prototype {
	return &Prototype{
		Name:       name,
		Kind:       kind,
		Attributes: symbols.NewTable(nil),
		Traits:     make(map[string]*Trait),
		Parent:     parent,
	}
}

// ImplementsTrait reports whether p's implemented-traits set directly
// contains name (it does not walk the prototype chain; callers that need
// the chain-wide check use Database.RespondsToTrait).
func (p *Prototype) ImplementsTrait(name string) bool {
	_, ok := p.Traits[name]
	return ok
}

// Trait is a set of required methods. Implementing a trait copies its
// methods onto the target's attribute table and records the trait in the
// target's implemented-traits set (Database.ImplementTrait).
type Trait struct {
	Name             string
	RequiredMethods  *symbols.Table
	UnknownMessage   bool // true for the builtin trait carrying `unknown_message`
}

func (t *Trait) String() string { return t.Name }
func (*Trait) typeMarker()      {}

// GenericInstance is a concrete instantiation of a generic Prototype, e.g.
// Array[Integer]. Base stays shared and immutable; Args holds the bound
// type arguments in the same order as Base.TypeParams.
type GenericInstance struct {
	Base *Prototype
	Args []Type
}

func (g *GenericInstance) String() string {
	var parts []string
	for _, a := range g.Args {
		parts = append(parts, a.String())
	}
	return g.Base.Name + "[" + strings.Join(parts, ", ") + "]"
}
func (*GenericInstance) typeMarker() {}

// BlockTag distinguishes the three forms a block-defining node can take,
// each with different `self`-capture semantics in the TIR generator.
type BlockTag string

const (
	TagMethod  BlockTag = "method"
	TagClosure BlockTag = "closure"
	TagLambda  BlockTag = "lambda"
)

// Param is one argument of a block signature.
type Param struct {
	Name    string
	Type    Type
	Default bool // true if the argument has a default-value expression
}

// BlockSignature is the type of a method, closure, or lambda: its argument
// list, return and throw types, its own generic type parameters, whether
// its last argument collects a rest/splat, and which of the three forms it
// is.
type BlockSignature struct {
	Arguments  []Param
	Return     Type
	Throw      Type
	TypeParams []string
	Rest       bool
	Tag        BlockTag
}

func (b *BlockSignature) String() string {
	var parts []string
	for _, a := range b.Arguments {
		parts = append(parts, a.Name+": "+typeString(a.Type))
	}
	ret := "Nil"
	if b.Return != nil {
		ret = b.Return.String()
	}
	return "fn(" + strings.Join(parts, ", ") + ") -> " + ret
}
func (*BlockSignature) typeMarker() {}

// ArgumentCountRange returns the inclusive [min, max] number of positional
// arguments the block accepts without using its rest parameter. A rest
// parameter absorbs anything beyond max.
func (b *BlockSignature) ArgumentCountRange() (min, max int) {
	for _, a := range b.Arguments {
		max++
		if !a.Default {
			min++
		}
	}
	return min, max
}

// LookupArgument finds a named argument by name, for keyword-argument
// validation.
func (b *BlockSignature) LookupArgument(name string) (Param, bool) {
	for _, a := range b.Arguments {
		if a.Name == name {
			return a, true
		}
	}
	return Param{}, false
}

func typeString(t Type) string {
	if t == nil {
		return "Nil"
	}
	return t.String()
}
