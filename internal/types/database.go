package types

import "github.com/inko-lang/corec/internal/symbols"

// Database holds the canonical singleton prototypes shared by every module
// in a compile, plus every user-defined object and trait registered while
// compiling them. It is created once per compile state and passed by
// reference to every pass.
type Database struct {
	TopLevel *Prototype
	Module   *Prototype
	Array    *Prototype
	Block    *Prototype
	Bool     *Prototype
	Trait    *Prototype // the meta-prototype a trait definition's own attributes live on

	primitiveBacking map[PrimitiveKind]*Prototype
	prototypes       map[string]*Prototype
	traits           map[string]*Trait
}

// NewDatabase builds a database seeded with the built-in prototypes: the
// top-level object every user object descends from, the module prototype,
// the array prototype (generic over one element type parameter), the block
// prototype, the boolean prototype, and the trait meta-prototype.
func NewDatabase() *Database {
	db := &Database{
		primitiveBacking: make(map[PrimitiveKind]*Prototype),
		prototypes:       make(map[string]*Prototype),
		traits:           make(map[string]*Trait),
	}

	db.TopLevel = NewPrototype("Object", KindTopLevel, nil)
	db.Module = NewPrototype("Module", KindModule, db.TopLevel)
	db.Array = NewPrototype("Array", KindArray, db.TopLevel)
	db.Array.TypeParams = []string{"T"}
	db.Block = NewPrototype("Block", KindBlock, db.TopLevel)
	db.Bool = NewPrototype("Boolean", KindBoolean, db.TopLevel)
	db.Trait = NewPrototype("Trait", KindObject, db.TopLevel)

	for _, kind := range []PrimitiveKind{Integer, Float, Str, NilKind} {
		backing := NewPrototype(string(kind), KindObject, db.TopLevel)
		db.primitiveBacking[kind] = backing
	}
	db.primitiveBacking[Boolean] = db.Bool

	db.prototypes[db.TopLevel.Name] = db.TopLevel
	db.prototypes[db.Module.Name] = db.Module
	db.prototypes[db.Array.Name] = db.Array
	db.prototypes[db.Block.Name] = db.Block
	db.prototypes[db.Bool.Name] = db.Bool

	return db
}

// RegisterPrototype adds a user-defined object to the database under its
// name, defaulting its prototype parent to the top-level object.
func (db *Database) RegisterPrototype(p *Prototype) {
	if p.Parent == nil {
		p.Parent = db.TopLevel
	}
	db.prototypes[p.Name] = p
}

// RegisterTrait adds a user-defined trait to the database under its name.
func (db *Database) RegisterTrait(t *Trait) {
	db.traits[t.Name] = t
}

// Prototype looks up a registered prototype by name (nil if unknown).
func (db *Database) Prototype(name string) *Prototype {
	return db.prototypes[name]
}

// TraitByName looks up a registered trait by name (nil if unknown).
func (db *Database) TraitByName(name string) *Trait {
	return db.traits[name]
}

// PrototypeOf returns the prototype backing t's attribute table: the
// primitive's backing prototype for a Primitive, t itself for a Prototype,
// Base for a GenericInstance, and nil for Dynamic/TypeParameter/Trait/
// BlockSignature (which are not themselves method-dispatch receivers).
func (db *Database) PrototypeOf(t Type) *Prototype {
	switch v := t.(type) {
	case *Primitive:
		return db.primitiveBacking[v.Kind]
	case *Prototype:
		return v
	case *GenericInstance:
		return v.Base
	default:
		return nil
	}
}

// NewArrayOfType returns the parameterized Array prototype instance for
// element type elem.
func (db *Database) NewArrayOfType(elem Type) Type {
	return &GenericInstance{Base: db.Array, Args: []Type{elem}}
}

// RespondsToMessage reports whether t (or any prototype in its chain)
// defines an attribute named name. The chain walk carries a visited set so
// a malformed parent cycle cannot loop forever.
func (db *Database) RespondsToMessage(t Type, name string) bool {
	if _, ok := t.(*Dynamic); ok {
		return true
	}
	proto := db.PrototypeOf(t)
	if proto == nil {
		return false
	}
	return db.walkChain(proto, make(map[*Prototype]bool), func(p *Prototype) bool {
		return !p.Attributes.Lookup(name).IsNull()
	})
}

// LookupMethod resolves a method (or field; both live in the same attribute
// table) by walking the prototype chain, returning the null symbol if
// nothing defines it anywhere in the chain.
func (db *Database) LookupMethod(t Type, name string) symbols.Symbol {
	return db.LookupAttribute(t, name)
}

// LookupAttribute resolves name on t's prototype chain.
func (db *Database) LookupAttribute(t Type, name string) symbols.Symbol {
	proto := db.PrototypeOf(t)
	if proto == nil {
		return symbols.NullSymbol(name)
	}
	var found symbols.Symbol = symbols.NullSymbol(name)
	db.walkChain(proto, make(map[*Prototype]bool), func(p *Prototype) bool {
		if sym := p.Attributes.Lookup(name); !sym.IsNull() {
			found = sym
			return true
		}
		return false
	})
	return found
}

// RespondsToTrait reports whether t implements a trait named name anywhere
// on its prototype chain — the implemented-traits set is consulted at every
// prototype walked.
func (db *Database) RespondsToTrait(t Type, name string) bool {
	proto := db.PrototypeOf(t)
	if proto == nil {
		return false
	}
	return db.walkChain(proto, make(map[*Prototype]bool), func(p *Prototype) bool {
		return p.ImplementsTrait(name)
	})
}

// walkChain runs check over proto and each prototype parent in turn,
// stopping as soon as check returns true or a cycle is detected.
func (db *Database) walkChain(proto *Prototype, visited map[*Prototype]bool, check func(*Prototype) bool) bool {
	for p := proto; p != nil; p = p.Parent {
		if visited[p] {
			return false
		}
		visited[p] = true
		if check(p) {
			return true
		}
	}
	return false
}

// ImplementTrait records that target implements trait: it adds trait to
// target's implemented-traits set and copies every required method that
// target does not already define onto target's attribute table, per the
// type database's implementation invariant. A method target already
// defines keeps its own symbol.
func (db *Database) ImplementTrait(target *Prototype, trait *Trait) {
	target.Traits[trait.Name] = trait
	for _, name := range trait.RequiredMethods.Names() {
		if !target.Attributes.Lookup(name).IsNull() {
			continue
		}
		sym := trait.RequiredMethods.Lookup(name)
		target.Attributes.Define(sym.Name, sym.Type, sym.Mutable)
	}
}

// GuardUnknownMessage reports whether a send to name on receiver t must use
// the unknown-message fallback: true iff neither t nor any prototype in its
// chain defines name, and t implements a trait carrying unknown_message
// somewhere on that same chain.
func (db *Database) GuardUnknownMessage(t Type, name string) bool {
	if db.RespondsToMessage(t, name) {
		return false
	}
	proto := db.PrototypeOf(t)
	if proto == nil {
		return false
	}
	implementsUnknown := false
	db.walkChain(proto, make(map[*Prototype]bool), func(p *Prototype) bool {
		for _, trait := range p.Traits {
			if trait.UnknownMessage {
				implementsUnknown = true
				return true
			}
		}
		return false
	})
	return implementsUnknown
}

// TypeParameterOf reports whether t is a reference to a generic type
// parameter.
func (db *Database) TypeParameterOf(t Type) bool {
	_, ok := t.(*TypeParameter)
	return ok
}

// GenericType reports whether t is an uninstantiated generic prototype
// (one declaring its own type parameters, referenced directly rather than
// through a GenericInstance).
func (db *Database) GenericType(t Type) bool {
	p, ok := t.(*Prototype)
	return ok && len(p.TypeParams) > 0
}

// ResolveType substitutes a type-parameter reference for its bound type
// using params, leaving every other type unchanged. It does not recurse
// into compound types; callers apply it to exactly the type under
// consideration (a block's declared return type, for instance).
func (db *Database) ResolveType(t Type, params *TypeParameterTable) Type {
	tp, ok := t.(*TypeParameter)
	if !ok || params == nil {
		return t
	}
	if bound, ok := params.Lookup(tp.Name); ok {
		return bound
	}
	return t
}

// NewInstance concretizes t if it is a generic prototype, binding each of
// its declared type parameters from params; t is returned unchanged
// otherwise. Composing ResolveType then NewInstance (in that order) is
// what MessageContext.InitializedReturnType relies on: swapping
// the order changes behavior whenever a generic return type is itself a
// captured type parameter resolved from the receiver.
func (db *Database) NewInstance(t Type, params *TypeParameterTable) Type {
	if !db.GenericType(t) {
		return t
	}
	proto := t.(*Prototype)
	args := make([]Type, len(proto.TypeParams))
	for i, name := range proto.TypeParams {
		if params != nil {
			if bound, ok := params.Lookup(name); ok {
				args[i] = bound
				continue
			}
		}
		args[i] = &Dynamic{}
	}
	return &GenericInstance{Base: proto, Args: args}
}
