// Package ast defines the compiler's typed AST: a uniform node set where
// every node carries a source location, a resolved type and symbol binding
// filled in by the semantic passes, and a dispatch tag. Passes MUST route
// through the tag (see Dispatch) rather than a structural type switch, so a
// new node kind can be added by registering one more handler per pass
// without touching the others.
package ast

import (
	"fmt"

	"github.com/inko-lang/corec/internal/diag"
	"github.com/inko-lang/corec/internal/symbols"
	"github.com/inko-lang/corec/internal/types"
)

// Tag names the visitor method a pass invokes for a node. One tag per node
// kind; see the constants below.
type Tag string

const (
	TagFile             Tag = "File"
	TagImport           Tag = "Import"
	TagIntegerLit       Tag = "IntegerLit"
	TagFloatLit         Tag = "FloatLit"
	TagStringLit        Tag = "StringLit"
	TagSelfExpr         Tag = "SelfExpr"
	TagHashMapLit       Tag = "HashMapLit"
	TagArrayLit         Tag = "ArrayLit"
	TagIdentifier       Tag = "Identifier"
	TagAttribute        Tag = "Attribute"
	TagConstant         Tag = "Constant"
	TagGlobalRef        Tag = "GlobalRef"
	TagTypeRef          Tag = "TypeRef"
	TagBlockDef         Tag = "BlockDef"
	TagObjectDef        Tag = "ObjectDef"
	TagTraitDef         Tag = "TraitDef"
	TagTraitImpl        Tag = "TraitImpl"
	TagReopen           Tag = "Reopen"
	TagSend             Tag = "Send"
	TagTypeCast         Tag = "TypeCast"
	TagDefineVariable   Tag = "DefineVariable"
	TagReassignVariable Tag = "ReassignVariable"
	TagRawInstruction   Tag = "RawInstruction"
	TagReturn           Tag = "Return"
	TagThrow            Tag = "Throw"
	TagTry              Tag = "Try"
	TagDereference      Tag = "Dereference"
)

// Node is implemented by every AST node.
type Node interface {
	Loc() diag.Location
	Tag() Tag
	Typ() types.Type
}

// Base is embedded by every node. Location is set at construction time and
// never changes; Type, Symbol, and Depth start zero-valued and are filled
// in by the type-inference / resolution semantic pass.
type Base struct {
	Location diag.Location
	Type     types.Type
	Symbol   symbols.Symbol
	Depth    int
}

// Loc returns the node's source location.
func (b *Base) Loc() diag.Location { return b.Location }

// Typ returns the node's resolved type, filled in by the type-inference /
// resolution semantic pass. It is nil (not Dynamic) until that pass runs.
func (b *Base) Typ() types.Type { return b.Type }

// Bind records the resolved identifier binding the type-inference pass
// computed for this node: its symbol and the lexical depth at which it was
// found (-1 for a local found in the current scope, and also for a module
// global or an unresolved name; 0 for the immediate parent scope).
func (b *Base) Bind(sym symbols.Symbol, depth int) {
	b.Symbol = sym
	b.Depth = depth
}

// Dispatch is a tag-indexed handler table. Each semantic pass and the TIR
// generator build one, registering a handler per node kind they care about
// via On, then drive traversal by calling Visit on each node they reach
// (each handler visits the node's own fields itself, not a generic Walk,
// since each pass's traversal order differs — see the sema and tir
// packages).
type Dispatch[R any] struct {
	handlers map[Tag]func(Node) R
}

// NewDispatch creates an empty handler table.
func NewDispatch[R any]() *Dispatch[R] {
	return &Dispatch[R]{handlers: make(map[Tag]func(Node) R)}
}

// On registers fn as the handler for tag.
func (d *Dispatch[R]) On(tag Tag, fn func(Node) R) {
	d.handlers[tag] = fn
}

// Visit looks up n's tag in the table and invokes the registered handler.
// It panics if no handler was registered for the tag, since that indicates
// a pass forgot to handle a node kind it can actually encounter — the kind
// of bug the tag-dispatch design is meant to surface immediately rather
// than silently mis-handle via a type switch's default case.
func (d *Dispatch[R]) Visit(n Node) R {
	fn, ok := d.handlers[n.Tag()]
	if !ok {
		panic(fmt.Sprintf("ast: no handler registered for tag %q", n.Tag()))
	}
	return fn(n)
}

// Handles reports whether a handler is registered for tag.
func (d *Dispatch[R]) Handles(tag Tag) bool {
	_, ok := d.handlers[tag]
	return ok
}
