package sema

import (
	"github.com/inko-lang/corec/internal/ast"
	"github.com/inko-lang/corec/internal/types"
)

var primitiveTypeNames = map[string]types.PrimitiveKind{
	"Integer": types.Integer,
	"Float":   types.Float,
	"String":  types.Str,
	"Boolean": types.Boolean,
	"Nil":     types.NilKind,
}

// resolveTypeRef turns a parsed type annotation into a concrete types.Type:
// a primitive for the five built-in names, a registered prototype (bare or
// generic-instantiated when Args is non-empty) when one is registered in
// the database, a type-parameter reference as a fallback for anything else
// (the common case for a single generic name like T), and Dynamic for a
// nil annotation.
func resolveTypeRef(db *types.Database, ref *ast.TypeRef) types.Type {
	if ref == nil {
		return &types.Dynamic{}
	}
	if kind, ok := primitiveTypeNames[ref.Name]; ok {
		return &types.Primitive{Kind: kind}
	}
	if proto := db.Prototype(ref.Name); proto != nil {
		if len(ref.Args) == 0 {
			return proto
		}
		args := make([]types.Type, len(ref.Args))
		for i, a := range ref.Args {
			args[i] = resolveTypeRef(db, a)
		}
		return &types.GenericInstance{Base: proto, Args: args}
	}
	return &types.TypeParameter{Name: ref.Name}
}
