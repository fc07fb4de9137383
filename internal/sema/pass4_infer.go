package sema

import (
	"github.com/inko-lang/corec/internal/ast"
	"github.com/inko-lang/corec/internal/modgraph"
	"github.com/inko-lang/corec/internal/symbols"
	"github.com/inko-lang/corec/internal/types"
)

// inferer carries the per-module state a single pass-4 run needs: the
// compile-wide database/diagnostics, the lexical locals-scope stack (one
// table per enclosing BlockDef, independent of the module's Globals table,
// mirroring how "local-with-parent lookup" and "module global" are two
// distinct resolution branches rather than one chain that happens to
// terminate at the globals table), and the self-type stack (the receiver
// type `self` resolves to in the current body).
type inferer struct {
	state *modgraph.CompileState
	db    *types.Database
	mod   *modgraph.Module

	locals []*symbols.Table
	self   []types.Type

	dispatch *ast.Dispatch[types.Type]
}

// RunPass4InferTypes attaches a resolved type to every expression node in
// mod's body.
func RunPass4InferTypes(state *modgraph.CompileState, mod *modgraph.Module) {
	if mod.File == nil {
		return
	}
	ti := &inferer{
		state:  state,
		db:     state.Types,
		mod:    mod,
		locals: []*symbols.Table{symbols.NewTable(nil)},
		self:   []types.Type{state.Types.Module},
	}
	ti.dispatch = ti.buildDispatch()

	for _, n := range mod.File.Body {
		ti.infer(n)
	}
}

func (ti *inferer) currentLocals() *symbols.Table { return ti.locals[len(ti.locals)-1] }
func (ti *inferer) currentSelf() types.Type        { return ti.self[len(ti.self)-1] }

func (ti *inferer) infer(n ast.Node) types.Type {
	if n == nil {
		return &types.Dynamic{}
	}
	return ti.dispatch.Visit(n)
}

func (ti *inferer) buildDispatch() *ast.Dispatch[types.Type] {
	d := ast.NewDispatch[types.Type]()
	d.On(ast.TagIntegerLit, ti.inferLiteral(types.Integer))
	d.On(ast.TagFloatLit, ti.inferLiteral(types.Float))
	d.On(ast.TagStringLit, ti.inferLiteral(types.Str))
	d.On(ast.TagSelfExpr, ti.inferSelf)
	d.On(ast.TagArrayLit, ti.inferArrayLit)
	d.On(ast.TagHashMapLit, ti.inferHashMapLit)
	d.On(ast.TagIdentifier, ti.inferIdentifier)
	d.On(ast.TagAttribute, ti.inferAttribute)
	d.On(ast.TagConstant, ti.inferConstant)
	d.On(ast.TagGlobalRef, ti.inferGlobalRef)
	d.On(ast.TagDereference, ti.inferDereference)
	d.On(ast.TagBlockDef, ti.inferBlockDef)
	d.On(ast.TagObjectDef, ti.inferObjectDef)
	d.On(ast.TagTraitDef, ti.inferTraitDef)
	d.On(ast.TagTraitImpl, ti.inferTraitImpl)
	d.On(ast.TagReopen, ti.inferReopen)
	d.On(ast.TagSend, ti.inferSend)
	d.On(ast.TagTypeCast, ti.inferTypeCast)
	d.On(ast.TagDefineVariable, ti.inferDefineVariable)
	d.On(ast.TagReassignVariable, ti.inferReassignVariable)
	d.On(ast.TagRawInstruction, ti.inferRawInstruction)
	d.On(ast.TagReturn, ti.inferReturn)
	d.On(ast.TagThrow, ti.inferThrow)
	d.On(ast.TagTry, ti.inferTry)
	return d
}

func (ti *inferer) inferLiteral(kind types.PrimitiveKind) func(ast.Node) types.Type {
	return func(n ast.Node) types.Type {
		t := &types.Primitive{Kind: kind}
		setType(n, t)
		return t
	}
}

func (ti *inferer) inferSelf(n ast.Node) types.Type {
	t := ti.currentSelf()
	setType(n, t)
	return t
}

func (ti *inferer) inferArrayLit(n ast.Node) types.Type {
	lit := n.(*ast.ArrayLit)
	for _, el := range lit.Elements {
		ti.infer(el)
	}
	t := ti.db.NewArrayOfType(&types.Dynamic{})
	setType(n, t)
	return t
}

func (ti *inferer) inferHashMapLit(n ast.Node) types.Type {
	lit := n.(*ast.HashMapLit)
	for _, entry := range lit.Entries {
		ti.infer(entry.Key)
		ti.infer(entry.Value)
	}
	var t types.Type = &types.Dynamic{}
	if proto := ti.db.Prototype("HashMap"); proto != nil {
		t = proto
	}
	setType(n, t)
	return t
}

// inferIdentifier resolves a bare name in four-branch order:
// local-with-parent lookup, self responds, module responds, module global,
// falling back to Nil/depth -1 if none match.
func (ti *inferer) inferIdentifier(n ast.Node) types.Type {
	id := n.(*ast.Identifier)

	if depth, sym := ti.currentLocals().LookupWithParent(id.Name); !sym.IsNull() {
		id.Kind = ast.IdentLocal
		id.Bind(sym, depth)
		t := symType(sym)
		setType(n, t)
		return t
	}

	selfType := ti.currentSelf()
	if ti.db.RespondsToMessage(selfType, id.Name) {
		sym := ti.db.LookupMethod(selfType, id.Name)
		id.Kind = ast.IdentSelfMethod
		id.Bind(sym, -1)
		t := blockReturnType(sym)
		setType(n, t)
		return t
	}

	if ti.db.RespondsToMessage(ti.db.Module, id.Name) {
		sym := ti.db.LookupMethod(ti.db.Module, id.Name)
		id.Kind = ast.IdentModuleMethod
		id.Bind(sym, -1)
		t := blockReturnType(sym)
		setType(n, t)
		return t
	}

	if sym := ti.mod.Globals.Lookup(id.Name); !sym.IsNull() {
		id.Kind = ast.IdentGlobal
		id.Bind(sym, -1)
		t := symType(sym)
		setType(n, t)
		return t
	}

	id.Kind = ast.IdentGlobal
	id.Bind(symbols.NullSymbol(id.Name), -1)
	t := &types.Primitive{Kind: types.NilKind}
	setType(n, t)
	return t
}

// inferAttribute reads from self's attribute table, always.
func (ti *inferer) inferAttribute(n ast.Node) types.Type {
	attr := n.(*ast.Attribute)
	sym := ti.db.LookupAttribute(ti.currentSelf(), attr.Name)
	t := symType(sym)
	setType(n, t)
	return t
}

// inferConstant mirrors the TIR generator's own unconditional-Nil rule for
// an unqualified constant (see lowerConstant): resolving against module
// globals here but then discarding the result would contradict what the
// generator actually emits, so an unqualified Constant is Nil-typed too.
func (ti *inferer) inferConstant(n ast.Node) types.Type {
	c := n.(*ast.Constant)
	if c.Receiver == nil {
		t := &types.Primitive{Kind: types.NilKind}
		setType(n, t)
		return t
	}
	recvType := ti.infer(c.Receiver)
	sym := ti.db.LookupAttribute(recvType, c.Name)
	t := symType(sym)
	setType(n, t)
	return t
}

func (ti *inferer) inferGlobalRef(n ast.Node) types.Type {
	ref := n.(*ast.GlobalRef)
	sym := ti.mod.Globals.Lookup(ref.Name)
	if sym.IsNull() {
		ti.state.Diagnostics.Error(errUndefinedGlobal(ref.Name), ref.Loc())
	}
	t := symType(sym)
	setType(n, t)
	return t
}

func (ti *inferer) inferDereference(n ast.Node) types.Type {
	d := n.(*ast.Dereference)
	t := ti.infer(d.Value)
	setType(n, t)
	return t
}

func (ti *inferer) inferTypeCast(n ast.Node) types.Type {
	cast := n.(*ast.TypeCast)
	ti.infer(cast.Value)
	t := resolveTypeRef(ti.db, cast.TargetType)
	setType(n, t)
	return t
}

func (ti *inferer) inferDefineVariable(n ast.Node) types.Type {
	def := n.(*ast.DefineVariable)
	valType := ti.infer(def.Value)
	ti.currentLocals().Define(def.Name, valType, def.Mutable)
	if ti.inModuleScope() {
		ti.mod.Globals.Define(def.Name, valType, def.Mutable)
	}
	setType(n, valType)
	return valType
}

func (ti *inferer) inModuleScope() bool {
	return len(ti.locals) == 1
}

func (ti *inferer) inferReassignVariable(n ast.Node) types.Type {
	r := n.(*ast.ReassignVariable)
	valType := ti.infer(r.Value)
	if depth, sym := ti.currentLocals().LookupWithParent(r.Name); !sym.IsNull() {
		r.Bind(sym, depth)
	} else {
		r.Bind(symbols.NullSymbol(r.Name), -1)
	}
	setType(n, valType)
	return valType
}

func (ti *inferer) inferRawInstruction(n ast.Node) types.Type {
	raw := n.(*ast.RawInstruction)
	for _, o := range raw.Operands {
		ti.infer(o)
	}
	t := &types.Dynamic{}
	setType(n, t)
	return t
}

func (ti *inferer) inferReturn(n ast.Node) types.Type {
	ret := n.(*ast.ReturnStmt)
	var t types.Type = &types.Primitive{Kind: types.NilKind}
	if ret.Value != nil {
		t = ti.infer(ret.Value)
	}
	setType(n, t)
	return t
}

func (ti *inferer) inferThrow(n ast.Node) types.Type {
	th := n.(*ast.ThrowStmt)
	ti.infer(th.Value)
	t := &types.Primitive{Kind: types.NilKind}
	setType(n, t)
	return t
}

func (ti *inferer) inferTry(n ast.Node) types.Type {
	try := n.(*ast.TryExpr)
	t := ti.infer(try.Body)
	if try.HasElse {
		ti.locals = append(ti.locals, symbols.NewTable(ti.currentLocals()))
		if try.ErrName != "" {
			ti.currentLocals().Define(try.ErrName, &types.Dynamic{}, false)
		}
		for _, stmt := range try.Else {
			t = ti.infer(stmt)
		}
		ti.locals = ti.locals[:len(ti.locals)-1]
	}
	setType(n, t)
	return t
}

func setType(n ast.Node, t types.Type) {
	switch v := n.(type) {
	case *ast.IntegerLit:
		v.Type = t
	case *ast.FloatLit:
		v.Type = t
	case *ast.StringLit:
		v.Type = t
	case *ast.SelfExpr:
		v.Type = t
	case *ast.ArrayLit:
		v.Type = t
	case *ast.HashMapLit:
		v.Type = t
	case *ast.Identifier:
		v.Type = t
	case *ast.Attribute:
		v.Type = t
	case *ast.Constant:
		v.Type = t
	case *ast.GlobalRef:
		v.Type = t
	case *ast.Dereference:
		v.Type = t
	case *ast.BlockDef:
		v.Type = t
	case *ast.ObjectDef:
		v.Type = t
	case *ast.TraitDef:
		v.Type = t
	case *ast.TraitImpl:
		v.Type = t
	case *ast.Reopen:
		v.Type = t
	case *ast.Send:
		v.Type = t
	case *ast.TypeCast:
		v.Type = t
	case *ast.DefineVariable:
		v.Type = t
	case *ast.ReassignVariable:
		v.Type = t
	case *ast.RawInstruction:
		v.Type = t
	case *ast.ReturnStmt:
		v.Type = t
	case *ast.ThrowStmt:
		v.Type = t
	case *ast.TryExpr:
		v.Type = t
	}
}

func symType(sym symbols.Symbol) types.Type {
	if sym.IsNull() {
		return &types.Dynamic{}
	}
	if t, ok := sym.Type.(types.Type); ok && t != nil {
		return t
	}
	return &types.Dynamic{}
}

func blockReturnType(sym symbols.Symbol) types.Type {
	t := symType(sym)
	if block, ok := t.(*types.BlockSignature); ok {
		if block.Return != nil {
			return block.Return
		}
		return &types.Primitive{Kind: types.NilKind}
	}
	return t
}

