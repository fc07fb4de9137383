package tir_test

import (
	"testing"

	"github.com/inko-lang/corec/internal/ast"
	"github.com/inko-lang/corec/internal/modgraph"
	"github.com/inko-lang/corec/internal/symbols"
	"github.com/inko-lang/corec/internal/tir"
	"github.com/inko-lang/corec/internal/types"
)

func opSequence(co *tir.CodeObject) []tir.Opcode {
	var ops []tir.Opcode
	for _, bb := range co.Blocks {
		for _, in := range bb.Instructions {
			ops = append(ops, in.Op)
		}
	}
	return ops
}

func eqOps(got []tir.Opcode, want ...tir.Opcode) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

// Scenario 1: `1 + 2` on two Integer-typed operands lowers straight to
// IntegerAdd rather than a generic send.
func TestScenarioIntegerLiteralMethodCall(t *testing.T) {
	intType := &types.Primitive{Kind: types.Integer}
	recv := intLitNode(1)
	recv.Type = intType
	arg := intLitNode(2)
	arg.Type = intType

	send := &ast.Send{
		Base:     ast.Base{Location: diagLoc(), Type: intType},
		Receiver: recv,
		Message:  "+",
		Args:     []ast.Node{arg},
	}

	g, _ := newGenerator()
	co := g.GenerateModule(moduleFixture(send))

	got := opSequence(co)
	want := []tir.Opcode{tir.SetLiteral, tir.SetLiteral, tir.IntegerAdd, tir.Return}
	if !eqOps(got, want...) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

// Scenario 2: an array literal evaluates each element then emits one
// SetArray.
func TestScenarioArrayLiteral(t *testing.T) {
	lit := &ast.ArrayLit{
		Base:     ast.Base{Location: diagLoc()},
		Elements: []ast.Node{intLitNode(10), intLitNode(20), intLitNode(30)},
	}

	g, _ := newGenerator()
	co := g.GenerateModule(moduleFixture(lit))

	got := opSequence(co)
	want := []tir.Opcode{tir.SetLiteral, tir.SetLiteral, tir.SetLiteral, tir.SetArray, tir.Return}
	if !eqOps(got, want...) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

// Scenario 3: a send to a receiver whose type implements a trait carrying
// unknown_message, with no directly-defined attribute for the message, goes
// through the guarded GotoNextBlockIfTrue/SkipNextBlock fallback sequence.
func TestScenarioUnknownMessageGuard(t *testing.T) {
	db := types.NewDatabase()
	proto := types.NewPrototype("Dynamic_receiver", types.KindObject, db.TopLevel)
	trait := &types.Trait{Name: "UnknownMessage", RequiredMethods: symbols.NewTable(nil), UnknownMessage: true}
	db.RegisterTrait(trait)
	db.ImplementTrait(proto, trait)

	recv := &ast.SelfExpr{Base: ast.Base{Location: diagLoc(), Type: proto}}
	send := &ast.Send{
		Base:     ast.Base{Location: diagLoc(), Type: &types.Dynamic{}},
		Receiver: recv,
		Message:  "frobnicate",
	}

	g, state := newGeneratorWithDB(db)
	_ = state
	co := g.GenerateModule(moduleFixture(send))

	var sawGoto, sawSkip bool
	for _, op := range opSequence(co) {
		if op == tir.GotoNextBlockIfTrue {
			sawGoto = true
		}
		if op == tir.SkipNextBlock {
			sawSkip = true
		}
	}
	if !sawGoto || !sawSkip {
		t.Fatalf("expected guarded fallback sequence, got %v", opSequence(co))
	}
	if len(co.Blocks) < 4 {
		t.Fatalf("expected at least 4 basic blocks for the guarded fallback, got %d", len(co.Blocks))
	}
}

// Scenario 4: `try e else (err) { body }` writes into one shared register
// from both the try path and the else path via SetRegister, and records a
// catch-table entry.
func TestScenarioTryElse(t *testing.T) {
	tryExpr := &ast.TryExpr{
		Base:    ast.Base{Location: diagLoc()},
		Body:    intLitNode(1),
		HasElse: true,
		ErrName: "err",
		Else:    []ast.Node{intLitNode(0)},
	}

	g, _ := newGenerator()
	co := g.GenerateModule(moduleFixture(tryExpr))

	if len(co.CatchTable) != 1 {
		t.Fatalf("expected exactly one catch-table entry, got %d", len(co.CatchTable))
	}
	entry := co.CatchTable[0]
	if entry.TryBlock >= entry.ElseBlock {
		t.Fatalf("expected try block to precede else block, got try=%d else=%d", entry.TryBlock, entry.ElseBlock)
	}

	var setRegisterDests []int
	for _, bb := range co.Blocks {
		for _, in := range bb.Instructions {
			if in.Op == tir.SetRegister {
				setRegisterDests = append(setRegisterDests, in.Dest.ID)
			}
		}
	}
	if len(setRegisterDests) != 2 {
		t.Fatalf("expected two SetRegister instructions (try path, else path), got %d", len(setRegisterDests))
	}
	if setRegisterDests[0] != setRegisterDests[1] {
		t.Fatalf("expected both SetRegister instructions to write into the same register, got %v", setRegisterDests)
	}

	if len(co.Children) != 1 {
		t.Fatalf("expected the else body to lower as one child code object, got %d", len(co.Children))
	}
}

// Scenario 5: importing a module with an aliased named symbol emits exactly
// one LoadModule per qualified name plus the attribute chain and aliased
// SetGlobal.
func TestScenarioImportWithAlias(t *testing.T) {
	imp := &ast.ImportDecl{
		Base: ast.Base{Location: diagLoc()},
		Path: []string{"std", "hash_map"},
		Symbols: []ast.ImportSymbol{
			{Kind: ast.ImportNamed, Name: "HashMap", Alias: "Map"},
		},
	}

	g, _ := newGenerator()
	mod := moduleFixture()
	mod.Imports = []*ast.ImportDecl{imp}
	co := g.GenerateModule(mod)

	var loadCount int
	var aliasedSet bool
	for _, bb := range co.Blocks {
		for _, in := range bb.Instructions {
			if in.Op == tir.LoadModule {
				loadCount++
			}
			if in.Op == tir.SetGlobal && len(in.Literals) > 0 && in.Literals[0].Str == "Map" {
				aliasedSet = true
			}
		}
	}
	if loadCount != 1 {
		t.Fatalf("expected exactly one LoadModule, got %d", loadCount)
	}
	if !aliasedSet {
		t.Fatal("expected a SetGlobal under the aliased name 'Map'")
	}
}

// Scenario 5b: importing the same qualified name twice in one module still
// costs exactly one LoadModule (invariant 8).
func TestScenarioDuplicateImportSingleLoadModule(t *testing.T) {
	imp1 := &ast.ImportDecl{Base: ast.Base{Location: diagLoc()}, Path: []string{"std", "hash_map"},
		Symbols: []ast.ImportSymbol{{Kind: ast.ImportSelf}}}
	imp2 := &ast.ImportDecl{Base: ast.Base{Location: diagLoc()}, Path: []string{"std", "hash_map"},
		Symbols: []ast.ImportSymbol{{Kind: ast.ImportNamed, Name: "HashMap"}}}

	g, _ := newGenerator()
	mod := moduleFixture()
	mod.Imports = []*ast.ImportDecl{imp1, imp2}
	co := g.GenerateModule(mod)

	var loadCount int
	for _, bb := range co.Blocks {
		for _, in := range bb.Instructions {
			if in.Op == tir.LoadModule {
				loadCount++
			}
		}
	}
	if loadCount != 1 {
		t.Fatalf("expected exactly one LoadModule across both imports, got %d", loadCount)
	}
}

// Scenario 6: a hash-map literal desugars to HashMap.new followed by one
// []= send per entry.
func TestScenarioHashMapLiteral(t *testing.T) {
	lit := &ast.HashMapLit{
		Base: ast.Base{Location: diagLoc()},
		Entries: []ast.HashMapEntry{
			{Key: strLitNode("a"), Value: intLitNode(10)},
			{Key: strLitNode("b"), Value: intLitNode(20)},
		},
	}

	g, _ := newGenerator()
	co := g.GenerateModule(moduleFixture(lit))

	var newCount, runCount, getGlobalCount int
	var newHasReceiverOperand bool
	for _, bb := range co.Blocks {
		for _, in := range bb.Instructions {
			if in.Op == tir.GetGlobal && len(in.Literals) > 0 && in.Literals[0].Str == "HashMap" {
				getGlobalCount++
			}
			if in.Op == tir.RunBlock && len(in.Literals) > 0 {
				switch in.Literals[0].Str {
				case "new":
					newCount++
					if len(in.Operands) >= 1 {
						newHasReceiverOperand = true
					}
				case "[]=":
					runCount++
				}
			}
		}
	}
	if getGlobalCount != 1 {
		t.Fatalf("expected exactly one GetGlobal(\"HashMap\") fetching the receiver, got %d", getGlobalCount)
	}
	if newCount != 1 {
		t.Fatalf("expected exactly one HashMap.new, got %d", newCount)
	}
	if !newHasReceiverOperand {
		t.Fatal("expected HashMap.new's RunBlock to carry the HashMap class as operand[0]")
	}
	if runCount != 2 {
		t.Fatalf("expected one []= send per entry (2 entries), got %d", runCount)
	}
}

// Scenario 7: a `def` nested inside an `object` body becomes a child of the
// object's own code object (itself a child of the module), not a child of
// the module directly.
func TestScenarioDefNestedInObjectIsChildOfObjectCodeObject(t *testing.T) {
	method := &ast.BlockDef{
		Base: ast.Base{Location: diagLoc()},
		Kind: ast.BlockMethod,
		Name: "greet",
		Body: []ast.Node{strLitNode("hi")},
	}
	obj := &ast.ObjectDef{
		Base: ast.Base{Location: diagLoc()},
		Name: "Greeter",
		Body: []ast.Node{method},
	}

	g, _ := newGenerator()
	co := g.GenerateModule(moduleFixture(obj))

	if len(co.Children) != 1 {
		t.Fatalf("expected exactly one child code object (the object body) directly under the module, got %d", len(co.Children))
	}
	objCO := co.Children[0]
	if objCO.Name != "Greeter" {
		t.Fatalf("expected the module's only child to be the object's own code object, got %q", objCO.Name)
	}
	if len(objCO.Children) != 1 || objCO.Children[0].Name != "greet" {
		t.Fatalf("expected the 'greet' method to be a child of the object's code object, got children=%v", objCO.Children)
	}
}

func newGeneratorWithDB(db *types.Database) (*tir.Generator, *modgraph.CompileState) {
	g, state := newGenerator()
	state.Types = db
	// The generator already captured state.Types by value in NewGenerator,
	// so rebuild it bound to the replaced database.
	return tir.NewGenerator(state), state
}
