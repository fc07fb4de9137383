package symbols_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/inko-lang/corec/internal/symbols"
)

func TestDefineAssignsContiguousSlots(t *testing.T) {
	tbl := symbols.NewTable(nil)
	a := tbl.Define("a", nil, false)
	b := tbl.Define("b", nil, true)

	if a.Index != 0 || b.Index != 1 {
		t.Fatalf("expected contiguous slots 0,1, got %d,%d", a.Index, b.Index)
	}
	if !b.Mutable {
		t.Fatal("expected b to be mutable")
	}
}

func TestLookupMissingReturnsNullSymbol(t *testing.T) {
	tbl := symbols.NewTable(nil)
	sym := tbl.Lookup("missing")
	if !sym.IsNull() {
		t.Fatalf("expected null symbol, got %+v", sym)
	}
	if sym.Name != "missing" {
		t.Fatalf("expected null symbol to remember name, got %q", sym.Name)
	}
}

func TestLookupWithParentDepth(t *testing.T) {
	root := symbols.NewTable(nil)
	root.Define("x", nil, false)

	child := symbols.NewTable(root)
	child.Define("y", nil, false)

	grandchild := symbols.NewTable(child)

	if depth, sym := grandchild.LookupWithParent("y"); depth != 0 || sym.IsNull() {
		t.Fatalf("expected depth 0 for y, got depth=%d sym=%+v", depth, sym)
	}
	if depth, sym := grandchild.LookupWithParent("x"); depth != 1 || sym.IsNull() {
		t.Fatalf("expected depth 1 for x, got depth=%d sym=%+v", depth, sym)
	}
	if depth, sym := child.LookupWithParent("y"); depth != -1 || sym.IsNull() {
		t.Fatalf("expected depth -1 for own-scope lookup, got depth=%d sym=%+v", depth, sym)
	}
	if depth, sym := grandchild.LookupWithParent("nope"); depth != -1 || !sym.IsNull() {
		t.Fatalf("expected depth -1 and null symbol for missing name, got depth=%d sym=%+v", depth, sym)
	}
}

func TestLookupInRootWalksToOutermost(t *testing.T) {
	root := symbols.NewTable(nil)
	root.Define("g", nil, false)
	child := symbols.NewTable(root)
	grandchild := symbols.NewTable(child)

	depth, sym := grandchild.LookupInRoot("g")
	if depth != 1 || sym.IsNull() {
		t.Fatalf("expected depth 1 resolving in root, got depth=%d sym=%+v", depth, sym)
	}

	// A name only defined in an intermediate scope is invisible to LookupInRoot.
	child.Define("mid", nil, false)
	if _, sym := grandchild.LookupInRoot("mid"); !sym.IsNull() {
		t.Fatalf("expected LookupInRoot to skip intermediate scopes, got %+v", sym)
	}
}

func TestDefineShadowsByDefault(t *testing.T) {
	tbl := symbols.NewTable(nil)
	tbl.Define("x", "int", false)
	second := tbl.Define("x", "string", true)

	got := tbl.Lookup("x")
	if got != second {
		t.Fatalf("expected shadowing redefinition to win, got %+v want %+v", got, second)
	}
	if tbl.Len() != 1 {
		t.Fatalf("expected redefinition to reuse the name's slot in Names(), got len=%d", tbl.Len())
	}
}

func TestDefineAfterShadowGetsDistinctIndex(t *testing.T) {
	tbl := symbols.NewTable(nil)
	a := tbl.Define("x", nil, false)
	shadow := tbl.Define("x", nil, false)
	b := tbl.Define("y", nil, false)

	if a.Index != 0 {
		t.Fatalf("expected first x at index 0, got %d", a.Index)
	}
	if shadow.Index != 1 {
		t.Fatalf("expected shadowing x at index 1, got %d", shadow.Index)
	}
	if b.Index != 2 {
		t.Fatalf("expected y to get a fresh index after the shadow, got %d (collides with shadowed x)", b.Index)
	}
}

func TestDefineUniqueRejectsDuplicate(t *testing.T) {
	tbl := symbols.NewTable(nil)
	tbl.DefineUnique("x", nil, false)
	_, ok := tbl.DefineUnique("x", nil, false)
	if ok {
		t.Fatal("expected DefineUnique to reject a duplicate name")
	}
}

func TestNamesPreservesInsertionOrder(t *testing.T) {
	tbl := symbols.NewTable(nil)
	tbl.Define("c", nil, false)
	tbl.Define("a", nil, false)
	tbl.Define("b", nil, false)

	got := tbl.Names()
	want := []string{"c", "a", "b"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Names() mismatch (-want +got):\n%s", diff)
	}
}
