package types_test

import (
	"testing"

	"github.com/inko-lang/corec/internal/diag"
	"github.com/inko-lang/corec/internal/types"
)

func intType() types.Type { return &types.Primitive{Kind: types.Integer} }

func TestArgumentCountRange(t *testing.T) {
	sig := &types.BlockSignature{
		Arguments: []types.Param{
			{Name: "a", Type: intType()},
			{Name: "b", Type: intType(), Default: true},
			{Name: "c", Type: intType(), Default: true},
		},
	}
	min, max := sig.ArgumentCountRange()
	if min != 1 || max != 3 {
		t.Fatalf("expected range [1,3], got [%d,%d]", min, max)
	}
}

func TestLookupArgumentByName(t *testing.T) {
	sig := &types.BlockSignature{Arguments: []types.Param{{Name: "value", Type: intType()}}}
	param, ok := sig.LookupArgument("value")
	if !ok || param.Name != "value" {
		t.Fatalf("expected to find argument 'value', got %+v ok=%v", param, ok)
	}
	if _, ok := sig.LookupArgument("missing"); ok {
		t.Fatal("did not expect to find argument 'missing'")
	}
}

func TestTypeParameterTableMergeDoesNotOverwrite(t *testing.T) {
	parent := types.NewTypeParameterTable()
	parent.Set("T", intType())
	parent.Set("U", &types.Primitive{Kind: types.Str})

	child := types.NewTypeParameterTable()
	child.Set("U", &types.Primitive{Kind: types.Boolean})
	child.Merge(parent)

	if tv, _ := child.Lookup("T"); tv.String() != "Integer" {
		t.Fatalf("expected T imported from parent as Integer, got %v", tv)
	}
	if uv, _ := child.Lookup("U"); uv.String() != "Boolean" {
		t.Fatalf("expected child's own U binding to win, got %v", uv)
	}
}

func TestMessageContextSeedsFromGenericReceiverAndBlock(t *testing.T) {
	db := types.NewDatabase()
	receiver := db.NewArrayOfType(intType())
	block := &types.BlockSignature{TypeParams: []string{"R"}, Return: &types.TypeParameter{Name: "R"}}

	ctx := types.NewMessageContext(receiver, block, nil, diag.Location{})

	if bound, ok := ctx.TypeParams.Lookup("T"); !ok || bound.String() != "Integer" {
		t.Fatalf("expected T bound to Integer from the receiver, got %v ok=%v", bound, ok)
	}
	if _, ok := ctx.TypeParams.Lookup("R"); !ok {
		t.Fatal("expected R to be present from the block's own type parameters")
	}
}

func TestInitializeTypeParameterUpdatesReceiverAndContext(t *testing.T) {
	db := types.NewDatabase()
	receiver := db.NewArrayOfType(&types.Dynamic{})
	ctx := types.NewMessageContext(receiver, &types.BlockSignature{}, nil, diag.Location{})

	ctx.InitializeTypeParameter("T", intType())

	if bound, _ := ctx.TypeParams.Lookup("T"); bound.String() != "Integer" {
		t.Fatalf("expected context T bound to Integer, got %v", bound)
	}
	inst := ctx.Receiver.(*types.GenericInstance)
	if inst.Args[0].String() != "Integer" {
		t.Fatalf("expected receiver's type argument updated to Integer, got %v", inst.Args[0])
	}
}
