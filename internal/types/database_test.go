package types_test

import (
	"testing"

	"github.com/inko-lang/corec/internal/diag"
	"github.com/inko-lang/corec/internal/symbols"
	"github.com/inko-lang/corec/internal/types"
)

func newMethodTable(names ...string) *symbols.Table {
	tbl := symbols.NewTable(nil)
	for _, name := range names {
		tbl.Define(name, &types.BlockSignature{Tag: types.TagMethod}, false)
	}
	return tbl
}

func newAnimalWithSpeak(db *types.Database) *types.Prototype {
	animal := types.NewPrototype("Animal", types.KindObject, nil)
	animal.Attributes.Define("speak", &types.BlockSignature{
		Return: &types.Primitive{Kind: types.Str},
		Tag:    types.TagMethod,
	}, false)
	db.RegisterPrototype(animal)
	return animal
}

func TestRespondsToMessageWalksPrototypeChain(t *testing.T) {
	db := types.NewDatabase()
	parent := newAnimalWithSpeak(db)
	child := types.NewPrototype("Dog", types.KindObject, parent)
	db.RegisterPrototype(child)

	if !db.RespondsToMessage(child, "speak") {
		t.Fatal("expected Dog to respond to speak via its Animal parent")
	}
	if db.RespondsToMessage(child, "fly") {
		t.Fatal("did not expect Dog to respond to fly")
	}
}

func TestRespondsToMessageGuardsCycles(t *testing.T) {
	db := types.NewDatabase()
	a := types.NewPrototype("A", types.KindObject, nil)
	b := types.NewPrototype("B", types.KindObject, a)
	a.Parent = b // malformed cycle
	db.RegisterPrototype(a)
	db.RegisterPrototype(b)

	// If walkChain lacked cycle protection this call would loop forever
	// instead of returning false.
	if db.RespondsToMessage(a, "nope") {
		t.Fatal("expected cyclic chain lookup to terminate and return false")
	}
}

func TestImplementTraitCopiesMethodsAndRecordsSet(t *testing.T) {
	db := types.NewDatabase()
	trait := &types.Trait{Name: "ToString", RequiredMethods: newMethodTable("to_string")}
	db.RegisterTrait(trait)

	obj := types.NewPrototype("Point", types.KindObject, nil)
	db.RegisterPrototype(obj)

	db.ImplementTrait(obj, trait)

	if !obj.ImplementsTrait("ToString") {
		t.Fatal("expected Point to record ToString in its implemented-traits set")
	}
	if !db.RespondsToMessage(obj, "to_string") {
		t.Fatal("expected Point to respond to to_string after trait implementation copies it")
	}
}

func TestGuardUnknownMessage(t *testing.T) {
	db := types.NewDatabase()
	unknownTrait := &types.Trait{Name: "UnknownMessage", RequiredMethods: newMethodTable("unknown_message"), UnknownMessage: true}
	db.RegisterTrait(unknownTrait)

	obj := types.NewPrototype("Dynamic", types.KindObject, nil)
	db.RegisterPrototype(obj)
	db.ImplementTrait(obj, unknownTrait)

	if !db.GuardUnknownMessage(obj, "ping") {
		t.Fatal("expected guard_unknown_message? true for an undefined method on an UnknownMessage implementor")
	}

	// A method the type does define should never go through the guard.
	obj.Attributes.Define("ping", &types.BlockSignature{Tag: types.TagMethod}, false)
	if db.GuardUnknownMessage(obj, "ping") {
		t.Fatal("expected guard_unknown_message? false once the type defines the method directly")
	}

	// A type that does not implement UnknownMessage never goes through the guard.
	plain := types.NewPrototype("Plain", types.KindObject, nil)
	db.RegisterPrototype(plain)
	if db.GuardUnknownMessage(plain, "ping") {
		t.Fatal("expected guard_unknown_message? false for a type without the UnknownMessage trait")
	}
}

func TestNewArrayOfTypeAndGenericInstance(t *testing.T) {
	db := types.NewDatabase()
	arrOfInt := db.NewArrayOfType(&types.Primitive{Kind: types.Integer})

	inst, ok := arrOfInt.(*types.GenericInstance)
	if !ok {
		t.Fatalf("expected GenericInstance, got %T", arrOfInt)
	}
	if inst.Base != db.Array {
		t.Fatal("expected array instance to share the Array base prototype")
	}
	if len(inst.Args) != 1 || inst.Args[0].String() != "Integer" {
		t.Fatalf("expected [Integer] args, got %v", inst.Args)
	}
}

func TestInitializedReturnTypeResolvesThenInstantiates(t *testing.T) {
	db := types.NewDatabase()

	// A method called on a receiver bound to T=Integer, declared to
	// return Array[T]. InitializedReturnType must resolve T to Integer
	// before instantiating Array, giving Array[Integer].
	block := &types.BlockSignature{
		Return: db.Array, // uninstantiated generic Array[T]
		Tag:    types.TagMethod,
	}

	params := types.NewTypeParameterTable()
	params.Set("T", &types.Primitive{Kind: types.Integer})

	ctx := &types.MessageContext{Block: block, TypeParams: params, Receiver: db.Array, Location: diag.Location{}}
	rt := ctx.InitializedReturnType(db)

	inst, ok := rt.(*types.GenericInstance)
	if !ok {
		t.Fatalf("expected GenericInstance return type, got %T (%v)", rt, rt)
	}
	if len(inst.Args) != 1 || inst.Args[0].String() != "Integer" {
		t.Fatalf("expected Array[Integer], got %v", rt)
	}
}
